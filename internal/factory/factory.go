package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/kumkom/internal/dependencies/clock"
	"github.com/mcoot/kumkom/internal/dependencies/random"
	"github.com/mcoot/kumkom/internal/model"
	"github.com/mcoot/kumkom/internal/services/auth"
	"github.com/mcoot/kumkom/internal/services/board"
	"github.com/mcoot/kumkom/internal/services/bot"
	"github.com/mcoot/kumkom/internal/services/dictionary"
	"github.com/mcoot/kumkom/internal/services/game"
	"github.com/mcoot/kumkom/internal/services/lobby"
	"github.com/mcoot/kumkom/internal/services/scoring"
	"github.com/mcoot/kumkom/internal/services/tiles"
	"github.com/mcoot/kumkom/internal/sse"
	"github.com/mcoot/kumkom/internal/storage"
	"github.com/mcoot/kumkom/internal/storage/memory"
	redisstorage "github.com/mcoot/kumkom/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Lexicon backend constants
const (
	LexiconStorage = "storage"
	LexiconSQLite  = "sqlite"
	LexiconHTTP    = "http"
)

// DefaultLexiconTimeout bounds one remote lexicon lookup
const DefaultLexiconTimeout = 5 * time.Second

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Layout *model.Layout

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	ScoringService    *scoring.Service
	TilesService      *tiles.Service
	GameController    *game.Controller
	Generator         *bot.Generator
	BotService        *bot.Service
	LobbyController   *lobby.Controller
	AuthService       *auth.Service

	// Event relay
	HubManager  *sse.HubManager
	Broadcaster *sse.Broadcaster

	closers []io.Closer
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config

	// Lexicon selects the word list backend ("storage", "sqlite" or "http")
	// If empty, words live in the configured storage
	Lexicon string
	// LexiconDSN is the SQLite data source (required if Lexicon is "sqlite")
	LexiconDSN string
	// LexiconURL is the remote gateway (required if Lexicon is "http")
	LexiconURL string
	// LexiconTimeout bounds remote lookups; defaults to DefaultLexiconTimeout
	LexiconTimeout time.Duration
	// LexiconCacheSize wraps the lexicon in an LRU cache when positive
	LexiconCacheSize int
	// WordlistPath is imported into the lexicon at startup (optional)
	WordlistPath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var closers []io.Closer

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
		closers = append(closers, redisStore)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	lexicon, lexiconCloser, err := newLexicon(cfg, store)
	if err != nil {
		closeAll(closers)
		return nil, err
	}
	if lexiconCloser != nil {
		closers = append(closers, lexiconCloser)
	}

	// Use default auth config if not provided
	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	app := newWithDependencies(store, lexicon, clock.New(), random.New(), authCfg, logger)
	app.closers = closers

	if cfg.WordlistPath != "" {
		if _, err := app.DictionaryService.LoadFromFile(context.Background(), cfg.WordlistPath); err != nil {
			app.Close()
			return nil, fmt.Errorf("loading word list: %w", err)
		}
	}

	return app, nil
}

func newLexicon(cfg Config, store storage.Storage) (dictionary.Lexicon, io.Closer, error) {
	var (
		lexicon dictionary.Lexicon
		closer  io.Closer
	)

	switch cfg.Lexicon {
	case "", LexiconStorage:
		lexicon = dictionary.NewStoreLexicon(store)
	case LexiconSQLite:
		if cfg.LexiconDSN == "" {
			return nil, nil, errors.New("LexiconDSN required when Lexicon is sqlite")
		}
		sqlite, err := dictionary.OpenSQLite(cfg.LexiconDSN)
		if err != nil {
			return nil, nil, err
		}
		lexicon, closer = sqlite, sqlite
	case LexiconHTTP:
		if cfg.LexiconURL == "" {
			return nil, nil, errors.New("LexiconURL required when Lexicon is http")
		}
		timeout := cfg.LexiconTimeout
		if timeout == 0 {
			timeout = DefaultLexiconTimeout
		}
		lexicon = dictionary.NewHTTPLexicon(cfg.LexiconURL, timeout)
	default:
		return nil, nil, errors.New("invalid Lexicon: must be 'storage', 'sqlite' or 'http'")
	}

	if cfg.LexiconCacheSize > 0 {
		cached, err := dictionary.NewCachedLexicon(lexicon, cfg.LexiconCacheSize)
		if err != nil {
			if closer != nil {
				_ = closer.Close()
			}
			return nil, nil, err
		}
		lexicon = cached
	}

	return lexicon, closer, nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	lexicon dictionary.Lexicon,
	clk clock.Clock,
	rnd random.Random,
	authCfg auth.Config,
	logger *slog.Logger,
) *App {
	layout := model.StandardLayout()

	// Create services
	dictService := dictionary.New(lexicon, logger)
	boardService := board.New(layout, logger)
	scoringService := scoring.New(layout)
	tilesService := tiles.New(rnd)
	hubManager := sse.NewHubManager(logger)
	broadcaster := sse.NewBroadcaster(hubManager, logger)
	gameController := game.NewController(
		store, boardService, scoringService, tilesService, dictService, broadcaster, clk, rnd, logger,
	)
	botConfig := bot.DefaultConfig()
	generator := bot.NewGenerator(
		boardService, scoringService, dictService, bot.DefaultStrategies(botConfig), rnd, botConfig, logger,
	)
	botService := bot.NewService(gameController, generator, logger)
	lobbyController := lobby.NewController(store, gameController, clk, rnd, logger)
	authService := auth.New(store, clk, authCfg, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Layout:            layout,
		DictionaryService: dictService,
		BoardService:      boardService,
		ScoringService:    scoringService,
		TilesService:      tilesService,
		GameController:    gameController,
		Generator:         generator,
		BotService:        botService,
		LobbyController:   lobbyController,
		AuthService:       authService,
		HubManager:        hubManager,
		Broadcaster:       broadcaster,
	}
}

// Sweep drops expired sessions and event hubs nobody is watching
func (a *App) Sweep() (sessions, hubs int) {
	return a.AuthService.CleanExpiredSessions(), a.HubManager.CleanupEmptyHubs()
}

// Close ends every event stream and releases backend connections
func (a *App) Close() {
	a.HubManager.CloseAll()
	closeAll(a.closers)
	a.closers = nil
}

func closeAll(closers []io.Closer) {
	for i := len(closers) - 1; i >= 0; i-- {
		_ = closers[i].Close()
	}
}
