package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mcoot/kumkom/internal/api"
	"github.com/mcoot/kumkom/internal/factory"
	redisstorage "github.com/mcoot/kumkom/internal/storage/redis"
)

// sweepInterval is how often expired sessions and idle event hubs are dropped
const sweepInterval = 5 * time.Minute

func main() {
	// A missing .env file is fine; anything else is worth knowing about
	envErr := godotenv.Load()

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}))
	slog.SetDefault(logger)

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		logger.Warn("could not load .env", slog.String("error", envErr.Error()))
	}

	cfg, err := configFromEnv(logger)
	if err != nil {
		logger.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create application factory
	app, err := factory.New(cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer app.Close()

	if count, err := app.DictionaryService.WordCount(context.Background()); err == nil {
		logger.Info("dictionary ready", slog.Int("words", count))
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		AuthService:       app.AuthService,
		LobbyController:   app.LobbyController,
		GameController:    app.GameController,
		BotService:        app.BotService,
		DictionaryService: app.DictionaryService,
		HubManager:        app.HubManager,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			logger.Error("invalid PORT", slog.String("port", port))
			os.Exit(1)
		}
		serverConfig.Port = p
	}
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweep(ctx, app, logger)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		// event streams hold their connections open until their hubs close
		app.HubManager.CloseAll()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

// configFromEnv builds the factory config from environment variables
func configFromEnv(logger *slog.Logger) (factory.Config, error) {
	cfg := factory.Config{
		Logger:       logger,
		StorageType:  os.Getenv("STORAGE_TYPE"),
		Lexicon:      os.Getenv("LEXICON"),
		LexiconDSN:   os.Getenv("LEXICON_DSN"),
		LexiconURL:   os.Getenv("LEXICON_URL"),
		WordlistPath: os.Getenv("WORDLIST_PATH"),
	}

	if cfg.WordlistPath == "" && (cfg.Lexicon == "" || cfg.Lexicon == factory.LexiconStorage) {
		cfg.WordlistPath = "data/words.txt"
	}

	if size := os.Getenv("LEXICON_CACHE_SIZE"); size != "" {
		n, err := strconv.Atoi(size)
		if err != nil {
			return cfg, errors.New("LEXICON_CACHE_SIZE must be an integer")
		}
		cfg.LexiconCacheSize = n
	}

	// Configure Redis if storage type is redis
	if cfg.StorageType == factory.StorageTypeRedis {
		redisURL := os.Getenv("REDIS_URL")
		if redisURL == "" {
			return cfg, errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = redisURL
		cfg.RedisConfig = &redisCfg
	}

	return cfg, nil
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}

func sweep(ctx context.Context, app *factory.App, logger *slog.Logger) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sessions, hubs := app.Sweep()
			if sessions > 0 || hubs > 0 {
				logger.Info("swept idle state",
					slog.Int("sessions", sessions),
					slog.Int("hubs", hubs),
				)
			}
		}
	}
}
