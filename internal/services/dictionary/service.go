package dictionary

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/kumkom/internal/model"
)

// maxParallelChecks bounds concurrent lexicon calls for one turn
const maxParallelChecks = 8

// Service validates words through a Lexicon
type Service struct {
	lexicon Lexicon
	logger  *slog.Logger
}

// New creates a new DictionaryService
func New(lexicon Lexicon, logger *slog.Logger) *Service {
	return &Service{
		lexicon: lexicon,
		logger:  logger.With(slog.String("component", "dictionary")),
	}
}

// IsValidWord checks a single word
func (s *Service) IsValidWord(ctx context.Context, word string) (bool, error) {
	valid, err := s.lexicon.IsValidWord(ctx, word)
	if err != nil {
		s.logger.Warn("word lookup failed",
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return false, fmt.Errorf("%w: %v", model.ErrWordValidationFailed, err)
	}
	return valid, nil
}

// ValidateAll checks every word in parallel. Results are buffered and
// inspected in input order once every lookup has finished, so the first
// failing word is reported deterministically. A lookup error is reported as
// ErrWordValidationFailed; an unknown word as *model.InvalidWordError.
func (s *Service) ValidateAll(ctx context.Context, words []string) error {
	results := make([]bool, len(words))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelChecks)
	for i, w := range words {
		i, w := i, w
		g.Go(func() error {
			valid, err := s.lexicon.IsValidWord(gctx, w)
			if err != nil {
				return err
			}
			results[i] = valid
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		s.logger.Warn("word validation failed",
			slog.Int("words", len(words)),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %v", model.ErrWordValidationFailed, err)
	}

	for i, valid := range results {
		if !valid {
			return &model.InvalidWordError{Word: words[i]}
		}
	}
	return nil
}

// CanSearch reports whether the lexicon supports prefix search
func (s *Service) CanSearch() bool {
	if wrapper, ok := s.lexicon.(interface{ CanSearch() bool }); ok {
		return wrapper.CanSearch()
	}
	_, ok := s.lexicon.(Searcher)
	return ok
}

// Search lists words with the given prefix when the lexicon supports it
func (s *Service) Search(ctx context.Context, prefix string) ([]string, error) {
	searcher, ok := s.lexicon.(Searcher)
	if !ok {
		return []string{}, nil
	}
	return searcher.Search(ctx, prefix, SearchLimit)
}

// LoadFromFile imports a word list into the lexicon. JSON files hold an
// array of strings; anything else is read one word per line.
func (s *Service) LoadFromFile(ctx context.Context, path string) (int, error) {
	store, ok := s.lexicon.(WordStore)
	if !ok {
		return 0, fmt.Errorf("lexicon %T does not accept imports", s.lexicon)
	}

	words, err := readWordList(path)
	if err != nil {
		return 0, err
	}

	if err := store.AddWords(ctx, words); err != nil {
		return 0, err
	}

	s.logger.Info("dictionary loaded",
		slog.String("path", path),
		slog.Int("words", len(words)),
	)
	return len(words), nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(ctx context.Context, words []string) error {
	store, ok := s.lexicon.(WordStore)
	if !ok {
		return fmt.Errorf("lexicon %T does not accept imports", s.lexicon)
	}
	return store.AddWords(ctx, words)
}

// WordCount returns the number of words when the lexicon can count them
func (s *Service) WordCount(ctx context.Context) (int, error) {
	store, ok := s.lexicon.(WordStore)
	if !ok {
		return 0, model.ErrDictionaryNotLoaded
	}
	return store.WordCount(ctx)
}

func readWordList(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if strings.HasSuffix(path, ".json") {
		var words []string
		if err := json.NewDecoder(file).Decode(&words); err != nil {
			return nil, fmt.Errorf("decode word list: %w", err)
		}
		return words, nil
	}

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Interface check
type ServiceInterface interface {
	IsValidWord(ctx context.Context, word string) (bool, error)
	ValidateAll(ctx context.Context, words []string) error
	Search(ctx context.Context, prefix string) ([]string, error)
	LoadFromFile(ctx context.Context, path string) (int, error)
	LoadWords(ctx context.Context, words []string) error
	WordCount(ctx context.Context) (int, error)
}

var _ ServiceInterface = (*Service)(nil)
