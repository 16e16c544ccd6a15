package dictionary

import (
	"context"
	"strings"

	"github.com/mcoot/kumkom/internal/storage"
)

// StoreLexicon keeps the word list in the application storage (a Redis SET
// or the in-memory map)
type StoreLexicon struct {
	storage storage.Storage
}

// NewStoreLexicon creates a lexicon backed by storage
func NewStoreLexicon(storage storage.Storage) *StoreLexicon {
	return &StoreLexicon{storage: storage}
}

var (
	_ Lexicon   = (*StoreLexicon)(nil)
	_ Searcher  = (*StoreLexicon)(nil)
	_ WordStore = (*StoreLexicon)(nil)
)

func (l *StoreLexicon) IsValidWord(ctx context.Context, word string) (bool, error) {
	return l.storage.HasDictionaryWord(ctx, strings.TrimSpace(word))
}

func (l *StoreLexicon) Search(ctx context.Context, prefix string, limit int) ([]string, error) {
	return l.storage.SearchDictionaryWords(ctx, strings.TrimSpace(prefix), limit)
}

func (l *StoreLexicon) AddWords(ctx context.Context, words []string) error {
	return l.storage.AddDictionaryWords(ctx, words)
}

func (l *StoreLexicon) WordCount(ctx context.Context) (int, error) {
	return l.storage.DictionaryWordCount(ctx)
}
