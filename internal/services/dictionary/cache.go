package dictionary

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/mcoot/kumkom/internal/model"
)

// CachedLexicon remembers definitive answers from another lexicon. Errors are
// never cached.
type CachedLexicon struct {
	inner Lexicon
	cache *lru.Cache[string, bool]
}

// NewCachedLexicon wraps inner with an LRU of the given size
func NewCachedLexicon(inner Lexicon, size int) (*CachedLexicon, error) {
	cache, err := lru.New[string, bool](size)
	if err != nil {
		return nil, err
	}
	return &CachedLexicon{inner: inner, cache: cache}, nil
}

var _ Lexicon = (*CachedLexicon)(nil)

func (l *CachedLexicon) IsValidWord(ctx context.Context, word string) (bool, error) {
	if valid, ok := l.cache.Get(word); ok {
		return valid, nil
	}
	valid, err := l.inner.IsValidWord(ctx, word)
	if err != nil {
		return false, err
	}
	l.cache.Add(word, valid)
	return valid, nil
}

// Purge drops every cached answer
func (l *CachedLexicon) Purge() {
	l.cache.Purge()
}

// Len returns the number of cached answers
func (l *CachedLexicon) Len() int {
	return l.cache.Len()
}

// CanSearch reports whether the wrapped lexicon supports prefix search
func (l *CachedLexicon) CanSearch() bool {
	_, ok := l.inner.(Searcher)
	return ok
}

// Search passes through to the wrapped lexicon
func (l *CachedLexicon) Search(ctx context.Context, prefix string, limit int) ([]string, error) {
	searcher, ok := l.inner.(Searcher)
	if !ok {
		return []string{}, nil
	}
	return searcher.Search(ctx, prefix, limit)
}

// AddWords imports into the wrapped lexicon and drops cached answers, which
// may now be stale negatives
func (l *CachedLexicon) AddWords(ctx context.Context, words []string) error {
	store, ok := l.inner.(WordStore)
	if !ok {
		return fmt.Errorf("lexicon %T does not accept imports", l.inner)
	}
	if err := store.AddWords(ctx, words); err != nil {
		return err
	}
	l.cache.Purge()
	return nil
}

// WordCount passes through to the wrapped lexicon
func (l *CachedLexicon) WordCount(ctx context.Context) (int, error) {
	store, ok := l.inner.(WordStore)
	if !ok {
		return 0, model.ErrDictionaryNotLoaded
	}
	return store.WordCount(ctx)
}
