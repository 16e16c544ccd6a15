package dictionary

import (
	"context"
)

// Lexicon answers whether a word is in the dictionary. Errors mean the
// question could not be answered, never that the word is invalid.
type Lexicon interface {
	IsValidWord(ctx context.Context, word string) (bool, error)
}

// Searcher lists dictionary words starting with a prefix
type Searcher interface {
	Search(ctx context.Context, prefix string, limit int) ([]string, error)
}

// WordStore accepts bulk word imports
type WordStore interface {
	AddWords(ctx context.Context, words []string) error
	WordCount(ctx context.Context) (int, error)
}

// SearchLimit caps prefix search results
const SearchLimit = 50
