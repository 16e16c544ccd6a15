package dictionary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const createVocabulary = `CREATE TABLE IF NOT EXISTS vocabulary (
	word TEXT PRIMARY KEY
)`

// SQLiteLexicon reads words from a `vocabulary` table
type SQLiteLexicon struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) a vocabulary database
func OpenSQLite(dsn string) (*SQLiteLexicon, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open vocabulary db: %w", err)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createVocabulary); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create vocabulary table: %w", err)
	}
	return &SQLiteLexicon{db: db}, nil
}

var (
	_ Lexicon   = (*SQLiteLexicon)(nil)
	_ Searcher  = (*SQLiteLexicon)(nil)
	_ WordStore = (*SQLiteLexicon)(nil)
)

// Close closes the database
func (l *SQLiteLexicon) Close() error {
	return l.db.Close()
}

func (l *SQLiteLexicon) IsValidWord(ctx context.Context, word string) (bool, error) {
	var one int
	err := l.db.QueryRowContext(ctx, `SELECT 1 FROM vocabulary WHERE word = ?`, strings.TrimSpace(word)).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (l *SQLiteLexicon) Search(ctx context.Context, prefix string, limit int) ([]string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return []string{}, nil
	}
	rows, err := l.db.QueryContext(ctx,
		`SELECT word FROM vocabulary WHERE substr(word, 1, length(?1)) = ?1 ORDER BY word LIMIT ?2`,
		prefix, limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (l *SQLiteLexicon) AddWords(ctx context.Context, words []string) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT OR IGNORE INTO vocabulary (word) VALUES (?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, w := range words {
		if w = strings.TrimSpace(w); w == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, w); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (l *SQLiteLexicon) WordCount(ctx context.Context) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocabulary`).Scan(&n)
	return n, err
}
