package game

import (
	"sync"

	"github.com/mcoot/kumkom/internal/model"
)

// matchLocks serialises operations per match. Entries are reference counted
// and dropped once no goroutine holds or waits on them.
type matchLocks struct {
	mu      sync.Mutex
	entries map[model.MatchID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newMatchLocks() *matchLocks {
	return &matchLocks{entries: make(map[model.MatchID]*lockEntry)}
}

// lock blocks until the match is free and returns the matching unlock
func (l *matchLocks) lock(id model.MatchID) func() {
	l.mu.Lock()
	e, ok := l.entries[id]
	if !ok {
		e = &lockEntry{}
		l.entries[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.entries, id)
		}
		l.mu.Unlock()
	}
}
