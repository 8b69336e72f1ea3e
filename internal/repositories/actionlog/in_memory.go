package actionlog

import (
	"context"
	"slices"
	"sync"

	attackrecord "github.com/KirkDiggler/buttonmen-rules/internal/entities/attack"
	dnderr "github.com/KirkDiggler/buttonmen-rules/internal/errors"
)

type inMemoryRepository struct {
	mu     sync.RWMutex
	byGame map[string][]Entry
}

// NewInMemoryRepository creates a new in-memory action log
func NewInMemoryRepository() Repository {
	return &inMemoryRepository{
		byGame: make(map[string][]Entry),
	}
}

// Append stores the record at the end of its game's log
func (r *inMemoryRepository) Append(ctx context.Context, record *attackrecord.Record) error {
	if err := ctx.Err(); err != nil {
		return dnderr.Wrap(err, "append cancelled")
	}

	entry, err := NewEntry(record)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.byGame[entry.GameID] = append(r.byGame[entry.GameID], entry)
	return nil
}

// List returns a copy of the game's log
func (r *inMemoryRepository) List(ctx context.Context, gameID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.byGame[gameID]), nil
}
