package ports

import (
	"context"
	"encoding/json"

	"github.com/courtside/nba-backend/internal/domain/entities"
)

// MutateFunc receives the current collection and returns the collection to
// persist. Returning an error aborts the write.
type MutateFunc[T any] func(items []T) ([]T, error)

// CollectionStore persists an ordered collection as a single document.
// Every call reads the collection fresh from the backing storage.
type CollectionStore[T any] interface {
	// Load returns the full collection
	Load(ctx context.Context) ([]T, error)

	// Mutate is the only write path: it loads the collection, applies fn and
	// saves the result as one unit. Implementations serialize concurrent calls.
	Mutate(ctx context.Context, fn MutateFunc[T]) error
}

// CoachRepository stores the coaches collection
type CoachRepository interface {
	CollectionStore[entities.Coach]
}

// PlayerRepository stores the player-info collection
type PlayerRepository interface {
	CollectionStore[entities.Player]
}

// DocumentReader serves read-only JSON datasets by name
type DocumentReader interface {
	Read(ctx context.Context, name string) (json.RawMessage, error)
}
