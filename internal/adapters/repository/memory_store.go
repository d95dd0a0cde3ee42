package repository

import (
	"context"
	"sync"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/ports"
)

// MemoryStore holds the encoded collection in memory. Items are encoded on
// save and decoded on load, which gives callers the same copy semantics and
// failure modes as the file store.
type MemoryStore[T any] struct {
	name string
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an in-memory store seeded with items
func NewMemoryStore[T any](name string, items ...T) *MemoryStore[T] {
	data, err := encodeCollection(items)
	if err != nil {
		panic(err)
	}
	return &MemoryStore[T]{name: name, data: data}
}

// NewMemoryStoreFromBytes creates an in-memory store over a raw document,
// which need not be valid
func NewMemoryStoreFromBytes[T any](name string, data []byte) *MemoryStore[T] {
	return &MemoryStore[T]{name: name, data: append([]byte(nil), data...)}
}

// NewCoachMemoryRepository creates an in-memory coach repository
func NewCoachMemoryRepository(coaches ...entities.Coach) ports.CoachRepository {
	return NewMemoryStore("coaches", coaches...)
}

// NewPlayerMemoryRepository creates an in-memory player repository
func NewPlayerMemoryRepository(players ...entities.Player) ports.PlayerRepository {
	return NewMemoryStore("players", players...)
}

func (m *MemoryStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	data := m.data
	m.mu.Unlock()

	items, err := decodeCollection[T](data)
	if err != nil {
		return nil, entities.NewStorageError(m.name, "load", err)
	}
	return items, nil
}

func (m *MemoryStore[T]) Mutate(ctx context.Context, fn ports.MutateFunc[T]) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	items, err := decodeCollection[T](m.data)
	if err != nil {
		return entities.NewStorageError(m.name, "load", err)
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	data, err := encodeCollection(updated)
	if err != nil {
		return entities.NewStorageError(m.name, "save", err)
	}
	m.data = data
	return nil
}

// Bytes returns the current encoded document
func (m *MemoryStore[T]) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}
