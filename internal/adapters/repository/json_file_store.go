package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/ports"
)

var errNotArray = errors.New("document is not a JSON array")

// JSONFileStore keeps a collection as a pretty-printed JSON array in one file.
// Writes go to a temporary sibling that is renamed over the target, so a
// crash mid-save leaves the previous content in place.
type JSONFileStore[T any] struct {
	name string
	path string
	mu   sync.Mutex
}

// NewJSONFileStore creates a store for the named collection at path
func NewJSONFileStore[T any](name, path string) *JSONFileStore[T] {
	return &JSONFileStore[T]{name: name, path: path}
}

// NewCoachFileRepository creates a file-backed coach repository
func NewCoachFileRepository(path string) ports.CoachRepository {
	return NewJSONFileStore[entities.Coach]("coaches", path)
}

// NewPlayerFileRepository creates a file-backed player repository
func NewPlayerFileRepository(path string) ports.PlayerRepository {
	return NewJSONFileStore[entities.Player]("players", path)
}

func (s *JSONFileStore[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.load()
}

func (s *JSONFileStore[T]) Mutate(ctx context.Context, fn ports.MutateFunc[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	items, err := s.load()
	if err != nil {
		return err
	}

	updated, err := fn(items)
	if err != nil {
		return err
	}

	return s.save(updated)
}

func (s *JSONFileStore[T]) load() ([]T, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, entities.NewStorageError(s.name, "load", err)
	}

	items, err := decodeCollection[T](data)
	if err != nil {
		return nil, entities.NewStorageError(s.name, "load", err)
	}
	return items, nil
}

func (s *JSONFileStore[T]) save(items []T) error {
	data, err := encodeCollection(items)
	if err != nil {
		return entities.NewStorageError(s.name, "save", err)
	}

	if err := writeFileAtomic(s.path, data); err != nil {
		return entities.NewStorageError(s.name, "save", err)
	}
	return nil
}

// decodeCollection parses a JSON array. Anything else, including null, is
// rejected rather than read as an empty collection.
func decodeCollection[T any](data []byte) ([]T, error) {
	if !bytes.HasPrefix(bytes.TrimSpace(data), []byte("[")) {
		return nil, errNotArray
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func encodeCollection[T any](items []T) ([]byte, error) {
	if items == nil {
		items = []T{}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		tmp.Close()
		os.Remove(tmpName)
	}

	if _, err := tmp.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
