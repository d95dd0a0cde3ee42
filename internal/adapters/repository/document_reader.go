package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"

	"github.com/courtside/nba-backend/internal/domain/entities"
)

var errInvalidJSON = errors.New("document is not valid JSON")

// FileDocumentReader serves read-only JSON datasets from a directory
type FileDocumentReader struct {
	paths map[string]string
}

// NewFileDocumentReader maps dataset names to files
func NewFileDocumentReader(paths map[string]string) *FileDocumentReader {
	copied := make(map[string]string, len(paths))
	for name, path := range paths {
		copied[name] = path
	}
	return &FileDocumentReader{paths: copied}
}

// Read returns the raw document; a missing or malformed file is a storage error
func (r *FileDocumentReader) Read(ctx context.Context, name string) (json.RawMessage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, ok := r.paths[name]
	if !ok {
		return nil, entities.NewStorageError(name, "read", os.ErrNotExist)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, entities.NewStorageError(name, "read", err)
	}
	if !json.Valid(data) {
		return nil, entities.NewStorageError(name, "read", errInvalidJSON)
	}
	return json.RawMessage(data), nil
}
