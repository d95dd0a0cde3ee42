package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-backend/internal/domain/entities"
)

func TestFileDocumentReader(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "stadiums.json"), `[{"id":1,"name":"Crypto.com Arena"}]`)
	writeFile(t, filepath.Join(dir, "broken.json"), `[{"id":1`)

	reader := NewFileDocumentReader(map[string]string{
		"stadiums": filepath.Join(dir, "stadiums.json"),
		"broken":   filepath.Join(dir, "broken.json"),
		"missing":  filepath.Join(dir, "missing.json"),
	})
	ctx := context.Background()

	t.Run("valid document", func(t *testing.T) {
		doc, err := reader.Read(ctx, "stadiums")
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1,"name":"Crypto.com Arena"}]`, string(doc))
	})

	for _, name := range []string{"broken", "missing", "unregistered"} {
		t.Run(name, func(t *testing.T) {
			_, err := reader.Read(ctx, name)
			assert.ErrorIs(t, err, entities.ErrStorage)
		})
	}
}
