package repository

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/infrastructure/database"
	"github.com/courtside/nba-backend/internal/ports"
)

// The postgres store needs a live database with the collections table
// migrated; set COURTSIDE_TEST_DSN to run it.
func TestPostgresStoreContract(t *testing.T) {
	dsn := os.Getenv("COURTSIDE_TEST_DSN")
	if dsn == "" {
		t.Skip("COURTSIDE_TEST_DSN not set")
	}

	conn, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	db := &database.DB{DB: conn}

	runCoachStoreContract(t, func(t *testing.T, seed []entities.Coach) ports.CoachRepository {
		name := "coaches_test_" + sanitize(t.Name())
		data, err := encodeCollection(seed)
		require.NoError(t, err)

		_, err = conn.ExecContext(context.Background(),
			`INSERT INTO collections (name, body) VALUES ($1, $2)
			 ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body`, name, string(data))
		require.NoError(t, err)
		t.Cleanup(func() {
			conn.ExecContext(context.Background(), `DELETE FROM collections WHERE name = $1`, name)
		})

		return NewPostgresStore[entities.Coach](name, db)
	})
}

func TestPostgresStoreMissingRow(t *testing.T) {
	dsn := os.Getenv("COURTSIDE_TEST_DSN")
	if dsn == "" {
		t.Skip("COURTSIDE_TEST_DSN not set")
	}

	conn, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	store := NewPostgresStore[entities.Coach]("does_not_exist", &database.DB{DB: conn})
	_, err = store.Load(context.Background())
	require.ErrorIs(t, err, entities.ErrStorage)
}

func sanitize(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	return string(out)
}
