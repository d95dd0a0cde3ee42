package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/infrastructure/database"
	"github.com/courtside/nba-backend/internal/ports"
)

// PostgresStore keeps a collection as one JSONB row of the collections table.
// Mutate holds a row lock for the whole read-modify-write, so concurrent
// writers in different processes are serialized by the database.
type PostgresStore[T any] struct {
	name string
	db   *database.DB
}

// NewPostgresStore creates a store for the named collection row
func NewPostgresStore[T any](name string, db *database.DB) *PostgresStore[T] {
	return &PostgresStore[T]{name: name, db: db}
}

// NewCoachPostgresRepository creates a postgres-backed coach repository
func NewCoachPostgresRepository(db *database.DB) ports.CoachRepository {
	return NewPostgresStore[entities.Coach]("coaches", db)
}

// NewPlayerPostgresRepository creates a postgres-backed player repository
func NewPlayerPostgresRepository(db *database.DB) ports.PlayerRepository {
	return NewPostgresStore[entities.Player]("players", db)
}

func (s *PostgresStore[T]) Load(ctx context.Context) ([]T, error) {
	var body []byte
	err := s.db.DB.GetContext(ctx, &body, `SELECT body FROM collections WHERE name = $1`, s.name)
	if err != nil {
		return nil, entities.NewStorageError(s.name, "load", missingRow(s.name, err))
	}

	items, err := decodeCollection[T](body)
	if err != nil {
		return nil, entities.NewStorageError(s.name, "load", err)
	}
	return items, nil
}

func (s *PostgresStore[T]) Mutate(ctx context.Context, fn ports.MutateFunc[T]) error {
	return s.db.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		var body []byte
		err := tx.GetContext(ctx, &body, `SELECT body FROM collections WHERE name = $1 FOR UPDATE`, s.name)
		if err != nil {
			return entities.NewStorageError(s.name, "load", missingRow(s.name, err))
		}

		items, err := decodeCollection[T](body)
		if err != nil {
			return entities.NewStorageError(s.name, "load", err)
		}

		updated, err := fn(items)
		if err != nil {
			return err
		}

		data, err := encodeCollection(updated)
		if err != nil {
			return entities.NewStorageError(s.name, "save", err)
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE collections SET body = $2, updated_at = NOW() WHERE name = $1`,
			s.name, string(data))
		if err != nil {
			return entities.NewStorageError(s.name, "save", err)
		}
		return nil
	})
}

func missingRow(name string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("collection %q does not exist", name)
	}
	return err
}
