package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/ports"
)

type coachStoreFactory func(t *testing.T, seed []entities.Coach) ports.CoachRepository

func strPtr(s string) *string { return &s }

func seedCoaches() []entities.Coach {
	age := 61.0
	return []entities.Coach{
		{ID: 1, Name: "Erik Spoelstra", Age: &age, Team: strPtr("Heat"), History: []interface{}{"Heat assistant"}},
		{ID: 2, Name: "Steve Kerr", Team: strPtr("Warriors"), History: []interface{}{}, Extra: entities.Extra{"titles": float64(4)}},
	}
}

// runCoachStoreContract checks the behavior every coach store must share
func runCoachStoreContract(t *testing.T, newStore coachStoreFactory) {
	ctx := context.Background()

	t.Run("load returns seeded collection in order", func(t *testing.T) {
		store := newStore(t, seedCoaches())

		coaches, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, seedCoaches(), coaches)
	})

	t.Run("empty collection loads as empty", func(t *testing.T) {
		store := newStore(t, nil)

		coaches, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, coaches)
	})

	t.Run("mutate persists the returned collection", func(t *testing.T) {
		store := newStore(t, seedCoaches())

		err := store.Mutate(ctx, func(coaches []entities.Coach) ([]entities.Coach, error) {
			coaches[0].Team = nil
			return append(coaches, entities.Coach{ID: 3, Name: "Joe Mazzulla"}), nil
		})
		require.NoError(t, err)

		coaches, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, coaches, 3)
		assert.Nil(t, coaches[0].Team)
		assert.Equal(t, "Joe Mazzulla", coaches[2].Name)
		assert.Equal(t, float64(4), coaches[1].Extra["titles"])
	})

	t.Run("mutate error leaves collection untouched", func(t *testing.T) {
		store := newStore(t, seedCoaches())
		abort := errors.New("abort")

		err := store.Mutate(ctx, func(coaches []entities.Coach) ([]entities.Coach, error) {
			return nil, abort
		})
		assert.ErrorIs(t, err, abort)

		coaches, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, seedCoaches(), coaches)
	})

	t.Run("mutate to empty writes an empty array", func(t *testing.T) {
		store := newStore(t, seedCoaches())

		err := store.Mutate(ctx, func([]entities.Coach) ([]entities.Coach, error) {
			return nil, nil
		})
		require.NoError(t, err)

		coaches, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, coaches)
	})

	t.Run("concurrent mutations are not lost", func(t *testing.T) {
		store := newStore(t, nil)
		const writers = 20

		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := store.Mutate(ctx, func(coaches []entities.Coach) ([]entities.Coach, error) {
					return append(coaches, entities.Coach{ID: len(coaches) + 1, Name: "coach"}), nil
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		coaches, err := store.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, coaches, writers)
	})
}
