package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/ports"
)

func TestMemoryStoreContract(t *testing.T) {
	runCoachStoreContract(t, func(t *testing.T, seed []entities.Coach) ports.CoachRepository {
		return NewCoachMemoryRepository(seed...)
	})
}

func TestMemoryStoreMalformed(t *testing.T) {
	store := NewMemoryStoreFromBytes[entities.Coach]("coaches", []byte(`[{`))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, entities.ErrStorage)
	assert.Equal(t, `[{`, string(store.Bytes()))
}
