package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/ports"
)

func TestDemoServiceOptimize(t *testing.T) {
	svc := NewDemoService(logger.NewNop())

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0
	svc.now = func() time.Time {
		calls++
		if calls == 1 {
			return base
		}
		return base.Add(1234 * time.Millisecond)
	}

	resp, err := svc.Optimize(context.Background())
	require.NoError(t, err)
	assert.Equal(t, optimizePrompt, resp.Prompt)
	assert.Equal(t, len(optimizePrompt)/4, resp.TokenCount)
	assert.Equal(t, "1.23", resp.ExecutionTime)
}

func TestDemoServicePlaceholders(t *testing.T) {
	svc := NewDemoService(logger.NewNop())
	ctx := context.Background()

	summary, err := svc.Summarize(ctx, ports.SummarizeRequest{Transcription: "coach says hi"})
	require.NoError(t, err)
	assert.Empty(t, summary)
	assert.NotNil(t, summary)

	conferences, err := svc.ListPressConferences(ctx)
	require.NoError(t, err)
	assert.NotNil(t, conferences)
	assert.Empty(t, conferences)
}

func TestWorkloadHelpers(t *testing.T) {
	assert.Equal(t, 0, fibonacci(0))
	assert.Equal(t, 1, fibonacci(1))
	assert.Equal(t, 14930352, fibonacci(36))

	assert.Equal(t, "120", factorial(5).String())
	assert.Len(t, factorial(500).String(), 1135)
}

func TestNextID(t *testing.T) {
	assert.Equal(t, 1, nextID[idRecord](nil))
	assert.Equal(t, 3, nextID([]idRecord{1, 2}))
	assert.Equal(t, 6, nextID([]idRecord{5, 2}))
	assert.Equal(t, 1, indexByID([]idRecord{5, 2}, 2))
	assert.Equal(t, -1, indexByID([]idRecord{5, 2}, 9))
}

type idRecord int

func (r idRecord) GetID() int { return int(r) }
