package repository

import (
	"context"
	"errors"
	"time"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/infrastructure/metrics"
	"github.com/courtside/nba-backend/internal/ports"
)

// Operation results
const (
	resultOK       = "ok"
	resultAborted  = "aborted"
	resultStorage  = "storage_error"
	resultCanceled = "canceled"
)

// InstrumentedStore decorates a collection store with logging and metrics.
// Metrics may be nil.
type InstrumentedStore[T any] struct {
	name    string
	next    ports.CollectionStore[T]
	logger  *logger.Logger
	metrics *metrics.Metrics
}

// Instrument wraps store so that each Load and Mutate is logged and counted
func Instrument[T any](name string, store ports.CollectionStore[T], log *logger.Logger, m *metrics.Metrics) *InstrumentedStore[T] {
	return &InstrumentedStore[T]{
		name:    name,
		next:    store,
		logger:  log.WithComponent("store"),
		metrics: m,
	}
}

func (s *InstrumentedStore[T]) Load(ctx context.Context) ([]T, error) {
	start := time.Now()
	items, err := s.next.Load(ctx)
	s.observe("load", start, err)
	return items, err
}

func (s *InstrumentedStore[T]) Mutate(ctx context.Context, fn ports.MutateFunc[T]) error {
	start := time.Now()
	err := s.next.Mutate(ctx, fn)
	s.observe("mutate", start, err)
	return err
}

func (s *InstrumentedStore[T]) observe(op string, start time.Time, err error) {
	elapsed := time.Since(start)
	result := classify(err)

	if s.metrics != nil {
		s.metrics.StoreOps.WithLabelValues(s.name, op, result).Inc()
		s.metrics.StoreDuration.WithLabelValues(s.name, op).Observe(elapsed.Seconds())
	}

	// Only storage failures are logged as errors.
	var logErr error
	if result == resultStorage {
		logErr = err
	}
	s.logger.LogStoreOperation(s.name, op, float64(elapsed.Microseconds())/1000, logErr)
}

func classify(err error) string {
	switch {
	case err == nil:
		return resultOK
	case errors.Is(err, entities.ErrStorage):
		return resultStorage
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return resultCanceled
	default:
		return resultAborted
	}
}
