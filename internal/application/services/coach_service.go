package services

import (
	"context"
	"fmt"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/ports"
)

// CoachService handles coach-related operations
type CoachService struct {
	coachRepo ports.CoachRepository
	logger    *logger.Logger
}

var _ ports.CoachService = (*CoachService)(nil)

// NewCoachService creates a new coach service
func NewCoachService(coachRepo ports.CoachRepository, logger *logger.Logger) *CoachService {
	return &CoachService{
		coachRepo: coachRepo,
		logger:    logger.WithComponent("coach_service"),
	}
}

// ListCoaches returns the full collection in stored order
func (s *CoachService) ListCoaches(ctx context.Context) ([]entities.Coach, error) {
	coaches, err := s.coachRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	if coaches == nil {
		coaches = []entities.Coach{}
	}
	return coaches, nil
}

// GetCoach retrieves a coach by ID
func (s *CoachService) GetCoach(ctx context.Context, id int) (*entities.Coach, error) {
	coaches, err := s.coachRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("get coach: %w", err)
	}

	i := indexByID(coaches, id)
	if i < 0 {
		return nil, entities.ErrCoachNotFound
	}
	return &coaches[i], nil
}

// CreateCoach appends a new coach with a server-assigned ID
func (s *CoachService) CreateCoach(ctx context.Context, req ports.CreateCoachRequest) (*entities.Coach, error) {
	if req.Name == nil {
		return nil, entities.NewValidationError("Name is required")
	}

	history := req.History
	if history == nil {
		history = []interface{}{}
	}

	var created entities.Coach
	err := s.coachRepo.Mutate(ctx, func(coaches []entities.Coach) ([]entities.Coach, error) {
		created = entities.Coach{
			ID:      nextID(coaches),
			Name:    *req.Name,
			Age:     req.Age,
			Team:    req.Team,
			History: history,
		}
		return append(coaches, created), nil
	})
	if err != nil {
		return nil, fmt.Errorf("create coach: %w", err)
	}

	s.logger.Infow("Coach created", "coach_id", created.ID, "name", created.Name)

	return &created, nil
}

// UpdateCoach overwrites the fields present in req and leaves the rest unchanged
func (s *CoachService) UpdateCoach(ctx context.Context, id int, req ports.UpdateCoachRequest) (*entities.Coach, error) {
	var updated entities.Coach
	err := s.coachRepo.Mutate(ctx, func(coaches []entities.Coach) ([]entities.Coach, error) {
		i := indexByID(coaches, id)
		if i < 0 {
			return nil, entities.ErrCoachNotFound
		}

		if req.IsEmpty() {
			return nil, entities.NewValidationError("Invalid data")
		}

		coach := &coaches[i]
		if req.Name.Set {
			if req.Name.Value == nil {
				return nil, entities.NewValidationError("Name cannot be null")
			}
			coach.Name = *req.Name.Value
		}
		if req.Age.Set {
			coach.Age = req.Age.Value
			coach.Extra.Drop("age")
		}
		if req.Team.Set {
			coach.Team = req.Team.Value
			coach.Extra.Drop("team")
		}
		if req.History.Set {
			coach.History = nil
			coach.Extra.Drop("history")
			if req.History.Value != nil {
				coach.History = *req.History.Value
			}
		}

		updated = *coach
		return coaches, nil
	})
	if err != nil {
		return nil, fmt.Errorf("update coach %d: %w", id, err)
	}

	s.logger.Infow("Coach updated", "coach_id", updated.ID, "name", updated.Name)

	return &updated, nil
}

// DeleteCoach removes the coach with the given ID
func (s *CoachService) DeleteCoach(ctx context.Context, id int) error {
	err := s.coachRepo.Mutate(ctx, func(coaches []entities.Coach) ([]entities.Coach, error) {
		i := indexByID(coaches, id)
		if i < 0 {
			return nil, entities.ErrCoachNotFound
		}
		return append(coaches[:i], coaches[i+1:]...), nil
	})
	if err != nil {
		return fmt.Errorf("delete coach %d: %w", id, err)
	}

	s.logger.Infow("Coach deleted", "coach_id", id)

	return nil
}
