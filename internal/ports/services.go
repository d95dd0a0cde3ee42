package ports

import (
	"context"
	"encoding/json"

	"github.com/courtside/nba-backend/internal/domain/entities"
)

// CoachService interface for coach management operations
type CoachService interface {
	ListCoaches(ctx context.Context) ([]entities.Coach, error)
	GetCoach(ctx context.Context, id int) (*entities.Coach, error)
	CreateCoach(ctx context.Context, req CreateCoachRequest) (*entities.Coach, error)
	UpdateCoach(ctx context.Context, id int, req UpdateCoachRequest) (*entities.Coach, error)
	DeleteCoach(ctx context.Context, id int) error
}

// LeagueService interface for the league datasets
type LeagueService interface {
	GetNBAResults(ctx context.Context) (json.RawMessage, error)
	GetStadiums(ctx context.Context) (json.RawMessage, error)
	ListPlayerInfo(ctx context.Context) ([]entities.PlayerSummary, error)
	CreatePlayer(ctx context.Context, req CreatePlayerRequest) (*entities.Player, error)
}

// DemoService interface for the demonstration endpoints
type DemoService interface {
	Optimize(ctx context.Context) (*OptimizeResponse, error)
	Summarize(ctx context.Context, req SummarizeRequest) (map[string]interface{}, error)
	ListPressConferences(ctx context.Context) ([]interface{}, error)
}

// Request/Response types

// CreateCoachRequest carries the client-supplied fields of a new coach
type CreateCoachRequest struct {
	Name    *string       `json:"name" validate:"required"`
	Age     *float64      `json:"age"`
	Team    *string       `json:"team"`
	History []interface{} `json:"history"`
}

// UpdateCoachRequest carries the fields to overwrite. Absent fields are left
// unchanged; a present null clears the stored value.
type UpdateCoachRequest struct {
	Name    Optional[string]        `json:"name"`
	Age     Optional[float64]       `json:"age"`
	Team    Optional[string]        `json:"team"`
	History Optional[[]interface{}] `json:"history"`
}

// IsEmpty reports whether no field was supplied
func (r UpdateCoachRequest) IsEmpty() bool {
	return !r.Name.Set && !r.Age.Set && !r.Team.Set && !r.History.Set
}

// CreatePlayerRequest carries the client-supplied fields of a new player
type CreatePlayerRequest struct {
	Name      *string                `json:"name" validate:"required"`
	Position  *string                `json:"position"`
	Team      *string                `json:"team"`
	Height    *string                `json:"height"`
	Weight    *string                `json:"weight"`
	BirthDate *string                `json:"birthDate"`
	Stats     map[string]interface{} `json:"stats"`
}

// SummarizeRequest is the body of the summarize endpoint
type SummarizeRequest struct {
	Transcription string `json:"transcription"`
}

// OptimizeResponse reports the timing of the optimize demonstration
type OptimizeResponse struct {
	Prompt        string `json:"prompt"`
	TokenCount    int    `json:"tokenCount"`
	ExecutionTime string `json:"executionTime"`
}
