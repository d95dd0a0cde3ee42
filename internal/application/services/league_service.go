package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/ports"
)

// Dataset names served by the document reader
const (
	DatasetNBAGames = "nba-games"
	DatasetStadiums = "stadiums"
)

// LeagueService serves the league datasets and the player collection
type LeagueService struct {
	documents  ports.DocumentReader
	playerRepo ports.PlayerRepository
	logger     *logger.Logger
}

var _ ports.LeagueService = (*LeagueService)(nil)

// NewLeagueService creates a new league service
func NewLeagueService(documents ports.DocumentReader, playerRepo ports.PlayerRepository, logger *logger.Logger) *LeagueService {
	return &LeagueService{
		documents:  documents,
		playerRepo: playerRepo,
		logger:     logger.WithComponent("league_service"),
	}
}

// GetNBAResults returns the game results document
func (s *LeagueService) GetNBAResults(ctx context.Context) (json.RawMessage, error) {
	doc, err := s.documents.Read(ctx, DatasetNBAGames)
	if err != nil {
		return nil, fmt.Errorf("get nba results: %w", err)
	}
	return doc, nil
}

// GetStadiums returns the stadiums document
func (s *LeagueService) GetStadiums(ctx context.Context) (json.RawMessage, error) {
	doc, err := s.documents.Read(ctx, DatasetStadiums)
	if err != nil {
		return nil, fmt.Errorf("get stadiums: %w", err)
	}
	return doc, nil
}

// ListPlayerInfo returns the listing projection of every player. An
// unreadable or empty collection is reported as ErrPlayerNotFound.
func (s *LeagueService) ListPlayerInfo(ctx context.Context) ([]entities.PlayerSummary, error) {
	players, err := s.playerRepo.Load(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrStorage) {
			s.logger.Warnw("Player data unavailable", "error", err)
			return nil, fmt.Errorf("list players: %w", entities.ErrPlayerNotFound)
		}
		return nil, fmt.Errorf("list players: %w", err)
	}
	if len(players) == 0 {
		return nil, fmt.Errorf("list players: %w", entities.ErrPlayerNotFound)
	}

	summaries := make([]entities.PlayerSummary, 0, len(players))
	for _, p := range players {
		summaries = append(summaries, p.Summary())
	}
	return summaries, nil
}

// CreatePlayer appends a new player with a server-assigned ID
func (s *LeagueService) CreatePlayer(ctx context.Context, req ports.CreatePlayerRequest) (*entities.Player, error) {
	if req.Name == nil {
		return nil, entities.NewValidationError("Name is required")
	}

	stats := req.Stats
	if stats == nil {
		stats = entities.DefaultPlayerStats()
	}

	var created entities.Player
	err := s.playerRepo.Mutate(ctx, func(players []entities.Player) ([]entities.Player, error) {
		created = entities.Player{
			ID:        nextID(players),
			Name:      *req.Name,
			Position:  req.Position,
			Team:      req.Team,
			Height:    orNotAvailable(req.Height),
			Weight:    orNotAvailable(req.Weight),
			BirthDate: orNotAvailable(req.BirthDate),
			Stats:     stats,
		}
		return append(players, created), nil
	})
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}

	s.logger.Infow("Player created", "player_id", created.ID, "name", created.Name)

	return &created, nil
}

func orNotAvailable(v *string) string {
	if v == nil {
		return entities.NotAvailable
	}
	return *v
}
