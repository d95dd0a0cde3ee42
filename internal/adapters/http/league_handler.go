package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/ports"
)

// LeagueHandler serves the league datasets and player endpoints
type LeagueHandler struct {
	leagueService ports.LeagueService
	logger        *logger.Logger
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(leagueService ports.LeagueService, logger *logger.Logger) *LeagueHandler {
	return &LeagueHandler{
		leagueService: leagueService,
		logger:        logger,
	}
}

// GetNBAResults godoc
// @Summary NBA game results
// @Tags league
// @Produce json
// @Success 200 {object} ResultResponse
// @Failure 500 {object} ErrorResponse
// @Router /nba-results [get]
func (h *LeagueHandler) GetNBAResults(c echo.Context) error {
	games, err := h.leagueService.GetNBAResults(c.Request().Context())
	if err != nil {
		return errorFor(err, "", "Failed to load NBA data")
	}

	return c.JSON(http.StatusOK, ResultResponse{Result: games})
}

// GetStadiums godoc
// @Summary NBA stadiums
// @Tags league
// @Produce json
// @Success 200 {array} object
// @Failure 500 {object} ErrorResponse
// @Router /stadiums [get]
func (h *LeagueHandler) GetStadiums(c echo.Context) error {
	stadiums, err := h.leagueService.GetStadiums(c.Request().Context())
	if err != nil {
		return errorFor(err, "", "Failed to load stadiums data")
	}

	return c.JSONBlob(http.StatusOK, stadiums)
}

// GetPlayerInfo godoc
// @Summary Player listing
// @Description Player profiles with per-game averages
// @Tags league
// @Produce json
// @Success 200 {array} entities.PlayerSummary
// @Failure 404 {object} ErrorResponse
// @Router /player-info [get]
func (h *LeagueHandler) GetPlayerInfo(c echo.Context) error {
	players, err := h.leagueService.ListPlayerInfo(c.Request().Context())
	if err != nil {
		return errorFor(err, "No player data available", "Failed to load player data")
	}

	return c.JSON(http.StatusOK, players)
}

// CreatePlayer godoc
// @Summary Create a new player
// @Tags league
// @Accept json
// @Produce json
// @Param request body ports.CreatePlayerRequest true "Player data"
// @Success 201 {object} entities.Player
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /players [post]
func (h *LeagueHandler) CreatePlayer(c echo.Context) error {
	var req ports.CreatePlayerRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return errorFor(err, "", "Failed to create player")
	}

	player, err := h.leagueService.CreatePlayer(c.Request().Context(), req)
	if err != nil {
		h.logger.Warnw("Create player failed", "error", err)
		return errorFor(err, "", "Failed to create player")
	}

	return c.JSON(http.StatusCreated, player)
}
