package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/ports"
)

const msgCoachNotFound = "Coach not found"

// CoachHandler handles coach-related requests
type CoachHandler struct {
	coachService ports.CoachService
	logger       *logger.Logger
}

// NewCoachHandler creates a new coach handler
func NewCoachHandler(coachService ports.CoachService, logger *logger.Logger) *CoachHandler {
	return &CoachHandler{
		coachService: coachService,
		logger:       logger,
	}
}

// ListCoaches godoc
// @Summary List coaches
// @Description Get every coach in stored order
// @Tags coaches
// @Produce json
// @Success 200 {array} entities.Coach
// @Failure 500 {object} ErrorResponse
// @Router /coaches [get]
func (h *CoachHandler) ListCoaches(c echo.Context) error {
	coaches, err := h.coachService.ListCoaches(c.Request().Context())
	if err != nil {
		return errorFor(err, msgCoachNotFound, "Failed to load coaches data")
	}

	return c.JSON(http.StatusOK, coaches)
}

// GetCoach godoc
// @Summary Get coach by ID
// @Tags coaches
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} entities.Coach
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /coaches/{id} [get]
func (h *CoachHandler) GetCoach(c echo.Context) error {
	id, err := parseID(c, msgCoachNotFound)
	if err != nil {
		return err
	}

	coach, err := h.coachService.GetCoach(c.Request().Context(), id)
	if err != nil {
		return errorFor(err, msgCoachNotFound, "Failed to load coaches data")
	}

	return c.JSON(http.StatusOK, coach)
}

// CreateCoach godoc
// @Summary Create a new coach
// @Description Append a coach; the ID is assigned by the server
// @Tags coaches
// @Accept json
// @Produce json
// @Param request body ports.CreateCoachRequest true "Coach data"
// @Success 201 {object} entities.Coach
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /coaches [post]
func (h *CoachHandler) CreateCoach(c echo.Context) error {
	var req ports.CreateCoachRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	if err := c.Validate(&req); err != nil {
		return errorFor(err, msgCoachNotFound, "Failed to create coach")
	}

	coach, err := h.coachService.CreateCoach(c.Request().Context(), req)
	if err != nil {
		h.logger.Warnw("Create coach failed", "error", err)
		return errorFor(err, msgCoachNotFound, "Failed to create coach")
	}

	return c.JSON(http.StatusCreated, coach)
}

// UpdateCoach godoc
// @Summary Update a coach
// @Description Overwrite the supplied fields; omitted fields keep their values
// @Tags coaches
// @Accept json
// @Produce json
// @Param id path int true "Coach ID"
// @Param request body ports.UpdateCoachRequest true "Fields to change"
// @Success 200 {object} entities.Coach
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /coaches/{id} [put]
func (h *CoachHandler) UpdateCoach(c echo.Context) error {
	id, err := parseID(c, msgCoachNotFound)
	if err != nil {
		return err
	}

	var req ports.UpdateCoachRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	coach, err := h.coachService.UpdateCoach(c.Request().Context(), id, req)
	if err != nil {
		h.logger.Warnw("Update coach failed", "error", err, "coach_id", id)
		return errorFor(err, msgCoachNotFound, "Failed to update coach")
	}

	return c.JSON(http.StatusOK, coach)
}

// DeleteCoach godoc
// @Summary Delete a coach
// @Tags coaches
// @Produce json
// @Param id path int true "Coach ID"
// @Success 200 {object} ResultResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /coaches/{id} [delete]
func (h *CoachHandler) DeleteCoach(c echo.Context) error {
	id, err := parseID(c, msgCoachNotFound)
	if err != nil {
		return err
	}

	if err := h.coachService.DeleteCoach(c.Request().Context(), id); err != nil {
		h.logger.Warnw("Delete coach failed", "error", err, "coach_id", id)
		return errorFor(err, msgCoachNotFound, "Failed to delete coach")
	}

	return c.JSON(http.StatusOK, ResultResponse{Result: true})
}
