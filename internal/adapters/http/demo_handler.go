package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtside/nba-backend/internal/infrastructure/logger"
	"github.com/courtside/nba-backend/internal/ports"
)

// DemoHandler serves the demonstration and placeholder endpoints
type DemoHandler struct {
	demoService ports.DemoService
	logger      *logger.Logger
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(demoService ports.DemoService, logger *logger.Logger) *DemoHandler {
	return &DemoHandler{
		demoService: demoService,
		logger:      logger,
	}
}

// Optimize godoc
// @Summary Timed token-count demonstration
// @Tags demo
// @Produce json
// @Success 200 {object} ports.OptimizeResponse
// @Router /optimize [get]
func (h *DemoHandler) Optimize(c echo.Context) error {
	resp, err := h.demoService.Optimize(c.Request().Context())
	if err != nil {
		return errorFor(err, "", "Internal server error")
	}

	return c.JSON(http.StatusOK, resp)
}

// Summarize godoc
// @Summary Summarize a transcription (placeholder)
// @Tags demo
// @Accept json
// @Produce json
// @Param request body ports.SummarizeRequest true "Transcription"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Router /summarize [post]
func (h *DemoHandler) Summarize(c echo.Context) error {
	var req ports.SummarizeRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	summary, err := h.demoService.Summarize(c.Request().Context(), req)
	if err != nil {
		return errorFor(err, "", "Internal server error")
	}

	return c.JSON(http.StatusOK, summary)
}

// ListPressConferences godoc
// @Summary Press conferences (placeholder)
// @Tags demo
// @Produce json
// @Success 200 {array} object
// @Router /press-conferences [get]
func (h *DemoHandler) ListPressConferences(c echo.Context) error {
	conferences, err := h.demoService.ListPressConferences(c.Request().Context())
	if err != nil {
		return errorFor(err, "", "Internal server error")
	}

	return c.JSON(http.StatusOK, conferences)
}

// Health godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *DemoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Service: "NBA Backend API"})
}
