package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/courtside/nba-backend/internal/domain/entities"
	"github.com/courtside/nba-backend/internal/infrastructure/logger"
)

// Request/Response types

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error string `json:"error"`
}

// ResultResponse wraps a result value
type ResultResponse struct {
	Result interface{} `json:"result"`
}

// HealthResponse reports service liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// Handlers groups the endpoint handlers mounted under /api
type Handlers struct {
	Coach  *CoachHandler
	League *LeagueHandler
	Demo   *DemoHandler
}

// Register mounts every route on the given group
func (h *Handlers) Register(api *echo.Group) {
	coaches := api.Group("/coaches")
	coaches.GET("", h.Coach.ListCoaches)
	coaches.POST("", h.Coach.CreateCoach)
	coaches.GET("/:id", h.Coach.GetCoach)
	coaches.PUT("/:id", h.Coach.UpdateCoach)
	coaches.DELETE("/:id", h.Coach.DeleteCoach)

	api.GET("/nba-results", h.League.GetNBAResults)
	api.GET("/stadiums", h.League.GetStadiums)
	api.GET("/player-info", h.League.GetPlayerInfo)
	api.POST("/players", h.League.CreatePlayer)

	api.GET("/optimize", h.Demo.Optimize)
	api.POST("/summarize", h.Demo.Summarize)
	api.GET("/press-conferences", h.Demo.ListPressConferences)
	api.GET("/health", h.Demo.Health)
}

// CustomValidator wraps the validator
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates the request validator used by echo
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate validates structs
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return entities.NewValidationError("%s", validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

// NewErrorHandler renders every error as an ErrorResponse
func NewErrorHandler(log *logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code = http.StatusInternalServerError
			msg  string
		)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			msg = fmt.Sprint(he.Message)
			if he.Internal != nil {
				err = fmt.Errorf("%v, %v", err, he.Internal)
			}
		}

		if msg == "" || msg == http.StatusText(code) {
			switch code {
			case http.StatusNotFound:
				msg = "Resource not found"
			case http.StatusInternalServerError:
				msg = "Internal server error"
			default:
				msg = http.StatusText(code)
			}
		}

		if code >= http.StatusInternalServerError {
			log.WithRequestID(c.Response().Header().Get(echo.HeaderXRequestID)).
				WithError(err).
				Errorw("Internal server error", "path", c.Request().URL.Path)
		}

		var sendErr error
		if c.Request().Method == http.MethodHead {
			sendErr = c.NoContent(code)
		} else {
			sendErr = c.JSON(code, ErrorResponse{Error: msg})
		}
		if sendErr != nil {
			log.Errorw("Error sending response", "error", sendErr)
		}
	}
}

// errorFor maps a service error to an HTTP error. storageMsg is the message
// sent for storage and unexpected failures.
func errorFor(err error, notFoundMsg, storageMsg string) *echo.HTTPError {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return echo.NewHTTPError(http.StatusBadRequest, verr.Message).SetInternal(err)
	case errors.Is(err, entities.ErrCoachNotFound), errors.Is(err, entities.ErrPlayerNotFound):
		return echo.NewHTTPError(http.StatusNotFound, notFoundMsg).SetInternal(err)
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, storageMsg).SetInternal(err)
	}
}

// parseID reads a positive integer path parameter. Anything else cannot name
// a record and is reported as not found.
func parseID(c echo.Context, notFoundMsg string) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusNotFound, notFoundMsg)
	}
	return id, nil
}

// bindJSON decodes the request body, reporting malformed input as a 400
func bindJSON(c echo.Context, dst interface{}) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format").SetInternal(err)
	}
	return nil
}
