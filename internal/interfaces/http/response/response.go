package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "intern-hub.backend/internal/domain/errors"
	"intern-hub.backend/pkg/logger"
)

// Envelope is the JSON shape of every API response. Errors carries
// per-field validation messages and is omitted otherwise.
type Envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Data    interface{}       `json:"data"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// Success sends a success envelope
func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail sends a failure envelope. Data may carry a status tag the UI
// switches on, e.g. {"status": "PENDING_APPROVAL"}.
func Fail(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Envelope{
		Success: false,
		Message: message,
		Data:    data,
	})
}

// Error maps an error onto the envelope. Validation errors keep their
// field map; unknown errors become an opaque 500.
func Error(c *gin.Context, err error) {
	if ve, ok := domainerrors.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, Envelope{
			Success: false,
			Message: "Validation error",
			Errors:  ve.Fields,
		})
		return
	}

	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		Fail(c, appErr.Status, appErr.Message, nil)
		return
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		Fail(c, http.StatusNotFound, "Resource not found", nil)
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		Fail(c, http.StatusConflict, "Resource already exists", nil)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		Fail(c, http.StatusUnauthorized, "Unauthorized", nil)
	case errors.Is(err, domainerrors.ErrForbidden):
		Fail(c, http.StatusForbidden, "Forbidden", nil)
	case errors.Is(err, domainerrors.ErrBadRequest), errors.Is(err, domainerrors.ErrInvalidInput):
		Fail(c, http.StatusBadRequest, "Bad request", nil)
	default:
		logger.Error(c.Request.Context(), "unhandled error", zap.Error(err))
		Fail(c, http.StatusInternalServerError, "Internal server error", nil)
	}
}
