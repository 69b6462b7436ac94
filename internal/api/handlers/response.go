package handlers

import (
	"errors"
	"net/http"
	"time"

	apperrors "team-management-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the standard body for domain failures
type ErrorResponse struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidationErrorResponse is the body for input-validation failures,
// carrying a field-to-message map
type ValidationErrorResponse struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Errors    map[string]string `json:"errors"`
	Timestamp time.Time         `json:"timestamp"`
}

// respondError translates the typed service errors into the public error
// shape. Services never catch their own errors; this is the one boundary
// where the taxonomy turns into HTTP.
func respondError(c *gin.Context, err error) {
	var validationErr *apperrors.ValidationErrors
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Status:    http.StatusBadRequest,
			Message:   "Validation failed",
			Errors:    validationErr.Fields,
			Timestamp: time.Now(),
		})
		return
	}

	status := http.StatusInternalServerError
	message := err.Error()
	switch {
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		status = http.StatusConflict
	case apperrors.IsInvalidOperation(err):
		status = http.StatusBadRequest
	default:
		message = "An unexpected error occurred: " + err.Error()
	}

	c.JSON(status, ErrorResponse{
		Status:    status,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// respondBindError reports a request body that never made it past decoding
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ValidationErrorResponse{
		Status:    http.StatusBadRequest,
		Message:   "Validation failed",
		Errors:    map[string]string{"request": err.Error()},
		Timestamp: time.Now(),
	})
}

// respondInvalidID reports an unparseable UUID path parameter
func respondInvalidID(c *gin.Context, param string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Status:    http.StatusBadRequest,
		Message:   "invalid " + param,
		Timestamp: time.Now(),
	})
}
