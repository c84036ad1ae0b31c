package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/inkwellhq/inkwell/pkg/logging"
)

// Error represents an API error with its HTTP status
type Error struct {
	Status  int
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Status, e.Message)
}

// NewValidationError creates a 400 error for missing or malformed input
func NewValidationError(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NewAuthError creates a 401 error for missing or invalid credentials
func NewAuthError(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NewForbiddenError creates a 403 error for callers lacking the capability
func NewForbiddenError(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NewNotFoundError creates a 404 error
func NewNotFoundError(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// NewConflictError creates a 409 error for uniqueness violations
func NewConflictError(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// NewServerError creates a 500 error
func NewServerError(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message}
}

// FromDatabase maps a database failure to an API error. Unique violations
// become conflicts so that callers can tell a duplicate from an outage.
func FromDatabase(err error, message string) *Error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewConflictError(message + ": already exists")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NewNotFoundError(message + ": not found")
	default:
		return NewServerError(message)
	}
}

// respondError writes the error as JSON and logs server-side failures
func respondError(c *gin.Context, apiErr *Error, cause error) {
	if apiErr.Status >= http.StatusInternalServerError && cause != nil {
		logging.WithComponent("api").Error(apiErr.Message,
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(cause),
		)
	}
	c.AbortWithStatusJSON(apiErr.Status, gin.H{"error": apiErr.Message})
}
