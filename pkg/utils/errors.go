package utils

import (
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// APIError is an error that knows which HTTP status and client message it maps to.
type APIError struct {
	Status  int
	Message string
	Detail  interface{}
	cause   error
}

func (e *APIError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *APIError) Unwrap() error { return e.cause }

func NewValidationError(message string, detail interface{}) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: message, Detail: detail}
}

func NewUnauthorizedError(message string) *APIError {
	return &APIError{Status: http.StatusUnauthorized, Message: message}
}

func NewNotFoundError(message string) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: message}
}

// NewInternalError wraps cause; its text only reaches clients outside production.
func NewInternalError(message string, cause error) *APIError {
	return &APIError{Status: http.StatusInternalServerError, Message: message, cause: cause}
}

var hideInternalDetails atomic.Bool

// HideInternalDetails controls whether 500 responses carry the underlying error text.
func HideInternalDetails(hide bool) {
	hideInternalDetails.Store(hide)
}

// ResponseWithAPIError writes err as an envelope. Errors that are not an
// *APIError are treated as internal.
func ResponseWithAPIError(c *gin.Context, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = NewInternalError("Internal server error", err)
	}

	detail := apiErr.Detail
	if apiErr.Status >= http.StatusInternalServerError {
		detail = nil
		if apiErr.cause != nil && !hideInternalDetails.Load() {
			detail = apiErr.cause.Error()
		}
	}
	ResponseWithError(c, apiErr.Status, apiErr.Message, detail)
}
