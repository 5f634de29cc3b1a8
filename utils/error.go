package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error codes for the domain error taxonomy. Handlers map these onto HTTP
// statuses; everything else is treated as a dependency failure.
const (
	CodeValidation        = "VALIDATION_ERROR"
	CodeNotFound          = "NOT_FOUND"
	CodeAuth              = "AUTH_ERROR"
	CodeSignatureMismatch = "SIGNATURE_MISMATCH"
	CodeDependency        = "DEPENDENCY_ERROR"
)

// AppError is a typed error carrying a taxonomy code. Dependency failures
// wrap the underlying cause; client errors usually do not.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewValidationError(msg string) *AppError {
	return &AppError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) *AppError {
	return &AppError{Code: CodeNotFound, Message: msg}
}

func NewAuthError(msg string) *AppError {
	return &AppError{Code: CodeAuth, Message: msg}
}

func NewSignatureError(msg string) *AppError {
	return &AppError{Code: CodeSignatureMismatch, Message: msg}
}

func NewDependencyError(msg string, cause error) *AppError {
	return &AppError{Code: CodeDependency, Message: msg, Err: cause}
}

// ErrorCode extracts the taxonomy code from err, or CodeDependency when the
// error is untyped.
func ErrorCode(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeDependency
}

// ErrorResponse defines the structure of error responses
type ErrorResponse struct {
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				GetLogger().Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, ErrorResponse{
					Message: "Internal Server Error",
					Details: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON error response
func JSONError(c *gin.Context, status int, message string, details string) {
	GetLogger().Warn(message, zap.String("details", details))
	c.JSON(status, ErrorResponse{Message: message, Details: details})
}
