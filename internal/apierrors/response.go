package apierrors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"push-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Package-level logger that uses context for observability
var logger = observability.NewLogger()

// ErrorResponse is the JSON structure returned to API clients for errors
type ErrorResponse struct {
	Error string `json:"error"`          // User-friendly error message
	Code  string `json:"code,omitempty"` // Machine-readable error code
}

// RespondWithError handles error logging and sends a sanitized JSON response to the client.
// This is the primary function handlers should use for error responses.
func RespondWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	apiErr := MapError(err)
	if apiErr.Internal != nil {
		logger.Error(ctx, "request failed", apiErr.Internal)
	}

	// Processor has already logged the detailed error with full context.
	// This log entry carries the request id for correlation.
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "status_code", Value: apiErr.StatusCode},
		observability.Field{Key: "error_code", Value: apiErr.Code},
		observability.Field{Key: "error_message", Value: apiErr.Message},
	)
	logger.Info(ctx, "API error response")

	c.JSON(apiErr.StatusCode, ErrorResponse{
		Error: apiErr.Message,
		Code:  apiErr.Code,
	})
}

// RespondWithValidationError handles Gin binding/validation errors and returns
// structured validation error responses. Use when c.ShouldBindJSON or similar
// binding functions fail.
func RespondWithValidationError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		logger.Error(ctx, "validation failed", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: buildValidationMessage(validationErrs),
			Code:  CodeInvalidInput,
		})
		return
	}

	// Not a validation error - might be a JSON parsing error or other binding issue
	logger.Error(ctx, "request binding failed", err)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "Invalid request format. Please check your JSON syntax.",
		Code:  CodeInvalidInput,
	})
}

// buildValidationMessage creates a user-friendly message from validation errors
func buildValidationMessage(validationErrs validator.ValidationErrors) string {
	if len(validationErrs) == 0 {
		return "Invalid request"
	}

	if len(validationErrs) == 1 {
		return getValidationMessage(validationErrs[0])
	}

	var messages []string
	for _, fieldErr := range validationErrs {
		messages = append(messages, getValidationMessage(fieldErr))
	}
	return "Validation failed: " + strings.Join(messages, "; ")
}

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	tag := fieldErr.Tag()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fieldErr.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fieldErr.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fieldErr.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fieldErr.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fieldErr.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, tag)
	}
}
