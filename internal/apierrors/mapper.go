package apierrors

import (
	"errors"
	"strings"

	campaignProcessor "push-server/internal/campaigns/processor"
	segmentProcessor "push-server/internal/segments/processor"
	subscriptionProcessor "push-server/internal/subscriptions/processor"
	"push-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Campaign processor errors
	case errors.Is(err, campaignProcessor.ErrCampaignNotFound):
		return NotFound(CodeCampaignNotFound, "Campaign not found")

	case errors.Is(err, campaignProcessor.ErrSegmentNotFound):
		return NotFound(CodeSegmentNotFound, "Segment not found")

	case errors.Is(err, campaignProcessor.ErrCampaignNotEditable):
		return Conflict(CodeCampaignNotEditable, "Campaign can only be modified while in draft status")

	case errors.Is(err, campaignProcessor.ErrCampaignNotSendable):
		return Conflict(CodeCampaignNotSendable, "Campaign cannot be sent in its current status")

	case errors.Is(err, campaignProcessor.ErrCampaignNotCancelable):
		return Conflict(CodeCampaignNotCancelable, "Only scheduled campaigns can be cancelled")

	case errors.Is(err, campaignProcessor.ErrScheduledAtRequired):
		return BadRequest(CodeScheduledAtRequired, "Scheduled campaigns require a future scheduled time")

	case errors.Is(err, campaignProcessor.ErrInvalidConditions):
		return BadRequest(CodeInvalidConditions, "Segment conditions are invalid")

	// Segment processor errors
	case errors.Is(err, segmentProcessor.ErrSegmentNotFound):
		return NotFound(CodeSegmentNotFound, "Segment not found")

	case errors.Is(err, segmentProcessor.ErrInvalidConditions):
		return BadRequest(CodeInvalidConditions, "Segment conditions are invalid")

	// Subscription processor errors
	case errors.Is(err, subscriptionProcessor.ErrSubscriptionNotFound):
		return NotFound(CodeSubscriptionNotFound, "Subscription not found")

	// Store errors
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "push service") || strings.Contains(errMsg, "push notification") {
		return ServiceUnavailable(
			CodePushServiceError,
			"Push service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}
