package handler

import (
	"net/http"

	"push-server/internal/apierrors"
	"push-server/internal/observability"
	"push-server/internal/subscriptions/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.SubscriptionProcessor
	logger    *observability.Logger
}

func New(processor processor.SubscriptionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// SubscriptionKeysRequest carries the browser's encryption keys
type SubscriptionKeysRequest struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

// SubscribeRequest represents the HTTP request for registering a push subscription.
// The shape mirrors what PushSubscription.toJSON() produces in the browser.
type SubscribeRequest struct {
	Endpoint string                  `json:"endpoint" binding:"required,url"`
	Keys     SubscriptionKeysRequest `json:"keys" binding:"required"`
	SiteID   *string                 `json:"site_id,omitempty" binding:"omitempty,uuid"`
	UserID   *string                 `json:"user_id,omitempty" binding:"omitempty,uuid"`
}

// HandleSubscribe handles POST /api/subscriptions
func (h *Handler) HandleSubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	userAgent := observability.GetUserAgent(c)
	ipAddress := observability.GetClientIP(c)

	sub, err := h.processor.Subscribe(ctx, processor.SubscribeRequest{
		Endpoint:  req.Endpoint,
		P256dh:    req.Keys.P256dh,
		Auth:      req.Keys.Auth,
		SiteID:    parseOptionalUUID(req.SiteID),
		UserID:    parseOptionalUUID(req.UserID),
		UserAgent: &userAgent,
		IPAddress: &ipAddress,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, sub)
}

// HandleListSubscriptions handles GET /api/subscriptions
func (h *Handler) HandleListSubscriptions(c *gin.Context) {
	ctx := c.Request.Context()

	var siteID *uuid.UUID
	if siteIDStr := c.Query("site_id"); siteIDStr != "" {
		id, err := uuid.Parse(siteIDStr)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid site id"))
			return
		}
		siteID = &id
	}

	resp, err := h.processor.ListSubscriptions(ctx, siteID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleGetSubscription handles GET /api/subscriptions/:subscription_id
func (h *Handler) HandleGetSubscription(c *gin.Context) {
	ctx := c.Request.Context()

	subscriptionID, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	sub, err := h.processor.GetSubscription(ctx, subscriptionID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, sub)
}

// HandleUnsubscribe handles DELETE /api/subscriptions/:subscription_id
func (h *Handler) HandleUnsubscribe(c *gin.Context) {
	ctx := c.Request.Context()

	subscriptionID, ok := h.subscriptionID(c)
	if !ok {
		return
	}

	if err := h.processor.Unsubscribe(ctx, subscriptionID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) subscriptionID(c *gin.Context) (uuid.UUID, bool) {
	subscriptionID, err := uuid.Parse(c.Param("subscription_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse subscription ID", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid subscription id"))
		return uuid.Nil, false
	}
	return subscriptionID, true
}

func parseOptionalUUID(value *string) *uuid.UUID {
	if value == nil {
		return nil
	}
	if id, err := uuid.Parse(*value); err == nil {
		return &id
	}
	return nil
}
