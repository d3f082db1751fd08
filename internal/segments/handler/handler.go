package handler

import (
	"net/http"

	"push-server/internal/apierrors"
	"push-server/internal/observability"
	"push-server/internal/segments/processor"
	"push-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.SegmentProcessor
	logger    *observability.Logger
}

func New(processor processor.SegmentProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateSegmentRequest represents the HTTP request for creating a segment
type CreateSegmentRequest struct {
	Name       string      `json:"name" binding:"required,max=255"`
	SiteID     *string     `json:"site_id,omitempty" binding:"omitempty,uuid"`
	Conditions store.JSONB `json:"conditions"`
}

// HandleCreateSegment handles POST /api/segments
func (h *Handler) HandleCreateSegment(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req CreateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	segment, err := h.processor.CreateSegment(ctx, processor.CreateSegmentRequest{
		UserID:     userID,
		SiteID:     parseOptionalUUID(req.SiteID),
		Name:       req.Name,
		Conditions: req.Conditions,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, segment)
}

// HandleListSegments handles GET /api/segments
func (h *Handler) HandleListSegments(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := h.userID(c)
	if !ok {
		return
	}

	segments, err := h.processor.ListSegments(ctx, userID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"segments": segments})
}

// HandleGetSegment handles GET /api/segments/:segment_id
func (h *Handler) HandleGetSegment(c *gin.Context) {
	ctx := c.Request.Context()

	segmentID, ok := h.segmentID(c)
	if !ok {
		return
	}

	segment, err := h.processor.GetSegment(ctx, segmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

// UpdateSegmentRequest represents the HTTP request for updating a segment
type UpdateSegmentRequest struct {
	Name       *string     `json:"name,omitempty" binding:"omitempty,max=255"`
	SiteID     *string     `json:"site_id,omitempty" binding:"omitempty,uuid"`
	Conditions store.JSONB `json:"conditions,omitempty"`
}

// HandleUpdateSegment handles PATCH /api/segments/:segment_id
func (h *Handler) HandleUpdateSegment(c *gin.Context) {
	ctx := c.Request.Context()

	segmentID, ok := h.segmentID(c)
	if !ok {
		return
	}

	var req UpdateSegmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	segment, err := h.processor.UpdateSegment(ctx, segmentID, processor.UpdateSegmentRequest{
		Name:       req.Name,
		SiteID:     parseOptionalUUID(req.SiteID),
		Conditions: req.Conditions,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, segment)
}

// HandleDeleteSegment handles DELETE /api/segments/:segment_id
func (h *Handler) HandleDeleteSegment(c *gin.Context) {
	ctx := c.Request.Context()

	segmentID, ok := h.segmentID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteSegment(ctx, segmentID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandlePreviewSegment handles GET /api/segments/:segment_id/preview
func (h *Handler) HandlePreviewSegment(c *gin.Context) {
	ctx := c.Request.Context()

	segmentID, ok := h.segmentID(c)
	if !ok {
		return
	}

	preview, err := h.processor.PreviewSegment(ctx, segmentID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, preview)
}

func (h *Handler) segmentID(c *gin.Context) (uuid.UUID, bool) {
	segmentID, err := uuid.Parse(c.Param("segment_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse segment ID", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid segment id"))
		return uuid.Nil, false
	}
	return segmentID, true
}

func (h *Handler) userID(c *gin.Context) (uuid.UUID, bool) {
	userIDValue, exists := c.Get("User-ID")
	if !exists {
		apierrors.RespondWithError(c, apierrors.Unauthorized("user ID not found in context"))
		return uuid.Nil, false
	}

	userIDStr, _ := userIDValue.(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse user ID", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid user id"))
		return uuid.Nil, false
	}
	return userID, true
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
