package handler

import (
	"net/http"
	"strconv"
	"time"

	"push-server/internal/apierrors"
	"push-server/internal/campaigns/processor"
	"push-server/internal/observability"
	"push-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// NotificationActionRequest is one action button on the notification
type NotificationActionRequest struct {
	Action string `json:"action" binding:"required,max=64"`
	Title  string `json:"title" binding:"required,max=128"`
	Icon   string `json:"icon,omitempty" binding:"omitempty,url"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name        string                      `json:"name" binding:"required,max=255"`
	Title       string                      `json:"title" binding:"required,max=255"`
	Body        string                      `json:"body" binding:"required,max=2000"`
	IconURL     *string                     `json:"icon_url,omitempty" binding:"omitempty,url"`
	ImageURL    *string                     `json:"image_url,omitempty" binding:"omitempty,url"`
	BadgeURL    *string                     `json:"badge_url,omitempty" binding:"omitempty,url"`
	ClickURL    *string                     `json:"click_url,omitempty" binding:"omitempty,url"`
	SiteID      *string                     `json:"site_id,omitempty" binding:"omitempty,uuid"`
	SegmentID   *string                     `json:"segment_id,omitempty" binding:"omitempty,uuid"`
	Actions     []NotificationActionRequest `json:"actions,omitempty" binding:"omitempty,max=2,dive"`
	SendType    string                      `json:"send_type" binding:"required,oneof=immediate scheduled draft"`
	ScheduledAt *time.Time                  `json:"scheduled_at,omitempty"`
}

// HandleCreateCampaign handles POST /api/campaigns
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	actions := make(store.NotificationActions, 0, len(req.Actions))
	for _, action := range req.Actions {
		actions = append(actions, store.NotificationAction{
			Action: action.Action,
			Title:  action.Title,
			Icon:   action.Icon,
		})
	}

	campaign, err := h.processor.CreateCampaign(ctx, processor.CreateCampaignRequest{
		Name:        req.Name,
		Title:       req.Title,
		Body:        req.Body,
		IconURL:     req.IconURL,
		ImageURL:    req.ImageURL,
		BadgeURL:    req.BadgeURL,
		ClickURL:    req.ClickURL,
		SiteID:      parseOptionalUUID(req.SiteID),
		SegmentID:   parseOptionalUUID(req.SegmentID),
		Actions:     actions,
		SendType:    store.CampaignSendType(req.SendType),
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

// HandleGetCampaign handles GET /api/campaigns/:campaign_id
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleListCampaigns handles GET /api/campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resp, err := h.processor.ListCampaigns(ctx, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateCampaignRequest represents the HTTP request for updating a draft campaign
type UpdateCampaignRequest struct {
	Name      *string                     `json:"name,omitempty" binding:"omitempty,max=255"`
	Title     *string                     `json:"title,omitempty" binding:"omitempty,max=255"`
	Body      *string                     `json:"body,omitempty" binding:"omitempty,max=2000"`
	IconURL   *string                     `json:"icon_url,omitempty" binding:"omitempty,url"`
	ImageURL  *string                     `json:"image_url,omitempty" binding:"omitempty,url"`
	BadgeURL  *string                     `json:"badge_url,omitempty" binding:"omitempty,url"`
	ClickURL  *string                     `json:"click_url,omitempty" binding:"omitempty,url"`
	SiteID    *string                     `json:"site_id,omitempty" binding:"omitempty,uuid"`
	SegmentID *string                     `json:"segment_id,omitempty" binding:"omitempty,uuid"`
	Actions   []NotificationActionRequest `json:"actions,omitempty" binding:"omitempty,max=2,dive"`
}

// HandleUpdateCampaign handles PATCH /api/campaigns/:campaign_id
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	var actions store.NotificationActions
	if req.Actions != nil {
		actions = make(store.NotificationActions, 0, len(req.Actions))
		for _, action := range req.Actions {
			actions = append(actions, store.NotificationAction{
				Action: action.Action,
				Title:  action.Title,
				Icon:   action.Icon,
			})
		}
	}

	campaign, err := h.processor.UpdateCampaign(ctx, campaignID, processor.UpdateCampaignRequest{
		Name:      req.Name,
		Title:     req.Title,
		Body:      req.Body,
		IconURL:   req.IconURL,
		ImageURL:  req.ImageURL,
		BadgeURL:  req.BadgeURL,
		ClickURL:  req.ClickURL,
		SiteID:    parseOptionalUUID(req.SiteID),
		SegmentID: parseOptionalUUID(req.SegmentID),
		Actions:   actions,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign handles DELETE /api/campaigns/:campaign_id
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteCampaign(ctx, campaignID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// HandleSendCampaign handles POST /api/campaigns/:campaign_id/send
func (h *Handler) HandleSendCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.SendCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleCancelCampaign handles POST /api/campaigns/:campaign_id/cancel
func (h *Handler) HandleCancelCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	campaign, err := h.processor.CancelCampaign(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

// HandleListExecutions handles GET /api/campaigns/:campaign_id/executions
func (h *Handler) HandleListExecutions(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	resp, err := h.processor.ListExecutions(ctx, campaignID, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleGetCampaignReport handles GET /api/campaigns/:campaign_id/report
func (h *Handler) HandleGetCampaignReport(c *gin.Context) {
	ctx := c.Request.Context()

	campaignID, ok := h.campaignID(c)
	if !ok {
		return
	}

	report, err := h.processor.GetCampaignReport(ctx, campaignID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

// HandleSchedulerStats handles GET /api/scheduler/stats
func (h *Handler) HandleSchedulerStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.processor.SchedulerStats())
}

func (h *Handler) campaignID(c *gin.Context) (uuid.UUID, bool) {
	campaignID, err := uuid.Parse(c.Param("campaign_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse campaign ID", err)
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid campaign id"))
		return uuid.Nil, false
	}
	return campaignID, true
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
