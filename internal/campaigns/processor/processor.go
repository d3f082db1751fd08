package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"push-server/internal/campaigns/dispatch"
	"push-server/internal/campaigns/scheduler"
	"push-server/internal/observability"
	"push-server/internal/segments/matcher"
	"push-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, limit, offset int) ([]store.Campaign, error)
	CountCampaigns(ctx context.Context) (int, error)
	UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params store.UpdateCampaignParams) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error
	CancelScheduledCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (store.Segment, error)
	GetExecutionsByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]store.CampaignExecution, error)
	CountExecutionsByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error)
	GetExecutionStats(ctx context.Context, campaignID uuid.UUID) (store.ExecutionStats, error)
}

// Dispatcher runs one campaign dispatch end to end
type Dispatcher interface {
	ExecuteCampaign(ctx context.Context, campaignID uuid.UUID) error
}

// CampaignScheduler manages the in-memory timers for scheduled campaigns
type CampaignScheduler interface {
	Schedule(ctx context.Context, campaignID uuid.UUID, scheduledAt time.Time)
	Unschedule(campaignID uuid.UUID) bool
	Stats() scheduler.Stats
}

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrSegmentNotFound       = errors.New("segment not found")
	ErrCampaignNotEditable   = errors.New("campaign can only be modified while in draft status")
	ErrCampaignNotSendable   = errors.New("campaign cannot be sent in its current status")
	ErrCampaignNotCancelable = errors.New("only scheduled campaigns can be cancelled")
	ErrScheduledAtRequired   = errors.New("scheduled campaigns require a future scheduled time")
	ErrInvalidConditions     = errors.New("segment conditions are invalid")
)

type CampaignProcessor struct {
	store      CampaignStore
	dispatcher Dispatcher
	scheduler  CampaignScheduler
	logger     *observability.Logger
}

func New(campaignStore CampaignStore, dispatcher Dispatcher, campaignScheduler CampaignScheduler, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:      campaignStore,
		dispatcher: dispatcher,
		scheduler:  campaignScheduler,
		logger:     logger,
	}
}

// CreateCampaignRequest represents a request to create a campaign
type CreateCampaignRequest struct {
	Name        string
	Title       string
	Body        string
	IconURL     *string
	ImageURL    *string
	BadgeURL    *string
	ClickURL    *string
	SiteID      *uuid.UUID
	SegmentID   *uuid.UUID
	Actions     store.NotificationActions
	SendType    store.CampaignSendType
	ScheduledAt *time.Time
}

// CreateCampaign creates a campaign and routes it by send type: immediate
// campaigns dispatch right away, scheduled campaigns get a timer, drafts just
// sit there.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (store.Campaign, error) {
	if req.SendType == store.CampaignSendTypeScheduled {
		if req.ScheduledAt == nil || req.ScheduledAt.Before(time.Now()) {
			return store.Campaign{}, ErrScheduledAtRequired
		}
	}

	if req.SegmentID != nil {
		if err := p.validateSegment(ctx, *req.SegmentID); err != nil {
			return store.Campaign{}, err
		}
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:        req.Name,
		Title:       req.Title,
		Body:        req.Body,
		IconURL:     req.IconURL,
		ImageURL:    req.ImageURL,
		BadgeURL:    req.BadgeURL,
		ClickURL:    req.ClickURL,
		SiteID:      req.SiteID,
		SegmentID:   req.SegmentID,
		Actions:     req.Actions,
		SendType:    req.SendType,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaign.ID.String()},
	)

	switch req.SendType {
	case store.CampaignSendTypeImmediate:
		if err := p.dispatcher.ExecuteCampaign(ctx, campaign.ID); err != nil {
			p.logger.Error(ctx, "immediate campaign dispatch failed", err)
			return campaign, err
		}
		return p.reload(ctx, campaign)
	case store.CampaignSendTypeScheduled:
		p.scheduler.Schedule(ctx, campaign.ID, *campaign.ScheduledAt)
	}

	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

// GetCampaign retrieves a campaign by ID
func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// ListCampaignsResponse represents a paginated list of campaigns
type ListCampaignsResponse struct {
	Campaigns  []store.Campaign `json:"campaigns"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}

// ListCampaigns retrieves campaigns with pagination
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, page, limit int) (ListCampaignsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	campaigns, err := p.store.ListCampaigns(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return ListCampaignsResponse{}, err
	}

	total, err := p.store.CountCampaigns(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaigns", err)
		return ListCampaignsResponse{}, err
	}

	return ListCampaignsResponse{
		Campaigns:  campaigns,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// UpdateCampaignRequest represents a partial update of a draft campaign
type UpdateCampaignRequest struct {
	Name      *string
	Title     *string
	Body      *string
	IconURL   *string
	ImageURL  *string
	BadgeURL  *string
	ClickURL  *string
	SiteID    *uuid.UUID
	SegmentID *uuid.UUID
	Actions   store.NotificationActions
}

// UpdateCampaign updates a campaign's content and targeting. Only drafts can
// be modified; anything past draft is immutable history.
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, req UpdateCampaignRequest) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	if req.SegmentID != nil {
		if err := p.validateSegment(ctx, *req.SegmentID); err != nil {
			return store.Campaign{}, err
		}
	}

	campaign, err := p.store.UpdateCampaign(ctx, campaignID, store.UpdateCampaignParams{
		Name:      req.Name,
		Title:     req.Title,
		Body:      req.Body,
		IconURL:   req.IconURL,
		ImageURL:  req.ImageURL,
		BadgeURL:  req.BadgeURL,
		ClickURL:  req.ClickURL,
		SiteID:    req.SiteID,
		SegmentID: req.SegmentID,
		Actions:   req.Actions,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The row exists but is not in draft, or does not exist at all.
			if _, getErr := p.store.GetCampaignByID(ctx, campaignID); getErr == nil {
				return store.Campaign{}, ErrCampaignNotEditable
			}
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign updated")
	return campaign, nil
}

// DeleteCampaign removes a campaign and its execution history, disarming any
// timer first so a scheduled campaign cannot fire after deletion.
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	p.scheduler.Unschedule(campaignID)

	if err := p.store.DeleteCampaign(ctx, campaignID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign", err)
		return err
	}

	p.logger.Info(ctx, "campaign deleted")
	return nil
}

// CancelCampaign cancels a scheduled campaign before it fires
func (p *CampaignProcessor) CancelCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	p.scheduler.Unschedule(campaignID)

	campaign, err := p.store.CancelScheduledCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			if _, getErr := p.store.GetCampaignByID(ctx, campaignID); getErr == nil {
				return store.Campaign{}, ErrCampaignNotCancelable
			}
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to cancel campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign cancelled")
	return campaign, nil
}

// SendCampaign dispatches a draft campaign on demand
func (p *CampaignProcessor) SendCampaign(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	// Disarm any timer so an explicit send and a timer fire cannot both run.
	// The dispatch claim is the real gate; this just avoids a pointless race.
	p.scheduler.Unschedule(campaignID)

	if err := p.dispatcher.ExecuteCampaign(ctx, campaignID); err != nil {
		if errors.Is(err, dispatch.ErrCampaignNotDispatchable) {
			if _, getErr := p.store.GetCampaignByID(ctx, campaignID); getErr != nil {
				return store.Campaign{}, ErrCampaignNotFound
			}
			return store.Campaign{}, ErrCampaignNotSendable
		}
		p.logger.Error(ctx, "campaign dispatch failed", err)
		return store.Campaign{}, err
	}

	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to reload campaign after dispatch", err)
		return store.Campaign{}, err
	}
	return campaign, nil
}

// ListExecutionsResponse represents a paginated delivery log for one campaign
type ListExecutionsResponse struct {
	Executions []store.CampaignExecution `json:"executions"`
	Total      int                       `json:"total"`
	Page       int                       `json:"page"`
	Limit      int                       `json:"limit"`
	TotalPages int                       `json:"total_pages"`
}

// ListExecutions retrieves a campaign's delivery log with pagination
func (p *CampaignProcessor) ListExecutions(ctx context.Context, campaignID uuid.UUID, page, limit int) (ListExecutionsResponse, error) {
	if _, err := p.GetCampaign(ctx, campaignID); err != nil {
		return ListExecutionsResponse{}, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	executions, err := p.store.GetExecutionsByCampaign(ctx, campaignID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaign executions", err)
		return ListExecutionsResponse{}, err
	}

	total, err := p.store.CountExecutionsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaign executions", err)
		return ListExecutionsResponse{}, err
	}

	return ListExecutionsResponse{
		Executions: executions,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}, nil
}

// CampaignReport is a campaign plus its aggregated delivery outcomes
type CampaignReport struct {
	Campaign store.Campaign       `json:"campaign"`
	Stats    store.ExecutionStats `json:"stats"`
}

// GetCampaignReport retrieves a campaign with its delivery stats
func (p *CampaignProcessor) GetCampaignReport(ctx context.Context, campaignID uuid.UUID) (CampaignReport, error) {
	campaign, err := p.GetCampaign(ctx, campaignID)
	if err != nil {
		return CampaignReport{}, err
	}

	stats, err := p.store.GetExecutionStats(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get execution stats", err)
		return CampaignReport{}, err
	}

	return CampaignReport{Campaign: campaign, Stats: stats}, nil
}

// SchedulerStats exposes the scheduler's timer registry for operators
func (p *CampaignProcessor) SchedulerStats() scheduler.Stats {
	return p.scheduler.Stats()
}

func (p *CampaignProcessor) validateSegment(ctx context.Context, segmentID uuid.UUID) error {
	segment, err := p.store.GetSegmentByID(ctx, segmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to get segment", err)
		return err
	}
	if _, err := matcher.ParseConditions(segment.Conditions); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConditions, err.Error())
	}
	return nil
}

func (p *CampaignProcessor) reload(ctx context.Context, campaign store.Campaign) (store.Campaign, error) {
	fresh, err := p.store.GetCampaignByID(ctx, campaign.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to reload campaign", err)
		return campaign, nil
	}
	return fresh, nil
}
