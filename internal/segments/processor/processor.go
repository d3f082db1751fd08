package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"push-server/internal/observability"
	"push-server/internal/segments/matcher"
	"push-server/internal/store"

	"github.com/google/uuid"
)

// SegmentStore defines the database operations required by SegmentProcessor
type SegmentStore interface {
	CreateSegment(ctx context.Context, params store.CreateSegmentParams) (store.Segment, error)
	GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (store.Segment, error)
	GetSegmentsByUser(ctx context.Context, userID uuid.UUID) ([]store.Segment, error)
	UpdateSegment(ctx context.Context, segmentID uuid.UUID, params store.UpdateSegmentParams) (store.Segment, error)
	DeleteSegment(ctx context.Context, segmentID uuid.UUID) error
	ListSubscriptions(ctx context.Context, filter store.SubscriptionFilter) ([]store.Subscription, error)
}

var (
	ErrSegmentNotFound   = errors.New("segment not found")
	ErrInvalidConditions = errors.New("segment conditions are invalid")
)

type SegmentProcessor struct {
	store  SegmentStore
	logger *observability.Logger
}

func New(segmentStore SegmentStore, logger *observability.Logger) SegmentProcessor {
	return SegmentProcessor{
		store:  segmentStore,
		logger: logger,
	}
}

// CreateSegmentRequest represents a request to create a segment
type CreateSegmentRequest struct {
	UserID     uuid.UUID
	SiteID     *uuid.UUID
	Name       string
	Conditions store.JSONB
}

// CreateSegment validates the condition set and creates the segment. Unknown
// condition kinds are rejected here so dispatch never meets them.
func (p *SegmentProcessor) CreateSegment(ctx context.Context, req CreateSegmentRequest) (store.Segment, error) {
	if _, err := matcher.ParseConditions(req.Conditions); err != nil {
		return store.Segment{}, fmt.Errorf("%w: %s", ErrInvalidConditions, err.Error())
	}

	segment, err := p.store.CreateSegment(ctx, store.CreateSegmentParams{
		UserID:     req.UserID,
		SiteID:     req.SiteID,
		Name:       req.Name,
		Conditions: req.Conditions,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create segment", err)
		return store.Segment{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "segment_id", Value: segment.ID.String()},
	)
	p.logger.Info(ctx, "segment created")
	return segment, nil
}

// GetSegment retrieves a segment by ID
func (p *SegmentProcessor) GetSegment(ctx context.Context, segmentID uuid.UUID) (store.Segment, error) {
	segment, err := p.store.GetSegmentByID(ctx, segmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Segment{}, ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to get segment", err)
		return store.Segment{}, err
	}
	return segment, nil
}

// ListSegments retrieves all segments owned by a user
func (p *SegmentProcessor) ListSegments(ctx context.Context, userID uuid.UUID) ([]store.Segment, error) {
	segments, err := p.store.GetSegmentsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to list segments", err)
		return nil, err
	}
	return segments, nil
}

// UpdateSegmentRequest represents a partial update of a segment
type UpdateSegmentRequest struct {
	Name       *string
	SiteID     *uuid.UUID
	Conditions store.JSONB
}

// UpdateSegment updates a segment, re-validating conditions when they change
func (p *SegmentProcessor) UpdateSegment(ctx context.Context, segmentID uuid.UUID, req UpdateSegmentRequest) (store.Segment, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "segment_id", Value: segmentID.String()},
	)

	if req.Conditions != nil {
		if _, err := matcher.ParseConditions(req.Conditions); err != nil {
			return store.Segment{}, fmt.Errorf("%w: %s", ErrInvalidConditions, err.Error())
		}
	}

	segment, err := p.store.UpdateSegment(ctx, segmentID, store.UpdateSegmentParams{
		Name:       req.Name,
		SiteID:     req.SiteID,
		Conditions: req.Conditions,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Segment{}, ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to update segment", err)
		return store.Segment{}, err
	}

	p.logger.Info(ctx, "segment updated")
	return segment, nil
}

// DeleteSegment removes a segment
func (p *SegmentProcessor) DeleteSegment(ctx context.Context, segmentID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "segment_id", Value: segmentID.String()},
	)

	if err := p.store.DeleteSegment(ctx, segmentID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrSegmentNotFound
		}
		p.logger.Error(ctx, "failed to delete segment", err)
		return err
	}

	p.logger.Info(ctx, "segment deleted")
	return nil
}

// SegmentPreview reports how many subscriptions a segment currently matches
type SegmentPreview struct {
	SegmentID    uuid.UUID `json:"segment_id"`
	AudienceSize int       `json:"audience_size"`
	TotalPool    int       `json:"total_pool"`
}

// PreviewSegment evaluates a segment against the live subscription pool
// without sending anything. This is the same matching path the dispatcher
// uses, so the preview count is what a send right now would target.
func (p *SegmentProcessor) PreviewSegment(ctx context.Context, segmentID uuid.UUID) (SegmentPreview, error) {
	segment, err := p.GetSegment(ctx, segmentID)
	if err != nil {
		return SegmentPreview{}, err
	}

	conditions, err := matcher.ParseConditions(segment.Conditions)
	if err != nil {
		return SegmentPreview{}, fmt.Errorf("%w: %s", ErrInvalidConditions, err.Error())
	}

	subscriptions, err := p.store.ListSubscriptions(ctx, store.SubscriptionFilter{SiteID: segment.SiteID})
	if err != nil {
		p.logger.Error(ctx, "failed to list subscriptions for preview", err)
		return SegmentPreview{}, err
	}

	matched := 0
	for _, sub := range subscriptions {
		if matcher.Matches(sub, conditions) {
			matched++
		}
	}

	return SegmentPreview{
		SegmentID:    segmentID,
		AudienceSize: matched,
		TotalPool:    len(subscriptions),
	}, nil
}
