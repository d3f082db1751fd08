package dispatch

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatcher.go -destination=mocks_test.go -package=dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"push-server/internal/clients/webpush"
	"push-server/internal/observability"
	"push-server/internal/segments/matcher"
	"push-server/internal/store"

	"github.com/google/uuid"
)

// DispatchStore defines the database operations required by Dispatcher
type DispatchStore interface {
	ClaimCampaignForDispatch(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	RevertCampaignStatus(ctx context.Context, campaignID uuid.UUID, status store.CampaignStatus) error
	MarkCampaignFailed(ctx context.Context, campaignID uuid.UUID, errorMessage string) error
	FinalizeCampaignDispatch(ctx context.Context, campaignID uuid.UUID, totals store.DispatchTotals, executions []store.ExecutionRecord) error
	AbortCampaignDispatch(ctx context.Context, campaignID uuid.UUID, errorMessage string, totals store.DispatchTotals, executions []store.ExecutionRecord) error
	GetSegmentByID(ctx context.Context, segmentID uuid.UUID) (store.Segment, error)
	ListSubscriptions(ctx context.Context, filter store.SubscriptionFilter) ([]store.Subscription, error)
	DeleteSubscription(ctx context.Context, subscriptionID uuid.UUID) error
}

// Pusher delivers one payload to one subscription's push endpoint
type Pusher interface {
	Send(ctx context.Context, sub store.Subscription, payload []byte) error
}

var (
	ErrCampaignNotDispatchable = errors.New("campaign is not in a dispatchable state")
	ErrSegmentNotFound         = errors.New("campaign segment not found")
)

type Dispatcher struct {
	store      DispatchStore
	pusher     Pusher
	logger     *observability.Logger
	batchSize  int
	batchPause time.Duration
}

func New(dispatchStore DispatchStore, pusher Pusher, batchSize int, batchPause time.Duration, logger *observability.Logger) *Dispatcher {
	if batchSize <= 0 {
		batchSize = 100
	}

	return &Dispatcher{
		store:      dispatchStore,
		pusher:     pusher,
		logger:     logger,
		batchSize:  batchSize,
		batchPause: batchPause,
	}
}

// notificationPayload is the JSON document the service worker receives
type notificationPayload struct {
	CampaignID string                     `json:"campaign_id"`
	Title      string                     `json:"title"`
	Body       string                     `json:"body"`
	Icon       *string                    `json:"icon,omitempty"`
	Image      *string                    `json:"image,omitempty"`
	Badge      *string                    `json:"badge,omitempty"`
	URL        *string                    `json:"url,omitempty"`
	Actions    []store.NotificationAction `json:"actions,omitempty"`
}

// ExecuteCampaign runs one campaign dispatch end to end: claim the campaign,
// resolve its audience, fan the payload out in batches, and persist the
// outcome. Exactly one caller wins the claim, so a campaign is dispatched at
// most once no matter how many paths (timer, sweep, explicit send) race on it.
func (d *Dispatcher) ExecuteCampaign(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	campaign, err := d.store.ClaimCampaignForDispatch(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotDispatchable
		}
		d.logger.Error(ctx, "failed to claim campaign for dispatch", err)
		return err
	}

	subscriptions, err := d.resolveAudience(ctx, campaign)
	if err != nil {
		// Audience resolution failures fall into two buckets: broken campaign
		// configuration is terminal, everything else is retriable and the
		// campaign goes back to its pre-claim status for the sweep to retry.
		if errors.Is(err, ErrSegmentNotFound) || errors.Is(err, matcher.ErrUnknownConditionKind) || errors.Is(err, matcher.ErrInvalidCondition) {
			if failErr := d.store.MarkCampaignFailed(ctx, campaignID, err.Error()); failErr != nil {
				d.logger.Error(ctx, "failed to mark campaign failed", failErr)
			}
			return err
		}
		d.revert(ctx, campaign)
		return err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "audience_size", Value: len(subscriptions)},
	)

	if len(subscriptions) == 0 {
		// An empty audience is a completed send, not an error.
		if err := d.store.FinalizeCampaignDispatch(ctx, campaignID, store.DispatchTotals{}, nil); err != nil {
			d.logger.Error(ctx, "failed to finalize empty campaign dispatch", err)
			return err
		}
		d.logger.Info(ctx, "campaign dispatched to empty audience")
		return nil
	}

	payload, err := json.Marshal(buildPayload(campaign))
	if err != nil {
		d.revert(ctx, campaign)
		return fmt.Errorf("failed to build notification payload: %w", err)
	}

	totals, executions, fanOutErr := d.fanOut(ctx, campaign, subscriptions, payload)
	if fanOutErr != nil {
		// Deliveries already escaped, so the campaign cannot go back to a
		// dispatchable state. Keep what happened and mark it failed.
		abortCtx := context.WithoutCancel(ctx)
		if abortErr := d.store.AbortCampaignDispatch(abortCtx, campaignID, fanOutErr.Error(), totals, executions); abortErr != nil {
			d.logger.Error(abortCtx, "failed to abort campaign dispatch", abortErr)
		}
		return fanOutErr
	}

	if err := d.store.FinalizeCampaignDispatch(ctx, campaignID, totals, executions); err != nil {
		d.logger.Error(ctx, "failed to finalize campaign dispatch", err)
		return err
	}

	d.logger.Info(ctx, fmt.Sprintf("campaign dispatched: %d sent, %d failed", totals.Sent, totals.Failed))
	return nil
}

// resolveAudience loads the candidate subscriptions and filters them through
// the campaign's segment, if any. A segmented campaign targets the segment's
// own site scope, the same pool the segment preview evaluates, so preview and
// dispatch always agree. The audience snapshot is taken once, here;
// subscriptions created mid-dispatch are not picked up.
func (d *Dispatcher) resolveAudience(ctx context.Context, campaign store.Campaign) ([]store.Subscription, error) {
	if campaign.SegmentID == nil {
		subscriptions, err := d.store.ListSubscriptions(ctx, store.SubscriptionFilter{SiteID: campaign.SiteID})
		if err != nil {
			d.logger.Error(ctx, "failed to list subscriptions", err)
			return nil, err
		}
		return subscriptions, nil
	}

	segment, err := d.store.GetSegmentByID(ctx, *campaign.SegmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrSegmentNotFound
		}
		d.logger.Error(ctx, "failed to get segment", err)
		return nil, err
	}

	conditions, err := matcher.ParseConditions(segment.Conditions)
	if err != nil {
		d.logger.Error(ctx, "failed to parse segment conditions", err)
		return nil, err
	}

	subscriptions, err := d.store.ListSubscriptions(ctx, store.SubscriptionFilter{SiteID: segment.SiteID})
	if err != nil {
		d.logger.Error(ctx, "failed to list subscriptions", err)
		return nil, err
	}

	matched := make([]store.Subscription, 0, len(subscriptions))
	for _, sub := range subscriptions {
		if matcher.Matches(sub, conditions) {
			matched = append(matched, sub)
		}
	}
	return matched, nil
}

// fanOut sends the payload to every subscription, batchSize at a time, with a
// pause between batches to avoid hammering the push services. Individual
// delivery failures never stop the dispatch; only context cancellation does.
func (d *Dispatcher) fanOut(ctx context.Context, campaign store.Campaign, subscriptions []store.Subscription, payload []byte) (store.DispatchTotals, []store.ExecutionRecord, error) {
	totals := store.DispatchTotals{}
	executions := make([]store.ExecutionRecord, 0, len(subscriptions))

	for start := 0; start < len(subscriptions); start += d.batchSize {
		if err := ctx.Err(); err != nil {
			return totals, executions, fmt.Errorf("dispatch aborted: %w", err)
		}

		end := start + d.batchSize
		if end > len(subscriptions) {
			end = len(subscriptions)
		}
		batch := subscriptions[start:end]

		results := make([]store.ExecutionRecord, len(batch))
		var wg sync.WaitGroup
		for i, sub := range batch {
			wg.Add(1)
			go func(i int, sub store.Subscription) {
				defer wg.Done()
				results[i] = d.sendOne(ctx, sub, payload)
			}(i, sub)
		}
		wg.Wait()

		for _, result := range results {
			executions = append(executions, result)
			// Pruned endpoints count in neither total: the subscriber was
			// already gone, so the delivery neither succeeded nor failed.
			switch result.Status {
			case store.ExecutionStatusSent:
				totals.Sent++
			case store.ExecutionStatusFailed:
				totals.Failed++
			}
		}

		if end < len(subscriptions) && d.batchPause > 0 {
			select {
			case <-time.After(d.batchPause):
			case <-ctx.Done():
				return totals, executions, fmt.Errorf("dispatch aborted: %w", ctx.Err())
			}
		}
	}

	return totals, executions, nil
}

// sendOne delivers to a single subscription and translates the outcome into
// an execution record. Dead endpoints are pruned on the spot.
func (d *Dispatcher) sendOne(ctx context.Context, sub store.Subscription, payload []byte) store.ExecutionRecord {
	record := store.ExecutionRecord{
		SubscriptionID: &sub.ID,
		Endpoint:       sub.Endpoint,
	}

	err := d.pusher.Send(ctx, sub, payload)
	if err == nil {
		now := time.Now().UTC()
		record.Status = store.ExecutionStatusSent
		record.SentAt = &now
		return record
	}

	message := err.Error()
	record.ErrorMessage = &message

	if errors.Is(err, webpush.ErrEndpointGone) {
		record.Status = store.ExecutionStatusExpired
		if delErr := d.store.DeleteSubscription(ctx, sub.ID); delErr != nil {
			d.logger.Error(ctx, "failed to delete gone subscription", delErr)
		}
		return record
	}

	record.Status = store.ExecutionStatusFailed
	return record
}

// revert puts a claimed campaign back in its pre-claim status so the
// scheduler sweep or an operator can retry it.
func (d *Dispatcher) revert(ctx context.Context, campaign store.Campaign) {
	previous := store.CampaignStatusDraft
	if campaign.SendType == string(store.CampaignSendTypeScheduled) && campaign.ScheduledAt != nil {
		previous = store.CampaignStatusScheduled
	}
	if err := d.store.RevertCampaignStatus(ctx, campaign.ID, previous); err != nil {
		d.logger.Error(ctx, "failed to revert campaign status", err)
	}
}

func buildPayload(campaign store.Campaign) notificationPayload {
	return notificationPayload{
		CampaignID: campaign.ID.String(),
		Title:      campaign.Title,
		Body:       campaign.Body,
		Icon:       campaign.IconURL,
		Image:      campaign.ImageURL,
		Badge:      campaign.BadgeURL,
		URL:        campaign.ClickURL,
		Actions:    campaign.Actions,
	}
}
