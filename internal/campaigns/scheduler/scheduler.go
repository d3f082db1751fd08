package scheduler

//go:generate go run go.uber.org/mock/mockgen@latest -source=scheduler.go -destination=mocks_test.go -package=scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"push-server/internal/campaigns/dispatch"
	"push-server/internal/observability"
	"push-server/internal/store"

	"github.com/google/uuid"
)

// SchedulerStore defines the database operations required by Scheduler
type SchedulerStore interface {
	GetDueScheduledCampaigns(ctx context.Context, beforeTime time.Time) ([]store.Campaign, error)
	GetPendingScheduledCampaigns(ctx context.Context, afterTime time.Time) ([]store.Campaign, error)
}

// CampaignDispatcher runs one campaign dispatch end to end
type CampaignDispatcher interface {
	ExecuteCampaign(ctx context.Context, campaignID uuid.UUID) error
}

// Scheduler owns one in-memory timer per scheduled campaign and a periodic
// sweep that catches campaigns whose timers were lost, typically across a
// process restart. Timers, the sweep, and explicit sends can all race on the
// same campaign; the dispatch claim guarantees a single winner.
type Scheduler struct {
	store         SchedulerStore
	dispatcher    CampaignDispatcher
	logger        *observability.Logger
	sweepInterval time.Duration

	mu      sync.Mutex
	timers  map[uuid.UUID]*time.Timer
	running bool
	cancel  context.CancelFunc
	runCtx  context.Context
}

func New(schedulerStore SchedulerStore, dispatcher CampaignDispatcher, sweepInterval time.Duration, logger *observability.Logger) *Scheduler {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}

	return &Scheduler{
		store:         schedulerStore,
		dispatcher:    dispatcher,
		logger:        logger,
		sweepInterval: sweepInterval,
		timers:        make(map[uuid.UUID]*time.Timer),
	}
}

// Start arms timers for every pending scheduled campaign, sweeps once for
// campaigns that came due while the process was down, and begins the periodic
// sweep. Calling Start on a running scheduler is a no-op.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return nil
	}
	s.running = true
	// Timer and sweep work outlives the caller's request context.
	s.runCtx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	s.mu.Unlock()

	now := time.Now().UTC()

	pending, err := s.store.GetPendingScheduledCampaigns(ctx, now)
	if err != nil {
		s.logger.Error(ctx, "failed to load pending scheduled campaigns", err)
		return err
	}
	for _, campaign := range pending {
		if campaign.ScheduledAt == nil {
			continue
		}
		s.Schedule(ctx, campaign.ID, *campaign.ScheduledAt)
	}

	s.logger.Info(ctx, fmt.Sprintf("scheduler started with %d pending campaigns", len(pending)))

	go s.sweepLoop(s.runCtx)
	return nil
}

// Stop cancels the sweep and disarms every timer. Campaigns stay scheduled in
// the database, so a later Start re-arms them. Idempotent.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false
	s.cancel()

	for campaignID, timer := range s.timers {
		timer.Stop()
		delete(s.timers, campaignID)
	}
}

// Schedule arms (or re-arms) the timer for a campaign. A fire time in the
// past fires immediately.
func (s *Scheduler) Schedule(ctx context.Context, campaignID uuid.UUID, scheduledAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	if existing, ok := s.timers[campaignID]; ok {
		existing.Stop()
	}

	delay := time.Until(scheduledAt)
	if delay < 0 {
		delay = 0
	}

	s.timers[campaignID] = time.AfterFunc(delay, func() {
		s.fire(campaignID)
	})

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)
	s.logger.Info(ctx, fmt.Sprintf("campaign scheduled to fire in %s", delay))
}

// Unschedule disarms a campaign's timer if one is armed. Reports whether a
// timer existed.
func (s *Scheduler) Unschedule(campaignID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	timer, ok := s.timers[campaignID]
	if !ok {
		return false
	}
	timer.Stop()
	delete(s.timers, campaignID)
	return true
}

// Stats is a point-in-time snapshot of the scheduler's timer registry
type Stats struct {
	IsRunning          bool        `json:"is_running"`
	ScheduledCampaigns int         `json:"scheduled_campaigns"`
	CampaignIDs        []uuid.UUID `json:"campaign_ids"`
}

func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]uuid.UUID, 0, len(s.timers))
	for campaignID := range s.timers {
		ids = append(ids, campaignID)
	}

	return Stats{
		IsRunning:          s.running,
		ScheduledCampaigns: len(s.timers),
		CampaignIDs:        ids,
	}
}

// fire runs when a campaign's timer elapses
func (s *Scheduler) fire(campaignID uuid.UUID) {
	s.mu.Lock()
	delete(s.timers, campaignID)
	ctx := s.runCtx
	s.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "campaign_id", Value: campaignID.String()},
	)

	err := s.dispatcher.ExecuteCampaign(ctx, campaignID)
	if err != nil {
		if errors.Is(err, dispatch.ErrCampaignNotDispatchable) {
			// Another path won the claim, or the campaign was cancelled.
			s.logger.Info(ctx, "scheduled campaign already handled elsewhere")
			return
		}
		s.logger.Error(ctx, "scheduled campaign dispatch failed", err)
	}
}

// sweepLoop periodically dispatches overdue scheduled campaigns. It runs once
// at startup so campaigns that came due during downtime go out promptly.
func (s *Scheduler) sweepLoop(ctx context.Context) {
	s.sweep(ctx)

	ticker := time.NewTicker(s.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Scheduler) sweep(ctx context.Context) {
	due, err := s.store.GetDueScheduledCampaigns(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error(ctx, "sweep failed to list due campaigns", err)
		return
	}

	for _, campaign := range due {
		if ctx.Err() != nil {
			return
		}
		s.Unschedule(campaign.ID)
		s.fire(campaign.ID)
	}
}
