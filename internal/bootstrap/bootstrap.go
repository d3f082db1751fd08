package bootstrap

import (
	"context"
	"fmt"
	"net/http"

	"push-server/internal/auth"
	campaignHandler "push-server/internal/campaigns/handler"
	campaignProcessor "push-server/internal/campaigns/processor"
	"push-server/internal/campaigns/dispatch"
	"push-server/internal/campaigns/scheduler"
	webpushClient "push-server/internal/clients/webpush"
	"push-server/internal/config"
	"push-server/internal/observability"
	segmentHandler "push-server/internal/segments/handler"
	segmentProcessor "push-server/internal/segments/processor"
	"push-server/internal/store"
	subscriptionHandler "push-server/internal/subscriptions/handler"
	subscriptionProcessor "push-server/internal/subscriptions/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Middleware
	AuthMiddleware auth.Middleware

	// Handlers
	CampaignHandler     campaignHandler.Handler
	SubscriptionHandler subscriptionHandler.Handler
	SegmentHandler      segmentHandler.Handler

	// Background
	Scheduler *scheduler.Scheduler
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pushClient, err := webpushClient.NewClient(
		cfg.Push.VAPIDPublicKey,
		cfg.Push.VAPIDPrivateKey,
		cfg.Push.Subscriber,
		&http.Client{Timeout: cfg.Push.SendTimeout},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create web push client: %w", err)
	}

	dispatcher := dispatch.New(&deps.Store, pushClient, cfg.Dispatch.BatchSize, cfg.Dispatch.BatchPause, logger)
	deps.Scheduler = scheduler.New(&deps.Store, dispatcher, cfg.Scheduler.SweepInterval, logger)

	deps.AuthMiddleware = auth.NewMiddleware(cfg.Auth.JWTSecret, logger)

	campaigns := campaignProcessor.New(&deps.Store, dispatcher, deps.Scheduler, logger)
	deps.CampaignHandler = campaignHandler.New(campaigns, logger)

	subscriptions := subscriptionProcessor.New(&deps.Store, logger)
	deps.SubscriptionHandler = subscriptionHandler.New(subscriptions, logger)

	segments := segmentProcessor.New(&deps.Store, logger)
	deps.SegmentHandler = segmentHandler.New(segments, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	d.Scheduler.Stop()
}
