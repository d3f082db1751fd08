package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"push-server/internal/observability"
	"push-server/internal/store"

	"github.com/google/uuid"
)

// SubscriptionStore defines the database operations required by SubscriptionProcessor
type SubscriptionStore interface {
	UpsertSubscriptionByEndpoint(ctx context.Context, params store.UpsertSubscriptionParams) (store.Subscription, error)
	GetSubscriptionByID(ctx context.Context, subscriptionID uuid.UUID) (store.Subscription, error)
	ListSubscriptions(ctx context.Context, filter store.SubscriptionFilter) ([]store.Subscription, error)
	CountSubscriptions(ctx context.Context, filter store.SubscriptionFilter) (int, error)
	DeleteSubscription(ctx context.Context, subscriptionID uuid.UUID) error
}

var ErrSubscriptionNotFound = errors.New("subscription not found")

type SubscriptionProcessor struct {
	store  SubscriptionStore
	logger *observability.Logger
}

func New(subscriptionStore SubscriptionStore, logger *observability.Logger) SubscriptionProcessor {
	return SubscriptionProcessor{
		store:  subscriptionStore,
		logger: logger,
	}
}

// SubscribeRequest represents a browser registering (or refreshing) its push endpoint
type SubscribeRequest struct {
	Endpoint  string
	P256dh    string
	Auth      string
	SiteID    *uuid.UUID
	UserID    *uuid.UUID
	UserAgent *string
	IPAddress *string
}

// Subscribe registers a push subscription. Resubscribing with the same
// endpoint refreshes the keys instead of creating a duplicate.
func (p *SubscriptionProcessor) Subscribe(ctx context.Context, req SubscribeRequest) (store.Subscription, error) {
	sub, err := p.store.UpsertSubscriptionByEndpoint(ctx, store.UpsertSubscriptionParams{
		Endpoint:  req.Endpoint,
		P256dh:    req.P256dh,
		Auth:      req.Auth,
		SiteID:    req.SiteID,
		UserID:    req.UserID,
		UserAgent: req.UserAgent,
		IPAddress: req.IPAddress,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to upsert subscription", err)
		return store.Subscription{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "subscription_id", Value: sub.ID.String()},
	)
	p.logger.Info(ctx, "subscription registered")
	return sub, nil
}

// GetSubscription retrieves a subscription by ID
func (p *SubscriptionProcessor) GetSubscription(ctx context.Context, subscriptionID uuid.UUID) (store.Subscription, error) {
	sub, err := p.store.GetSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscription{}, ErrSubscriptionNotFound
		}
		p.logger.Error(ctx, "failed to get subscription", err)
		return store.Subscription{}, err
	}
	return sub, nil
}

// ListSubscriptionsResponse represents the subscriptions for a site plus a total count
type ListSubscriptionsResponse struct {
	Subscriptions []store.Subscription `json:"subscriptions"`
	Total         int                  `json:"total"`
}

// ListSubscriptions retrieves subscriptions, optionally scoped to a site
func (p *SubscriptionProcessor) ListSubscriptions(ctx context.Context, siteID *uuid.UUID) (ListSubscriptionsResponse, error) {
	filter := store.SubscriptionFilter{SiteID: siteID}

	subs, err := p.store.ListSubscriptions(ctx, filter)
	if err != nil {
		p.logger.Error(ctx, "failed to list subscriptions", err)
		return ListSubscriptionsResponse{}, err
	}

	total, err := p.store.CountSubscriptions(ctx, filter)
	if err != nil {
		p.logger.Error(ctx, "failed to count subscriptions", err)
		return ListSubscriptionsResponse{}, err
	}

	return ListSubscriptionsResponse{Subscriptions: subs, Total: total}, nil
}

// Unsubscribe removes a subscription. Removing a subscription that is already
// gone succeeds; unsubscribe must be idempotent for browsers that retry.
func (p *SubscriptionProcessor) Unsubscribe(ctx context.Context, subscriptionID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "subscription_id", Value: subscriptionID.String()},
	)

	if err := p.store.DeleteSubscription(ctx, subscriptionID); err != nil {
		p.logger.Error(ctx, "failed to delete subscription", err)
		return err
	}

	p.logger.Info(ctx, "subscription removed")
	return nil
}
