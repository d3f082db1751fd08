package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const subscriptionColumns = `id, endpoint, p256dh, auth, site_id, user_id, user_agent, ip_address, created_at, updated_at`

// UpsertSubscriptionParams represents parameters for the subscribe flow
type UpsertSubscriptionParams struct {
	Endpoint  string
	P256dh    string
	Auth      string
	SiteID    *uuid.UUID
	UserID    *uuid.UUID
	UserAgent *string
	IPAddress *string
}

const sqlUpsertSubscriptionByEndpoint = `
INSERT INTO subscriptions (endpoint, p256dh, auth, site_id, user_id, user_agent, ip_address)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (endpoint) DO UPDATE
SET p256dh = EXCLUDED.p256dh,
    auth = EXCLUDED.auth,
    site_id = COALESCE(EXCLUDED.site_id, subscriptions.site_id),
    user_id = COALESCE(EXCLUDED.user_id, subscriptions.user_id),
    user_agent = COALESCE(EXCLUDED.user_agent, subscriptions.user_agent),
    ip_address = COALESCE(EXCLUDED.ip_address, subscriptions.ip_address),
    updated_at = CURRENT_TIMESTAMP
RETURNING ` + subscriptionColumns

// UpsertSubscriptionByEndpoint inserts or refreshes a subscription keyed by its
// endpoint URL. Endpoints are globally unique, so resubscribing is idempotent.
func (s *Store) UpsertSubscriptionByEndpoint(ctx context.Context, params UpsertSubscriptionParams) (Subscription, error) {
	var sub Subscription
	err := s.db.GetContext(ctx, &sub, sqlUpsertSubscriptionByEndpoint,
		params.Endpoint,
		params.P256dh,
		params.Auth,
		params.SiteID,
		params.UserID,
		params.UserAgent,
		params.IPAddress)
	if err != nil {
		return Subscription{}, fmt.Errorf("failed to upsert subscription: %w", err)
	}
	return sub, nil
}

const sqlGetSubscriptionByID = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE id = $1
`

// GetSubscriptionByID retrieves a subscription by ID
func (s *Store) GetSubscriptionByID(ctx context.Context, subscriptionID uuid.UUID) (Subscription, error) {
	var sub Subscription
	err := s.db.GetContext(ctx, &sub, sqlGetSubscriptionByID, subscriptionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscription{}, ErrNotFound
		}
		return Subscription{}, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

// SubscriptionFilter narrows a subscription listing
type SubscriptionFilter struct {
	SiteID *uuid.UUID
}

const sqlListSubscriptions = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
ORDER BY created_at ASC
`

const sqlListSubscriptionsBySite = `
SELECT ` + subscriptionColumns + `
FROM subscriptions
WHERE site_id = $1
ORDER BY created_at ASC
`

// ListSubscriptions retrieves live subscriptions, optionally scoped to one site.
// Ordering by creation time keeps results stable for callers and tests.
func (s *Store) ListSubscriptions(ctx context.Context, filter SubscriptionFilter) ([]Subscription, error) {
	var subs []Subscription
	var err error
	if filter.SiteID != nil {
		err = s.db.SelectContext(ctx, &subs, sqlListSubscriptionsBySite, *filter.SiteID)
	} else {
		err = s.db.SelectContext(ctx, &subs, sqlListSubscriptions)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	return subs, nil
}

const sqlCountSubscriptions = `
SELECT COUNT(*)
FROM subscriptions
WHERE ($1::uuid IS NULL OR site_id = $1)
`

// CountSubscriptions counts live subscriptions, optionally scoped to one site
func (s *Store) CountSubscriptions(ctx context.Context, filter SubscriptionFilter) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountSubscriptions, filter.SiteID)
	if err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}
	return count, nil
}

const sqlDeleteSubscription = `
DELETE FROM subscriptions
WHERE id = $1
`

// DeleteSubscription permanently removes a subscription. Deleting a nonexistent
// id is a no-op: concurrent deliveries within one dispatch may race to delete
// the same dead endpoint.
func (s *Store) DeleteSubscription(ctx context.Context, subscriptionID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlDeleteSubscription, subscriptionID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	return nil
}
