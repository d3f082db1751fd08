package webpush

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"push-server/internal/observability"
	"push-server/internal/store"

	webpushgo "github.com/SherClockHolmes/webpush-go"
)

// ErrEndpointGone marks endpoints the push service reports as permanently
// dead. Callers should drop the subscription rather than retry.
var ErrEndpointGone = errors.New("push endpoint gone")

type Client struct {
	vapidPublicKey  string
	vapidPrivateKey string
	subscriber      string
	httpClient      *http.Client
	logger          *observability.Logger
}

func NewClient(vapidPublicKey, vapidPrivateKey, subscriber string, httpClient *http.Client, logger *observability.Logger) (*Client, error) {
	if vapidPublicKey == "" || vapidPrivateKey == "" {
		return nil, fmt.Errorf("VAPID key pair is required")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		vapidPublicKey:  vapidPublicKey,
		vapidPrivateKey: vapidPrivateKey,
		subscriber:      subscriber,
		httpClient:      httpClient,
		logger:          logger,
	}, nil
}

// Send delivers one encrypted payload to a subscription's push endpoint.
// Returns ErrEndpointGone when the push service answers 404 or 410.
func (c *Client) Send(ctx context.Context, sub store.Subscription, payload []byte) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "subscription_id", Value: sub.ID.String()},
	)

	resp, err := webpushgo.SendNotificationWithContext(ctx, payload, &webpushgo.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpushgo.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpushgo.Options{
		Subscriber:      c.subscriber,
		VAPIDPublicKey:  c.vapidPublicKey,
		VAPIDPrivateKey: c.vapidPrivateKey,
		TTL:             86400,
		HTTPClient:      c.httpClient,
	})
	if err != nil {
		c.logger.Error(ctx, "failed to send push notification", err)
		return fmt.Errorf("failed to send push notification: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return fmt.Errorf("%w: status %d", ErrEndpointGone, resp.StatusCode)
	case resp.StatusCode >= 400:
		err := fmt.Errorf("push service returned status %d", resp.StatusCode)
		c.logger.Error(ctx, "push service rejected notification", err)
		return err
	}

	return nil
}
