package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	// Handle empty or null JSON
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	err := json.Unmarshal(bytes, &result)
	if err != nil {
		return err
	}
	*j = result
	return nil
}

// CampaignStatus represents the lifecycle status of a campaign
type CampaignStatus string

const (
	CampaignStatusDraft      CampaignStatus = "draft"
	CampaignStatusScheduled  CampaignStatus = "scheduled"
	CampaignStatusProcessing CampaignStatus = "processing"
	CampaignStatusSent       CampaignStatus = "sent"
	CampaignStatusFailed     CampaignStatus = "failed"
	CampaignStatusCancelled  CampaignStatus = "cancelled"
)

// CampaignSendType represents how a campaign is meant to be sent
type CampaignSendType string

const (
	CampaignSendTypeImmediate CampaignSendType = "immediate"
	CampaignSendTypeScheduled CampaignSendType = "scheduled"
	CampaignSendTypeDraft     CampaignSendType = "draft"
)

// ExecutionStatus represents the outcome of one delivery attempt
type ExecutionStatus string

const (
	ExecutionStatusPending   ExecutionStatus = "pending"
	ExecutionStatusSent      ExecutionStatus = "sent"
	ExecutionStatusDelivered ExecutionStatus = "delivered"
	ExecutionStatusFailed    ExecutionStatus = "failed"
	ExecutionStatusClicked   ExecutionStatus = "clicked"
	ExecutionStatusExpired   ExecutionStatus = "expired"
)

// NotificationAction is a single action button on a notification
type NotificationAction struct {
	Action string `json:"action"`
	Title  string `json:"title"`
	Icon   string `json:"icon,omitempty"`
}

// NotificationActions is a JSONB-backed list of action buttons
type NotificationActions []NotificationAction

// Value implements the driver.Valuer interface for NotificationActions
func (a NotificationActions) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface for NotificationActions
func (a *NotificationActions) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for NotificationActions")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*a = nil
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Campaign represents one notification send intent
type Campaign struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Name     string    `db:"name" json:"name"`
	Title    string    `db:"title" json:"title"`
	Body     string    `db:"body" json:"body"`
	IconURL  *string   `db:"icon_url" json:"icon_url,omitempty"`
	ImageURL *string   `db:"image_url" json:"image_url,omitempty"`
	BadgeURL *string   `db:"badge_url" json:"badge_url,omitempty"`
	ClickURL *string   `db:"click_url" json:"click_url,omitempty"`

	SiteID    *uuid.UUID          `db:"site_id" json:"site_id,omitempty"`
	SegmentID *uuid.UUID          `db:"segment_id" json:"segment_id,omitempty"`
	Actions   NotificationActions `db:"actions" json:"actions,omitempty"`

	SendType    string     `db:"send_type" json:"send_type"`
	Status      string     `db:"status" json:"status"`
	ScheduledAt *time.Time `db:"scheduled_at" json:"scheduled_at,omitempty"`

	TotalSent      int `db:"total_sent" json:"total_sent"`
	TotalFailed    int `db:"total_failed" json:"total_failed"`
	TotalDelivered int `db:"total_delivered" json:"total_delivered"`
	TotalClicked   int `db:"total_clicked" json:"total_clicked"`

	ErrorMessage *string    `db:"error_message" json:"error_message,omitempty"`
	SentAt       *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Subscription represents one browser's push endpoint plus encryption keys
type Subscription struct {
	ID       uuid.UUID `db:"id" json:"id"`
	Endpoint string    `db:"endpoint" json:"endpoint"`
	P256dh   string    `db:"p256dh" json:"p256dh"`
	Auth     string    `db:"auth" json:"auth"`

	SiteID *uuid.UUID `db:"site_id" json:"site_id,omitempty"`
	UserID *uuid.UUID `db:"user_id" json:"user_id,omitempty"`

	UserAgent *string `db:"user_agent" json:"user_agent,omitempty"`
	IPAddress *string `db:"ip_address" json:"ip_address,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Segment represents a named, reusable subscriber-filtering rule.
// Conditions are stored as JSONB and parsed into typed conditions at use time.
type Segment struct {
	ID     uuid.UUID  `db:"id" json:"id"`
	UserID uuid.UUID  `db:"user_id" json:"user_id"`
	SiteID *uuid.UUID `db:"site_id" json:"site_id,omitempty"`

	Name       string `db:"name" json:"name"`
	Conditions JSONB  `db:"conditions" json:"conditions"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// CampaignExecution is one audit-log row per (campaign, subscription) delivery attempt
type CampaignExecution struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	CampaignID     uuid.UUID  `db:"campaign_id" json:"campaign_id"`
	SubscriptionID *uuid.UUID `db:"subscription_id" json:"subscription_id,omitempty"`
	Endpoint       string     `db:"endpoint" json:"endpoint"`

	Status       string  `db:"status" json:"status"`
	ErrorMessage *string `db:"error_message" json:"error_message,omitempty"`

	SentAt      *time.Time `db:"sent_at" json:"sent_at,omitempty"`
	DeliveredAt *time.Time `db:"delivered_at" json:"delivered_at,omitempty"`
	ClickedAt   *time.Time `db:"clicked_at" json:"clicked_at,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}
