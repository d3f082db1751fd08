package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const campaignColumns = `id, name, title, body, icon_url, image_url, badge_url, click_url, site_id, segment_id, actions, send_type, status, scheduled_at, total_sent, total_failed, total_delivered, total_clicked, error_message, sent_at, created_at, updated_at`

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name        string
	Title       string
	Body        string
	IconURL     *string
	ImageURL    *string
	BadgeURL    *string
	ClickURL    *string
	SiteID      *uuid.UUID
	SegmentID   *uuid.UUID
	Actions     NotificationActions
	SendType    CampaignSendType
	ScheduledAt *time.Time
}

const sqlCreateCampaign = `
INSERT INTO campaigns (name, title, body, icon_url, image_url, badge_url, click_url, site_id, segment_id, actions, send_type, scheduled_at, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, CASE WHEN $11 = 'scheduled' THEN 'scheduled' ELSE 'draft' END)
RETURNING ` + campaignColumns

// CreateCampaign creates a new campaign. A scheduled send type starts in status
// 'scheduled'; immediate and draft sends start as 'draft'.
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.Name,
		params.Title,
		params.Body,
		params.IconURL,
		params.ImageURL,
		params.BadgeURL,
		params.ClickURL,
		params.SiteID,
		params.SegmentID,
		params.Actions,
		params.SendType,
		params.ScheduledAt)
	if err != nil {
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`

// ListCampaigns retrieves campaigns with pagination
func (s *Store) ListCampaigns(ctx context.Context, limit, offset int) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlCountCampaigns = `
SELECT COUNT(*)
FROM campaigns
`

// CountCampaigns counts all campaigns
func (s *Store) CountCampaigns(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountCampaigns)
	if err != nil {
		return 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return count, nil
}

// UpdateCampaignParams represents parameters for updating a campaign
type UpdateCampaignParams struct {
	Name      *string
	Title     *string
	Body      *string
	IconURL   *string
	ImageURL  *string
	BadgeURL  *string
	ClickURL  *string
	SiteID    *uuid.UUID
	SegmentID *uuid.UUID
	Actions   NotificationActions
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = COALESCE($2, name),
    title = COALESCE($3, title),
    body = COALESCE($4, body),
    icon_url = COALESCE($5, icon_url),
    image_url = COALESCE($6, image_url),
    badge_url = COALESCE($7, badge_url),
    click_url = COALESCE($8, click_url),
    site_id = COALESCE($9, site_id),
    segment_id = COALESCE($10, segment_id),
    actions = COALESCE($11, actions),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'draft'
RETURNING ` + campaignColumns

// UpdateCampaign updates a campaign's content and targeting (only while in draft status)
func (s *Store) UpdateCampaign(ctx context.Context, campaignID uuid.UUID, params UpdateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlUpdateCampaign,
		campaignID,
		params.Name,
		params.Title,
		params.Body,
		params.IconURL,
		params.ImageURL,
		params.BadgeURL,
		params.ClickURL,
		params.SiteID,
		params.SegmentID,
		params.Actions)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return campaign, nil
}

// DeleteCampaign permanently deletes a campaign and its execution rows
func (s *Store) DeleteCampaign(ctx context.Context, campaignID uuid.UUID) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM campaign_executions WHERE campaign_id = $1`, campaignID); err != nil {
		return fmt.Errorf("failed to delete campaign executions: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM campaigns WHERE id = $1`, campaignID)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const sqlCancelScheduledCampaign = `
UPDATE campaigns
SET status = 'cancelled',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'scheduled'
RETURNING ` + campaignColumns

// CancelScheduledCampaign moves a campaign from scheduled to cancelled
func (s *Store) CancelScheduledCampaign(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCancelScheduledCampaign, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to cancel campaign: %w", err)
	}
	return campaign, nil
}

const sqlClaimCampaignForDispatch = `
UPDATE campaigns
SET status = 'processing',
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status IN ('draft', 'scheduled')
RETURNING ` + campaignColumns

// ClaimCampaignForDispatch atomically flips an eligible campaign to processing.
// The status gate makes a timer/sweep race resolve to a single winner: the
// losing caller gets ErrNotFound and must treat the dispatch as a no-op.
func (s *Store) ClaimCampaignForDispatch(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlClaimCampaignForDispatch, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		return Campaign{}, fmt.Errorf("failed to claim campaign for dispatch: %w", err)
	}
	return campaign, nil
}

const sqlRevertCampaignStatus = `
UPDATE campaigns
SET status = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
`

// RevertCampaignStatus returns a claimed campaign to its pre-dispatch status so
// the sweep can retry it. Only legal while the campaign is still processing.
func (s *Store) RevertCampaignStatus(ctx context.Context, campaignID uuid.UUID, status CampaignStatus) error {
	res, err := s.db.ExecContext(ctx, sqlRevertCampaignStatus, campaignID, status)
	if err != nil {
		return fmt.Errorf("failed to revert campaign status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlMarkCampaignFailed = `
UPDATE campaigns
SET status = 'failed',
    error_message = $2,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
`

// MarkCampaignFailed marks a processing campaign as failed with an error message
func (s *Store) MarkCampaignFailed(ctx context.Context, campaignID uuid.UUID, errorMessage string) error {
	res, err := s.db.ExecContext(ctx, sqlMarkCampaignFailed, campaignID, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to mark campaign failed: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// DispatchTotals holds the aggregate counters written at the end of one dispatch
type DispatchTotals struct {
	Sent   int
	Failed int
}

// ExecutionRecord is one delivery outcome buffered during a dispatch
type ExecutionRecord struct {
	SubscriptionID *uuid.UUID
	Endpoint       string
	Status         ExecutionStatus
	ErrorMessage   *string
	SentAt         *time.Time
}

const sqlInsertCampaignExecution = `
INSERT INTO campaign_executions (campaign_id, subscription_id, endpoint, status, error_message, sent_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

const sqlFinalizeCampaign = `
UPDATE campaigns
SET status = 'sent',
    total_sent = total_sent + $2,
    total_failed = total_failed + $3,
    sent_at = CURRENT_TIMESTAMP,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
`

// FinalizeCampaignDispatch writes the execution log and the final counters and
// flips the campaign to sent, all in one transaction.
func (s *Store) FinalizeCampaignDispatch(ctx context.Context, campaignID uuid.UUID, totals DispatchTotals, executions []ExecutionRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, sqlInsertCampaignExecution)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, exec := range executions {
		_, err := stmt.ExecContext(ctx, campaignID, exec.SubscriptionID, exec.Endpoint, exec.Status, exec.ErrorMessage, exec.SentAt)
		if err != nil {
			return fmt.Errorf("failed to insert campaign execution: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, sqlFinalizeCampaign, campaignID, totals.Sent, totals.Failed)
	if err != nil {
		return fmt.Errorf("failed to finalize campaign: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const sqlAbortCampaignDispatch = `
UPDATE campaigns
SET status = 'failed',
    error_message = $2,
    total_sent = total_sent + $3,
    total_failed = total_failed + $4,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
`

// AbortCampaignDispatch marks a processing campaign as failed while preserving
// the delivery outcomes that already happened. Used when a dispatch dies after
// some notifications have escaped.
func (s *Store) AbortCampaignDispatch(ctx context.Context, campaignID uuid.UUID, errorMessage string, totals DispatchTotals, executions []ExecutionRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, sqlInsertCampaignExecution)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, exec := range executions {
		_, err := stmt.ExecContext(ctx, campaignID, exec.SubscriptionID, exec.Endpoint, exec.Status, exec.ErrorMessage, exec.SentAt)
		if err != nil {
			return fmt.Errorf("failed to insert campaign execution: %w", err)
		}
	}

	res, err := tx.ExecContext(ctx, sqlAbortCampaignDispatch, campaignID, errorMessage, totals.Sent, totals.Failed)
	if err != nil {
		return fmt.Errorf("failed to abort campaign dispatch: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

const sqlGetDueScheduledCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = 'scheduled' AND scheduled_at <= $1
ORDER BY scheduled_at ASC
`

// GetDueScheduledCampaigns retrieves scheduled campaigns whose fire time has passed
func (s *Store) GetDueScheduledCampaigns(ctx context.Context, beforeTime time.Time) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetDueScheduledCampaigns, beforeTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get due scheduled campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlGetPendingScheduledCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE status = 'scheduled' AND scheduled_at > $1
ORDER BY scheduled_at ASC
`

// GetPendingScheduledCampaigns retrieves scheduled campaigns with a future fire time
func (s *Store) GetPendingScheduledCampaigns(ctx context.Context, afterTime time.Time) ([]Campaign, error) {
	var campaigns []Campaign
	err := s.db.SelectContext(ctx, &campaigns, sqlGetPendingScheduledCampaigns, afterTime)
	if err != nil {
		return nil, fmt.Errorf("failed to get pending scheduled campaigns: %w", err)
	}
	return campaigns, nil
}
