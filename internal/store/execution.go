package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

const executionColumns = `id, campaign_id, subscription_id, endpoint, status, error_message, sent_at, delivered_at, clicked_at, created_at`

const sqlGetExecutionsByCampaign = `
SELECT ` + executionColumns + `
FROM campaign_executions
WHERE campaign_id = $1
ORDER BY created_at ASC
LIMIT $2 OFFSET $3
`

// GetExecutionsByCampaign retrieves execution rows for a campaign with pagination
func (s *Store) GetExecutionsByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]CampaignExecution, error) {
	var executions []CampaignExecution
	err := s.db.SelectContext(ctx, &executions, sqlGetExecutionsByCampaign, campaignID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign executions: %w", err)
	}
	return executions, nil
}

const sqlCountExecutionsByCampaign = `
SELECT COUNT(*)
FROM campaign_executions
WHERE campaign_id = $1
`

// CountExecutionsByCampaign counts execution rows for a campaign
func (s *Store) CountExecutionsByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountExecutionsByCampaign, campaignID)
	if err != nil {
		return 0, fmt.Errorf("failed to count campaign executions: %w", err)
	}
	return count, nil
}

// ExecutionStats represents aggregate per-status delivery outcomes for a campaign
type ExecutionStats struct {
	Total     int `db:"total"`
	Sent      int `db:"sent"`
	Delivered int `db:"delivered"`
	Clicked   int `db:"clicked"`
	Failed    int `db:"failed"`
	Expired   int `db:"expired"`
}

const sqlGetExecutionStats = `
SELECT
    COUNT(*) as total,
    COUNT(*) FILTER (WHERE status = 'sent') as sent,
    COUNT(*) FILTER (WHERE status = 'delivered') as delivered,
    COUNT(*) FILTER (WHERE status = 'clicked') as clicked,
    COUNT(*) FILTER (WHERE status = 'failed') as failed,
    COUNT(*) FILTER (WHERE status = 'expired') as expired
FROM campaign_executions
WHERE campaign_id = $1
`

// GetExecutionStats retrieves aggregate delivery outcomes for a campaign
func (s *Store) GetExecutionStats(ctx context.Context, campaignID uuid.UUID) (ExecutionStats, error) {
	var stats ExecutionStats
	err := s.db.GetContext(ctx, &stats, sqlGetExecutionStats, campaignID)
	if err != nil {
		return ExecutionStats{}, fmt.Errorf("failed to get execution stats: %w", err)
	}
	return stats, nil
}
