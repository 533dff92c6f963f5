package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// CampaignRepository handles campaign data access
type CampaignRepository struct {
	db *DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *DB) *CampaignRepository {
	return &CampaignRepository{db: db}
}

const campaignColumns = `id, workspace_id, name, description, start_date, end_date, status, created_at, updated_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID, &c.WorkspaceID, &c.Name, &c.Description,
		&c.StartDate, &c.EndDate, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create creates a new campaign
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	query := `
		INSERT INTO campaigns (` + campaignColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		c.ID, c.WorkspaceID, c.Name, c.Description,
		c.StartDate, c.EndDate, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	return nil
}

// GetByID retrieves a campaign by ID, nil when absent
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE id = $1`

	c, err := scanCampaign(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return c, nil
}

// ListByWorkspace retrieves a workspace's campaigns ordered by start date
func (r *CampaignRepository) ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE workspace_id = $1 ORDER BY start_date ASC`

	rows, err := r.db.Pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, *c)
	}

	return campaigns, nil
}

// ListOverlapping retrieves campaigns whose period intersects [start, end]
func (r *CampaignRepository) ListOverlapping(ctx context.Context, workspaceID uuid.UUID, start, end time.Time) ([]domain.Campaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE workspace_id = $1 AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date ASC
	`

	rows, err := r.db.Pool.Query(ctx, query, workspaceID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []domain.Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, *c)
	}

	return campaigns, nil
}

// Delete deletes a campaign
func (r *CampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}
