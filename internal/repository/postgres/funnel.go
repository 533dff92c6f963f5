package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// FunnelRepository handles funnel config data access
type FunnelRepository struct {
	db *DB
}

// NewFunnelRepository creates a new funnel config repository
func NewFunnelRepository(db *DB) *FunnelRepository {
	return &FunnelRepository{db: db}
}

// Upsert writes the funnel allocation for a workspace
func (r *FunnelRepository) Upsert(ctx context.Context, cfg *domain.FunnelConfig) error {
	query := `
		INSERT INTO funnel_configs (
			workspace_id, awareness, consideration, conversion, loyalty, advocacy, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (workspace_id) DO UPDATE SET
			awareness = $2, consideration = $3, conversion = $4,
			loyalty = $5, advocacy = $6, updated_at = NOW()
	`

	_, err := r.db.Pool.Exec(ctx, query,
		cfg.WorkspaceID,
		cfg.Awareness,
		cfg.Consideration,
		cfg.Conversion,
		cfg.Loyalty,
		cfg.Advocacy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert funnel config: %w", err)
	}

	return nil
}

// Get retrieves the funnel config for a workspace, nil when absent
func (r *FunnelRepository) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.FunnelConfig, error) {
	query := `
		SELECT workspace_id, awareness, consideration, conversion, loyalty, advocacy, updated_at
		FROM funnel_configs
		WHERE workspace_id = $1
	`

	var cfg domain.FunnelConfig
	err := r.db.Pool.QueryRow(ctx, query, workspaceID).Scan(
		&cfg.WorkspaceID,
		&cfg.Awareness,
		&cfg.Consideration,
		&cfg.Conversion,
		&cfg.Loyalty,
		&cfg.Advocacy,
		&cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get funnel config: %w", err)
	}

	return &cfg, nil
}
