package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// ContentRepository handles content item data access
type ContentRepository struct {
	db *DB
}

// NewContentRepository creates a new content item repository
func NewContentRepository(db *DB) *ContentRepository {
	return &ContentRepository{db: db}
}

const contentColumns = `
	id, workspace_id, title, body, format, funnel_stage, platform,
	scheduled_date, status, ai_image_prompt, image_url, metadata,
	created_at, updated_at
`

func scanContentItem(row pgx.Row) (*domain.ContentItem, error) {
	var (
		item     domain.ContentItem
		metadata []byte
	)
	err := row.Scan(
		&item.ID, &item.WorkspaceID, &item.Title, &item.Body,
		&item.Format, &item.FunnelStage, &item.Platform,
		&item.ScheduledDate, &item.Status, &item.AIImagePrompt, &item.ImageURL,
		&metadata, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		var md domain.ContentMetadata
		if err := json.Unmarshal(metadata, &md); err != nil {
			return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
		}
		item.Metadata = &md
	}
	return &item, nil
}

func marshalMetadata(md *domain.ContentMetadata) ([]byte, error) {
	if md == nil {
		return nil, nil
	}
	data, err := json.Marshal(md)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return data, nil
}

// Create creates a new content item
func (r *ContentRepository) Create(ctx context.Context, item *domain.ContentItem) error {
	metadata, err := marshalMetadata(item.Metadata)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO content_items (` + contentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err = r.db.Pool.Exec(ctx, query,
		item.ID, item.WorkspaceID, item.Title, item.Body,
		item.Format, item.FunnelStage, item.Platform,
		item.ScheduledDate, item.Status, item.AIImagePrompt, item.ImageURL,
		metadata, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create content item: %w", err)
	}

	return nil
}

// GetByID retrieves a content item by ID, nil when absent
func (r *ContentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items WHERE id = $1`

	item, err := scanContentItem(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content item: %w", err)
	}

	return item, nil
}

// List retrieves content items ordered by scheduled date. A nil workspaceID
// returns items across all workspaces.
func (r *ContentRepository) List(ctx context.Context, workspaceID *uuid.UUID) ([]domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items`
	args := []any{}
	if workspaceID != nil {
		query += ` WHERE workspace_id = $1`
		args = append(args, *workspaceID)
	}
	query += ` ORDER BY scheduled_date ASC`

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list content items: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content item: %w", err)
		}
		items = append(items, *item)
	}

	return items, nil
}

// Update applies a partial update; nil fields keep their stored values
func (r *ContentRepository) Update(ctx context.Context, id uuid.UUID, update *domain.ContentUpdate) error {
	metadata, err := marshalMetadata(update.Metadata)
	if err != nil {
		return err
	}

	query := `
		UPDATE content_items
		SET title = COALESCE($2, title),
		    body = COALESCE($3, body),
		    format = COALESCE($4, format),
		    funnel_stage = COALESCE($5, funnel_stage),
		    platform = COALESCE($6, platform),
		    scheduled_date = COALESCE($7, scheduled_date),
		    status = COALESCE($8, status),
		    ai_image_prompt = COALESCE($9, ai_image_prompt),
		    image_url = COALESCE($10, image_url),
		    metadata = COALESCE($11, metadata),
		    updated_at = NOW()
		WHERE id = $1
	`

	_, err = r.db.Pool.Exec(ctx, query, id,
		update.Title, update.Body, update.Format, update.FunnelStage,
		update.Platform, update.ScheduledDate, update.Status,
		update.AIImagePrompt, update.ImageURL, metadata,
	)
	if err != nil {
		return fmt.Errorf("failed to update content item: %w", err)
	}

	return nil
}

// Delete deletes a content item
func (r *ContentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM content_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete content item: %w", err)
	}
	return nil
}

// CountAll returns the total number of content items
func (r *ContentRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM content_items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count content items: %w", err)
	}
	return count, nil
}

// CountByStatus returns the number of content items with the given status
func (r *ContentRepository) CountByStatus(ctx context.Context, status domain.ContentStatus) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM content_items WHERE status = $1`, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count content items by status: %w", err)
	}
	return count, nil
}

// GroupByStage returns per-stage item counts
func (r *ContentRepository) GroupByStage(ctx context.Context) (map[domain.FunnelStage]int, error) {
	rows, err := r.db.Pool.Query(ctx,
		`SELECT funnel_stage, COUNT(*) FROM content_items GROUP BY funnel_stage`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to group content items by stage: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.FunnelStage]int)
	for rows.Next() {
		var (
			stage domain.FunnelStage
			count int
		)
		if err := rows.Scan(&stage, &count); err != nil {
			return nil, fmt.Errorf("failed to scan stage count: %w", err)
		}
		counts[stage] = count
	}

	return counts, nil
}

// Recent returns the newest-created content items, capped at limit
func (r *ContentRepository) Recent(ctx context.Context, limit int) ([]domain.ContentItem, error) {
	query := `SELECT ` + contentColumns + ` FROM content_items ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent content items: %w", err)
	}
	defer rows.Close()

	var items []domain.ContentItem
	for rows.Next() {
		item, err := scanContentItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan content item: %w", err)
		}
		items = append(items, *item)
	}

	return items, nil
}
