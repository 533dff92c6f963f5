package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// WorkspaceRepository handles workspace data access
type WorkspaceRepository struct {
	db *DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *DB) *WorkspaceRepository {
	return &WorkspaceRepository{db: db}
}

// Create creates a new workspace
func (r *WorkspaceRepository) Create(ctx context.Context, ws *domain.Workspace) error {
	query := `
		INSERT INTO workspaces (id, name, slug, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		ws.ID,
		ws.Name,
		ws.Slug,
		ws.Description,
		ws.CreatedAt,
		ws.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}

	return nil
}

const workspaceColumns = `
	w.id, w.name, w.slug, w.description, w.created_at, w.updated_at,
	(SELECT COUNT(*) FROM workspace_members m WHERE m.workspace_id = w.id),
	(SELECT COUNT(*) FROM content_items c WHERE c.workspace_id = w.id)
`

func scanWorkspace(row pgx.Row) (*domain.Workspace, error) {
	var ws domain.Workspace
	err := row.Scan(
		&ws.ID,
		&ws.Name,
		&ws.Slug,
		&ws.Description,
		&ws.CreatedAt,
		&ws.UpdatedAt,
		&ws.MemberCount,
		&ws.ContentCount,
	)
	if err != nil {
		return nil, err
	}
	return &ws, nil
}

// GetByID retrieves a workspace by ID, nil when absent
func (r *WorkspaceRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces w WHERE w.id = $1`

	ws, err := scanWorkspace(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return ws, nil
}

// List retrieves all workspaces, most recently updated first
func (r *WorkspaceRepository) List(ctx context.Context) ([]domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces w ORDER BY w.updated_at DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []domain.Workspace
	for rows.Next() {
		ws, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, *ws)
	}

	return workspaces, nil
}

// FindOldest returns the earliest-created workspace, nil when none exist
func (r *WorkspaceRepository) FindOldest(ctx context.Context) (*domain.Workspace, error) {
	query := `SELECT ` + workspaceColumns + ` FROM workspaces w ORDER BY w.created_at ASC LIMIT 1`

	ws, err := scanWorkspace(r.db.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find oldest workspace: %w", err)
	}

	return ws, nil
}

// Count returns the number of workspaces
func (r *WorkspaceRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM workspaces`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count workspaces: %w", err)
	}
	return count, nil
}

// SlugExists reports whether a slug is already taken
func (r *WorkspaceRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM workspaces WHERE slug = $1)`, slug,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check slug: %w", err)
	}
	return exists, nil
}

// Delete deletes a workspace; children cascade at the schema level
func (r *WorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Pool.Exec(ctx, `DELETE FROM workspaces WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}
	return nil
}
