package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// BrandRepository handles brand voice data access
type BrandRepository struct {
	db *DB
}

// NewBrandRepository creates a new brand voice repository
func NewBrandRepository(db *DB) *BrandRepository {
	return &BrandRepository{db: db}
}

// Upsert writes the brand voice for a workspace. Exactly one row per
// workspace; a second write replaces the first.
func (r *BrandRepository) Upsert(ctx context.Context, workspaceID uuid.UUID, in *domain.BrandVoiceUpsert) (*domain.BrandVoice, error) {
	products, err := json.Marshal(in.CoreProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal core products: %w", err)
	}
	keywords, err := json.Marshal(in.Keywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal keywords: %w", err)
	}
	negative, err := json.Marshal(in.NegativeKeywords)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal negative keywords: %w", err)
	}
	var extended []byte
	if in.Extended != nil {
		extended, err = json.Marshal(in.Extended)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal extended profile: %w", err)
		}
	}

	query := `
		INSERT INTO brand_voices (
			workspace_id, brand_name, industry, core_products, tone_style,
			target_age, target_location, target_interests,
			keywords, negative_keywords, custom_prompt, extended,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (workspace_id) DO UPDATE SET
			brand_name = $2, industry = $3, core_products = $4, tone_style = $5,
			target_age = $6, target_location = $7, target_interests = $8,
			keywords = $9, negative_keywords = $10, custom_prompt = $11,
			extended = $12, updated_at = NOW()
	`

	_, err = r.db.Pool.Exec(ctx, query,
		workspaceID, in.BrandName, in.Industry, products, in.ToneStyle,
		in.TargetAge, in.TargetLocation, in.TargetInterests,
		keywords, negative, in.CustomPrompt, extended,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert brand voice: %w", err)
	}

	return r.Get(ctx, workspaceID)
}

// Get retrieves the brand voice for a workspace, nil when absent
func (r *BrandRepository) Get(ctx context.Context, workspaceID uuid.UUID) (*domain.BrandVoice, error) {
	query := `
		SELECT workspace_id, brand_name, industry, core_products, tone_style,
		       target_age, target_location, target_interests,
		       keywords, negative_keywords, custom_prompt, extended,
		       created_at, updated_at
		FROM brand_voices
		WHERE workspace_id = $1
	`

	var (
		bv                           domain.BrandVoice
		products, keywords, negative []byte
		extended                     []byte
		createdAt, updatedAt         time.Time
	)

	err := r.db.Pool.QueryRow(ctx, query, workspaceID).Scan(
		&bv.WorkspaceID, &bv.BrandName, &bv.Industry, &products, &bv.ToneStyle,
		&bv.TargetAge, &bv.TargetLocation, &bv.TargetInterests,
		&keywords, &negative, &bv.CustomPrompt, &extended,
		&createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get brand voice: %w", err)
	}

	bv.CreatedAt = createdAt
	bv.UpdatedAt = updatedAt
	if len(products) > 0 {
		if err := json.Unmarshal(products, &bv.CoreProducts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal core products: %w", err)
		}
	}
	if len(keywords) > 0 {
		json.Unmarshal(keywords, &bv.Keywords)
	}
	if len(negative) > 0 {
		json.Unmarshal(negative, &bv.NegativeKeywords)
	}
	if len(extended) > 0 {
		var ext domain.BrandExtended
		if err := json.Unmarshal(extended, &ext); err != nil {
			return nil, fmt.Errorf("failed to unmarshal extended profile: %w", err)
		}
		bv.Extended = &ext
	}

	return &bv, nil
}
