package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WorkspaceReader is the read-side workspace store contract
type WorkspaceReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Workspace, error)
	Count(ctx context.Context) (int, error)
}

// WorkspaceStore is the full workspace store contract
type WorkspaceStore interface {
	WorkspaceReader
	Create(ctx context.Context, ws *Workspace) error
	List(ctx context.Context) ([]Workspace, error)
	FindOldest(ctx context.Context) (*Workspace, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BrandReader reads a workspace's brand voice; nil when absent
type BrandReader interface {
	Get(ctx context.Context, workspaceID uuid.UUID) (*BrandVoice, error)
}

// BrandStore adds the brand voice upsert
type BrandStore interface {
	BrandReader
	Upsert(ctx context.Context, workspaceID uuid.UUID, in *BrandVoiceUpsert) (*BrandVoice, error)
}

// FunnelReader reads a workspace's funnel config; nil when absent
type FunnelReader interface {
	Get(ctx context.Context, workspaceID uuid.UUID) (*FunnelConfig, error)
}

// FunnelStore adds the funnel config upsert
type FunnelStore interface {
	FunnelReader
	Upsert(ctx context.Context, cfg *FunnelConfig) error
}

// CampaignReader reads campaigns intersecting a date range
type CampaignReader interface {
	ListOverlapping(ctx context.Context, workspaceID uuid.UUID, start, end time.Time) ([]Campaign, error)
}

// CampaignStore is the full campaign store contract
type CampaignStore interface {
	CampaignReader
	Create(ctx context.Context, c *Campaign) error
	GetByID(ctx context.Context, id uuid.UUID) (*Campaign, error)
	ListByWorkspace(ctx context.Context, workspaceID uuid.UUID) ([]Campaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContentStore is the content item store contract
type ContentStore interface {
	Create(ctx context.Context, item *ContentItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*ContentItem, error)
	List(ctx context.Context, workspaceID *uuid.UUID) ([]ContentItem, error)
	Update(ctx context.Context, id uuid.UUID, update *ContentUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status ContentStatus) (int, error)
	GroupByStage(ctx context.Context) (map[FunnelStage]int, error)
	Recent(ctx context.Context, limit int) ([]ContentItem, error)
}
