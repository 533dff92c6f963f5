package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContentFormat is the delivery format of a content item
type ContentFormat string

const (
	FormatImagePost  ContentFormat = "IMAGE_POST"
	FormatVideo      ContentFormat = "VIDEO"
	FormatCarousel   ContentFormat = "CAROUSEL"
	FormatTextOnly   ContentFormat = "TEXT_ONLY"
	FormatStory      ContentFormat = "STORY"
	FormatReel       ContentFormat = "REEL"
	FormatTikTok     ContentFormat = "TIKTOK"
	FormatLiveStream ContentFormat = "LIVE_STREAM"
	FormatMeme       ContentFormat = "MEME"
	FormatSale       ContentFormat = "SALE"
	FormatPoll       ContentFormat = "POLL"
)

// ContentStatus is the workflow status of a content item. Field updates are
// accepted in any order; no transition sequence is enforced.
type ContentStatus string

const (
	StatusDraft         ContentStatus = "DRAFT"
	StatusPendingReview ContentStatus = "PENDING_REVIEW"
	StatusApproved      ContentStatus = "APPROVED"
	StatusScheduled     ContentStatus = "SCHEDULED"
	StatusPublished     ContentStatus = "PUBLISHED"
	StatusFailed        ContentStatus = "FAILED"
)

// TrackedStatuses is the closed status set the report breaks down by.
// Items carrying any other status are excluded from that breakdown.
var TrackedStatuses = []ContentStatus{
	StatusDraft,
	StatusPendingReview,
	StatusApproved,
	StatusScheduled,
	StatusPublished,
}

// ContentMetadata carries arbitrary per-item extras, e.g. hashtags
type ContentMetadata struct {
	Hashtags []string `json:"hashtags,omitempty"`
	CTA      string   `json:"cta,omitempty"`
}

// ContentItem is a single schedulable piece of marketing content
type ContentItem struct {
	ID            uuid.UUID        `json:"id"`
	WorkspaceID   uuid.UUID        `json:"workspace_id"`
	Title         string           `json:"title"`
	Body          string           `json:"body,omitempty"`
	Format        ContentFormat    `json:"format"`
	FunnelStage   FunnelStage      `json:"funnel_stage"`
	Platform      string           `json:"platform,omitempty"`
	ScheduledDate time.Time        `json:"scheduled_date"`
	Status        ContentStatus    `json:"status"`
	AIImagePrompt string           `json:"ai_image_prompt,omitempty"`
	ImageURL      string           `json:"image_url,omitempty"`
	Metadata      *ContentMetadata `json:"metadata,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// ContentCreate represents content item creation data
type ContentCreate struct {
	WorkspaceID   uuid.UUID        `json:"workspace_id"`
	Title         string           `json:"title" validate:"required,max=500"`
	Body          string           `json:"body,omitempty"`
	Format        ContentFormat    `json:"format,omitempty"`
	FunnelStage   FunnelStage      `json:"funnel_stage" validate:"required"`
	Platform      string           `json:"platform,omitempty" validate:"omitempty,max=100"`
	ScheduledDate time.Time        `json:"scheduled_date"`
	Status        ContentStatus    `json:"status,omitempty"`
	AIImagePrompt string           `json:"ai_image_prompt,omitempty"`
	Metadata      *ContentMetadata `json:"metadata,omitempty"`
}

// ContentUpdate represents a partial content item update; nil fields are left untouched
type ContentUpdate struct {
	Title         *string          `json:"title,omitempty" validate:"omitempty,max=500"`
	Body          *string          `json:"body,omitempty"`
	Format        *ContentFormat   `json:"format,omitempty"`
	FunnelStage   *FunnelStage     `json:"funnel_stage,omitempty"`
	Platform      *string          `json:"platform,omitempty" validate:"omitempty,max=100"`
	ScheduledDate *time.Time       `json:"scheduled_date,omitempty"`
	Status        *ContentStatus   `json:"status,omitempty"`
	AIImagePrompt *string          `json:"ai_image_prompt,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	Metadata      *ContentMetadata `json:"metadata,omitempty"`
}
