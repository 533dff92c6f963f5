package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workspace is the tenant boundary owning brand, funnel config, campaigns and content
type Workspace struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Description  string    `json:"description,omitempty"`
	MemberCount  int       `json:"member_count"`
	ContentCount int       `json:"content_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// WorkspaceCreate represents workspace creation data
type WorkspaceCreate struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// WorkspaceDetail is a workspace with its 1:1 attachments and campaigns loaded
type WorkspaceDetail struct {
	Workspace
	Brand     *BrandVoice   `json:"brand,omitempty"`
	Funnel    *FunnelConfig `json:"funnel_config,omitempty"`
	Campaigns []Campaign    `json:"campaigns,omitempty"`
}

// BrandExtended is the structured brand profile previously smuggled through
// the custom prompt as nested JSON. Stored as a jsonb column.
type BrandExtended struct {
	Slogan          string   `json:"slogan,omitempty"`
	Mission         string   `json:"mission,omitempty"`
	Story           string   `json:"story,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	Fonts           []string `json:"fonts,omitempty"`
	Dos             []string `json:"dos,omitempty"`
	Donts           []string `json:"donts,omitempty"`
	HashtagStrategy string   `json:"hashtag_strategy,omitempty"`
	Competitors     []string `json:"competitors,omitempty"`
}

// BrandVoice holds the brand identity for a workspace. Exactly one per
// workspace, written with upsert semantics keyed by workspace id.
type BrandVoice struct {
	WorkspaceID      uuid.UUID      `json:"workspace_id"`
	BrandName        string         `json:"brand_name"`
	Industry         string         `json:"industry"`
	CoreProducts     []string       `json:"core_products"`
	ToneStyle        string         `json:"tone_style"`
	TargetAge        string         `json:"target_age,omitempty"`
	TargetLocation   string         `json:"target_location,omitempty"`
	TargetInterests  string         `json:"target_interests,omitempty"`
	Keywords         []string       `json:"keywords,omitempty"`
	NegativeKeywords []string       `json:"negative_keywords,omitempty"`
	CustomPrompt     string         `json:"custom_prompt,omitempty"`
	Extended         *BrandExtended `json:"extended,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// BrandVoiceUpsert represents brand voice write data
type BrandVoiceUpsert struct {
	BrandName        string         `json:"brand_name" validate:"required,max=255"`
	Industry         string         `json:"industry" validate:"required,max=255"`
	CoreProducts     []string       `json:"core_products"`
	ToneStyle        string         `json:"tone_style" validate:"required,oneof=professional friendly playful luxury minimal bold"`
	TargetAge        string         `json:"target_age,omitempty"`
	TargetLocation   string         `json:"target_location,omitempty"`
	TargetInterests  string         `json:"target_interests,omitempty"`
	Keywords         []string       `json:"keywords,omitempty"`
	NegativeKeywords []string       `json:"negative_keywords,omitempty"`
	CustomPrompt     string         `json:"custom_prompt,omitempty"`
	Extended         *BrandExtended `json:"extended,omitempty"`
}

// Audience builds the audience description used in prompts: non-empty
// demographic fields joined by ", ", "Đa dạng" when all are empty.
func (b *BrandVoice) Audience() string {
	parts := make([]string, 0, 3)
	if b.TargetAge != "" {
		parts = append(parts, "Độ tuổi: "+b.TargetAge)
	}
	if b.TargetLocation != "" {
		parts = append(parts, "Vị trí: "+b.TargetLocation)
	}
	if b.TargetInterests != "" {
		parts = append(parts, "Sở thích: "+b.TargetInterests)
	}
	if len(parts) == 0 {
		return "Đa dạng"
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += ", " + p
	}
	return out
}

// FunnelConfig holds the per-workspace allocation targets. The five values
// are not required to sum to 100; drift is tolerated and displayed.
type FunnelConfig struct {
	WorkspaceID   uuid.UUID `json:"workspace_id"`
	Awareness     int       `json:"awareness"`
	Consideration int       `json:"consideration"`
	Conversion    int       `json:"conversion"`
	Loyalty       int       `json:"loyalty"`
	Advocacy      int       `json:"advocacy"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// FunnelConfigUpsert represents funnel config write data
type FunnelConfigUpsert struct {
	Awareness     int `json:"awareness" validate:"min=0,max=100"`
	Consideration int `json:"consideration" validate:"min=0,max=100"`
	Conversion    int `json:"conversion" validate:"min=0,max=100"`
	Loyalty       int `json:"loyalty" validate:"min=0,max=100"`
	Advocacy      int `json:"advocacy" validate:"min=0,max=100"`
}

// DefaultFunnelConfig returns a config seeded with the default targets
func DefaultFunnelConfig(workspaceID uuid.UUID) *FunnelConfig {
	return &FunnelConfig{
		WorkspaceID:   workspaceID,
		Awareness:     DefaultFunnelTargets[StageAwareness],
		Consideration: DefaultFunnelTargets[StageConsideration],
		Conversion:    DefaultFunnelTargets[StageConversion],
		Loyalty:       DefaultFunnelTargets[StageLoyalty],
		Advocacy:      DefaultFunnelTargets[StageAdvocacy],
	}
}

// Targets returns the config as a stage-keyed map
func (f *FunnelConfig) Targets() map[FunnelStage]int {
	return map[FunnelStage]int{
		StageAwareness:     f.Awareness,
		StageConsideration: f.Consideration,
		StageConversion:    f.Conversion,
		StageLoyalty:       f.Loyalty,
		StageAdvocacy:      f.Advocacy,
	}
}
