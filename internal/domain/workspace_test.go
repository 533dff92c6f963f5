package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBrandVoice_Audience(t *testing.T) {
	tests := []struct {
		name string
		bv   BrandVoice
		want string
	}{
		{
			name: "all fields set",
			bv:   BrandVoice{TargetAge: "25-34", TargetLocation: "Hà Nội", TargetInterests: "thời trang"},
			want: "Độ tuổi: 25-34, Vị trí: Hà Nội, Sở thích: thời trang",
		},
		{
			name: "partial fields skip the missing ones",
			bv:   BrandVoice{TargetLocation: "TP.HCM"},
			want: "Vị trí: TP.HCM",
		},
		{
			name: "empty falls back",
			bv:   BrandVoice{},
			want: "Đa dạng",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bv.Audience())
		})
	}
}

func TestTopicForStage(t *testing.T) {
	assert.Equal(t, TopicInspiring, TopicForStage(StageAwareness))
	assert.Equal(t, TopicInspiring, TopicForStage(StageAdvocacy))
	assert.Equal(t, TopicTrustBuilding, TopicForStage(StageConsideration))
	assert.Equal(t, TopicTrustBuilding, TopicForStage(StageLoyalty))
	assert.Equal(t, TopicPromotional, TopicForStage(StageConversion))
	assert.Equal(t, TopicOther, TopicForStage(FunnelStage("UNKNOWN")))
}

func TestDefaultFunnelConfig(t *testing.T) {
	id := uuid.New()
	cfg := DefaultFunnelConfig(id)

	assert.Equal(t, id, cfg.WorkspaceID)
	assert.Equal(t, 40, cfg.Awareness)
	assert.Equal(t, 30, cfg.Consideration)
	assert.Equal(t, 15, cfg.Conversion)
	assert.Equal(t, 10, cfg.Loyalty)
	assert.Equal(t, 5, cfg.Advocacy)

	// Targets round-trips the same values
	assert.Equal(t, DefaultFunnelTargets, cfg.Targets())
}

func TestIsValidStage(t *testing.T) {
	for _, s := range FunnelStages {
		assert.True(t, IsValidStage(s))
	}
	assert.False(t, IsValidStage(FunnelStage("awareness")))
	assert.False(t, IsValidStage(FunnelStage("")))
}
