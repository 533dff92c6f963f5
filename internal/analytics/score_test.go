package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trungle-dev/content-planner/internal/domain"
)

func TestHealthScore(t *testing.T) {
	targets := domain.DefaultFunnelTargets

	t.Run("empty workspace keeps the base score", func(t *testing.T) {
		stats := &DashboardStats{}
		assert.Equal(t, 50, HealthScore(stats, targets))
	})

	t.Run("any content adds ten", func(t *testing.T) {
		stats := &DashboardStats{
			TotalContent:       1,
			FunnelDistribution: []StageCount{{FunnelStage: domain.StageConversion, Count: 1}},
		}
		// +10 content, distribution diff 100+15+30+10+5 >= 50, no bonus
		assert.Equal(t, 60, HealthScore(stats, targets))
	})

	t.Run("perfect distribution clamps at 100", func(t *testing.T) {
		stats := &DashboardStats{
			TotalContent: 20,
			Published:    5,
			FunnelDistribution: []StageCount{
				{FunnelStage: domain.StageAwareness, Count: 8},
				{FunnelStage: domain.StageConsideration, Count: 6},
				{FunnelStage: domain.StageConversion, Count: 3},
				{FunnelStage: domain.StageLoyalty, Count: 2},
				{FunnelStage: domain.StageAdvocacy, Count: 1},
			},
		}
		// 50 + 10 + 10 + 10 + 15 = 95, diff is 0
		assert.Equal(t, 95, HealthScore(stats, targets))
	})

	t.Run("moderate drift earns the small bonus", func(t *testing.T) {
		stats := &DashboardStats{
			TotalContent: 10,
			Published:    1,
			FunnelDistribution: []StageCount{
				{FunnelStage: domain.StageAwareness, Count: 6},
				{FunnelStage: domain.StageConsideration, Count: 4},
			},
		}
		// diff = |60-40| + |40-30| + 15 + 10 + 5 = 60, no funnel bonus
		assert.Equal(t, 80, HealthScore(stats, targets))
	})
}

func TestRatingFor(t *testing.T) {
	tests := []struct {
		score int
		label string
		color string
	}{
		{95, "XUẤT SẮC", "#10b981"},
		{90, "XUẤT SẮC", "#10b981"},
		{80, "TỐT", "#3b82f6"},
		{75, "TỐT", "#3b82f6"},
		{60, "TRUNG BÌNH", "#f59e0b"},
		{50, "TRUNG BÌNH", "#f59e0b"},
		{49, "CẦN CẢI THIỆN", "#ef4444"},
		{0, "CẦN CẢI THIỆN", "#ef4444"},
	}

	for _, tt := range tests {
		r := RatingFor(tt.score)
		assert.Equal(t, tt.label, r.Label, "score %d", tt.score)
		assert.Equal(t, tt.color, r.Color, "score %d", tt.score)
	}
}

func TestStrategize(t *testing.T) {
	t.Run("empty report scores zero everywhere", func(t *testing.T) {
		s := Strategize(BuildReport(nil))
		assert.Equal(t, 0, s.FunnelBalance)
		assert.Equal(t, 0, s.Diversity)
		assert.Equal(t, 0, s.Frequency)
		assert.Equal(t, 0, s.Overall)
		assert.Equal(t, "CẦN CẢI THIỆN", s.Rating.Label)
	})

	t.Run("diversity steps on distinct formats", func(t *testing.T) {
		r := &Report{FormatCounts: map[domain.ContentFormat]int{
			domain.FormatImagePost: 3,
			domain.FormatVideo:     1,
		}}
		assert.Equal(t, 60, diversity(r))

		r.FormatCounts[domain.FormatStory] = 1
		assert.Equal(t, 80, diversity(r))

		r.FormatCounts[domain.FormatReel] = 1
		r.FormatCounts[domain.FormatCarousel] = 1
		assert.Equal(t, 100, diversity(r))
	})

	t.Run("frequency saturates at thirty items", func(t *testing.T) {
		assert.Equal(t, 50, frequency(&Report{Total: 15}))
		assert.Equal(t, 100, frequency(&Report{Total: 30}))
		assert.Equal(t, 100, frequency(&Report{Total: 90}))
	})

	t.Run("ideal mix scores a perfect balance", func(t *testing.T) {
		r := &Report{
			Total: 20,
			FunnelPercentages: map[domain.FunnelStage]int{
				domain.StageAwareness:     35,
				domain.StageConsideration: 30,
				domain.StageConversion:    15,
				domain.StageLoyalty:       10,
				domain.StageAdvocacy:      10,
			},
		}
		assert.Equal(t, 100, funnelBalance(r))
	})

	t.Run("overall is the rounded mean of the three", func(t *testing.T) {
		r := BuildReport([]domain.ContentItem{
			{FunnelStage: domain.StageAwareness, Format: domain.FormatImagePost, Status: domain.StatusDraft},
		})
		s := Strategize(r)
		// balance: 100 - (|100-35|+30+15+10+10) = 0
		// diversity: one format = 40, frequency: round(1/30*100) = 3
		assert.Equal(t, 0, s.FunnelBalance)
		assert.Equal(t, 40, s.Diversity)
		assert.Equal(t, 3, s.Frequency)
		assert.Equal(t, 14, s.Overall)
	})
}
