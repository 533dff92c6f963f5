package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trungle-dev/content-planner/internal/domain"
)

func item(stage domain.FunnelStage, format domain.ContentFormat, status domain.ContentStatus) domain.ContentItem {
	return domain.ContentItem{FunnelStage: stage, Format: format, Status: status}
}

func TestBuildReport_Percentages(t *testing.T) {
	items := []domain.ContentItem{
		item(domain.StageAwareness, domain.FormatImagePost, domain.StatusDraft),
		item(domain.StageAwareness, domain.FormatVideo, domain.StatusDraft),
		item(domain.StageConversion, domain.FormatImagePost, domain.StatusPublished),
	}

	r := BuildReport(items)

	assert.Equal(t, 3, r.Total)
	assert.Equal(t, 2, r.FunnelCounts[domain.StageAwareness])
	assert.Equal(t, 1, r.FunnelCounts[domain.StageConversion])
	assert.Equal(t, 67, r.FunnelPercentages[domain.StageAwareness])
	assert.Equal(t, 33, r.FunnelPercentages[domain.StageConversion])
}

func TestBuildReport_Rollups(t *testing.T) {
	items := []domain.ContentItem{
		item(domain.StageAwareness, domain.FormatImagePost, domain.StatusDraft),
		item(domain.StageAdvocacy, domain.FormatImagePost, domain.StatusDraft),
		item(domain.StageConsideration, domain.FormatVideo, domain.StatusDraft),
		item(domain.StageConversion, domain.FormatSale, domain.StatusScheduled),
		item(domain.StageLoyalty, domain.FormatStory, domain.StatusPublished),
	}

	r := BuildReport(items)

	// ToFu = awareness + advocacy, MoFu = consideration, BoFu = conversion + loyalty
	assert.Equal(t, FunnelRollup{Count: 2, Percentage: 40}, r.Tofu)
	assert.Equal(t, FunnelRollup{Count: 1, Percentage: 20}, r.Mofu)
	assert.Equal(t, FunnelRollup{Count: 2, Percentage: 40}, r.Bofu)
}

func TestBuildReport_Empty(t *testing.T) {
	r := BuildReport(nil)

	assert.Equal(t, 0, r.Total)
	assert.Empty(t, r.FunnelCounts)
	assert.Equal(t, FunnelRollup{}, r.Tofu)
	assert.Equal(t, FunnelRollup{}, r.Mofu)
	assert.Equal(t, FunnelRollup{}, r.Bofu)

	// Tracked statuses are always present, even with no items
	for _, s := range domain.TrackedStatuses {
		count, ok := r.StatusCounts[s]
		assert.True(t, ok)
		assert.Equal(t, 0, count)
	}
}

func TestBuildReport_UntrackedStatusExcluded(t *testing.T) {
	items := []domain.ContentItem{
		item(domain.StageAwareness, domain.FormatImagePost, domain.StatusFailed),
		item(domain.StageAwareness, domain.FormatImagePost, domain.StatusPublished),
	}

	r := BuildReport(items)

	// FAILED is outside the tracked set; the item still counts elsewhere
	_, tracked := r.StatusCounts[domain.StatusFailed]
	assert.False(t, tracked)
	assert.Equal(t, 1, r.StatusCounts[domain.StatusPublished])
	assert.Equal(t, 2, r.Total)
	assert.Equal(t, 2, r.FunnelCounts[domain.StageAwareness])
}

func TestBuildReport_TopicProxy(t *testing.T) {
	items := []domain.ContentItem{
		item(domain.StageAwareness, domain.FormatImagePost, domain.StatusDraft),
		item(domain.StageAdvocacy, domain.FormatImagePost, domain.StatusDraft),
		item(domain.StageConsideration, domain.FormatImagePost, domain.StatusDraft),
		item(domain.StageLoyalty, domain.FormatImagePost, domain.StatusDraft),
		item(domain.StageConversion, domain.FormatImagePost, domain.StatusDraft),
	}

	r := BuildReport(items)

	assert.Equal(t, 2, r.TopicCounts[domain.TopicInspiring])
	assert.Equal(t, 2, r.TopicCounts[domain.TopicTrustBuilding])
	assert.Equal(t, 1, r.TopicCounts[domain.TopicPromotional])
}
