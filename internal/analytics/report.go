package analytics

import (
	"math"

	"github.com/trungle-dev/content-planner/internal/domain"
)

// FunnelRollup is a ToFu/MoFu/BoFu bucket with its share of the total
type FunnelRollup struct {
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// Report is the content-mix breakdown surfaced to the dashboard. Stage
// percentages are rounded independently, so they may not sum to exactly 100.
type Report struct {
	Total             int                            `json:"total"`
	FunnelCounts      map[domain.FunnelStage]int     `json:"funnelCounts"`
	FunnelPercentages map[domain.FunnelStage]int     `json:"funnelPercentages"`
	FormatCounts      map[domain.ContentFormat]int   `json:"formatCounts"`
	StatusCounts      map[domain.ContentStatus]int   `json:"statusCounts"`
	TopicCounts       map[string]int                 `json:"topicCounts"`
	Tofu              FunnelRollup                   `json:"tofu"`
	Mofu              FunnelRollup                   `json:"mofu"`
	Bofu              FunnelRollup                   `json:"bofu"`
}

func pct(count, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(total) * 100))
}

// BuildReport aggregates a set of content items into a Report. Single pass,
// no I/O; items whose status is outside the tracked set are excluded from
// the status breakdown only.
func BuildReport(items []domain.ContentItem) *Report {
	r := &Report{
		Total:             len(items),
		FunnelCounts:      make(map[domain.FunnelStage]int),
		FunnelPercentages: make(map[domain.FunnelStage]int),
		FormatCounts:      make(map[domain.ContentFormat]int),
		StatusCounts:      make(map[domain.ContentStatus]int),
		TopicCounts:       make(map[string]int),
	}
	for _, s := range domain.TrackedStatuses {
		r.StatusCounts[s] = 0
	}

	for _, item := range items {
		r.FunnelCounts[item.FunnelStage]++
		r.FormatCounts[item.Format]++
		if _, tracked := r.StatusCounts[item.Status]; tracked {
			r.StatusCounts[item.Status]++
		}
		r.TopicCounts[domain.TopicForStage(item.FunnelStage)]++
	}

	for stage, count := range r.FunnelCounts {
		r.FunnelPercentages[stage] = pct(count, r.Total)
	}

	tofu := r.FunnelCounts[domain.StageAwareness] + r.FunnelCounts[domain.StageAdvocacy]
	mofu := r.FunnelCounts[domain.StageConsideration]
	bofu := r.FunnelCounts[domain.StageConversion] + r.FunnelCounts[domain.StageLoyalty]
	r.Tofu = FunnelRollup{Count: tofu, Percentage: pct(tofu, r.Total)}
	r.Mofu = FunnelRollup{Count: mofu, Percentage: pct(mofu, r.Total)}
	r.Bofu = FunnelRollup{Count: bofu, Percentage: pct(bofu, r.Total)}

	return r
}
