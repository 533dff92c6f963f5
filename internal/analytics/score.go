package analytics

import (
	"math"

	"github.com/trungle-dev/content-planner/internal/domain"
)

// StageCount is one bucket of the dashboard funnel distribution
type StageCount struct {
	FunnelStage domain.FunnelStage `json:"funnelStage"`
	Count       int                `json:"_count"`
}

// DashboardStats is the aggregate view backing the main dashboard
type DashboardStats struct {
	TotalContent       int                  `json:"totalContent"`
	Scheduled          int                  `json:"scheduled"`
	Published          int                  `json:"published"`
	Drafts             int                  `json:"drafts"`
	Pending            int                  `json:"pending"`
	WorkspaceCount     int                  `json:"workspaceCount"`
	FunnelDistribution []StageCount         `json:"funnelDistribution"`
	RecentItems        []domain.ContentItem `json:"recentItems"`
}

// HealthScore summarizes content volume, publication progress and adherence
// to the workspace funnel targets. Base 50, bonuses are independent, result
// clamped to 100.
func HealthScore(stats *DashboardStats, targets map[domain.FunnelStage]int) int {
	score := 50
	if stats.TotalContent > 0 {
		score += 10
	}
	if stats.Published > 0 {
		score += 10
	}
	if stats.TotalContent >= 10 {
		score += 10
	}

	total := 0
	counts := make(map[domain.FunnelStage]int, len(stats.FunnelDistribution))
	for _, d := range stats.FunnelDistribution {
		counts[d.FunnelStage] = d.Count
		total += d.Count
	}
	if total > 0 {
		diff := 0.0
		for stage, target := range targets {
			actualPct := float64(counts[stage]) / float64(total) * 100
			diff += math.Abs(actualPct - float64(target))
		}
		if diff < 30 {
			score += 15
		} else if diff < 50 {
			score += 5
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// Rating is a 4-level classification of a strategist score
type Rating struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

// RatingFor buckets a 0-100 score into its rating
func RatingFor(score int) Rating {
	switch {
	case score >= 90:
		return Rating{Label: "XUẤT SẮC", Color: "#10b981"}
	case score >= 75:
		return Rating{Label: "TỐT", Color: "#3b82f6"}
	case score >= 50:
		return Rating{Label: "TRUNG BÌNH", Color: "#f59e0b"}
	default:
		return Rating{Label: "CẦN CẢI THIỆN", Color: "#ef4444"}
	}
}

// StrategistScore is the composite scoring view: three independent
// sub-scores averaged, then rated.
type StrategistScore struct {
	FunnelBalance int    `json:"funnelBalance"`
	Diversity     int    `json:"diversity"`
	Frequency     int    `json:"frequency"`
	Overall       int    `json:"overall"`
	Rating        Rating `json:"rating"`
}

// funnelBalance scores deviation from the strategist ideal ratio
// (35/30/15/10/10), a deliberately distinct policy from the workspace
// default targets.
func funnelBalance(r *Report) int {
	if r.Total == 0 {
		return 0
	}
	totalDiff := 0
	for _, stage := range domain.FunnelStages {
		d := r.FunnelPercentages[stage] - domain.StrategistIdealRatio[stage]
		if d < 0 {
			d = -d
		}
		totalDiff += d
	}
	score := 100 - totalDiff
	if score < 0 {
		score = 0
	}
	return score
}

// diversity is a step function of distinct format count
func diversity(r *Report) int {
	n := len(r.FormatCounts)
	switch {
	case n >= 5:
		return 100
	case n >= 3:
		return 80
	case n >= 2:
		return 60
	case n >= 1:
		return 40
	default:
		return 0
	}
}

// frequency saturates at 30 items per month
func frequency(r *Report) int {
	if r.Total == 0 {
		return 0
	}
	ratio := float64(r.Total) / 30
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(ratio * 100))
}

// Strategize computes the composite strategist score for a report
func Strategize(r *Report) StrategistScore {
	s := StrategistScore{
		FunnelBalance: funnelBalance(r),
		Diversity:     diversity(r),
		Frequency:     frequency(r),
	}
	s.Overall = int(math.Round(float64(s.FunnelBalance+s.Diversity+s.Frequency) / 3))
	s.Rating = RatingFor(s.Overall)
	return s
}
