package domain

// FunnelStage classifies a content item by marketing lifecycle position
type FunnelStage string

const (
	StageAwareness     FunnelStage = "AWARENESS"
	StageConsideration FunnelStage = "CONSIDERATION"
	StageConversion    FunnelStage = "CONVERSION"
	StageLoyalty       FunnelStage = "LOYALTY"
	StageAdvocacy      FunnelStage = "ADVOCACY"
)

// FunnelStages lists all stages in display order
var FunnelStages = []FunnelStage{
	StageAwareness,
	StageConsideration,
	StageConversion,
	StageLoyalty,
	StageAdvocacy,
}

// StageMeta holds display metadata for a funnel stage
type StageMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// StageMetadata maps each stage to its display metadata
var StageMetadata = map[FunnelStage]StageMeta{
	StageAwareness:     {Label: "Nhận biết", Color: "#3b82f6", Icon: "👁️"},
	StageConsideration: {Label: "Cân nhắc", Color: "#f59e0b", Icon: "🤔"},
	StageConversion:    {Label: "Chuyển đổi", Color: "#ef4444", Icon: "🎯"},
	StageLoyalty:       {Label: "Trung thành", Color: "#10b981", Icon: "💚"},
	StageAdvocacy:      {Label: "Lan tỏa", Color: "#8b5cf6", Icon: "📣"},
}

// DefaultFunnelTargets is the allocation seeded into every new FunnelConfig.
// It is a distinct policy from StrategistIdealRatio and the two are never
// reconciled against each other.
var DefaultFunnelTargets = map[FunnelStage]int{
	StageAwareness:     40,
	StageConsideration: 30,
	StageConversion:    15,
	StageLoyalty:       10,
	StageAdvocacy:      5,
}

// StrategistIdealRatio is the baseline used only by the strategist
// funnel-balance sub-score.
var StrategistIdealRatio = map[FunnelStage]int{
	StageAwareness:     35,
	StageConsideration: 30,
	StageConversion:    15,
	StageLoyalty:       10,
	StageAdvocacy:      10,
}

// Topic labels derived from funnel stage. No independent topic field exists
// on ContentItem; the stage is used as a proxy.
const (
	TopicInspiring     = "Inspiring (Truyền cảm hứng)"
	TopicTrustBuilding = "Trust Building (Xây dựng lòng tin)"
	TopicPromotional   = "Promotional (Khuyến mãi)"
	TopicOther         = "Other"
)

// TopicForStage maps a funnel stage to its derived topic label
func TopicForStage(stage FunnelStage) string {
	switch stage {
	case StageAwareness, StageAdvocacy:
		return TopicInspiring
	case StageConsideration, StageLoyalty:
		return TopicTrustBuilding
	case StageConversion:
		return TopicPromotional
	default:
		return TopicOther
	}
}

// IsValidStage reports whether s is one of the five funnel stages
func IsValidStage(s FunnelStage) bool {
	_, ok := StageMetadata[s]
	return ok
}
