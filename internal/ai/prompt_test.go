package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trungle-dev/content-planner/internal/domain"
)

func testPlanContext() PlanContext {
	return PlanContext{
		BrandName:    "Cà Phê Sáng",
		Industry:     "F&B",
		CoreProducts: []string{"cà phê rang xay", "cold brew"},
		ToneStyle:    "friendly",
		Audience:     "Độ tuổi: 18-30",
		Funnel: &domain.FunnelConfig{
			Awareness:     40,
			Consideration: 30,
			Conversion:    15,
			Loyalty:       10,
			Advocacy:      5,
		},
		RangeStart: "2025-12-01",
		RangeEnd:   "2025-12-31",
	}
}

func TestBuildPlanPrompt(t *testing.T) {
	pc := testPlanContext()
	prompt := BuildPlanPrompt(pc)

	assert.Contains(t, prompt, `"Cà Phê Sáng"`)
	assert.Contains(t, prompt, "cà phê rang xay, cold brew")
	assert.Contains(t, prompt, "Nhận biết (AWARENESS): 40%")
	assert.Contains(t, prompt, "Lan tỏa (ADVOCACY): 5%")
	assert.Contains(t, prompt, "2025-12-01 đến 2025-12-31")
	assert.Contains(t, prompt, `"scheduledDate": "YYYY-MM-DD"`)

	// No campaign or holiday sections without data
	assert.NotContains(t, prompt, "Chiến dịch đang chạy")
	assert.NotContains(t, prompt, "Ngày lễ trong khoảng thời gian")
}

func TestBuildPlanPrompt_CampaignsAndHolidays(t *testing.T) {
	pc := testPlanContext()
	pc.Campaigns = []string{"Sale cuối năm", "Countdown party"}
	pc.Holidays = []domain.RangeHoliday{
		{Name: "Giáng Sinh", Date: "2025-12-25", Category: domain.CategoryShopping},
	}

	prompt := BuildPlanPrompt(pc)

	assert.Contains(t, prompt, "Chiến dịch đang chạy: Sale cuối năm, Countdown party")
	assert.Contains(t, prompt, "Giáng Sinh (2025-12-25)")
}

func TestBuildRewritePrompt(t *testing.T) {
	t.Run("known action uses its template", func(t *testing.T) {
		system, prompt := BuildRewritePrompt(ActionTikTok, "bài viết gốc", "Thương hiệu: X.")

		assert.Contains(t, system, "copywriter")
		assert.Contains(t, system, "Thương hiệu: X.")
		assert.Contains(t, prompt, "kịch bản TikTok")
		assert.True(t, strings.HasSuffix(prompt, "bài viết gốc"))
	})

	t.Run("unknown action falls back to rewrite", func(t *testing.T) {
		_, prompt := BuildRewritePrompt(RewriteAction("shorten"), "văn bản", "")
		assert.Contains(t, prompt, "Viết lại đoạn văn sau")
	})
}

func TestBuildWritePrompt(t *testing.T) {
	system, prompt := BuildWritePrompt(WriteRequest{
		Topic:       "ra mắt cold brew mới",
		FunnelStage: domain.StageConversion,
		Format:      domain.FormatCarousel,
		Platform:    "Instagram",
		BrandName:   "Cà Phê Sáng",
		ToneStyle:   "friendly",
	})

	assert.Contains(t, system, "Thương hiệu: Cà Phê Sáng")
	assert.Contains(t, system, "Tone & Voice: friendly")
	assert.Contains(t, prompt, "CHỦ ĐỀ: ra mắt cold brew mới")
	assert.Contains(t, prompt, "urgency")
	assert.Contains(t, prompt, "carousel")
	assert.Contains(t, prompt, "NỀN TẢNG: Instagram")
	assert.Contains(t, prompt, `"cta"`)
}

func TestBuildWritePrompt_UnknownGuidesFallBack(t *testing.T) {
	_, prompt := BuildWritePrompt(WriteRequest{
		Topic:       "chủ đề",
		FunnelStage: domain.FunnelStage("UNKNOWN"),
		Format:      domain.FormatMeme,
	})

	assert.Contains(t, prompt, "PHỄU: Tùy chọn")
	assert.Contains(t, prompt, "ĐỊNH DẠNG: MEME")
}

func TestBuildImagePrompt(t *testing.T) {
	system, prompt := BuildImagePrompt("Tiêu đề", "Nội dung bài", "Cà Phê Sáng")

	assert.Contains(t, system, "tiếng Anh")
	assert.Contains(t, prompt, "Brand: Cà Phê Sáng")
	assert.Contains(t, prompt, "Tiêu đề: Tiêu đề")
	assert.Contains(t, prompt, "Nội dung: Nội dung bài")
}
