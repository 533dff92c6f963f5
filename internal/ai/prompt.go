package ai

import (
	"fmt"
	"strings"

	"github.com/trungle-dev/content-planner/internal/domain"
)

// PlanContext carries everything the plan prompt embeds
type PlanContext struct {
	BrandName    string
	Industry     string
	CoreProducts []string
	ToneStyle    string
	Audience     string
	Funnel       *domain.FunnelConfig
	RangeStart   string
	RangeEnd     string
	Campaigns    []string
	Holidays     []domain.RangeHoliday
	PostsPerDay  int
}

// PlanSystemPrompt frames the model as a content strategist answering in Vietnamese
const PlanSystemPrompt = `Bạn là chuyên gia chiến lược content marketing.
Bạn luôn trả lời bằng tiếng Việt.
Bạn sẽ tạo lịch nội dung chi tiết dựa trên thông tin thương hiệu và phễu marketing được cung cấp.`

// BuildPlanPrompt renders the single structured prompt for plan generation:
// brand identity, funnel allocation, date range, active campaigns, holidays,
// and the required JSON item shape.
func BuildPlanPrompt(pc PlanContext) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tạo lịch nội dung cho thương hiệu %q (ngành: %s).\n\n", pc.BrandName, pc.Industry)
	fmt.Fprintf(&b, "## Thông tin thương hiệu:\n")
	fmt.Fprintf(&b, "- Sản phẩm/Dịch vụ: %s\n", strings.Join(pc.CoreProducts, ", "))
	fmt.Fprintf(&b, "- Tone & Voice: %s\n", pc.ToneStyle)
	fmt.Fprintf(&b, "- Đối tượng: %s\n\n", pc.Audience)

	fmt.Fprintf(&b, "## Phân bổ phễu marketing:\n")
	fmt.Fprintf(&b, "- Nhận biết (AWARENESS): %d%%\n", pc.Funnel.Awareness)
	fmt.Fprintf(&b, "- Cân nhắc (CONSIDERATION): %d%%\n", pc.Funnel.Consideration)
	fmt.Fprintf(&b, "- Chuyển đổi (CONVERSION): %d%%\n", pc.Funnel.Conversion)
	fmt.Fprintf(&b, "- Trung thành (LOYALTY): %d%%\n", pc.Funnel.Loyalty)
	fmt.Fprintf(&b, "- Lan tỏa (ADVOCACY): %d%%\n\n", pc.Funnel.Advocacy)

	fmt.Fprintf(&b, "## Khoảng thời gian: %s đến %s\n", pc.RangeStart, pc.RangeEnd)

	if len(pc.Campaigns) > 0 {
		fmt.Fprintf(&b, "## Chiến dịch đang chạy: %s\n", strings.Join(pc.Campaigns, ", "))
	}
	if len(pc.Holidays) > 0 {
		entries := make([]string, len(pc.Holidays))
		for i, h := range pc.Holidays {
			entries[i] = fmt.Sprintf("%s (%s)", h.Name, h.Date)
		}
		fmt.Fprintf(&b, "## Ngày lễ trong khoảng thời gian: %s\n", strings.Join(entries, ", "))
	}

	b.WriteString(`
Hãy tạo 1 bài viết cho MỖI NGÀY trong khoảng thời gian trên.
Phân bổ theo đúng tỷ lệ phễu đã cho.

Trả về JSON array với mỗi item có format:
{
  "title": "Tiêu đề bài viết",
  "scheduledDate": "YYYY-MM-DD",
  "funnelStage": "AWARENESS|CONSIDERATION|CONVERSION|LOYALTY|ADVOCACY",
  "format": "IMAGE_POST|VIDEO|CAROUSEL|TEXT_ONLY|STORY|REEL",
  "summary": "Mô tả ngắn nội dung bài viết (2-3 câu)",
  "hashtags": ["hashtag1", "hashtag2"]
}`)

	return b.String()
}

// RewriteAction names a copy transformation applied to existing text
type RewriteAction string

const (
	ActionRewrite   RewriteAction = "rewrite"
	ActionExpand    RewriteAction = "expand"
	ActionSummarize RewriteAction = "summarize"
	ActionTikTok    RewriteAction = "tiktok"
	ActionFacebook  RewriteAction = "facebook"
	ActionInstagram RewriteAction = "instagram"
)

var rewritePrompts = map[RewriteAction]string{
	ActionRewrite:   "Viết lại đoạn văn sau với cách diễn đạt mới, giữ nguyên ý chính:\n\n%s",
	ActionExpand:    "Mở rộng và phát triển đoạn văn sau thành bài viết chi tiết hơn:\n\n%s",
	ActionSummarize: "Rút gọn đoạn văn sau thành phiên bản ngắn gọn, súc tích:\n\n%s",
	ActionTikTok:    "Chuyển đổi bài viết sau thành kịch bản TikTok ngắn (hook + nội dung + CTA):\n\n%s",
	ActionFacebook:  "Chuyển đổi nội dung sau thành bài post Facebook thu hút (có emoji, hashtag):\n\n%s",
	ActionInstagram: "Chuyển đổi nội dung sau thành caption Instagram (ngắn gọn, aesthetic, có hashtag):\n\n%s",
}

// BuildRewritePrompt renders the system and user prompts for a rewrite
// action. Unknown actions fall back to a plain rewrite.
func BuildRewritePrompt(action RewriteAction, text, brandContext string) (system, prompt string) {
	system = "Bạn là copywriter chuyên nghiệp. Luôn viết bằng tiếng Việt. " + brandContext
	tpl, ok := rewritePrompts[action]
	if !ok {
		tpl = rewritePrompts[ActionRewrite]
	}
	return system, fmt.Sprintf(tpl, text)
}

// WriteRequest asks for a complete post written from scratch
type WriteRequest struct {
	Topic        string
	FunnelStage  domain.FunnelStage
	Format       domain.ContentFormat
	Platform     string
	BrandName    string
	ToneStyle    string
	Instructions string
}

var funnelGuides = map[domain.FunnelStage]string{
	domain.StageAwareness:     "Tập trung vào giới thiệu, chia sẻ kiến thức, tạo nhận biết thương hiệu. Không bán hàng quá lộ.",
	domain.StageConsideration: "So sánh, review, giáo dục - giúp người đọc hiểu sâu hơn về sản phẩm/dịch vụ.",
	domain.StageConversion:    "Thúc đẩy hành động mua hàng - CTA rõ ràng, ưu đãi hấp dẫn, tạo urgency.",
	domain.StageLoyalty:       "Chăm sóc khách hàng cũ, ưu đãi VIP, stories from customers.",
	domain.StageAdvocacy:      "Khuyến khích chia sẻ, minigame tag bạn bè, UGC content.",
}

var formatGuides = map[domain.ContentFormat]string{
	domain.FormatImagePost: "Viết caption cho bài post ảnh - ngắn gọn, có hook đầu bài, CTA cuối bài.",
	domain.FormatVideo:     "Viết kịch bản video ngắn - có hook 3s, storyline, closing CTA.",
	domain.FormatCarousel:  "Viết nội dung cho carousel (5-7 slides) - mỗi slide 1 ý, từ tổng quát → chi tiết.",
	domain.FormatTextOnly:  "Viết bài text dùng storytelling - dài hơi, personal, có cảm xúc.",
	domain.FormatStory:     "Viết content cho story - ngắn, direct, có poll/question sticker.",
	domain.FormatReel:      "Viết kịch bản reel - trending hook, fast-paced, catchy.",
}

// BuildWritePrompt renders the system and user prompts for writing a full post
func BuildWritePrompt(req WriteRequest) (system, prompt string) {
	var sys strings.Builder
	sys.WriteString("Bạn là copywriter marketing chuyên nghiệp tại Việt Nam.\n")
	sys.WriteString("Bạn viết content sáng tạo, thu hút, phù hợp với nền tảng mạng xã hội.\n")
	sys.WriteString("Luôn viết bằng tiếng Việt, sử dụng emoji phù hợp.\n")
	if req.BrandName != "" {
		fmt.Fprintf(&sys, "Thương hiệu: %s\n", req.BrandName)
	}
	if req.ToneStyle != "" {
		fmt.Fprintf(&sys, "Tone & Voice: %s\n", req.ToneStyle)
	}

	funnelGuide := funnelGuides[req.FunnelStage]
	if funnelGuide == "" {
		funnelGuide = "Tùy chọn"
	}
	formatGuide := formatGuides[req.Format]
	if formatGuide == "" {
		formatGuide = string(req.Format)
	}

	var b strings.Builder
	b.WriteString("Hãy viết bài content marketing hoàn chỉnh với các yêu cầu sau:\n\n")
	fmt.Fprintf(&b, "📌 CHỦ ĐỀ: %s\n", req.Topic)
	fmt.Fprintf(&b, "📌 PHỄU: %s\n", funnelGuide)
	fmt.Fprintf(&b, "📌 ĐỊNH DẠNG: %s\n", formatGuide)
	fmt.Fprintf(&b, "📌 NỀN TẢNG: %s\n", req.Platform)
	if req.Instructions != "" {
		fmt.Fprintf(&b, "📌 YÊU CẦU THÊM: %s\n", req.Instructions)
	}
	b.WriteString(`
Trả về JSON object:
{
  "title": "Tiêu đề bài viết hấp dẫn",
  "body": "Toàn bộ nội dung bài viết (dùng \n cho xuống dòng). Bao gồm emoji phù hợp. Cho bài viết dài và chi tiết.",
  "hashtags": ["hashtag1", "hashtag2", "hashtag3"],
  "cta": "Call-to-action phù hợp"
}`)

	return sys.String(), b.String()
}

// BuildImagePrompt asks for an English image-generation prompt matching a post
func BuildImagePrompt(title, body, brandName string) (system, prompt string) {
	system = "Bạn là chuyên gia tạo prompt cho AI image generation. Trả lời bằng tiếng Anh."
	prompt = fmt.Sprintf(`Dựa trên bài viết marketing sau, tạo 1 prompt chi tiết để AI tạo hình ảnh visual đi kèm.

Brand: %s
Tiêu đề: %s
Nội dung: %s

Tạo prompt bằng tiếng Anh, mô tả chi tiết: phong cách, màu sắc, bố cục, chủ thể chính.
Chỉ trả về prompt, không giải thích thêm.`, brandName, title, body)
	return system, prompt
}
