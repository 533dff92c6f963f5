package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/trungle-dev/content-planner/internal/ai"
	"github.com/trungle-dev/content-planner/internal/domain"
)

// WriteParams asks for a complete post written for a workspace
type WriteParams struct {
	WorkspaceID  uuid.UUID
	Topic        string
	FunnelStage  domain.FunnelStage
	Format       domain.ContentFormat
	Platform     string
	Instructions string
}

// AIService handles single-shot copywriting operations
type AIService struct {
	gateway   ai.Gateway
	brandRepo domain.BrandReader
}

// NewAIService creates a new AI service
func NewAIService(gateway ai.Gateway, brandRepo domain.BrandReader) *AIService {
	return &AIService{gateway: gateway, brandRepo: brandRepo}
}

func (s *AIService) checkGateway() error {
	if s.gateway == nil || !s.gateway.IsConfigured() {
		return fmt.Errorf("%w: gateway not configured", domain.ErrUpstream)
	}
	return nil
}

// brandContext renders the brand framing injected into rewrite prompts.
// Missing brand voice degrades to an empty context, not an error.
func (s *AIService) brandContext(ctx context.Context, workspaceID uuid.UUID) string {
	brand, err := s.brandRepo.Get(ctx, workspaceID)
	if err != nil || brand == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Thương hiệu: %s (ngành: %s).", brand.BrandName, brand.Industry)
	if brand.ToneStyle != "" {
		fmt.Fprintf(&b, " Tone & Voice: %s.", brand.ToneStyle)
	}
	return b.String()
}

// Rewrite transforms existing copy per the requested action
func (s *AIService) Rewrite(ctx context.Context, workspaceID uuid.UUID, action ai.RewriteAction, text string) (string, error) {
	if err := s.checkGateway(); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text", domain.ErrInvalidInput)
	}

	system, prompt := ai.BuildRewritePrompt(action, text, s.brandContext(ctx, workspaceID))
	out, err := s.gateway.GenerateText(ctx, prompt, system)
	if err != nil {
		log.Error().Err(err).Str("action", string(action)).Msg("rewrite failed")
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return out, nil
}

// Write drafts a complete post from scratch
func (s *AIService) Write(ctx context.Context, params WriteParams) (*ai.WriteResult, error) {
	if err := s.checkGateway(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(params.Topic) == "" {
		return nil, fmt.Errorf("%w: empty topic", domain.ErrInvalidInput)
	}

	req := ai.WriteRequest{
		Topic:        params.Topic,
		FunnelStage:  params.FunnelStage,
		Format:       params.Format,
		Platform:     params.Platform,
		Instructions: params.Instructions,
	}
	if brand, err := s.brandRepo.Get(ctx, params.WorkspaceID); err == nil && brand != nil {
		req.BrandName = brand.BrandName
		req.ToneStyle = brand.ToneStyle
	}

	system, prompt := ai.BuildWritePrompt(req)
	var result ai.WriteResult
	if err := s.gateway.GenerateJSON(ctx, prompt, system, &result); err != nil {
		log.Error().Err(err).Str("topic", params.Topic).Msg("write failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return &result, nil
}

// ImagePrompt produces an English image-generation prompt for a post
func (s *AIService) ImagePrompt(ctx context.Context, workspaceID uuid.UUID, title, body string) (string, error) {
	if err := s.checkGateway(); err != nil {
		return "", err
	}

	brandName := ""
	if brand, err := s.brandRepo.Get(ctx, workspaceID); err == nil && brand != nil {
		brandName = brand.BrandName
	}

	system, prompt := ai.BuildImagePrompt(title, body, brandName)
	out, err := s.gateway.GenerateText(ctx, prompt, system)
	if err != nil {
		log.Error().Err(err).Msg("image prompt generation failed")
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}
	return strings.TrimSpace(out), nil
}
