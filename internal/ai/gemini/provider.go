package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog/log"
	"github.com/trungle-dev/content-planner/internal/config"
	"google.golang.org/api/option"
)

const defaultModel = "gemini-2.0-flash"

// Provider implements ai.Gateway against the Gemini API
type Provider struct {
	apiKey string
	model  string
}

func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

func (p *Provider) modelName() string {
	if p.model != "" {
		return p.model
	}
	return defaultModel
}

func (p *Provider) generate(ctx context.Context, prompt, system string, jsonMode bool) (string, error) {
	if !p.IsConfigured() {
		return "", fmt.Errorf("gemini provider is not configured (missing API key)")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(p.modelName())
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}
	if jsonMode {
		model.ResponseMIMEType = "application/json"
	}

	start := time.Now()
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}
	log.Debug().
		Str("model", p.modelName()).
		Bool("json", jsonMode).
		Int64("latency_ms", latency).
		Int("tokens", tokensUsed).
		Msg("gemini completion")

	return output, nil
}

// GenerateText returns a free-text completion
func (p *Provider) GenerateText(ctx context.Context, prompt, system string) (string, error) {
	return p.generate(ctx, prompt, system, false)
}

// GenerateJSON requests JSON-constrained output and decodes it into out
func (p *Provider) GenerateJSON(ctx context.Context, prompt, system string, out any) error {
	text, err := p.generate(ctx, prompt, system, true)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("malformed gemini JSON response: %w", err)
	}
	return nil
}
