// Package ai defines the completion gateway used for drafting and rewriting
// marketing copy, and the prompt templates sent through it.
package ai

import "context"

// Gateway is the AI completion contract: one call in, text or JSON out.
// No streaming, no multi-turn state, no retries.
type Gateway interface {
	// Name returns the provider identifier
	Name() string

	// IsConfigured checks if the provider has valid credentials
	IsConfigured() bool

	// GenerateText returns the model's free-text completion for the prompt
	GenerateText(ctx context.Context, prompt, system string) (string, error)

	// GenerateJSON asks the model for JSON-constrained output and decodes
	// it into out
	GenerateJSON(ctx context.Context, prompt, system string, out any) error
}

// PlanItem is one drafted content item returned by the plan prompt
type PlanItem struct {
	Title         string   `json:"title"`
	ScheduledDate string   `json:"scheduledDate"`
	FunnelStage   string   `json:"funnelStage"`
	Format        string   `json:"format"`
	Summary       string   `json:"summary"`
	Hashtags      []string `json:"hashtags"`
}

// WriteResult is a complete AI-written post
type WriteResult struct {
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Hashtags []string `json:"hashtags"`
	CTA      string   `json:"cta"`
}
