package brain

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/joegirolamo/obsidian-sub002/app/models"
	"github.com/joegirolamo/obsidian-sub002/internal/pkg/env"
)

// Engine produces plain-language insight summaries for a business from its
// current scorecards, opportunities and metrics.
type Engine struct {
	client *genai.Client
	model  string
}

// NewEngine creates a Gemini-backed insight engine.
func NewEngine(ctx context.Context) (*Engine, error) {
	apiKey := env.GetEnv("GEMINI_API_KEY", "")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Engine{
		client: client,
		model:  env.GetEnv("GEMINI_MODEL", "gemini-2.0-flash"),
	}, nil
}

// Insight holds the generated summary together with the prompt focus that was
// requested, so callers can show what the answer was scoped to.
type Insight struct {
	Focus   string `json:"focus"`
	Summary string `json:"summary"`
}

// GenerateInsight builds a snapshot prompt from the business data and asks the
// model for a short advisory summary.
func (e *Engine) GenerateInsight(ctx context.Context, business *models.Business, scorecards []models.Scorecard, opportunities []models.Opportunity, metrics []models.Metric, focus string) (*Insight, error) {
	prompt := buildPrompt(business, scorecards, opportunities, metrics, focus)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := e.client.Models.GenerateContent(ctx, e.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("insight generation failed: %w", err)
	}

	return &Insight{
		Focus:   focus,
		Summary: resp.Text(),
	}, nil
}

func buildPrompt(business *models.Business, scorecards []models.Scorecard, opportunities []models.Opportunity, metrics []models.Metric, focus string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an advisor reviewing the digital health of the business %q.\n\n", business.Name)

	if len(scorecards) > 0 {
		b.WriteString("Scorecards:\n")
		for _, sc := range scorecards {
			fmt.Fprintf(&b, "- %s: %.0f of %.0f\n", sc.Category, sc.Score, sc.MaxScore)
		}
		b.WriteString("\n")
	}

	if len(opportunities) > 0 {
		b.WriteString("Open opportunities:\n")
		for _, op := range opportunities {
			fmt.Fprintf(&b, "- [%s] %s (status %s, timeline %d)\n", op.Category, op.Title, op.Status, op.TimelineSpan)
		}
		b.WriteString("\n")
	}

	if len(metrics) > 0 {
		b.WriteString("Metrics:\n")
		for _, m := range metrics {
			fmt.Fprintf(&b, "- %s: %s (target %s)\n", m.Name, m.Value, m.Target)
		}
		b.WriteString("\n")
	}

	if focus != "" {
		fmt.Fprintf(&b, "Focus your answer on: %s\n", focus)
	}
	b.WriteString("Give a concise summary of strengths, risks, and the top three recommended actions.")

	return b.String()
}
