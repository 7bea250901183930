// Package narrative turns an extracted résumé draft into a first-person
// About Me paragraph via an LLM, with a hard deadline and a fixed fallback
// text so profile assembly never blocks on the provider.
package narrative

import (
	"context"
	"strings"
	"time"

	"github.com/hyadav1201/autofolio/internal/llm"
	"github.com/hyadav1201/autofolio/internal/types"
)

// DefaultBio is substituted whenever generation fails or times out.
const DefaultBio = "I'm a passionate and driven professional eager to make an impact in my field."

// DefaultTimeout bounds a single generation attempt.
const DefaultTimeout = 30 * time.Second

// Generator produces an About Me narrative for a draft.
type Generator interface {
	Generate(ctx context.Context, draft types.RawDraft) (string, error)
}

// GeminiGenerator generates narratives through an llm.Client.
type GeminiGenerator struct {
	client  llm.Client
	tier    llm.ModelTier
	timeout time.Duration
}

// GeneratorOptions configures a GeminiGenerator.
type GeneratorOptions struct {
	// Tier selects the model tier. Empty means llm.TierLite.
	Tier llm.ModelTier
	// Timeout bounds each generation attempt. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewGeminiGenerator wraps an LLM client as a narrative generator.
func NewGeminiGenerator(client llm.Client, opts *GeneratorOptions) *GeminiGenerator {
	g := &GeminiGenerator{
		client:  client,
		tier:    llm.TierLite,
		timeout: DefaultTimeout,
	}
	if opts != nil {
		if opts.Tier != "" {
			g.tier = opts.Tier
		}
		if opts.Timeout > 0 {
			g.timeout = opts.Timeout
		}
	}
	return g
}

type generateResult struct {
	text string
	err  error
}

// Generate builds the prompt and races the provider call against the
// deadline. On timeout the in-flight call is cancelled and abandoned; its
// late result is discarded. An empty or whitespace-only generation counts as
// a failure.
func (g *GeminiGenerator) Generate(ctx context.Context, draft types.RawDraft) (string, error) {
	prompt := BuildPrompt(draft)

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan generateResult, 1)
	go func() {
		temp := float32(0.7)
		text, err := g.client.GenerateText(callCtx, prompt, g.tier, llm.GenerateOptions{
			Temperature:     &temp,
			MaxOutputTokens: 256,
		})
		ch <- generateResult{text: text, err: err}
	}()

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	select {
	case res := <-ch:
		if res.err != nil {
			return "", &GenerationError{Message: "provider call failed", Cause: res.err}
		}
		text := strings.TrimSpace(res.text)
		if text == "" {
			return "", &GenerationError{Message: "provider returned empty text"}
		}
		return text, nil
	case <-timer.C:
		return "", &TimeoutError{Timeout: g.timeout}
	case <-ctx.Done():
		return "", &GenerationError{Message: "generation cancelled", Cause: ctx.Err()}
	}
}

// WithFallback runs the generator and converts any failure into the default
// bio, returning the warning text alongside. A nil generator yields the
// default bio with no warning.
func WithFallback(ctx context.Context, g Generator, draft types.RawDraft) (bio string, warning string) {
	if g == nil {
		return DefaultBio, ""
	}
	text, err := g.Generate(ctx, draft)
	if err != nil {
		return DefaultBio, err.Error()
	}
	return text, ""
}
