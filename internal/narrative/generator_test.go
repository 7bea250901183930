package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyadav1201/autofolio/internal/llm"
	"github.com/hyadav1201/autofolio/internal/types"
)

// fakeLLM is a scriptable llm.Client for generator tests.
type fakeLLM struct {
	text  string
	err   error
	delay time.Duration

	gotPrompt string
}

func (f *fakeLLM) GenerateText(ctx context.Context, prompt string, tier llm.ModelTier, opts llm.GenerateOptions) (string, error) {
	f.gotPrompt = prompt
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func (f *fakeLLM) GetModel(tier llm.ModelTier) string { return "fake-model" }

func (f *fakeLLM) Close() error { return nil }

func sampleDraft() types.RawDraft {
	return types.RawDraft{
		Name:       "Jane Smith",
		Profession: "Software Engineer",
		Education: []types.DraftEducation{
			{Degree: "B.S. Computer Science", Institution: "University of Texas"},
		},
		WorkExperience: []types.DraftExperience{
			{JobTitle: "Software Engineer", Organization: "Initech"},
		},
		Skills: []string{"Go", "PostgreSQL", "Docker"},
	}
}

func TestGenerateSuccess(t *testing.T) {
	fake := &fakeLLM{text: "  I build backend systems in Go.  "}
	gen := NewGeminiGenerator(fake, nil)

	text, err := gen.Generate(context.Background(), sampleDraft())
	require.NoError(t, err)
	assert.Equal(t, "I build backend systems in Go.", text)

	assert.Contains(t, fake.gotPrompt, "Name: Jane Smith")
	assert.Contains(t, fake.gotPrompt, "Profession: Software Engineer")
	assert.Contains(t, fake.gotPrompt, "Education: B.S. Computer Science at University of Texas")
	assert.Contains(t, fake.gotPrompt, "Experience: Software Engineer at Initech")
	assert.Contains(t, fake.gotPrompt, "Skills: Go, PostgreSQL, Docker")
}

func TestGenerateProviderError(t *testing.T) {
	fake := &fakeLLM{err: errors.New("quota exceeded")}
	gen := NewGeminiGenerator(fake, nil)

	_, err := gen.Generate(context.Background(), sampleDraft())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Error(), "quota exceeded")
}

func TestGenerateEmptyText(t *testing.T) {
	fake := &fakeLLM{text: "   "}
	gen := NewGeminiGenerator(fake, nil)

	_, err := gen.Generate(context.Background(), sampleDraft())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Contains(t, genErr.Message, "empty")
}

func TestGenerateTimeout(t *testing.T) {
	fake := &fakeLLM{text: "late answer", delay: 200 * time.Millisecond}
	gen := NewGeminiGenerator(fake, &GeneratorOptions{Timeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := gen.Generate(context.Background(), sampleDraft())
	elapsed := time.Since(start)

	var timeoutErr *TimeoutError
	require.ErrorAs(t, err, &timeoutErr)
	assert.Equal(t, 20*time.Millisecond, timeoutErr.Timeout)
	assert.Less(t, elapsed, 150*time.Millisecond)
}

func TestGenerateContextCancelled(t *testing.T) {
	fake := &fakeLLM{text: "answer", delay: time.Second}
	gen := NewGeminiGenerator(fake, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.Generate(ctx, sampleDraft())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}

func TestWithFallbackOnFailure(t *testing.T) {
	fake := &fakeLLM{err: errors.New("boom")}
	gen := NewGeminiGenerator(fake, nil)

	bio, warning := WithFallback(context.Background(), gen, sampleDraft())
	assert.Equal(t, DefaultBio, bio)
	assert.NotEmpty(t, warning)
}

func TestWithFallbackNilGenerator(t *testing.T) {
	bio, warning := WithFallback(context.Background(), nil, sampleDraft())
	assert.Equal(t, DefaultBio, bio)
	assert.Empty(t, warning)
}

func TestBuildPromptEmptyDraft(t *testing.T) {
	prompt := BuildPrompt(types.RawDraft{})
	assert.Contains(t, prompt, "About Me section")
	assert.Contains(t, prompt, "first person")
	assert.NotContains(t, prompt, "Name:")
}

func TestBuildPromptCapsLength(t *testing.T) {
	draft := sampleDraft()
	draft.Name = strings.Repeat("Very Long Name ", 100)

	prompt := BuildPrompt(draft)
	assert.LessOrEqual(t, len(prompt), 1000)
}

func TestBuildPromptFieldLimits(t *testing.T) {
	draft := types.RawDraft{}
	for i := 0; i < 6; i++ {
		draft.Education = append(draft.Education, types.DraftEducation{
			Degree: "Degree", Institution: "School",
		})
		draft.WorkExperience = append(draft.WorkExperience, types.DraftExperience{
			JobTitle: "Title", Organization: "Org",
		})
	}
	for i := 0; i < 15; i++ {
		draft.Skills = append(draft.Skills, "Skill")
	}

	prompt := BuildPrompt(draft)
	assert.Equal(t, 3, strings.Count(prompt, "Degree at School"))
	assert.Equal(t, 3, strings.Count(prompt, "Title at Org"))
	assert.Equal(t, 10, strings.Count(prompt, "Skill"))
}
