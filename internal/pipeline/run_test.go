package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyadav1201/autofolio/internal/docparse"
	"github.com/hyadav1201/autofolio/internal/document"
	"github.com/hyadav1201/autofolio/internal/types"
)

// fakeRemote is a scriptable docparse.Client.
type fakeRemote struct {
	draft *types.RawDraft
	err   error
	calls int
}

func (f *fakeRemote) Parse(ctx context.Context, filename string, doc []byte) (*types.RawDraft, error) {
	f.calls++
	return f.draft, f.err
}

// fakeNarrator is a scriptable narrative.Generator.
type fakeNarrator struct {
	text  string
	err   error
	calls int
}

func (f *fakeNarrator) Generate(ctx context.Context, draft types.RawDraft) (string, error) {
	f.calls++
	return f.text, f.err
}

func pdfDoc() []byte {
	return []byte("%PDF-1.4 test document")
}

func textExtractor(content string) func([]byte) (*document.Text, error) {
	return func([]byte) (*document.Text, error) {
		return &document.Text{Content: content, Pages: 1}, nil
	}
}

const sampleResumeText = `Jane Smith
jane@example.com

Summary
Backend engineer with five years of experience.

Skills
Go, PostgreSQL, Docker
`

// sampleResumeTextNoSummary has no summary, objective, or about-me, so the
// pipeline must reach the narrative stage.
const sampleResumeTextNoSummary = `Jane Smith
jane@example.com

Skills
Go, PostgreSQL, Docker
`

func TestRunRemoteTier(t *testing.T) {
	remote := &fakeRemote{draft: &types.RawDraft{
		Source:     types.SourceRemoteService,
		Name:       "Jane Smith",
		Profession: "Software Engineer",
	}}
	narrator := &fakeNarrator{text: "I build backend systems."}

	result, err := Run(context.Background(), RunOptions{
		Filename:  "resume.pdf",
		Document:  pdfDoc(),
		Remote:    remote,
		Narrative: narrator,
	})
	require.NoError(t, err)

	assert.Equal(t, types.SourceRemoteService, result.Source)
	assert.Equal(t, "Jane Smith", result.Profile.FullName)
	assert.Equal(t, "I build backend systems.", result.Profile.AboutMe)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, 1, narrator.calls)
}

func TestRunFallsBackToLocalTier(t *testing.T) {
	remote := &fakeRemote{err: &docparse.UnavailableError{Message: "HTTP status 503"}}
	narrator := &fakeNarrator{text: "Generated bio."}

	var events []ProgressEvent
	session := NewSession(func(e ProgressEvent) { events = append(events, e) })

	result, err := Run(context.Background(), RunOptions{
		Filename:    "resume.pdf",
		Document:    pdfDoc(),
		Remote:      remote,
		Narrative:   narrator,
		ExtractText: textExtractor(sampleResumeText),
		Session:     session,
	})
	require.NoError(t, err)

	assert.Equal(t, types.SourceLocalHeuristic, result.Source)
	assert.Equal(t, "Jane Smith", result.Profile.FullName)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "unavailable")

	var stages []Stage
	for _, e := range events {
		stages = append(stages, e.Stage)
	}
	assert.Contains(t, stages, StageRemoteFailed)
	assert.Contains(t, stages, StageLocalParsing)
	assert.Equal(t, StageComplete, stages[len(stages)-1])
}

func TestRunNoRemoteConfigured(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{
		Filename:    "resume.pdf",
		Document:    pdfDoc(),
		ExtractText: textExtractor(sampleResumeText),
	})
	require.NoError(t, err)
	assert.Equal(t, types.SourceLocalHeuristic, result.Source)
}

func TestRunValidationFailure(t *testing.T) {
	session := NewSession(nil)
	_, err := Run(context.Background(), RunOptions{
		Filename: "resume.txt",
		Document: []byte("plain text, not a pdf"),
		Session:  session,
	})

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	stage, _, _ := session.Snapshot()
	assert.Equal(t, StageError, stage)
}

func TestRunUnreadableDocumentIsTerminal(t *testing.T) {
	result, err := Run(context.Background(), RunOptions{
		Filename: "resume.pdf",
		Document: pdfDoc(),
		ExtractText: func([]byte) (*document.Text, error) {
			return nil, &document.UnreadableError{Cause: errors.New("bad xref")}
		},
	})
	require.Nil(t, result)

	var unreadable *document.UnreadableError
	require.ErrorAs(t, err, &unreadable)
}

func TestRunNarrativeFailureDegradesToDefaultBio(t *testing.T) {
	narrator := &fakeNarrator{err: errors.New("provider down")}

	var last ProgressEvent
	session := NewSession(func(e ProgressEvent) { last = e })

	result, err := Run(context.Background(), RunOptions{
		Filename:    "resume.pdf",
		Document:    pdfDoc(),
		Narrative:   narrator,
		ExtractText: textExtractor(sampleResumeTextNoSummary),
		Session:     session,
	})
	require.NoError(t, err)

	assert.Equal(t, "I'm a passionate and driven professional eager to make an impact in my field.", result.Profile.AboutMe)
	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, statusCompleteDegraded, last.Status)
	assert.False(t, result.Provenance.Has(types.FieldAboutMe))
}

func TestRunSkipsNarrativeWhenAboutMePresent(t *testing.T) {
	remote := &fakeRemote{draft: &types.RawDraft{
		Source:  types.SourceRemoteService,
		Name:    "Jane Smith",
		AboutMe: "I already wrote this.",
	}}
	narrator := &fakeNarrator{text: "should not be used"}

	result, err := Run(context.Background(), RunOptions{
		Filename:  "resume.pdf",
		Document:  pdfDoc(),
		Remote:    remote,
		Narrative: narrator,
	})
	require.NoError(t, err)

	assert.Equal(t, "I already wrote this.", result.Profile.AboutMe)
	assert.Equal(t, 0, narrator.calls)
}

func TestRunSkipsNarrativeWhenSummaryExtracted(t *testing.T) {
	narrator := &fakeNarrator{text: "should not be used"}

	var last ProgressEvent
	session := NewSession(func(e ProgressEvent) { last = e })

	result, err := Run(context.Background(), RunOptions{
		Filename:    "resume.pdf",
		Document:    pdfDoc(),
		Narrative:   narrator,
		ExtractText: textExtractor(sampleResumeText),
		Session:     session,
	})
	require.NoError(t, err)

	assert.Equal(t, "Backend engineer with five years of experience.", result.Profile.AboutMe)
	assert.Equal(t, 0, narrator.calls)
	assert.Equal(t, statusComplete, last.Status)
}

func TestRunSkipsNarrativeWhenRemoteDraftHasSummary(t *testing.T) {
	remote := &fakeRemote{draft: &types.RawDraft{
		Source:  types.SourceRemoteService,
		Name:    "Jane Smith",
		Summary: "Platform engineer focused on developer tooling.",
	}}
	narrator := &fakeNarrator{text: "should not be used"}

	result, err := Run(context.Background(), RunOptions{
		Filename:  "resume.pdf",
		Document:  pdfDoc(),
		Remote:    remote,
		Narrative: narrator,
	})
	require.NoError(t, err)

	assert.Equal(t, "Platform engineer focused on developer tooling.", result.Profile.AboutMe)
	assert.Equal(t, 0, narrator.calls)
}

func TestRunNonRecoverableRemoteError(t *testing.T) {
	remote := &fakeRemote{err: errors.New("programming error")}

	_, err := Run(context.Background(), RunOptions{
		Filename: "resume.pdf",
		Document: pdfDoc(),
		Remote:   remote,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote parsing failed")
}
