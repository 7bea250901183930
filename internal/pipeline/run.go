// Package pipeline orchestrates one résumé extraction run: upload
// validation, remote parsing with automatic degradation to local heuristics,
// field mapping, and narrative generation with a fixed fallback. One Run is
// one logical task; concurrency across uploads lives with the caller.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hyadav1201/autofolio/internal/docparse"
	"github.com/hyadav1201/autofolio/internal/document"
	"github.com/hyadav1201/autofolio/internal/mapping"
	"github.com/hyadav1201/autofolio/internal/narrative"
	"github.com/hyadav1201/autofolio/internal/parsing"
	"github.com/hyadav1201/autofolio/internal/types"
)

// Progress checkpoints. The mapping/narrative/completion statuses are the
// ones the form layer displays verbatim.
const (
	progressUploading = 10
	progressRemote    = 25
	progressLocal     = 40
	progressMapping   = 50
	progressNarrative = 70
	progressComplete  = 100

	statusMapping          = "Populating form fields..."
	statusNarrative        = "Generating personalized About Me section..."
	statusComplete         = "Processing complete!"
	statusCompleteDegraded = "Processing complete (About Me skipped)"
)

// RunOptions configures a single extraction run.
type RunOptions struct {
	// Filename is the original upload name, forwarded to the remote parser.
	Filename string
	// Document is the raw PDF binary.
	Document []byte
	// Current is the profile the patch merges onto. Zero value is fine for
	// a fresh form.
	Current types.CanonicalProfile
	// Remote is the first extraction tier. Nil skips straight to local
	// heuristics.
	Remote docparse.Client
	// Narrative generates the About Me text. Nil substitutes the default
	// bio without a warning.
	Narrative narrative.Generator
	// ExtractText overrides PDF text extraction. Nil uses
	// document.ExtractText.
	ExtractText func(data []byte) (*document.Text, error)
	// Session receives progress. Nil runs silently.
	Session *Session
}

// Result is the outcome of a successful run.
type Result struct {
	Profile    types.CanonicalProfile `json:"profile"`
	Provenance types.ProvenanceSet    `json:"extractedFields"`
	Source     types.DraftSource      `json:"source"`
	Warnings   []string               `json:"warnings,omitempty"`
}

// Run executes the extraction pipeline. Terminal failures (validation,
// unreadable or empty document) return an error; remote-tier and narrative
// failures degrade and surface as warnings on the result.
func Run(ctx context.Context, opts RunOptions) (*Result, error) {
	session := opts.Session
	if session == nil {
		session = NewSession(nil)
	}

	session.Advance(StageUploading, progressUploading, "Upload received")
	if err := ValidateDocument(opts.Filename, opts.Document); err != nil {
		session.Advance(StageError, 0, err.Error())
		return nil, err
	}

	draft, err := extractDraft(ctx, opts, session)
	if err != nil {
		session.Advance(StageError, 0, err.Error())
		return nil, err
	}

	session.Advance(StageMapping, progressMapping, statusMapping)
	patch, provenance := mapping.Apply(*draft, opts.Current)

	degraded := false
	if patch.AboutMe == "" {
		session.Advance(StageNarrativeGeneration, progressNarrative, statusNarrative)
		bio, warning := narrative.WithFallback(ctx, opts.Narrative, *draft)
		patch.AboutMe = bio
		if warning != "" {
			log.Printf("[pipeline] narrative degraded for session %s: %s", session.ID(), warning)
			session.Warn(warning)
			degraded = true
		}
	}

	status := statusComplete
	if degraded {
		status = statusCompleteDegraded
	}
	session.Advance(StageComplete, progressComplete, status)

	return &Result{
		Profile:    patch,
		Provenance: provenance,
		Source:     draft.Source,
		Warnings:   session.Warnings(),
	}, nil
}

// extractDraft runs the two extraction tiers: the remote parser first, then
// the local heuristics when the remote tier is missing, unavailable, or
// empty. Only local-tier failures are terminal.
func extractDraft(ctx context.Context, opts RunOptions, session *Session) (*types.RawDraft, error) {
	if opts.Remote != nil {
		session.Advance(StageRemoteParsing, progressRemote, "Parsing resume...")
		draft, err := opts.Remote.Parse(ctx, opts.Filename, opts.Document)
		if err == nil {
			return draft, nil
		}

		var unavailable *docparse.UnavailableError
		if !errors.As(err, &unavailable) {
			return nil, fmt.Errorf("remote parsing failed: %w", err)
		}
		log.Printf("[pipeline] remote parser unavailable for session %s: %v", session.ID(), err)
		session.Warn(err.Error())
		session.Advance(StageRemoteFailed, progressRemote, "Resume parser unavailable, using built-in extraction")
	}

	session.Advance(StageLocalParsing, progressLocal, "Extracting resume text...")

	extract := opts.ExtractText
	if extract == nil {
		extract = document.ExtractText
	}
	text, err := extract(opts.Document)
	if err != nil {
		return nil, err
	}

	draft := parsing.ParseResumeText(text.Content)
	return &draft, nil
}
