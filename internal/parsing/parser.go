// Package parsing extracts a best-effort structured draft from raw résumé
// text using a fixed battery of heuristics: contact patterns, a name
// heuristic over the leading lines, a skill vocabulary, and section-scoped
// entry segmentation.
//
// ParseResumeText is a pure function: identical input text always yields an
// identical draft. No network, no randomness.
package parsing

import (
	"regexp"
	"strings"

	"github.com/hyadav1201/autofolio/internal/types"
)

const (
	// nameScanWindow is how many leading non-empty lines are considered
	// when looking for the candidate's name.
	nameScanWindow = 5

	// maxTitleLineLen is the upper bound for a line to be treated as an
	// entry title (job title, project name) rather than prose.
	maxTitleLineLen = 100

	// minDescriptionLineLen is the lower bound for a line to accumulate
	// into an entry description.
	minDescriptionLineLen = 20
)

var namePattern = regexp.MustCompile(`^[A-Z][a-zA-Z\s]+$`)

// ParseResumeText applies every heuristic to the text and returns a draft
// tagged with the local-heuristic source.
func ParseResumeText(text string) types.RawDraft {
	draft := types.RawDraft{Source: types.SourceLocalHeuristic}

	draft.Emails = extractEmails(text)
	draft.PhoneNumbers = extractPhoneNumbers(text)
	draft.LinkedIn = extractLinkedIn(text)
	draft.GitHub = extractGitHub(text)
	draft.Websites = extractURLs(text)

	lines := splitLines(text)
	draft.Name = extractName(lines)
	draft.Skills = extractSkills(text)

	draft.Summary = extractSummary(lines)
	draft.Education = extractEducation(text, lines)
	draft.WorkExperience = extractExperience(lines)
	draft.Projects = extractProjects(lines)
	draft.Certifications = extractCertifications(lines)

	return draft
}

// splitLines splits the text into trimmed lines, preserving empty lines so
// that section boundaries keep their positions.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// extractName scans the first nameScanWindow non-empty lines and accepts the
// first line of 2-4 capitalized alphabetic words that does not mention
// "resume" or "curriculum". Absence of a match leaves the name empty; the
// heuristic never guesses from later content.
func extractName(lines []string) string {
	seen := 0
	for _, line := range lines {
		if line == "" {
			continue
		}
		seen++
		if seen > nameScanWindow {
			break
		}

		lower := strings.ToLower(line)
		if strings.Contains(lower, "resume") || strings.Contains(lower, "curriculum") {
			continue
		}
		if !namePattern.MatchString(line) {
			continue
		}

		words := 0
		for _, w := range strings.Fields(line) {
			if len(w) > 1 {
				words++
			}
		}
		if words >= 2 && words <= 4 {
			return line
		}
	}
	return ""
}
