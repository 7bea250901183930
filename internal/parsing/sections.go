package parsing

import (
	"regexp"
	"strings"

	"github.com/hyadav1201/autofolio/internal/types"
)

// maxHeaderLineLen is the upper bound for a line to be considered a section
// header by substring match. Exact matches and "header:" prefixes are
// accepted at any length.
const maxHeaderLineLen = 30

// sectionHeaders are the header keywords that terminate a running section.
var sectionHeaders = []string{
	"experience", "education", "skills", "projects", "certifications",
	"awards", "publications", "interests", "hobbies", "references",
}

// Section header keyword sets per extracted concern.
var (
	experienceKeywords     = []string{"experience", "work history", "employment"}
	projectKeywords        = []string{"projects", "portfolio"}
	certificationKeywords  = []string{"certifications", "certificates", "licenses"}
	educationKeywords      = []string{"education", "academics"}
	summaryKeywords        = []string{"summary", "objective", "about me"}
	techStackLabelPattern  = regexp.MustCompile(`(?i)^(technologies|tech stack|skills)`)
	titleLinePattern       = regexp.MustCompile(`^[A-Z]`)
	degreePattern          = regexp.MustCompile(`(?i)\b(bachelor|master|phd|doctorate|b\.?s\.?|m\.?s\.?|b\.?tech|m\.?tech|b\.?e\.?|m\.?e\.?|bca|mca|diploma)\b[\s\w]*(?:in|of)?\s*[\w\s,]+`)
)

// jobTitleKeywords mark a short line as the start of a work experience
// entry.
var jobTitleKeywords = []string{
	"engineer", "developer", "architect", "manager", "analyst", "consultant",
	"designer", "lead", "senior", "junior", "intern", "director", "specialist",
	"coordinator", "administrator", "technician",
}

// extractSection locates the first line containing one of the section's
// keywords and returns the lines from the line after that header up to the
// next line that looks like a different recognized section header, or end of
// document. Implemented as a single linear two-pointer scan; no match
// returns nil.
func extractSection(lines []string, keywords []string) []string {
	start := -1
	for i, line := range lines {
		if containsAny(strings.ToLower(line), keywords) {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		lower := strings.ToLower(lines[i])
		if !looksLikeHeader(lower) {
			continue
		}
		// A repeat of our own header keyword does not end the section.
		if containsAny(lower, keywords) {
			continue
		}
		end = i
		break
	}

	return lines[start:end]
}

// looksLikeHeader reports whether the lowercased line matches any recognized
// section header: an exact match, a "header:" prefix, or a short line
// containing the keyword.
func looksLikeHeader(lower string) bool {
	for _, header := range sectionHeaders {
		if lower == header || strings.HasPrefix(lower, header+":") {
			return true
		}
		if len(lower) < maxHeaderLineLen && strings.Contains(lower, header) {
			return true
		}
	}
	return false
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// extractSummary returns the text of a summary/objective section as a single
// space-joined string, or empty when no such section exists.
func extractSummary(lines []string) string {
	section := extractSection(lines, summaryKeywords)
	var parts []string
	for _, line := range section {
		if line != "" {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

// extractExperience segments the experience section into entries. A short
// line containing a job-title keyword starts a new entry; the first
// subsequent capitalized line becomes the organization and longer lines
// accumulate into the description. Intentionally lossy: it optimizes for
// common résumé layouts, not completeness.
func extractExperience(lines []string) []types.DraftExperience {
	section := extractSection(lines, experienceKeywords)
	if section == nil {
		return nil
	}

	var entries []types.DraftExperience
	var current *types.DraftExperience

	for _, line := range section {
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)

		if containsAny(lower, jobTitleKeywords) && len(line) < maxTitleLineLen {
			if current != nil {
				entries = append(entries, finishExperience(*current))
			}
			current = &types.DraftExperience{JobTitle: line}
			continue
		}
		if current == nil || len(line) <= minDescriptionLineLen {
			continue
		}
		if current.Organization == "" && titleLinePattern.MatchString(line) {
			current.Organization = line
		} else {
			current.Description += line + " "
		}
	}
	if current != nil {
		entries = append(entries, finishExperience(*current))
	}
	return entries
}

func finishExperience(e types.DraftExperience) types.DraftExperience {
	e.Description = strings.TrimSpace(e.Description)
	return e
}

// extractProjects segments the projects section: a short capitalized line
// that is not a technologies/skills label starts a new entry; longer lines
// accumulate into its description.
func extractProjects(lines []string) []types.DraftProject {
	section := extractSection(lines, projectKeywords)
	if section == nil {
		return nil
	}

	var entries []types.DraftProject
	var current *types.DraftProject

	for _, line := range section {
		if line == "" {
			continue
		}
		if titleLinePattern.MatchString(line) && len(line) < maxTitleLineLen && !techStackLabelPattern.MatchString(line) {
			if current != nil {
				entries = append(entries, finishProject(*current))
			}
			current = &types.DraftProject{Name: line}
			continue
		}
		if current != nil && len(line) > minDescriptionLineLen {
			current.Description += line + " "
		}
	}
	if current != nil {
		entries = append(entries, finishProject(*current))
	}
	return entries
}

func finishProject(p types.DraftProject) types.DraftProject {
	p.Description = strings.TrimSpace(p.Description)
	return p
}

// extractCertifications returns the raw lines of the certifications section.
// Lines are kept verbatim, including "view certificate" label lines, so the
// mapper can pair names with links for both extraction tiers.
func extractCertifications(lines []string) []string {
	section := extractSection(lines, certificationKeywords)
	var out []string
	for _, line := range section {
		if len(line) > 5 {
			out = append(out, line)
		}
	}
	return out
}

// extractEducation prefers a section-scoped scan: within an education
// section, a line matching the degree pattern starts an entry and the next
// capitalized non-degree line becomes its institution. When no education
// section exists, it falls back to scanning the whole text for degree
// phrases, leaving institutions empty.
func extractEducation(text string, lines []string) []types.DraftEducation {
	section := extractSection(lines, educationKeywords)
	if section == nil {
		return educationFromDegreeScan(text)
	}

	var entries []types.DraftEducation
	var current *types.DraftEducation

	for _, line := range section {
		if line == "" {
			continue
		}
		if degreePattern.MatchString(line) && len(line) < maxTitleLineLen {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &types.DraftEducation{Degree: line}
			continue
		}
		if current != nil && current.Institution == "" &&
			titleLinePattern.MatchString(line) && len(line) < maxTitleLineLen {
			current.Institution = line
		}
	}
	if current != nil {
		entries = append(entries, *current)
	}
	if entries == nil {
		return educationFromDegreeScan(text)
	}
	return entries
}

func educationFromDegreeScan(text string) []types.DraftEducation {
	var entries []types.DraftEducation
	for _, match := range degreePattern.FindAllString(text, -1) {
		entries = append(entries, types.DraftEducation{Degree: strings.TrimSpace(match)})
	}
	return entries
}
