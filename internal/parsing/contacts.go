package parsing

import (
	"regexp"
	"strings"
)

// Phone numbers are only accepted when their stripped digit count falls in
// [minPhoneDigits, maxPhoneDigits]; this rejects short numeric noise such as
// page numbers and years.
const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	urlPattern   = regexp.MustCompile(`https?://[\w.-]+(?:\.[\w.-]+)+[\w\-._~:/?#\[\]@!$&'()*+,;=.]+`)

	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`)

	nonDigits = regexp.MustCompile(`\D`)
)

// extractEmails returns every email in the text, deduplicated by exact
// match, in document order.
func extractEmails(text string) []string {
	return dedupe(emailPattern.FindAllString(text, -1))
}

// extractPhoneNumbers returns candidate phone numbers whose digit count is
// plausible for a phone number, deduplicated, in document order.
func extractPhoneNumbers(text string) []string {
	var out []string
	for _, match := range phonePattern.FindAllString(text, -1) {
		trimmed := strings.TrimSpace(match)
		digits := len(nonDigits.ReplaceAllString(trimmed, ""))
		if digits < minPhoneDigits || digits > maxPhoneDigits {
			continue
		}
		out = append(out, trimmed)
	}
	return dedupe(out)
}

// extractLinkedIn returns the first LinkedIn profile URL in the text.
func extractLinkedIn(text string) string {
	return linkedinPattern.FindString(text)
}

// extractGitHub returns the first GitHub profile URL in the text.
func extractGitHub(text string) string {
	return githubPattern.FindString(text)
}

// extractURLs returns every absolute URL in the text, deduplicated, in
// document order. Classification into channels happens during mapping;
// unmatched URLs are retained, never discarded.
func extractURLs(text string) []string {
	return dedupe(urlPattern.FindAllString(text, -1))
}

// dedupe removes exact duplicates while preserving first-seen order.
// Returns nil for empty input so drafts stay comparable.
func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	var out []string
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
