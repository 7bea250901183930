// Package mapping normalizes a loosely-typed extraction draft into the
// canonical profile shape. It merges on top of the caller's current profile
// and never blanks a field the user already filled in: a draft value wins
// only when it is non-empty. Alongside the patch it returns a provenance set
// naming every field the draft actually populated.
package mapping

import (
	"regexp"
	"strings"

	"github.com/hyadav1201/autofolio/internal/types"
)

var (
	inlineURLPattern = regexp.MustCompile(`https?://\S+`)
	blogPathPattern  = regexp.MustCompile(`(?i)/(blog|posts?)\b`)
	viewCertPattern  = regexp.MustCompile(`(?i)view certificate:?`)
)

// blogHosts are platforms whose URLs classify as a blog without needing a
// blog-like path.
var blogHosts = []string{"medium.com", "dev.to", "hashnode"}

// Apply merges a draft onto the current profile and returns the patched
// profile plus the set of fields the draft populated. The synthesized
// AboutMe never enters provenance; it is tracked by the caller's warning
// channel instead.
func Apply(draft types.RawDraft, current types.CanonicalProfile) (types.CanonicalProfile, types.ProvenanceSet) {
	patch := current
	prov := types.NewProvenanceSet()

	setString := func(dst *string, value, field string) {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		*dst = value
		prov.Add(field)
	}

	setString(&patch.FullName, draft.Name, types.FieldFullName)
	setString(&patch.CurrentRole, currentRole(draft), types.FieldCurrentRole)
	setString(&patch.Location, draft.Location, types.FieldLocation)
	setString(&patch.ShortBio, shortBio(draft), types.FieldShortBio)

	setString(&patch.Email, first(draft.Emails), types.FieldEmail)
	setString(&patch.Phone, first(draft.PhoneNumbers), types.FieldPhone)

	setString(&patch.LinkedInURL, pick(draft.LinkedIn, draft.Websites, hostMatcher("linkedin.com")), types.FieldLinkedInURL)
	setString(&patch.GitHubURL, pick(draft.GitHub, draft.Websites, hostMatcher("github.com")), types.FieldGitHubURL)
	setString(&patch.TwitterURL, pick("", draft.Websites, hostMatcher("twitter.com", "x.com")), types.FieldTwitterURL)
	setString(&patch.BlogURL, pick("", draft.Websites, isBlogURL), types.FieldBlogURL)
	setString(&patch.WhatsAppURL, pick("", draft.Websites, hostMatcher("wa.me")), types.FieldWhatsAppURL)
	setString(&patch.TelegramURL, pick("", draft.Websites, hostMatcher("t.me")), types.FieldTelegramURL)

	if about := aboutMe(draft); about != "" {
		patch.AboutMe = about
	}

	if education := mapEducation(draft.Education); len(education) > 0 {
		patch.Education = education
		prov.Add(types.FieldEducation)
	}
	if experience := mapExperience(draft.WorkExperience); len(experience) > 0 {
		patch.Experience = experience
		prov.Add(types.FieldExperience)
	}
	if len(draft.Skills) > 0 {
		patch.TechnicalSkills = draft.Skills
		prov.Add(types.FieldTechnicalSkills)
	}
	if projects := mapProjects(draft.Projects); len(projects) > 0 {
		patch.Projects = projects
		prov.Add(types.FieldProjects)
	}
	if certifications := PairCertifications(draft.Certifications); len(certifications) > 0 {
		patch.Certifications = certifications
		prov.Add(types.FieldCertifications)
	}

	return patch, prov
}

// currentRole prefers the stated profession and falls back to the most
// recent job title.
func currentRole(draft types.RawDraft) string {
	if draft.Profession != "" {
		return draft.Profession
	}
	if len(draft.WorkExperience) > 0 {
		return draft.WorkExperience[0].JobTitle
	}
	return ""
}

// aboutMe resolves the bio as summary, then objective, then an explicit
// about-me. A résumé that states any of these never triggers narrative
// generation downstream.
func aboutMe(draft types.RawDraft) string {
	for _, v := range []string{draft.Summary, draft.Objective, draft.AboutMe} {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// shortBio prefers the summary and falls back to the objective.
func shortBio(draft types.RawDraft) string {
	if draft.Summary != "" {
		return draft.Summary
	}
	return draft.Objective
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// pick returns the directly-matched value when present, otherwise the first
// website the matcher accepts.
func pick(direct string, websites []string, match func(string) bool) string {
	if direct != "" {
		return direct
	}
	for _, url := range websites {
		if url != "" && match(url) {
			return url
		}
	}
	return ""
}

func hostMatcher(hosts ...string) func(string) bool {
	return func(url string) bool {
		lower := strings.ToLower(url)
		for _, host := range hosts {
			if strings.Contains(lower, host) {
				return true
			}
		}
		return false
	}
}

// isBlogURL matches known blogging platforms plus any URL with a blog-like
// path segment. Kept narrow to avoid classifying portfolio sites as blogs.
func isBlogURL(url string) bool {
	lower := strings.ToLower(url)
	for _, host := range blogHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return blogPathPattern.MatchString(url)
}

// mapEducation normalizes education candidates, discarding entries where
// both degree and institution are missing.
func mapEducation(entries []types.DraftEducation) []types.Education {
	var out []types.Education
	for _, e := range entries {
		degree := strings.TrimSpace(e.Degree)
		institution := strings.TrimSpace(e.Institution)
		if degree == "" && institution == "" {
			continue
		}
		percentage := e.Grade
		if percentage == "" {
			percentage = e.GPA
		}
		out = append(out, types.Education{
			Degree:      degree,
			Institution: institution,
			StartYear:   e.StartDate,
			EndYear:     e.EndDate,
			Percentage:  percentage,
			CGPA:        e.GPA,
		})
	}
	return out
}

func mapExperience(entries []types.DraftExperience) []types.Experience {
	var out []types.Experience
	for _, w := range entries {
		if w.JobTitle == "" && w.Organization == "" && w.Description == "" {
			continue
		}
		out = append(out, types.Experience{
			JobTitle:     w.JobTitle,
			Organization: w.Organization,
			Description:  w.Description,
			StartDate:    w.StartDate,
			EndDate:      w.EndDate,
		})
	}
	return out
}

func mapProjects(entries []types.DraftProject) []types.Project {
	var out []types.Project
	for _, p := range entries {
		if p.Name == "" && p.Description == "" {
			continue
		}
		out = append(out, types.Project{
			Name:        p.Name,
			Description: p.Description,
			Tech:        p.Tech,
		})
	}
	return out
}

// PairCertifications turns raw certification lines into name/link pairs. A
// line that starts with "view certificate" attaches its URL (if any) to the
// preceding certificate instead of becoming an entry of its own; URLs
// embedded in a name line are stripped out into the link.
func PairCertifications(lines []string) []types.Certification {
	var out []types.Certification
	for i := 0; i < len(lines); i++ {
		name := strings.TrimSpace(lines[i])
		if name == "" || strings.EqualFold(name, "view certificate") {
			continue
		}

		var link string
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if strings.HasPrefix(strings.ToLower(next), "view certificate") {
				link = inlineURLPattern.FindString(next)
				i++
			}
		}
		if url := inlineURLPattern.FindString(name); url != "" {
			link = url
			name = strings.TrimSpace(viewCertPattern.ReplaceAllString(strings.Replace(name, url, "", 1), ""))
		}

		out = append(out, types.Certification{Name: name, Link: link})
	}
	return out
}
