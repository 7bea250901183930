package narrative

import (
	"fmt"
	"strings"

	"github.com/hyadav1201/autofolio/internal/prompts"
	"github.com/hyadav1201/autofolio/internal/types"
)

// maxPromptLen caps the assembled prompt. The cap is applied after assembly,
// so instructions near the end can be truncated for very dense drafts; field
// limits below keep that rare.
const maxPromptLen = 1000

// Per-field inclusion limits for prompt assembly.
const (
	maxPromptEducation  = 3
	maxPromptExperience = 3
	maxPromptSkills     = 10
)

// BuildPrompt assembles the About Me generation prompt from a draft. Only
// fields that are present contribute lines; an all-empty draft still yields
// the instruction lines.
func BuildPrompt(draft types.RawDraft) string {
	var b strings.Builder
	b.WriteString(prompts.MustGet("narrative.json", "about-me-intro"))
	b.WriteString("\n")

	if draft.Name != "" {
		fmt.Fprintf(&b, "Name: %s\n", draft.Name)
	}
	if draft.Profession != "" {
		fmt.Fprintf(&b, "Profession: %s\n", draft.Profession)
	}
	if len(draft.Education) > 0 {
		var entries []string
		for _, e := range limitEducation(draft.Education) {
			entries = append(entries, fmt.Sprintf("%s at %s", e.Degree, e.Institution))
		}
		fmt.Fprintf(&b, "Education: %s\n", strings.Join(entries, "; "))
	}
	if len(draft.WorkExperience) > 0 {
		var entries []string
		for _, w := range limitExperience(draft.WorkExperience) {
			entries = append(entries, fmt.Sprintf("%s at %s", w.JobTitle, w.Organization))
		}
		fmt.Fprintf(&b, "Experience: %s\n", strings.Join(entries, "; "))
	}
	if len(draft.Skills) > 0 {
		skills := draft.Skills
		if len(skills) > maxPromptSkills {
			skills = skills[:maxPromptSkills]
		}
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(skills, ", "))
	}

	b.WriteString(prompts.MustGet("narrative.json", "about-me-style"))

	prompt := b.String()
	if len(prompt) > maxPromptLen {
		prompt = prompt[:maxPromptLen]
	}
	return prompt
}

func limitEducation(entries []types.DraftEducation) []types.DraftEducation {
	if len(entries) > maxPromptEducation {
		return entries[:maxPromptEducation]
	}
	return entries
}

func limitExperience(entries []types.DraftExperience) []types.DraftExperience {
	if len(entries) > maxPromptExperience {
		return entries[:maxPromptExperience]
	}
	return entries
}
