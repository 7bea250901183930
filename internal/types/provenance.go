package types

import (
	"encoding/json"
	"sort"
)

// Canonical field names used for provenance tracking. They match the JSON
// names of CanonicalProfile so the form layer can address fields directly.
const (
	FieldFullName        = "fullName"
	FieldCurrentRole     = "currentRole"
	FieldLocation        = "location"
	FieldShortBio        = "shortBio"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldLinkedInURL     = "linkedinUrl"
	FieldGitHubURL       = "githubUrl"
	FieldTwitterURL      = "twitterUrl"
	FieldBlogURL         = "blogUrl"
	FieldWhatsAppURL     = "whatsappUrl"
	FieldTelegramURL     = "telegramUrl"
	FieldAboutMe         = "aboutMe"
	FieldEducation       = "education"
	FieldExperience      = "experience"
	FieldTechnicalSkills = "technicalSkills"
	FieldProjects        = "projects"
	FieldCertifications  = "certifications"
)

// ProvenanceSet records which canonical fields were populated by automated
// extraction in the current pass. It is rebuilt fresh on every successful
// extraction and never merged across requests.
type ProvenanceSet struct {
	fields map[string]struct{}
}

// NewProvenanceSet returns an empty provenance set.
func NewProvenanceSet() ProvenanceSet {
	return ProvenanceSet{fields: make(map[string]struct{})}
}

// Add marks a canonical field as extraction-populated.
func (p ProvenanceSet) Add(field string) {
	p.fields[field] = struct{}{}
}

// Has reports whether the field was populated by extraction.
func (p ProvenanceSet) Has(field string) bool {
	_, ok := p.fields[field]
	return ok
}

// Len returns the number of extraction-populated fields.
func (p ProvenanceSet) Len() int {
	return len(p.fields)
}

// Fields returns the sorted field names.
func (p ProvenanceSet) Fields() []string {
	out := make([]string, 0, len(p.fields))
	for f := range p.fields {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON encodes the set as a sorted JSON array of field names.
func (p ProvenanceSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Fields())
}

// UnmarshalJSON decodes a JSON array of field names.
func (p *ProvenanceSet) UnmarshalJSON(data []byte) error {
	var fields []string
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	p.fields = make(map[string]struct{}, len(fields))
	for _, f := range fields {
		p.fields[f] = struct{}{}
	}
	return nil
}
