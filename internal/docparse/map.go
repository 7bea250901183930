package docparse

import (
	"encoding/json"
	"strings"

	"github.com/hyadav1201/autofolio/internal/types"
)

// payload mirrors the Affinda-style response shape. Fields the mapper never
// reads are omitted; the schema has already vouched for the types.
type payload struct {
	Data *payloadData `json:"data"`
}

type payloadData struct {
	Name           *payloadName        `json:"name"`
	Profession     string              `json:"profession"`
	Summary        string              `json:"summary"`
	Objective      string              `json:"objective"`
	Location       json.RawMessage     `json:"location"`
	Emails         []string            `json:"emails"`
	PhoneNumbers   []string            `json:"phoneNumbers"`
	LinkedIn       string              `json:"linkedin"`
	GitHub         string              `json:"github"`
	Websites       []string            `json:"websites"`
	Education      []payloadEducation  `json:"education"`
	WorkExperience []payloadExperience `json:"workExperience"`
	Skills         []payloadSkill      `json:"skills"`
	Certifications []string            `json:"certifications"`
}

type payloadName struct {
	Raw string `json:"raw"`
}

type payloadEducation struct {
	Accreditation *payloadAccreditation `json:"accreditation"`
	Organization  string                `json:"organization"`
	StartDate     string                `json:"startDate"`
	EndDate       string                `json:"endDate"`
	Grade         string                `json:"grade"`
	GPA           string                `json:"gpa"`
}

type payloadAccreditation struct {
	InputStr  string `json:"inputStr"`
	Education string `json:"education"`
}

type payloadExperience struct {
	JobTitle       string `json:"jobTitle"`
	Organization   string `json:"organization"`
	JobDescription string `json:"jobDescription"`
	StartDate      string `json:"startDate"`
	EndDate        string `json:"endDate"`
}

type payloadSkill struct {
	Name string `json:"name"`
}

type payloadLocation struct {
	Formatted string `json:"formatted"`
	City      string `json:"city"`
}

// decodePayload reshapes a schema-valid response body into a RawDraft.
func decodePayload(body []byte) (*types.RawDraft, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	if p.Data == nil {
		return &types.RawDraft{Source: types.SourceRemoteService}, nil
	}
	d := p.Data

	draft := &types.RawDraft{
		Source:         types.SourceRemoteService,
		Profession:     strings.TrimSpace(d.Profession),
		Location:       decodeLocation(d.Location),
		Summary:        strings.TrimSpace(d.Summary),
		Objective:      strings.TrimSpace(d.Objective),
		Emails:         d.Emails,
		PhoneNumbers:   d.PhoneNumbers,
		LinkedIn:       strings.TrimSpace(d.LinkedIn),
		GitHub:         strings.TrimSpace(d.GitHub),
		Websites:       d.Websites,
		Certifications: d.Certifications,
	}
	if d.Name != nil {
		draft.Name = strings.TrimSpace(d.Name.Raw)
	}

	for _, e := range d.Education {
		entry := types.DraftEducation{
			Institution: strings.TrimSpace(e.Organization),
			StartDate:   e.StartDate,
			EndDate:     e.EndDate,
			Grade:       e.Grade,
			GPA:         e.GPA,
		}
		if e.Accreditation != nil {
			entry.Degree = strings.TrimSpace(e.Accreditation.InputStr)
			if entry.Degree == "" {
				entry.Degree = strings.TrimSpace(e.Accreditation.Education)
			}
		}
		if entry.Degree == "" && entry.Institution == "" {
			continue
		}
		draft.Education = append(draft.Education, entry)
	}

	for _, w := range d.WorkExperience {
		if w.JobTitle == "" && w.Organization == "" && w.JobDescription == "" {
			continue
		}
		draft.WorkExperience = append(draft.WorkExperience, types.DraftExperience{
			JobTitle:     strings.TrimSpace(w.JobTitle),
			Organization: strings.TrimSpace(w.Organization),
			Description:  strings.TrimSpace(w.JobDescription),
			StartDate:    w.StartDate,
			EndDate:      w.EndDate,
		})
	}

	for _, s := range d.Skills {
		name := strings.TrimSpace(s.Name)
		if name != "" {
			draft.Skills = append(draft.Skills, name)
		}
	}

	return draft, nil
}

// decodeLocation accepts both the structured object form and the plain
// string form the API has been observed to return.
func decodeLocation(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var loc payloadLocation
	if err := json.Unmarshal(raw, &loc); err == nil {
		if loc.Formatted != "" {
			return strings.TrimSpace(loc.Formatted)
		}
		return strings.TrimSpace(loc.City)
	}
	return ""
}
