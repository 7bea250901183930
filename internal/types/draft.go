package types

// DraftSource identifies which extraction tier produced a RawDraft.
type DraftSource string

// Extraction tiers.
const (
	SourceRemoteService  DraftSource = "remote-service"
	SourceLocalHeuristic DraftSource = "local-heuristic"
)

// RawDraft is the loosely-typed bag of candidate fields produced by one
// extraction tier. It lives only for the duration of a single extraction
// request; the mapper reshapes it into a CanonicalProfile patch.
type RawDraft struct {
	Source DraftSource `json:"source,omitempty"`

	Name       string `json:"name,omitempty"`
	Profession string `json:"profession,omitempty"`
	Location   string `json:"location,omitempty"`

	Summary   string `json:"summary,omitempty"`
	Objective string `json:"objective,omitempty"`
	AboutMe   string `json:"aboutMe,omitempty"`

	Emails       []string `json:"emails,omitempty"`
	PhoneNumbers []string `json:"phoneNumbers,omitempty"`

	// LinkedIn and GitHub are matched directly by both tiers; every other
	// absolute URL stays unclassified in Websites until mapping.
	LinkedIn string   `json:"linkedin,omitempty"`
	GitHub   string   `json:"github,omitempty"`
	Websites []string `json:"websites,omitempty"`

	Education      []DraftEducation  `json:"education,omitempty"`
	WorkExperience []DraftExperience `json:"workExperience,omitempty"`
	Skills         []string          `json:"skills,omitempty"`
	Projects       []DraftProject    `json:"projects,omitempty"`

	// Certifications are raw section lines; "view certificate" link pairing
	// happens during mapping so that both tiers share one code path.
	Certifications []string `json:"certifications,omitempty"`
}

// DraftEducation is a loosely-typed education candidate.
type DraftEducation struct {
	Degree      string `json:"degree,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Grade       string `json:"grade,omitempty"`
	GPA         string `json:"gpa,omitempty"`
}

// DraftExperience is a loosely-typed work experience candidate.
type DraftExperience struct {
	JobTitle     string `json:"jobTitle,omitempty"`
	Organization string `json:"organization,omitempty"`
	Description  string `json:"description,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
}

// DraftProject is a loosely-typed project candidate.
type DraftProject struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Tech        []string `json:"tech,omitempty"`
}

// IsEmpty reports whether the draft carries no extracted data at all.
func (d RawDraft) IsEmpty() bool {
	return d.Name == "" && d.Profession == "" && d.Location == "" &&
		d.Summary == "" && d.Objective == "" && d.AboutMe == "" &&
		len(d.Emails) == 0 && len(d.PhoneNumbers) == 0 &&
		d.LinkedIn == "" && d.GitHub == "" && len(d.Websites) == 0 &&
		len(d.Education) == 0 && len(d.WorkExperience) == 0 &&
		len(d.Skills) == 0 && len(d.Projects) == 0 && len(d.Certifications) == 0
}
