// Package types defines the shared data model for the extraction pipeline:
// the transient RawDraft produced by either extraction tier, the canonical
// profile schema consumed by the form layer, and the provenance set that
// records which fields were machine-populated.
package types

// CanonicalProfile is the normalized profile shape consumed by the
// multi-step form. The extraction core only ever returns it as a patch to be
// merged by the caller; it never persists it.
type CanonicalProfile struct {
	// Personal info
	FullName    string `json:"fullName"`
	CurrentRole string `json:"currentRole"`
	Location    string `json:"location"`
	ShortBio    string `json:"shortBio"`

	// Contact channels, one classified URL per channel
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	LinkedInURL string `json:"linkedinUrl"`
	GitHubURL   string `json:"githubUrl"`
	TwitterURL  string `json:"twitterUrl"`
	BlogURL     string `json:"blogUrl"`
	WhatsAppURL string `json:"whatsappUrl"`
	TelegramURL string `json:"telegramUrl"`

	AboutMe string `json:"aboutMe"`

	// Ordered sequences
	Education       []Education     `json:"education"`
	Experience      []Experience    `json:"experience"`
	TechnicalSkills []string        `json:"technicalSkills"`
	Projects        []Project       `json:"projects"`
	Certifications  []Certification `json:"certifications"`
	Awards          []string        `json:"awards"`
}

// Education is one canonical education entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartYear   string `json:"startYear"`
	EndYear     string `json:"endYear"`
	Percentage  string `json:"percentage"`
	CGPA        string `json:"cgpa"`
}

// Experience is one canonical work experience entry.
type Experience struct {
	JobTitle     string `json:"jobTitle"`
	Organization string `json:"organization"`
	Description  string `json:"description"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

// Project is one canonical project entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

// Certification is a certification name paired with an optional
// verification link.
type Certification struct {
	Name string `json:"name"`
	Link string `json:"link"`
}
