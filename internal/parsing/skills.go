package parsing

import "regexp"

// skillEntry pairs a vocabulary keyword with its human-readable display
// form. Matches are reported in vocabulary order, not document order.
type skillEntry struct {
	keyword string
	display string
	pattern *regexp.Regexp
}

// skillVocabulary is the fixed list of skill/tool keywords tested against
// the whole text with word-boundary, case-insensitive matches.
var skillVocabulary = compileSkills([]skillEntry{
	{keyword: "javascript", display: "JavaScript"},
	{keyword: "java", display: "Java"},
	{keyword: "python", display: "Python"},
	{keyword: "c++", display: "C++"},
	{keyword: "c#", display: "C#"},
	{keyword: "ruby", display: "Ruby"},
	{keyword: "php", display: "PHP"},
	{keyword: "swift", display: "Swift"},
	{keyword: "kotlin", display: "Kotlin"},
	{keyword: "typescript", display: "TypeScript"},
	{keyword: "golang", display: "Golang"},
	{keyword: "rust", display: "Rust"},
	{keyword: "scala", display: "Scala"},
	{keyword: "react", display: "React"},
	{keyword: "angular", display: "Angular"},
	{keyword: "vue", display: "Vue"},
	{keyword: "node", display: "Node"},
	{keyword: "express", display: "Express"},
	{keyword: "django", display: "Django"},
	{keyword: "flask", display: "Flask"},
	{keyword: "spring", display: "Spring"},
	{keyword: "asp.net", display: "ASP.NET"},
	{keyword: "laravel", display: "Laravel"},
	{keyword: "mongodb", display: "MongoDB"},
	{keyword: "postgresql", display: "PostgreSQL"},
	{keyword: "mysql", display: "MySQL"},
	{keyword: "redis", display: "Redis"},
	{keyword: "docker", display: "Docker"},
	{keyword: "kubernetes", display: "Kubernetes"},
	{keyword: "aws", display: "AWS"},
	{keyword: "azure", display: "Azure"},
	{keyword: "gcp", display: "GCP"},
	{keyword: "git", display: "Git"},
	{keyword: "html", display: "HTML"},
	{keyword: "css", display: "CSS"},
	{keyword: "sass", display: "Sass"},
	{keyword: "webpack", display: "Webpack"},
	{keyword: "graphql", display: "GraphQL"},
	{keyword: "rest", display: "REST"},
	{keyword: "api", display: "API"},
	{keyword: "agile", display: "Agile"},
	{keyword: "scrum", display: "Scrum"},
	{keyword: "jira", display: "Jira"},
	{keyword: "jenkins", display: "Jenkins"},
	{keyword: "ci/cd", display: "CI/CD"},
	{keyword: "tensorflow", display: "TensorFlow"},
	{keyword: "pytorch", display: "PyTorch"},
	{keyword: "machine learning", display: "Machine Learning"},
	{keyword: "deep learning", display: "Deep Learning"},
	{keyword: "data science", display: "Data Science"},
	{keyword: "analytics", display: "Analytics"},
	{keyword: "sql", display: "SQL"},
	{keyword: "nosql", display: "NoSQL"},
	{keyword: "linux", display: "Linux"},
	{keyword: "windows", display: "Windows"},
})

func compileSkills(entries []skillEntry) []skillEntry {
	for i := range entries {
		entries[i].pattern = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(entries[i].keyword) + `\b`)
	}
	return entries
}

// extractSkills tests every vocabulary keyword against the whole text and
// returns the display forms of the matches, in vocabulary order.
func extractSkills(text string) []string {
	var found []string
	for _, entry := range skillVocabulary {
		if entry.pattern.MatchString(text) {
			found = append(found, entry.display)
		}
	}
	return found
}
