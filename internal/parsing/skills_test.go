package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkillsDisplayForms(t *testing.T) {
	text := "Worked with python, POSTGRESQL and ci/cd pipelines on linux hosts."
	assert.Equal(t, []string{"Python", "PostgreSQL", "CI/CD", "Linux"}, extractSkills(text))
}

func TestExtractSkillsWordBoundaries(t *testing.T) {
	// Substrings inside larger words must not match.
	assert.Empty(t, extractSkills("javascripting restless apiary gitarist"))

	// "java" must not fire on "javascript" alone.
	got := extractSkills("Wrote JavaScript for the storefront.")
	assert.Equal(t, []string{"JavaScript"}, got)
}

func TestExtractSkillsVocabularyOrder(t *testing.T) {
	// Document order is irrelevant; results follow vocabulary order.
	got := extractSkills("Docker before Python in this sentence.")
	assert.Equal(t, []string{"Python", "Docker"}, got)
}

func TestExtractSkillsNone(t *testing.T) {
	assert.Nil(t, extractSkills("nothing technical mentioned here"))
}
