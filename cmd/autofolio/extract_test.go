package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileOutputPath(t *testing.T) {
	extractOutDir = ""
	assert.Equal(t, "docs/resume.profile.json", profileOutputPath("docs/resume.pdf"))

	extractOutDir = "out"
	defer func() { extractOutDir = "" }()
	assert.Equal(t, "out/resume.profile.json", profileOutputPath("docs/resume.pdf"))
}

func TestExtractCommandRequiresArgs(t *testing.T) {
	err := extractCmd.Args(extractCmd, nil)
	assert.Error(t, err)

	err = extractCmd.Args(extractCmd, []string{"resume.pdf"})
	assert.NoError(t, err)
}
