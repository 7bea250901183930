package pipeline

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyadav1201/autofolio/internal/types"
)

func TestValidateDocumentAcceptsPDF(t *testing.T) {
	assert.NoError(t, ValidateDocument("resume.pdf", []byte("%PDF-1.7 content")))
}

func TestValidateDocumentRejectsEmpty(t *testing.T) {
	err := ValidateDocument("resume.pdf", nil)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "no file")
}

func TestValidateDocumentRejectsOversized(t *testing.T) {
	data := append([]byte("%PDF-"), bytes.Repeat([]byte{'a'}, MaxDocumentSize)...)
	err := ValidateDocument("resume.pdf", data)

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "5MB")
}

func TestValidateDocumentRejectsNonPDF(t *testing.T) {
	err := ValidateDocument("resume.docx", []byte("PK\x03\x04 not a pdf"))

	var verr *types.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "PDF")
}
