package pipeline

import (
	"bytes"

	"github.com/hyadav1201/autofolio/internal/types"
)

// MaxDocumentSize is the upload size cap.
const MaxDocumentSize = 5 * 1024 * 1024

var pdfMagic = []byte("%PDF-")

// ValidateDocument checks a candidate upload before any extraction work:
// non-empty, within the size cap, and carrying the PDF magic prefix. Failures
// are *types.ValidationError and map to HTTP 400.
func ValidateDocument(filename string, data []byte) error {
	if len(data) == 0 {
		return &types.ValidationError{Field: "resume", Message: "no file uploaded"}
	}
	if len(data) > MaxDocumentSize {
		return &types.ValidationError{Field: "resume", Message: "file exceeds the 5MB limit"}
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		return &types.ValidationError{Field: "resume", Message: "only PDF files are accepted"}
	}
	return nil
}
