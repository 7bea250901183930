package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError indicates a request was rejected before pipeline entry
// (bad file type, oversized payload, malformed body). It is always a local,
// non-network failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// GenerateAboutMeRequest is the body of POST /portfolio/generate-about-me.
type GenerateAboutMeRequest struct {
	ExtractedData RawDraft `json:"extractedData" validate:"required"`
}

// Validate validates the GenerateAboutMeRequest using the validator.
func (r *GenerateAboutMeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateAboutMeResponse is the reply of POST /portfolio/generate-about-me.
// Warning is set when generation degraded to the default bio.
type GenerateAboutMeResponse struct {
	AboutMe string `json:"aboutMe"`
	Warning string `json:"warning,omitempty"`
}
