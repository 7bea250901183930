package server

import (
	"errors"
	"net/http"

	"github.com/hyadav1201/autofolio/internal/document"
	"github.com/hyadav1201/autofolio/internal/types"
)

// HTTPStatus maps pipeline errors to response codes: request-shape problems
// are 400, documents that were accepted but cannot be extracted are 422,
// everything else is 500. Recoverable tier failures never reach this switch;
// they degrade inside the pipeline.
func HTTPStatus(err error) int {
	var validation *types.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	var unreadable *document.UnreadableError
	var empty *document.EmptyError
	if errors.As(err, &unreadable) || errors.As(err, &empty) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
