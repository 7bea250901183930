package docparse

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyadav1201/autofolio/internal/types"
)

const samplePayload = `{
	"data": {
		"name": {"raw": "Jane Smith"},
		"profession": "Software Engineer",
		"summary": "Backend engineer with five years of experience.",
		"location": {"formatted": "Austin, TX"},
		"emails": ["jane@example.com"],
		"phoneNumbers": ["+1 512 555 0199"],
		"linkedin": "linkedin.com/in/janesmith",
		"github": "github.com/janesmith",
		"websites": ["https://janesmith.dev"],
		"education": [
			{
				"accreditation": {"inputStr": "B.S. Computer Science"},
				"organization": "University of Texas",
				"startDate": "2014",
				"endDate": "2018"
			}
		],
		"workExperience": [
			{
				"jobTitle": "Software Engineer",
				"organization": "Initech",
				"jobDescription": "Built internal billing services.",
				"startDate": "2018",
				"endDate": "2023"
			}
		],
		"skills": [{"name": "Go"}, {"name": "PostgreSQL"}],
		"certifications": ["AWS Certified Developer"]
	}
}`

func TestHTTPClientParse(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "resume.pdf", header.Filename)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(samplePayload))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", nil)
	draft, err := client.Parse(context.Background(), "resume.pdf", []byte("%PDF-1.4 fake"))
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Contains(t, gotContentType, "multipart/form-data")

	assert.Equal(t, types.SourceRemoteService, draft.Source)
	assert.Equal(t, "Jane Smith", draft.Name)
	assert.Equal(t, "Software Engineer", draft.Profession)
	assert.Equal(t, "Austin, TX", draft.Location)
	assert.Equal(t, []string{"jane@example.com"}, draft.Emails)
	assert.Equal(t, "linkedin.com/in/janesmith", draft.LinkedIn)
	assert.Equal(t, "github.com/janesmith", draft.GitHub)
	require.Len(t, draft.Education, 1)
	assert.Equal(t, "B.S. Computer Science", draft.Education[0].Degree)
	assert.Equal(t, "University of Texas", draft.Education[0].Institution)
	require.Len(t, draft.WorkExperience, 1)
	assert.Equal(t, "Initech", draft.WorkExperience[0].Organization)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, draft.Skills)
	assert.Equal(t, []string{"AWS Certified Developer"}, draft.Certifications)
}

func TestHTTPClientParseStringLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"name": {"raw": "Jane Smith"}, "location": "Remote"}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", nil)
	draft, err := client.Parse(context.Background(), "resume.pdf", []byte("doc"))
	require.NoError(t, err)
	assert.Equal(t, "Remote", draft.Location)
}

func TestHTTPClientParseServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "test-key", nil)
	_, err := client.Parse(context.Background(), "resume.pdf", []byte("doc"))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Error(), "502")
}

func TestHTTPClientParseInvalidPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"emails": "not-an-array"}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", nil)
	_, err := client.Parse(context.Background(), "resume.pdf", []byte("doc"))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Message, "schema validation")
}

func TestHTTPClientParseEmptyResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "", nil)
	_, err := client.Parse(context.Background(), "resume.pdf", []byte("doc"))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Message, "empty result")
}

func TestHTTPClientParseNoEndpoint(t *testing.T) {
	client := NewHTTPClient("", "", nil)
	_, err := client.Parse(context.Background(), "resume.pdf", []byte("doc"))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestHTTPClientParseUnreachable(t *testing.T) {
	client := NewHTTPClient("http://127.0.0.1:1", "", nil)
	_, err := client.Parse(context.Background(), "resume.pdf", []byte("doc"))

	var unavailable *UnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.True(t, errors.Unwrap(unavailable) != nil)
}
