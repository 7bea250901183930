package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/hyadav1201/autofolio/internal/narrative"
	"github.com/hyadav1201/autofolio/internal/pipeline"
	"github.com/hyadav1201/autofolio/internal/types"
)

// uploadFormOverhead pads the body cap beyond the document size to leave
// room for multipart framing and the optional profile field.
const uploadFormOverhead = 1 << 20

// UploadResponse is the reply of POST /portfolio/upload-resume.
type UploadResponse struct {
	SessionID       string                 `json:"sessionId"`
	FilePath        string                 `json:"filePath"`
	Profile         types.CanonicalProfile `json:"profile"`
	ExtractedFields types.ProvenanceSet    `json:"extractedFields"`
	Source          types.DraftSource      `json:"source"`
	Warnings        []string               `json:"warnings,omitempty"`
}

// SessionResponse is the reply of GET /sessions/{id}.
type SessionResponse struct {
	SessionID string         `json:"sessionId"`
	Stage     pipeline.Stage `json:"stage"`
	Progress  int            `json:"progress"`
	Status    string         `json:"status"`
	Warnings  []string       `json:"warnings,omitempty"`
}

// upload is a parsed multipart upload request.
type upload struct {
	filename string
	document []byte
	current  types.CanonicalProfile
}

// parseUpload reads the multipart form: required field "resume" (the PDF)
// and optional field "profile" (the current profile JSON to merge onto).
func parseUpload(r *http.Request) (*upload, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, pipeline.MaxDocumentSize+uploadFormOverhead)
	if err := r.ParseMultipartForm(pipeline.MaxDocumentSize + uploadFormOverhead); err != nil {
		return nil, &types.ValidationError{Field: "resume", Message: "malformed multipart form"}
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		return nil, &types.ValidationError{Field: "resume", Message: "no file uploaded"}
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, &types.ValidationError{Field: "resume", Message: "failed to read upload"}
	}

	u := &upload{filename: header.Filename, document: data}
	if raw := r.FormValue("profile"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &u.current); err != nil {
			return nil, &types.ValidationError{Field: "profile", Message: "profile is not valid JSON"}
		}
	}
	return u, nil
}

// handleUploadResume runs the extraction pipeline synchronously and returns
// the full result.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	u, err := parseUpload(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := pipeline.ValidateDocument(u.filename, u.document); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	saved, err := s.store.SaveDocument(r.Context(), u.filename, u.document)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to store upload")
		return
	}

	session := pipeline.NewSession(nil)
	s.registerSession(session)

	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		Filename:  u.filename,
		Document:  u.document,
		Current:   u.current,
		Remote:    s.remote,
		Narrative: s.narrator,
		Session:   session,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, UploadResponse{
		SessionID:       session.ID(),
		FilePath:        "/uploads/" + saved.Filename,
		Profile:         result.Profile,
		ExtractedFields: result.Provenance,
		Source:          result.Source,
		Warnings:        result.Warnings,
	})
}

// handleUploadResumeStream runs the pipeline while streaming progress as SSE
// events, ending with a complete or error event. Invalid uploads are rejected
// as plain JSON before the stream opens, and before anything is persisted.
func (s *Server) handleUploadResumeStream(w http.ResponseWriter, r *http.Request) {
	u, err := parseUpload(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := pipeline.ValidateDocument(u.filename, u.document); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	session := pipeline.NewSession(func(event pipeline.ProgressEvent) {
		sse.WriteProgress(event)
	})
	s.registerSession(session)

	saved, err := s.store.SaveDocument(r.Context(), u.filename, u.document)
	if err != nil {
		sse.WriteError("failed to store upload")
		return
	}

	result, err := pipeline.Run(r.Context(), pipeline.RunOptions{
		Filename:  u.filename,
		Document:  u.document,
		Current:   u.current,
		Remote:    s.remote,
		Narrative: s.narrator,
		Session:   session,
	})
	if err != nil {
		sse.WriteError(err.Error())
		return
	}
	if session.Abandoned() {
		return
	}

	sse.WriteEvent("complete", UploadResponse{ //nolint:errcheck
		SessionID:       session.ID(),
		FilePath:        "/uploads/" + saved.Filename,
		Profile:         result.Profile,
		ExtractedFields: result.Provenance,
		Source:          result.Source,
		Warnings:        result.Warnings,
	})
}

// handleGenerateAboutMe generates an About Me paragraph from an already
// extracted draft. An existing summary, objective, or aboutMe short-circuits
// generation; the response is always 200 with at least the default bio.
func (s *Server) handleGenerateAboutMe(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateAboutMeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "request body is not valid JSON")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	draft := req.ExtractedData
	if existing := firstNonEmpty(draft.Summary, draft.Objective, draft.AboutMe); existing != "" {
		s.jsonResponse(w, http.StatusOK, types.GenerateAboutMeResponse{AboutMe: existing})
		return
	}

	bio, warning := narrative.WithFallback(r.Context(), s.narrator, draft)
	if warning != "" {
		log.Printf("[server] about-me generation degraded: %s", warning)
	}
	s.jsonResponse(w, http.StatusOK, types.GenerateAboutMeResponse{AboutMe: bio, Warning: warning})
}

// handleGetSession reports a session's progress tuple.
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session := s.lookupSession(r.PathValue("id"))
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "session not found")
		return
	}

	stage, progress, status := session.Snapshot()
	s.jsonResponse(w, http.StatusOK, SessionResponse{
		SessionID: session.ID(),
		Stage:     stage,
		Progress:  progress,
		Status:    status,
		Warnings:  session.Warnings(),
	})
}

// handleAbandonSession stops progress emission for a session. The underlying
// run may still finish; its result is discarded.
func (s *Server) handleAbandonSession(w http.ResponseWriter, r *http.Request) {
	session := s.lookupSession(r.PathValue("id"))
	if session == nil {
		s.errorResponse(w, http.StatusNotFound, "session not found")
		return
	}

	session.Abandon()
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "abandoned"})
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
