package pipeline

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Stage identifies where an extraction session is in its lifecycle.
type Stage string

// Session lifecycle stages. RemoteFailed is transient: it always advances to
// LocalParsing in the same run.
const (
	StageIdle                Stage = "idle"
	StageUploading           Stage = "uploading"
	StageRemoteParsing       Stage = "remote-parsing"
	StageRemoteFailed        Stage = "remote-failed"
	StageLocalParsing        Stage = "local-parsing"
	StageMapping             Stage = "mapping"
	StageNarrativeGeneration Stage = "narrative-generation"
	StageComplete            Stage = "complete"
	StageError               Stage = "error"
)

// ProgressEvent is one progress update emitted during a session.
type ProgressEvent struct {
	SessionID string `json:"sessionId"`
	Stage     Stage  `json:"stage"`
	Progress  int    `json:"progress"`
	Status    string `json:"status"`
}

// ProgressCallback is called when session progress occurs.
type ProgressCallback func(event ProgressEvent)

// Session tracks one extraction run. Progress is monotonic non-decreasing;
// a lower checkpoint arriving late is clamped to the current value. After
// Abandon no further events are emitted.
type Session struct {
	id string

	mu         sync.Mutex
	stage      Stage
	progress   int
	status     string
	warnings   []string
	abandoned  bool
	updatedAt  time.Time
	onProgress ProgressCallback
}

// NewSession creates an idle session. The callback may be nil.
func NewSession(onProgress ProgressCallback) *Session {
	return &Session{
		id:         uuid.NewString(),
		stage:      StageIdle,
		updatedAt:  time.Now(),
		onProgress: onProgress,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Advance moves the session to a stage with a progress checkpoint. The
// callback runs under the session lock; callbacks must not call back into
// the session.
func (s *Session) Advance(stage Stage, progress int, status string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.abandoned {
		return
	}
	s.stage = stage
	if progress > s.progress {
		s.progress = progress
	}
	s.status = status
	s.updatedAt = time.Now()
	if s.onProgress != nil {
		s.onProgress(ProgressEvent{
			SessionID: s.id,
			Stage:     s.stage,
			Progress:  s.progress,
			Status:    s.status,
		})
	}
}

// Warn records a non-fatal warning on the session.
func (s *Session) Warn(message string) {
	if message == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, message)
}

// Abandon stops all further progress emission. The pipeline run itself may
// still finish; its result is discarded by the caller.
func (s *Session) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.abandoned = true
	s.updatedAt = time.Now()
}

// Abandoned reports whether the session was abandoned.
func (s *Session) Abandoned() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abandoned
}

// Finished reports whether the session reached a terminal state: complete,
// error, or abandoned.
func (s *Session) Finished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abandoned || s.stage == StageComplete || s.stage == StageError
}

// LastTransition returns when the session last changed state.
func (s *Session) LastTransition() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updatedAt
}

// Snapshot returns the current stage, progress, and status.
func (s *Session) Snapshot() (Stage, int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage, s.progress, s.status
}

// Warnings returns a copy of the accumulated warnings.
func (s *Session) Warnings() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.warnings))
	copy(out, s.warnings)
	return out
}
