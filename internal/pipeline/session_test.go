package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionProgressIsMonotonic(t *testing.T) {
	var progresses []int
	s := NewSession(func(e ProgressEvent) { progresses = append(progresses, e.Progress) })

	s.Advance(StageRemoteParsing, 25, "parsing")
	s.Advance(StageLocalParsing, 40, "local")
	s.Advance(StageError, 0, "late low checkpoint")

	for i := 1; i < len(progresses); i++ {
		assert.GreaterOrEqual(t, progresses[i], progresses[i-1])
	}
	_, progress, _ := s.Snapshot()
	assert.Equal(t, 40, progress)
}

func TestSessionAbandonStopsEmission(t *testing.T) {
	count := 0
	s := NewSession(func(ProgressEvent) { count++ })

	s.Advance(StageUploading, 10, "uploading")
	s.Abandon()
	s.Advance(StageMapping, 50, "mapping")
	s.Advance(StageComplete, 100, "done")

	assert.Equal(t, 1, count)
	assert.True(t, s.Abandoned())

	// Stage stays frozen at the last pre-abandon value.
	stage, progress, _ := s.Snapshot()
	assert.Equal(t, StageUploading, stage)
	assert.Equal(t, 10, progress)
}

func TestSessionWarnings(t *testing.T) {
	s := NewSession(nil)
	s.Warn("first")
	s.Warn("")
	s.Warn("second")

	require.Equal(t, []string{"first", "second"}, s.Warnings())
}

func TestSessionFinished(t *testing.T) {
	s := NewSession(nil)
	assert.False(t, s.Finished())

	s.Advance(StageRemoteParsing, 25, "parsing")
	assert.False(t, s.Finished())

	s.Advance(StageComplete, 100, "done")
	assert.True(t, s.Finished())

	errored := NewSession(nil)
	errored.Advance(StageError, 0, "failed")
	assert.True(t, errored.Finished())

	abandoned := NewSession(nil)
	abandoned.Abandon()
	assert.True(t, abandoned.Finished())
}

func TestSessionLastTransitionAdvances(t *testing.T) {
	s := NewSession(nil)
	created := s.LastTransition()
	assert.False(t, created.IsZero())

	s.Advance(StageUploading, 10, "uploading")
	assert.False(t, s.LastTransition().Before(created))
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := NewSession(nil)
	b := NewSession(nil)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotEmpty(t, a.ID())
}
