package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveDocumentWritesFile(t *testing.T) {
	dir := t.TempDir()
	s, err := New(context.Background(), filepath.Join(dir, "uploads"), "")
	require.NoError(t, err)
	defer s.Close()

	doc, err := s.SaveDocument(context.Background(), "resume.pdf", []byte("%PDF-1.4 content"))
	require.NoError(t, err)

	assert.NotEqual(t, "resume.pdf", doc.Filename)
	assert.Equal(t, ".pdf", filepath.Ext(doc.Filename))
	assert.Equal(t, 16, doc.Size)
	assert.Len(t, doc.SHA256, 64)

	data, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 content"), data)
}

func TestSaveDocumentUniqueNames(t *testing.T) {
	s, err := New(context.Background(), t.TempDir(), "")
	require.NoError(t, err)
	defer s.Close()

	a, err := s.SaveDocument(context.Background(), "resume.pdf", []byte("%PDF-a"))
	require.NoError(t, err)
	b, err := s.SaveDocument(context.Background(), "resume.pdf", []byte("%PDF-b"))
	require.NoError(t, err)

	assert.NotEqual(t, a.Filename, b.Filename)
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s, err := New(context.Background(), dir, "")
	require.NoError(t, err)
	defer s.Close()

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, dir, s.Dir())
}
