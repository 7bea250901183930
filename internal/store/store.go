// Package store persists uploaded résumé documents to the uploads directory
// and records upload metadata in PostgreSQL. The file write is authoritative;
// the database row is best-effort and never fails an upload.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store manages the uploads directory and optional metadata persistence.
type Store struct {
	dir  string
	pool *pgxpool.Pool
}

// SavedDocument describes a persisted upload.
type SavedDocument struct {
	ID       uuid.UUID
	Path     string
	Filename string
	Size     int
	SHA256   string
}

// New creates a store rooted at dir, creating it if needed. databaseURL may
// be empty; metadata persistence is then disabled.
func New(ctx context.Context, dir, databaseURL string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	s := &Store{dir: dir}
	if databaseURL != "" {
		pool, err := pgxpool.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		if err := ensureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		s.pool = pool
	}
	return s, nil
}

// Close releases the database pool if one is held.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Dir returns the uploads directory.
func (s *Store) Dir() string {
	return s.dir
}

// SaveDocument writes the upload under a fresh UUID filename and records its
// metadata. A metadata insert failure is logged and swallowed; the document
// on disk is the source of truth.
func (s *Store) SaveDocument(ctx context.Context, originalName string, data []byte) (*SavedDocument, error) {
	id := uuid.New()
	filename := id.String() + ".pdf"
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write document: %w", err)
	}

	sum := sha256.Sum256(data)
	doc := &SavedDocument{
		ID:       id,
		Path:     path,
		Filename: filename,
		Size:     len(data),
		SHA256:   hex.EncodeToString(sum[:]),
	}

	if s.pool != nil {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO uploads (id, original_name, stored_name, size_bytes, sha256)
			 VALUES ($1, $2, $3, $4, $5)`,
			doc.ID, originalName, doc.Filename, doc.Size, doc.SHA256,
		)
		if err != nil {
			log.Printf("[store] failed to record upload metadata for %s: %v", doc.ID, err)
		}
	}

	return doc, nil
}

// ensureSchema creates the uploads table when missing.
func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS uploads (
			id UUID PRIMARY KEY,
			original_name TEXT NOT NULL,
			stored_name TEXT NOT NULL,
			size_bytes INTEGER NOT NULL,
			sha256 TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure uploads schema: %w", err)
	}
	return nil
}
