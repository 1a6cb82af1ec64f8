// File: store/file_store.go
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go-league-table/logger"
	"go-league-table/models"
)

// FileStore keeps the document in a single JSON file.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("file store path is required")
	}
	return &FileStore{path: path}, nil
}

// Load reads the document. A missing file yields an empty document.
func (s *FileStore) Load(ctx context.Context) (*models.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *FileStore) read() (*models.Document, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return emptyDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	doc, assigned, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	if assigned {
		logger.Info.Printf("FileStore: assigned ids to legacy matches in %s", s.path)
		if err := s.write(doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// Save writes doc if the stored version still matches doc.Version.
func (s *FileStore) Save(ctx context.Context, doc *models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		return err
	}
	if current.Version != doc.Version {
		logger.Warn.Printf("FileStore.Save: version conflict (stored=%d, loaded=%d)", current.Version, doc.Version)
		return ErrVersionConflict
	}

	next := *doc
	next.Version++
	if err := s.write(&next); err != nil {
		return err
	}
	doc.Version = next.Version
	return nil
}

// write replaces the file atomically via a temp file in the same directory.
func (s *FileStore) write(doc *models.Document) error {
	data, err := encode(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".league-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

func (s *FileStore) Close() error {
	return nil
}
