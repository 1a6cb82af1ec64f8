// File: store/memory_store.go
package store

import (
	"context"
	"fmt"
	"sync"

	"go-league-table/models"
)

// MemoryStore holds the encoded document in memory. Every Load returns an
// independent copy.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
	ver  int64
}

// NewMemoryStore optionally seeds the store with an initial document.
func NewMemoryStore(seed *models.Document) *MemoryStore {
	s := &MemoryStore{}
	if seed != nil {
		data, err := encode(seed)
		if err != nil {
			panic(fmt.Sprintf("memory store seed: %v", err))
		}
		s.data = data
		s.ver = seed.Version
	}
	return s
}

func (s *MemoryStore) Load(ctx context.Context) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, assigned, err := decode(s.data)
	if err != nil {
		return nil, err
	}
	doc.Version = s.ver
	if assigned {
		if s.data, err = encode(doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (s *MemoryStore) Save(ctx context.Context, doc *models.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if doc.Version != s.ver {
		return ErrVersionConflict
	}
	next := *doc
	next.Version++
	data, err := encode(&next)
	if err != nil {
		return err
	}
	s.data = data
	s.ver = next.Version
	doc.Version = next.Version
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
