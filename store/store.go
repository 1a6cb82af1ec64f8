// Package store persists the league document.
// File: store/store.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go-league-table/models"
)

// ErrVersionConflict is returned by Save when the stored document changed
// after it was loaded.
var ErrVersionConflict = errors.New("document was modified by another request")

// Store loads and saves the whole league document.
//
// Save succeeds only if the stored version still equals doc.Version; on
// success doc.Version is incremented to the new stored version.
type Store interface {
	Load(ctx context.Context) (*models.Document, error)
	Save(ctx context.Context, doc *models.Document) error
	Close() error
}

// Open returns the Store for the given driver: "file", "sqlite" or "memory".
func Open(driver, path string) (Store, error) {
	switch driver {
	case "file":
		return NewFileStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	case "memory":
		return NewMemoryStore(nil), nil
	}
	return nil, fmt.Errorf("unsupported storage driver: %s", driver)
}

func emptyDocument() *models.Document {
	return &models.Document{
		Users:   []models.User{},
		Teams:   []models.Team{},
		Matches: []models.Match{},
	}
}

// normalize fills nil lists and assigns ids to matches that lack one. It
// reports whether any id was assigned.
func normalize(doc *models.Document) bool {
	if doc.Users == nil {
		doc.Users = []models.User{}
	}
	if doc.Teams == nil {
		doc.Teams = []models.Team{}
	}
	if doc.Matches == nil {
		doc.Matches = []models.Match{}
	}
	assigned := false
	for i := range doc.Matches {
		if doc.Matches[i].ID == "" {
			doc.Matches[i].ID = uuid.NewString()
			assigned = true
		}
	}
	return assigned
}

// decode parses a stored document. assigned is true when legacy matches were
// given ids, in which case the caller should write the document back so the
// ids stay stable across requests.
func decode(data []byte) (doc *models.Document, assigned bool, err error) {
	doc = emptyDocument()
	if len(data) == 0 {
		return doc, false, nil
	}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, false, err
	}
	return doc, normalize(doc), nil
}

func encode(doc *models.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "    ")
}
