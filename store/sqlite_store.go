// File: store/sqlite_store.go
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"go-league-table/logger"
	"go-league-table/models"

	_ "modernc.org/sqlite"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS league_document (
		id      INTEGER PRIMARY KEY CHECK (id = 1),
		version INTEGER NOT NULL,
		body    TEXT    NOT NULL
	)`,
	`INSERT OR IGNORE INTO league_document (id, version, body) VALUES (1, 0, '')`,
}

// SQLiteStore keeps the document as a single versioned row, so the
// version check and the write happen in one conditional UPDATE.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	for _, stmt := range sqliteSchema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply sqlite schema: %w", err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (*models.Document, error) {
	var (
		version int64
		body    string
	)
	err := s.db.QueryRowContext(ctx, `SELECT version, body FROM league_document WHERE id = 1`).Scan(&version, &body)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}
	doc, assigned, err := decode([]byte(body))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	doc.Version = version

	if assigned {
		logger.Info.Println("SQLiteStore: assigned ids to legacy matches")
		data, err := encode(doc)
		if err != nil {
			return nil, fmt.Errorf("encode document: %w", err)
		}
		// Only the ids changed, so the version stays the same. A concurrent
		// save wins and this request simply sees its own ids.
		if _, err := s.db.ExecContext(ctx,
			`UPDATE league_document SET body = ? WHERE id = 1 AND version = ?`, string(data), version); err != nil {
			return nil, fmt.Errorf("store assigned ids: %w", err)
		}
	}
	return doc, nil
}

func (s *SQLiteStore) Save(ctx context.Context, doc *models.Document) error {
	next := *doc
	next.Version++
	data, err := encode(&next)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE league_document SET body = ?, version = version + 1 WHERE id = 1 AND version = ?`,
		string(data), doc.Version)
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	if n == 0 {
		logger.Warn.Printf("SQLiteStore.Save: version conflict (loaded=%d)", doc.Version)
		return ErrVersionConflict
	}
	doc.Version = next.Version
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
