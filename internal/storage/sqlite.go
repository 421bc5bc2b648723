package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/itf-dev/schedule-masters/internal/model/chat"
)

// SQLiteStore provides SQLite-backed transcript persistence.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens the database at dbPath and creates the schema if it
// does not exist.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := createTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func createTables(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS transcripts (
		topic_id TEXT NOT NULL,
		identity_key TEXT NOT NULL,
		payload TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (topic_id, identity_key)
	);
	`
	_, err := db.Exec(schema)
	return err
}

// Load returns the transcript stored for the key, if any.
func (s *SQLiteStore) Load(ctx context.Context, key Key) ([]chat.Message, bool, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM transcripts WHERE topic_id = ? AND identity_key = ?`,
		key.TopicID, key.IdentityKey,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load transcript: %w", err)
	}

	var messages []chat.Message
	if err := json.Unmarshal([]byte(payload), &messages); err != nil {
		return nil, false, fmt.Errorf("decode transcript: %w", err)
	}

	return messages, true, nil
}

// Save overwrites the transcript stored for the key.
func (s *SQLiteStore) Save(ctx context.Context, key Key, messages []chat.Message) error {
	payload, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transcripts (topic_id, identity_key, payload) VALUES (?, ?, ?)
		 ON CONFLICT(topic_id, identity_key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = CURRENT_TIMESTAMP`,
		key.TopicID, key.IdentityKey, string(payload),
	)
	if err != nil {
		return fmt.Errorf("save transcript: %w", err)
	}

	return nil
}

var _ Store = (*SQLiteStore)(nil)
