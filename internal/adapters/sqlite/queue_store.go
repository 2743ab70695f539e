package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/example/monitoreo/internal/ports/secondary"
)

// QueueStore implements secondary.QueueStore on the kv table. Each
// category is one JSON array blob; Enqueue is a read-modify-write inside
// a transaction and every write replaces the whole blob, so a failure
// mid-operation leaves the previous persisted list intact.
type QueueStore struct {
	db *sql.DB
}

// NewQueueStore creates a new SQLite queue store.
func NewQueueStore(db *sql.DB) *QueueStore {
	return &QueueStore{db: db}
}

// Enqueue appends one serialized record to the category's persisted list.
func (s *QueueStore) Enqueue(ctx context.Context, category string, record []byte) error {
	if !json.Valid(record) {
		return fmt.Errorf("record for %s is not valid JSON", category)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin enqueue: %w", err)
	}
	defer tx.Rollback()

	records, err := readQueue(ctx, tx, category)
	if err != nil {
		return err
	}
	records = append(records, record)

	if err := writeQueue(ctx, tx, category, records); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit enqueue: %w", err)
	}
	return nil
}

// List returns all pending records in insertion order.
func (s *QueueStore) List(ctx context.Context, category string) ([][]byte, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", category).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read queue %s: %w", category, err)
	}
	return decodeQueue(category, blob)
}

// Replace writes back a filtered list as the new persisted value. An
// empty list removes the key.
func (s *QueueStore) Replace(ctx context.Context, category string, records [][]byte) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin replace: %w", err)
	}
	defer tx.Rollback()

	if err := writeQueue(ctx, tx, category, records); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit replace: %w", err)
	}
	return nil
}

// Clear removes all records in the category.
func (s *QueueStore) Clear(ctx context.Context, category string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", category); err != nil {
		return fmt.Errorf("failed to clear queue %s: %w", category, err)
	}
	return nil
}

type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func readQueue(ctx context.Context, q execQuerier, category string) ([][]byte, error) {
	var blob []byte
	err := q.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", category).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read queue %s: %w", category, err)
	}
	return decodeQueue(category, blob)
}

func writeQueue(ctx context.Context, q execQuerier, category string, records [][]byte) error {
	if len(records) == 0 {
		if _, err := q.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", category); err != nil {
			return fmt.Errorf("failed to clear queue %s: %w", category, err)
		}
		return nil
	}

	raws := make([]json.RawMessage, len(records))
	for i, r := range records {
		raws[i] = json.RawMessage(r)
	}
	blob, err := json.Marshal(raws)
	if err != nil {
		return fmt.Errorf("failed to serialize queue %s: %w", category, err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		category, blob)
	if err != nil {
		return fmt.Errorf("failed to write queue %s: %w", category, err)
	}
	return nil
}

func decodeQueue(category string, blob []byte) ([][]byte, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(blob, &raws); err != nil {
		return nil, fmt.Errorf("queue %s is corrupt: %w", category, err)
	}
	records := make([][]byte, len(raws))
	for i, r := range raws {
		records[i] = []byte(r)
	}
	return records, nil
}

var _ secondary.QueueStore = (*QueueStore)(nil)
