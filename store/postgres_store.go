package store

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"rpbank/logger"

	"github.com/sirupsen/logrus"
)

// Migrations holds the schema for the documents table.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// PostgresStore keeps every document as one JSONB row keyed by document key.
type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) Load(ctx context.Context, key string, dst any) error {
	if _, err := topicOf(key); err != nil {
		return err
	}
	log := logger.Log.WithField("key", key)
	log.Debug("Executing query to load document")

	var body []byte
	query := `SELECT body FROM documents WHERE key = $1`
	err := s.DB.QueryRowContext(ctx, query, key).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to execute load document query")
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) Flush(ctx context.Context, key string, src any) error {
	topic, err := topicOf(key)
	if err != nil {
		return err
	}
	log := logger.Log.WithFields(logrus.Fields{"key": key, "topic": topic})
	log.Debug("Executing query to flush document")

	body, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	query := `INSERT INTO documents (key, topic, body, updated_at) VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = NOW()`
	if _, err := s.DB.ExecContext(ctx, query, key, topic, body); err != nil {
		log.WithError(err).Error("Failed to execute flush document query")
		return fmt.Errorf("flush %s: %w", key, err)
	}
	return nil
}
