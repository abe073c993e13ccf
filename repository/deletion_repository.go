// file: repository/deletion_repository.go

package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"rpbank/logger"
	"rpbank/model"
	"rpbank/store"
)

// IDeletionRepository defines the contract for the append-only deletion log.
type IDeletionRepository interface {
	Append(record model.DeletionRecord) error
	List() []model.DeletionRecord
	Flush(ctx context.Context) error
}

// DeletionRepository keeps the backups of removed accounts in order. Entries
// are kept as the bytes they were loaded or appended as, so fields this
// service does not model survive a flush.
type DeletionRepository struct {
	store   store.DocumentStore
	entries []json.RawMessage
	records []model.DeletionRecord
}

func NewDeletionRepository(ctx context.Context, s store.DocumentStore) (*DeletionRepository, error) {
	var raw json.RawMessage
	if err := s.Load(ctx, store.KeyDeletedAccounts, &raw); err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	// Older data directories were seeded with "{}" before the first deletion.
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("decode %s: %w", store.KeyDeletedAccounts, err)
		}
	}
	records := make([]model.DeletionRecord, len(entries))
	for i, entry := range entries {
		if err := json.Unmarshal(entry, &records[i]); err != nil {
			return nil, fmt.Errorf("decode %s[%d]: %w", store.KeyDeletedAccounts, i, err)
		}
	}
	logger.Log.WithField("count", len(records)).Info("Deletion records loaded")
	return &DeletionRepository{store: s, entries: entries, records: records}, nil
}

func (r *DeletionRepository) Append(record model.DeletionRecord) error {
	entry, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode deletion record %s: %w", record.ID, err)
	}
	r.entries = append(r.entries, entry)
	r.records = append(r.records, record)
	return nil
}

// List returns a copy of the records, oldest first.
func (r *DeletionRepository) List() []model.DeletionRecord {
	out := make([]model.DeletionRecord, len(r.records))
	copy(out, r.records)
	return out
}

func (r *DeletionRepository) Flush(ctx context.Context) error {
	entries := r.entries
	if entries == nil {
		entries = []json.RawMessage{}
	}
	if err := r.store.Flush(ctx, store.KeyDeletedAccounts, entries); err != nil {
		logger.Log.WithField("key", store.KeyDeletedAccounts).WithError(err).Error("Failed to flush deletion records")
		return err
	}
	return nil
}
