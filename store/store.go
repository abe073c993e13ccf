// Package store persists whole documents by key. Callers own the in-memory
// form of each document; the store only loads it once and overwrites it on
// every flush.
package store

import (
	"context"
	"errors"
	"fmt"
)

var ErrUnknownDocument = errors.New("unknown document key")

// Document keys used by the ledger.
const (
	KeyAccounts        = "cuentas"
	KeyLoans           = "prestamos"
	KeyDeletedAccounts = "cuentas_eliminadas"
	KeyInventory       = "inventario"
)

// Topics are the directories documents are grouped under.
var Topics = []string{"identity", "economy", "enforcement", "gameplay", "governance", "config", "backups"}

// documentTopics maps every known key to its topic.
var documentTopics = map[string]string{
	KeyAccounts:        "economy",
	KeyLoans:           "economy",
	KeyDeletedAccounts: "economy",
	KeyInventory:       "gameplay",
}

// DocumentStore loads and flushes documents.
//
// Load decodes the persisted document into dst. A document that was never
// flushed leaves dst untouched and is not an error.
// Flush fully replaces the persisted document with src.
type DocumentStore interface {
	Load(ctx context.Context, key string, dst any) error
	Flush(ctx context.Context, key string, src any) error
}

func topicOf(key string) (string, error) {
	topic, ok := documentTopics[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDocument, key)
	}
	return topic, nil
}
