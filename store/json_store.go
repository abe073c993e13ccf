package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"rpbank/logger"

	"github.com/sirupsen/logrus"
)

// JSONStore keeps one indented JSON file per document under
// <dir>/<topic>/<key>.json.
type JSONStore struct {
	dir string
}

// NewJSONStore creates dir and its topic subdirectories.
func NewJSONStore(dir string) (*JSONStore, error) {
	for _, topic := range Topics {
		if err := os.MkdirAll(filepath.Join(dir, topic), 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return &JSONStore{dir: dir}, nil
}

func (s *JSONStore) path(key string) (string, error) {
	topic, err := topicOf(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.dir, topic, key+".json"), nil
}

func (s *JSONStore) Load(_ context.Context, key string, dst any) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	log := logger.Log.WithFields(logrus.Fields{"key": key, "path": path})

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Debug("Document not found, starting empty")
		return nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to read document")
		return fmt.Errorf("read %s: %w", key, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.WithError(err).Error("Failed to decode document")
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// Flush writes the document to a temp file in the same directory and renames
// it over the previous version, so a crash never leaves a half-written file.
func (s *JSONStore) Flush(_ context.Context, key string, src any) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}
	log := logger.Log.WithFields(logrus.Fields{"key": key, "path": path})

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(src); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), key+".*.tmp")
	if err != nil {
		log.WithError(err).Error("Failed to create temp file")
		return fmt.Errorf("flush %s: %w", key, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flush %s: %w", key, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flush %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("flush %s: %w", key, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		log.WithError(err).Error("Failed to replace document")
		return fmt.Errorf("flush %s: %w", key, err)
	}

	log.Debug("Document flushed")
	return nil
}
