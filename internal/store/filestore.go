package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tipjar/internal/models"
	"tipjar/internal/token"
)

// FileStore keeps one JSON file per tip page under a data directory, named
// <token>.json. Records are self-contained, so the directory can be moved or
// sharded by token without any rewriting.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store
// backed by it.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Put writes the record to <token>.json. The file is written to a temporary
// name, synced, and renamed into place so a crash can never leave a partial
// record at the final path.
func (s *FileStore) Put(page *models.TipPage) error {
	if !token.IsValid(page.Token) {
		return fmt.Errorf("refusing to store malformed token %q", page.Token)
	}

	path := s.path(page.Token)
	if _, err := os.Stat(path); err == nil {
		return ErrTokenExists
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to check for existing record: %w", err)
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, page.Token+".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write record: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close record file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to commit record: %w", err)
	}
	return nil
}

// Get reads the record stored under token. Tokens that do not have the
// generated shape cannot name a file in the directory, so they are reported
// as not found without touching the filesystem.
func (s *FileStore) Get(tok string) (*models.TipPage, error) {
	if !token.IsValid(tok) {
		return nil, ErrNotFound
	}

	data, err := os.ReadFile(s.path(tok))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record: %w", err)
	}

	var page models.TipPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("failed to decode record %s: %w", tok, err)
	}
	return &page, nil
}

func (s *FileStore) path(tok string) string {
	return filepath.Join(s.dir, tok+".json")
}
