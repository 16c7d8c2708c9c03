package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"tipjar/internal/models"
	"tipjar/internal/token"
)

// bookmarkKeyPrefix namespaces bookmark entries so nothing else sharing the
// directory can collide with them.
const bookmarkKeyPrefix = "tip_token_"

// BookmarkList is the device-local "my links" list: one JSON file per
// created page, keyed tip_token_<token>. Entries are enumerable and
// individually deletable, and deleting one never touches the page it points
// at.
type BookmarkList struct {
	dir string
}

// NewBookmarkList creates the bookmark directory if needed.
func NewBookmarkList(dir string) (*BookmarkList, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create bookmark directory: %w", err)
	}
	return &BookmarkList{dir: dir}, nil
}

// Save writes or replaces the bookmark for b.Token.
func (l *BookmarkList) Save(b models.LinkBookmark) error {
	if !token.IsValid(b.Token) {
		return fmt.Errorf("refusing to bookmark malformed token %q", b.Token)
	}

	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bookmark: %w", err)
	}

	tmp, err := os.CreateTemp(l.dir, b.Token+".tmp-")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write bookmark: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close bookmark file: %w", err)
	}
	if err := os.Rename(tmp.Name(), l.path(b.Token)); err != nil {
		return fmt.Errorf("failed to commit bookmark: %w", err)
	}
	return nil
}

// All returns every bookmark, newest first. Unreadable entries are skipped
// rather than hiding the rest of the list.
func (l *BookmarkList) All() ([]models.LinkBookmark, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read bookmark directory: %w", err)
	}

	var links []models.LinkBookmark
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, bookmarkKeyPrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(l.dir, name))
		if err != nil {
			continue
		}
		var b models.LinkBookmark
		if err := json.Unmarshal(data, &b); err != nil {
			continue
		}
		links = append(links, b)
	}

	sort.Slice(links, func(i, j int) bool {
		return links[i].CreatedAt.After(links[j].CreatedAt)
	})
	return links, nil
}

// Delete removes the bookmark for the token. Deleting a bookmark that does
// not exist is a no-op.
func (l *BookmarkList) Delete(tok string) error {
	if !token.IsValid(tok) {
		return nil
	}
	err := os.Remove(l.path(tok))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	return nil
}

func (l *BookmarkList) path(tok string) string {
	return filepath.Join(l.dir, bookmarkKeyPrefix+tok+".json")
}
