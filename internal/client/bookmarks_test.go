package client

import (
	"testing"
	"time"

	"tipjar/internal/models"
	"tipjar/internal/testutil"
)

func newTestList(t *testing.T) *BookmarkList {
	t.Helper()
	l, err := NewBookmarkList(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create bookmark list: %v", err)
	}
	return l
}

func bookmarkFixture(token string, age time.Duration) models.LinkBookmark {
	return models.LinkBookmark{
		Token:       token,
		DisplayName: "Alice",
		CreatedAt:   time.Now().UTC().Add(-age),
	}
}

func TestBookmarkList_SaveAll(t *testing.T) {
	l := newTestList(t)

	older := bookmarkFixture("0123456789abcdef0123456789abcdef", time.Hour)
	newer := bookmarkFixture("ffffffffffffffffffffffffffffffff", time.Minute)
	testutil.AssertNoError(t, l.Save(older))
	testutil.AssertNoError(t, l.Save(newer))

	links, err := l.All()
	testutil.AssertNoError(t, err)
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	if links[0].Token != newer.Token {
		t.Errorf("expected newest first, got %q", links[0].Token)
	}
}

func TestBookmarkList_Delete(t *testing.T) {
	l := newTestList(t)

	b := bookmarkFixture("0123456789abcdef0123456789abcdef", 0)
	testutil.AssertNoError(t, l.Save(b))
	testutil.AssertNoError(t, l.Delete(b.Token))

	links, err := l.All()
	testutil.AssertNoError(t, err)
	if len(links) != 0 {
		t.Errorf("expected empty list, got %d link(s)", len(links))
	}

	// Deleting again, or deleting junk, is a no-op.
	testutil.AssertNoError(t, l.Delete(b.Token))
	testutil.AssertNoError(t, l.Delete("../outside"))
}

func TestBookmarkList_RejectsMalformedTokens(t *testing.T) {
	l := newTestList(t)

	if err := l.Save(models.LinkBookmark{Token: "../escape"}); err == nil {
		t.Error("expected error saving malformed token")
	}
}

func TestBookmarkList_EmptyDir(t *testing.T) {
	l := newTestList(t)

	links, err := l.All()
	testutil.AssertNoError(t, err)
	if len(links) != 0 {
		t.Errorf("expected no links, got %d", len(links))
	}
}
