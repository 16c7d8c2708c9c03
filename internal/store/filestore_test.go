package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"tipjar/internal/models"
)

func testPage(token string) *models.TipPage {
	return &models.TipPage{
		Token:       token,
		DisplayName: "Alice",
		Message:     "Support my work anonymously",
		PaymentMethods: models.PaymentMethods{
			models.MethodBitcoin: {Enabled: true, Address: "bc1xyz"},
			models.MethodPayPal:  {Enabled: true, Username: "alice"},
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestFileStore_PutGet(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	page := testPage("0123456789abcdef0123456789abcdef")
	if err := s.Put(page); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := s.Get(page.Token)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.DisplayName != page.DisplayName || got.Message != page.Message {
		t.Errorf("round trip mismatch: got %+v", got)
	}
	if !reflect.DeepEqual(got.PaymentMethods, page.PaymentMethods) {
		t.Errorf("payment methods mismatch: got %+v, want %+v", got.PaymentMethods, page.PaymentMethods)
	}
	if !got.CreatedAt.Equal(page.CreatedAt) {
		t.Errorf("created at mismatch: got %v, want %v", got.CreatedAt, page.CreatedAt)
	}
}

func TestFileStore_NeverOverwrites(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	page := testPage("0123456789abcdef0123456789abcdef")
	if err := s.Put(page); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	second := testPage(page.Token)
	second.DisplayName = "Mallory"
	if err := s.Put(second); !errors.Is(err, ErrTokenExists) {
		t.Fatalf("expected ErrTokenExists, got %v", err)
	}

	got, err := s.Get(page.Token)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.DisplayName != "Alice" {
		t.Errorf("original record was overwritten: got %q", got.DisplayName)
	}
}

func TestFileStore_GetMissing(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	if _, err := s.Get("ffffffffffffffffffffffffffffffff"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestFileStore_RejectsMalformedTokens(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	// A traversal-shaped token must not read outside the data directory.
	secret := filepath.Join(dir, "..", "secret.json")
	if err := os.WriteFile(secret, []byte(`{"displayName":"x"}`), 0o600); err != nil {
		t.Fatalf("failed to plant file: %v", err)
	}

	if _, err := s.Get("../secret"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for traversal token, got %v", err)
	}
	if err := s.Put(testPage("not-a-token")); err == nil {
		t.Error("expected error storing malformed token")
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	page := testPage("0123456789abcdef0123456789abcdef")
	if err := s.Put(page); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	reopened, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	got, err := reopened.Get(page.Token)
	if err != nil {
		t.Fatalf("get after reopen failed: %v", err)
	}
	if got.DisplayName != page.DisplayName {
		t.Errorf("expected %q, got %q", page.DisplayName, got.DisplayName)
	}
}
