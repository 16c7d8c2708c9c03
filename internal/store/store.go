// Package store persists tip page records keyed by their token.
//
// A record is written exactly once and never updated or overwritten; reads
// are exact-match on the full token. Implementations must make a successful
// Put durable before returning.
package store

import (
	"errors"

	"tipjar/internal/models"
)

// ErrTokenExists is returned by Put when a record already exists at the
// token. Callers treat it as a signal to regenerate the token and retry,
// never as permission to overwrite.
var ErrTokenExists = errors.New("store: record already exists for token")

// ErrNotFound is returned by Get when no record exists at the token.
var ErrNotFound = errors.New("store: tip page not found")

// Store is the persistence contract shared by the authoritative backend
// store and the client's device-local store.
type Store interface {
	// Put persists a complete record under page.Token.
	Put(page *models.TipPage) error

	// Get returns the record stored under token, matched case-sensitively
	// against the exact token string.
	Get(token string) (*models.TipPage, error)
}
