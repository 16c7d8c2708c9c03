package services

import (
	"tipjar/internal/models"
)

// TipPageServicer defines the contract for tip page business logic. The
// backend service and the client's device-local fallback both satisfy it.
type TipPageServicer interface {
	// CreateTipPage validates the input, assigns a fresh token, persists the
	// record durably, and returns the token.
	CreateTipPage(input models.TipPageInput) (string, error)

	// GetTipPage returns the record stored under token. It has no side
	// effects and may be called any number of times.
	GetTipPage(token string) (*models.TipPage, error)
}
