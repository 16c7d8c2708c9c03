package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "tipjar/internal/errors"
	"tipjar/internal/models"
	"tipjar/internal/store"
	"tipjar/internal/token"
)

// maxTokenAttempts bounds the regenerate-and-retry loop on token collision.
// With 128-bit tokens a single collision is already astronomically unlikely;
// hitting the cap means the random source is broken.
const maxTokenAttempts = 5

// tipPageService handles tip page business logic on top of a Store.
type tipPageService struct {
	store store.Store
}

// NewTipPageService creates a new TipPageServicer backed by the given store.
func NewTipPageService(s store.Store) TipPageServicer {
	return &tipPageService{store: s}
}

// CreateTipPage validates the input and persists a new immutable record.
// The token is always generated here, never taken from the caller, and an
// occupied token is retried with a fresh one rather than overwritten.
func (s *tipPageService) CreateTipPage(input models.TipPageInput) (string, error) {
	if err := validateInput(input); err != nil {
		return "", err
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		message = models.DefaultMessage
	}

	for attempts := 0; attempts < maxTokenAttempts; attempts++ {
		tok, err := token.New()
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		page := &models.TipPage{
			Token:          tok,
			DisplayName:    input.DisplayName,
			Message:        message,
			PaymentMethods: input.PaymentMethods,
			CreatedAt:      time.Now().UTC(),
		}

		err = s.store.Put(page)
		if errors.Is(err, store.ErrTokenExists) {
			continue
		}
		if err != nil {
			return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return tok, nil
	}

	return "", apperrors.Wrap(apperrors.ErrInternalServer,
		fmt.Errorf("gave up after %d token collisions", maxTokenAttempts))
}

// GetTipPage looks up a record by exact token match.
func (s *tipPageService) GetTipPage(tok string) (*models.TipPage, error) {
	if tok == "" {
		return nil, apperrors.ErrTokenRequired
	}

	page, err := s.store.Get(tok)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperrors.ErrTipPageNotFound
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return page, nil
}

// validateInput enforces the creation invariants: a non-blank display name
// and at least one well-formed payment method. The client-facing message is
// always the fixed "Invalid data"; the specific reason only goes to the log.
func validateInput(input models.TipPageInput) error {
	if strings.TrimSpace(input.DisplayName) == "" {
		return apperrors.Wrap(apperrors.ErrInvalidData, errors.New("display name is blank"))
	}
	if len(input.PaymentMethods) == 0 {
		return apperrors.Wrap(apperrors.ErrInvalidData, errors.New("no payment methods"))
	}

	for kind, method := range input.PaymentMethods {
		if !kind.Valid() {
			return apperrors.Wrap(apperrors.ErrInvalidData, fmt.Errorf("unknown payment method %q", kind))
		}
		if !method.Enabled {
			return apperrors.Wrap(apperrors.ErrInvalidData, fmt.Errorf("payment method %q is disabled", kind))
		}
		if kind.IsCrypto() && strings.TrimSpace(method.Address) == "" {
			return apperrors.Wrap(apperrors.ErrInvalidData, fmt.Errorf("payment method %q has no address", kind))
		}
		if !kind.IsCrypto() && strings.TrimSpace(method.Username) == "" {
			return apperrors.Wrap(apperrors.ErrInvalidData, fmt.Errorf("payment method %q has no username", kind))
		}
	}
	return nil
}
