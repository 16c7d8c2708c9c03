package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DefaultMessage is used when a tip page is created without a message.
const DefaultMessage = "Support my work anonymously"

// MethodKind identifies a supported payment method.
type MethodKind string

const (
	MethodBitcoin   MethodKind = "bitcoin"
	MethodLightning MethodKind = "lightning"
	MethodMonero    MethodKind = "monero"
	MethodVenmo     MethodKind = "venmo"
	MethodCashApp   MethodKind = "cashapp"
	MethodPayPal    MethodKind = "paypal"
)

// Valid reports whether the kind is one of the supported payment methods.
func (k MethodKind) Valid() bool {
	switch k {
	case MethodBitcoin, MethodLightning, MethodMonero, MethodVenmo, MethodCashApp, MethodPayPal:
		return true
	}
	return false
}

// IsCrypto reports whether the kind identifies its recipient by an address
// rather than an account handle.
func (k MethodKind) IsCrypto() bool {
	switch k {
	case MethodBitcoin, MethodLightning, MethodMonero:
		return true
	}
	return false
}

// PaymentMethod is the payload stored for one payment method on a tip page.
// Crypto kinds carry an address; account-handle kinds carry a username.
type PaymentMethod struct {
	Enabled  bool   `json:"enabled"`
	Address  string `json:"address,omitempty"`
	Username string `json:"username,omitempty"`
}

// PaymentMethods maps a method kind to its payload.
type PaymentMethods map[MethodKind]PaymentMethod

// Value serializes the map to JSON for database storage.
func (pm PaymentMethods) Value() (driver.Value, error) {
	data, err := json.Marshal(pm)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan deserializes the map from its database representation.
func (pm *PaymentMethods) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, pm)
	case string:
		return json.Unmarshal([]byte(v), pm)
	default:
		return fmt.Errorf("unsupported payment methods column type %T", value)
	}
}

// TipPageInput is the caller-supplied portion of a tip page. The token and
// creation timestamp are always assigned by the store.
type TipPageInput struct {
	DisplayName    string         `json:"displayName"`
	Message        string         `json:"message"`
	PaymentMethods PaymentMethods `json:"paymentMethods"`
}

// TipPage is an immutable tip page record keyed by its opaque token.
type TipPage struct {
	Token          string         `gorm:"primaryKey;size:32" json:"token"`
	DisplayName    string         `gorm:"not null" json:"displayName"`
	Message        string         `gorm:"not null" json:"message"`
	PaymentMethods PaymentMethods `gorm:"type:text;not null" json:"paymentMethods"`
	CreatedAt      time.Time      `json:"createdAt"`
}
