package testutil

import (
	"tipjar/internal/models"
)

// ValidInput returns a minimal valid tip page input.
func ValidInput() models.TipPageInput {
	return models.TipPageInput{
		DisplayName: "Alice",
		PaymentMethods: models.PaymentMethods{
			models.MethodBitcoin: {Enabled: true, Address: "bc1xyz"},
		},
	}
}

// FullInput returns an input exercising every supported payment method.
func FullInput() models.TipPageInput {
	return models.TipPageInput{
		DisplayName: "Bob",
		Message:     "Buy me a coffee",
		PaymentMethods: models.PaymentMethods{
			models.MethodBitcoin:   {Enabled: true, Address: "bc1qexample"},
			models.MethodLightning: {Enabled: true, Address: "lnbc1example"},
			models.MethodMonero:    {Enabled: true, Address: "44AfFExample"},
			models.MethodVenmo:     {Enabled: true, Username: "bob-v"},
			models.MethodCashApp:   {Enabled: true, Username: "$bob"},
			models.MethodPayPal:    {Enabled: true, Username: "bob@example.com"},
		},
	}
}
