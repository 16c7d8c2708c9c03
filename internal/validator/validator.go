// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"tipjar/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("notblank", validateNotBlank)
		_ = v.RegisterValidation("method_kind", validateMethodKind)
	}
}

// validateNotBlank rejects strings that are empty or whitespace-only.
// "required" alone accepts a display name of " ".
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateMethodKind(fl validator.FieldLevel) bool {
	return models.MethodKind(fl.Field().String()).Valid()
}
