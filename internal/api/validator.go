package api

import (
	"log"

	"github.com/go-playground/validator/v10"

	"parkspot/internal/payment"
)

// newValidator builds the request validator with the upi_handle rule
// registered; the rule reuses the payment package's shape check.
func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("upi_handle", func(fl validator.FieldLevel) bool {
		return payment.ValidateUPI(payment.NormalizeUPI(fl.Field().String())) == nil
	})
	if err != nil {
		log.Fatalf("Failed to register 'upi_handle' validator: %v", err)
	}
	return v
}
