package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var currencyCodePattern = regexp.MustCompile(`^[A-Za-z]{3}$`)

// currencyCodeValidator accepts a 3-letter alphabetic currency code. Case is
// not enforced here; services normalize to uppercase.
func currencyCodeValidator(fl validator.FieldLevel) bool {
	return currencyCodePattern.MatchString(fl.Field().String())
}

// RegisterCustomValidators attaches the application's custom binding
// validators to gin's validator engine. Call once at startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currencycode", currencyCodeValidator)
}
