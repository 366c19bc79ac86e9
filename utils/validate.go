package utils

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"book_browser/lang"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Validator returns the shared validator with the app's custom tags
// registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("locale", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for _, loc := range lang.AvailableLocales() {
				if string(loc) == value {
					return true
				}
			}
			return false
		})

		validateInst = v
	})

	return validateInst
}
