package utils

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func phone10(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

// Validator returns the shared validator with the custom tags registered.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("phone10", phone10)
	})
	return validate
}

// RegisterBindingValidations installs the custom tags on gin's binding
// validator so request structs can use them.
func RegisterBindingValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("phone10", phone10)
}

// ValidPhone reports whether phone is exactly ten digits.
func ValidPhone(phone string) bool {
	return Validator().Var(phone, "phone10") == nil
}
