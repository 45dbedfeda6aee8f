package form

import (
	"github.com/go-playground/validator/v10"
)

// Validator is a single pass/fail gate over a set of fields.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate reports whether every required field has a non-empty value.
// Names missing from fields count as empty.
func (v *Validator) Validate(fields Fields, required ...string) bool {
	for _, name := range required {
		if err := v.validate.Var(fields[name], "required"); err != nil {
			return false
		}
	}
	return true
}
