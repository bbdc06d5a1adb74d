package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagLogName accepts a single path segment made of letters, digits, '.', '_' and '-',
// not starting with a dot.
const TagLogName = "logname"

var logNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-][A-Za-z0-9._-]{0,127}$`)

// New creates a new validator instance with the custom tags registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagLogName, func(fl validator.FieldLevel) bool {
		return logNamePattern.MatchString(fl.Field().String())
	})
	return v
}
