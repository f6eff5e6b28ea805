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

// TagSafeID accepts identifiers usable as a single path segment:
// an alphanumeric first character, then up to 127 of [A-Za-z0-9_.-].
const TagSafeID = "safeid"

var safeIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{0,127}$`)

// New creates a new validator instance with the custom tags registered.
func New() *Validate {
	validate := validator.New()
	_ = validate.RegisterValidation(TagSafeID, func(fl validator.FieldLevel) bool {
		return safeIDPattern.MatchString(fl.Field().String())
	})
	return validate
}

// IsSafeID reports whether id satisfies TagSafeID.
func IsSafeID(id string) bool {
	return safeIDPattern.MatchString(id)
}
