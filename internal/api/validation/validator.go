package validation

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/osa911/contactrelay/internal/api/dto/v1/contact"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// messages maps a struct field and failing tag onto the text shown to the
// submitter. Fields are checked in declaration order and only the first
// failing tag of a field is reported, which gives the fixed rule order.
var messages = map[string]map[string]string{
	"Name": {
		"required": "Name is required",
		"max":      "Name must be less than 100 characters",
	},
	"Email": {
		"required": "Email is required",
		"email":    "Invalid email format",
	},
	"Message": {
		"required": "Message is required",
		"max":      "Message must be less than 5000 characters",
	},
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	// Replaces the RFC 5322 builtin with the narrower local@domain.tld form.
	_ = v.RegisterValidation("email", validateEmail)
}

// validateEmail checks if the email is valid
func validateEmail(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

// IsValidEmail reports whether email has the local@domain.tld shape
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidationError represents the first rule a submission violated
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator checks contact submissions
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator with the contact rules registered
func NewValidator() *Validator {
	validate := validator.New()
	RegisterValidators(validate)
	return &Validator{validate: validate}
}

// ValidateContact returns nil for a valid submission, or a *ValidationError
// describing the first violated rule. req must already be normalized.
func (v *Validator) ValidateContact(req *contact.ContactRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	first := validationErrors[0]
	message, ok := messages[first.StructField()][first.Tag()]
	if !ok {
		message = "Invalid " + first.Field()
	}
	return &ValidationError{
		Field:   first.Field(),
		Tag:     first.Tag(),
		Message: message,
	}
}
