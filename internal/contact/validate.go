package contact

import (
	"errors"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorCode represents specific validation error types
type ValidationErrorCode int

const (
	ErrorNameRequired ValidationErrorCode = iota
	ErrorEmailRequired
	ErrorInvalidEmail
	ErrorServiceRequired
	ErrorInvalidService
	// ErrorInvalidForm reports a validator failure not tied to any field.
	ErrorInvalidForm
)

// ValidationError represents a specific validation error
type ValidationError struct {
	Field   Field
	Code    ValidationErrorCode
	Message string
}

// ValidationResult represents the result of form validation
type ValidationResult struct {
	IsValid bool
	Errors  []ValidationError
}

// FieldError returns the first error message for field, or "".
func (r ValidationResult) FieldError(field Field) string {
	for _, e := range r.Errors {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks the required-field contract of the contact form. It is the
// caller's precondition for Submit; the controller never runs it itself.
// Surrounding whitespace is ignored.
func Validate(form Form) ValidationResult {
	trimmed := Form{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Phone:   form.Phone,
		Service: strings.TrimSpace(form.Service),
		Message: form.Message,
	}

	return resultFromError(formValidator().Struct(trimmed))
}

func resultFromError(err error) ValidationResult {
	result := ValidationResult{IsValid: true}
	if err == nil {
		return result
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		result.IsValid = false
		result.Errors = append(result.Errors, ValidationError{
			Code:    ErrorInvalidForm,
			Message: err.Error(),
		})
		return result
	}

	for _, fe := range fieldErrs {
		if ve, ok := toValidationError(fe); ok {
			result.Errors = append(result.Errors, ve)
		}
	}
	result.IsValid = len(result.Errors) == 0
	return result
}

func toValidationError(fe validator.FieldError) (ValidationError, bool) {
	switch fe.StructField() {
	case "Name":
		return ValidationError{Field: FieldName, Code: ErrorNameRequired, Message: "Name is required"}, true
	case "Email":
		if fe.Tag() == "required" {
			return ValidationError{Field: FieldEmail, Code: ErrorEmailRequired, Message: "Email is required"}, true
		}
		return ValidationError{Field: FieldEmail, Code: ErrorInvalidEmail, Message: "Enter a valid email address"}, true
	case "Service":
		if fe.Tag() == "required" {
			return ValidationError{Field: FieldService, Code: ErrorServiceRequired, Message: "Select a service"}, true
		}
		return ValidationError{Field: FieldService, Code: ErrorInvalidService, Message: "Unknown service"}, true
	default:
		return ValidationError{}, false
	}
}
