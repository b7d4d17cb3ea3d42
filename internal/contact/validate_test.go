package contact

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		form       Form
		wantValid  bool
		wantFields []Field
	}{
		{
			name:      "complete",
			form:      Form{Name: "Alice", Email: "a@b.com", Service: "weight-loss"},
			wantValid: true,
		},
		{
			name:      "optional fields filled",
			form:      Form{Name: "Alice", Email: "a@b.com", Phone: "+1 555", Service: "nutrition-coaching", Message: "hi"},
			wantValid: true,
		},
		{
			name:       "empty form",
			form:       Form{},
			wantFields: []Field{FieldName, FieldEmail, FieldService},
		},
		{
			name:       "whitespace name",
			form:       Form{Name: "   ", Email: "a@b.com", Service: "weight-loss"},
			wantFields: []Field{FieldName},
		},
		{
			name:       "bad email",
			form:       Form{Name: "Alice", Email: "not-an-email", Service: "weight-loss"},
			wantFields: []Field{FieldEmail},
		},
		{
			name:       "unknown service",
			form:       Form{Name: "Alice", Email: "a@b.com", Service: "yoga"},
			wantFields: []Field{FieldService},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.form)
			if result.IsValid != tt.wantValid {
				t.Errorf("Expected valid=%v, got %v (%+v)", tt.wantValid, result.IsValid, result.Errors)
			}
			for _, field := range tt.wantFields {
				if result.FieldError(field) == "" {
					t.Errorf("Expected an error for field %s, got %+v", field, result.Errors)
				}
			}
			if len(result.Errors) != len(tt.wantFields) {
				t.Errorf("Expected %d errors, got %d (%+v)", len(tt.wantFields), len(result.Errors), result.Errors)
			}
		})
	}
}

func TestValidateCodes(t *testing.T) {
	result := Validate(Form{Name: "Alice", Email: "", Service: ""})
	codes := map[ValidationErrorCode]bool{}
	for _, e := range result.Errors {
		codes[e.Code] = true
	}
	if !codes[ErrorEmailRequired] || !codes[ErrorServiceRequired] {
		t.Errorf("Expected required codes, got %+v", result.Errors)
	}

	result = Validate(Form{Name: "Alice", Email: "nope", Service: "yoga"})
	if result.Errors[0].Code != ErrorInvalidEmail && result.Errors[1].Code != ErrorInvalidEmail {
		t.Errorf("Expected invalid email code, got %+v", result.Errors)
	}
}

func TestValidateNonFieldErrorNotBlamedOnName(t *testing.T) {
	result := resultFromError(errors.New("validator: (nil *contact.Form)"))

	if result.IsValid {
		t.Fatal("Expected an invalid result")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("Expected one error, got %+v", result.Errors)
	}
	if result.Errors[0].Code != ErrorInvalidForm {
		t.Errorf("Expected ErrorInvalidForm, got %v", result.Errors[0].Code)
	}
	if result.FieldError(FieldName) != "" {
		t.Errorf("Expected no error on the name field, got %q", result.FieldError(FieldName))
	}
}

func TestResultFromNilError(t *testing.T) {
	if result := resultFromError(nil); !result.IsValid || len(result.Errors) != 0 {
		t.Errorf("Expected a valid empty result, got %+v", result)
	}
}
