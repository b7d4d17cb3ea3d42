package contact

import (
	"time"
)

type Service string

const (
	ServiceWeightLoss        Service = "weight-loss"
	ServiceStrengthTraining  Service = "strength-training"
	ServiceFlexibilityRehab  Service = "flexibility-rehab"
	ServiceNutritionCoaching Service = "nutrition-coaching"
)

// ServiceOption pairs a service value with the label shown in the picker.
type ServiceOption struct {
	Value Service
	Label string
}

// Services is the fixed set offered by the contact form, in display order.
var Services = []ServiceOption{
	{Value: ServiceWeightLoss, Label: "Weight Loss"},
	{Value: ServiceStrengthTraining, Label: "Strength Training / Weight Gain"},
	{Value: ServiceFlexibilityRehab, Label: "Flexibility & Rehabilitation"},
	{Value: ServiceNutritionCoaching, Label: "Nutrition Coaching"},
}

// ParseService reports whether value names one of the offered services.
func ParseService(value string) (Service, bool) {
	for _, opt := range Services {
		if string(opt.Value) == value {
			return opt.Value, true
		}
	}
	return "", false
}

// Label returns the display label, or the raw value for unknown services.
func (s Service) Label() string {
	for _, opt := range Services {
		if opt.Value == s {
			return opt.Label
		}
	}
	return string(s)
}

type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldPhone   Field = "phone"
	FieldService Field = "service"
	FieldMessage Field = "message"
)

type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Form is the request body of POST /api/contact. Every key is always sent.
type Form struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Service string `json:"service" validate:"required,oneof=weight-loss strength-training flexibility-rehab nutrition-coaching"`
	Message string `json:"message"`
}

type FormState struct {
	Form
	SubmissionStatus Status `json:"submissionStatus"`
}

// Response is the body returned by the contact endpoint.
type Response struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	SubmissionID string `json:"submission_id,omitempty"`
}

const ResponseStatusSuccess = "success"

type Config struct {
	BaseURL string
	// Timeout bounds the whole request. Zero leaves the call unbounded.
	Timeout time.Duration
}

type ErrorType string

const (
	ErrNetworkConnection ErrorType = "network_connection"
	ErrTimeout           ErrorType = "timeout"
	ErrRejected          ErrorType = "rejected"
	ErrUnavailable       ErrorType = "unavailable"
	ErrMalformedResponse ErrorType = "malformed_response"
	ErrUnsuccessful      ErrorType = "unsuccessful"
	ErrTransportPanic    ErrorType = "transport_panic"
)

type SubmissionError struct {
	Type    ErrorType
	Message string
	Code    int
	Cause   error
}

func (e *SubmissionError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
