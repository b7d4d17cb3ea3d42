package contact

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// GenericFailureMessage is the only failure text shown to the user. Network
// and server failures are deliberately not told apart.
const GenericFailureMessage = "Something went wrong. Please try again."

// SuccessMessage is shown after the API accepts a submission.
const SuccessMessage = "Thank you! I'll get back to you soon."

func NewSubmissionError(errType ErrorType, message string, cause error) *SubmissionError {
	return &SubmissionError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

func NewNetworkError(message string, cause error) *SubmissionError {
	return NewSubmissionError(ErrNetworkConnection, message, cause)
}

func NewHTTPStatusError(code int, detail string) *SubmissionError {
	errType := ErrRejected
	if code >= 500 {
		errType = ErrUnavailable
	}

	message := fmt.Sprintf("contact endpoint returned HTTP %d", code)
	if detail != "" {
		message += ": " + detail
	}

	err := NewSubmissionError(errType, message, nil)
	err.Code = code
	return err
}

func NewMalformedResponseError(cause error) *SubmissionError {
	return NewSubmissionError(ErrMalformedResponse, "could not decode contact response", cause)
}

func NewUnsuccessfulError(status string) *SubmissionError {
	return NewSubmissionError(ErrUnsuccessful,
		fmt.Sprintf("contact endpoint reported status %q", status), nil)
}

func NewTransportPanicError(recovered any) *SubmissionError {
	return NewSubmissionError(ErrTransportPanic,
		fmt.Sprintf("transport panicked: %v", recovered), nil)
}

// ClassifyError maps an arbitrary transport error onto a SubmissionError.
// The kind is only used for logging.
func ClassifyError(err error) *SubmissionError {
	if err == nil {
		return nil
	}

	var submissionErr *SubmissionError
	if errors.As(err, &submissionErr) {
		return submissionErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return NewSubmissionError(ErrTimeout, "request timed out", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return NewSubmissionError(ErrTimeout, "request timed out", err)
	}

	errStr := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded"):
		return NewSubmissionError(ErrTimeout, "request timed out", err)
	case strings.Contains(errStr, "connection refused") || strings.Contains(errStr, "no such host"):
		return NewNetworkError("connection failed", err)
	default:
		return NewNetworkError("unknown network error", err)
	}
}

// Kind returns the classified error type of err, or "" for nil.
func Kind(err error) ErrorType {
	if classified := ClassifyError(err); classified != nil {
		return classified.Type
	}
	return ""
}
