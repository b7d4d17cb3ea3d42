package contact

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Controller owns the contact form state and runs one submission at a time.
// UpdateField and SelectService are the only ways to change field values.
type Controller struct {
	mu        sync.Mutex
	form      Form
	status    Status
	submitter Submitter
	logger    *slog.Logger
}

func NewController(submitter Submitter, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Controller{
		status:    StatusIdle,
		submitter: submitter,
		logger:    logger,
	}
}

// UpdateField sets field to value. No validation is done and the submission
// status is left alone. Unknown fields are ignored.
func (c *Controller) UpdateField(field Field, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch field {
	case FieldName:
		c.form.Name = value
	case FieldEmail:
		c.form.Email = value
	case FieldPhone:
		c.form.Phone = value
	case FieldService:
		c.form.Service = value
	case FieldMessage:
		c.form.Message = value
	}
}

// SelectService sets the service field. Callers only offer values from Services.
func (c *Controller) SelectService(service Service) {
	c.UpdateField(FieldService, string(service))
}

func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *Controller) State() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return FormState{Form: c.form, SubmissionStatus: c.status}
}

func (c *Controller) IsSubmitting() bool {
	return c.Status() == StatusSubmitting
}

// Begin moves the controller into StatusSubmitting and returns the form to
// send. It returns false without touching state when a submission is
// already in flight.
func (c *Controller) Begin() (Form, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.status == StatusSubmitting {
		return Form{}, false
	}
	c.status = StatusSubmitting
	return c.form, true
}

// Send runs the transport for form. A panicking transport is recovered and
// reported as an error so Resolve always runs.
func (c *Controller) Send(ctx context.Context, form Form) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = NewTransportPanicError(r)
		}
	}()

	if c.submitter == nil {
		return nil, NewNetworkError("no contact endpoint configured", nil)
	}
	return c.submitter.Submit(ctx, form)
}

// Resolve settles an in-flight submission. Only a response whose status is
// "success" counts as success; the fields are then cleared. Any other
// outcome keeps the fields so the user can retry.
func (c *Controller) Resolve(resp *Response, err error) Status {
	if err == nil && (resp == nil || resp.Status != ResponseStatusSuccess) {
		status := ""
		if resp != nil {
			status = resp.Status
		}
		err = NewUnsuccessfulError(status)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.status = StatusError
		c.logger.Warn("contact submission failed",
			"kind", Kind(err),
			"error", err,
			"service", c.form.Service,
		)
		return c.status
	}

	c.status = StatusSuccess
	c.form = Form{}
	c.logger.Info("contact submission accepted",
		"submission_id", resp.SubmissionID,
	)
	return c.status
}

// Submit performs Begin, Send and Resolve in sequence and blocks until the
// transport returns. It reports StatusSubmitting without sending when
// another submission is still in flight.
func (c *Controller) Submit(ctx context.Context) Status {
	form, ok := c.Begin()
	if !ok {
		return StatusSubmitting
	}

	c.logger.Debug("submitting contact form", "service", form.Service)
	resp, err := c.Send(ctx, form)
	return c.Resolve(resp, err)
}
