package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"premrishi/fitterm/internal/contact"
	"premrishi/fitterm/internal/utils"
)

type ContactFormField int

const (
	FormFieldName ContactFormField = iota
	FormFieldEmail
	FormFieldPhone
	FormFieldService
	FormFieldMessage
	FormFieldSubmit
)

const formFieldCount = int(FormFieldSubmit) + 1

type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackError   FeedbackType = "error"
	FeedbackInfo    FeedbackType = "info"
)

type FeedbackMessage struct {
	Type    FeedbackType
	Message string
}

// SubmissionResultMsg carries the transport outcome back into the event loop.
type SubmissionResultMsg struct {
	Response *contact.Response
	Err      error
}

// ContactFormModel renders the contact form. Field values live in the
// controller; the inputs are kept in sync with it after every update.
type ContactFormModel struct {
	controller *contact.Controller
	ctx        context.Context
	keys       FormKeyMap

	name    textinput.Model
	email   textinput.Model
	phone   textinput.Model
	message textarea.Model
	spinner spinner.Model

	focused    ContactFormField
	active     bool
	validation contact.ValidationResult
	width      int
}

func NewContactFormModel(ctx context.Context, controller *contact.Controller) *ContactFormModel {
	if ctx == nil {
		ctx = context.Background()
	}

	name := textinput.New()
	name.Placeholder = "Your name"
	name.CharLimit = 100

	email := textinput.New()
	email.Placeholder = "your@email.com"
	email.CharLimit = 254

	phone := textinput.New()
	phone.Placeholder = "+91 98765 43210"
	phone.CharLimit = 32

	message := textarea.New()
	message.Placeholder = "Tell me about your fitness goals..."
	message.ShowLineNumbers = false
	message.CharLimit = 2000
	message.SetHeight(4)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Primary))

	m := &ContactFormModel{
		controller: controller,
		ctx:        ctx,
		keys:       DefaultFormKeyMap,
		name:       name,
		email:      email,
		phone:      phone,
		message:    message,
		spinner:    spin,
		focused:    FormFieldName,
		validation: contact.ValidationResult{IsValid: true},
	}
	m.SetWidth(60)
	return m
}

func (m *ContactFormModel) SetWidth(width int) {
	m.width = width
	inputWidth := width - 6
	if inputWidth < 10 {
		inputWidth = 10
	}
	m.name.Width = inputWidth
	m.email.Width = inputWidth
	m.phone.Width = inputWidth
	m.message.SetWidth(inputWidth)
}

func (m *ContactFormModel) Controller() *contact.Controller {
	return m.controller
}

func (m *ContactFormModel) IsActive() bool {
	return m.active
}

func (m *ContactFormModel) Focused() ContactFormField {
	return m.focused
}

// Activate gives the form keyboard focus.
func (m *ContactFormModel) Activate() tea.Cmd {
	m.active = true
	return m.focusField(m.focused)
}

func (m *ContactFormModel) Deactivate() {
	m.active = false
	m.blurAll()
}

func (m *ContactFormModel) Update(msg tea.Msg) (*ContactFormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case SubmissionResultMsg:
		status := m.controller.Resolve(msg.Response, msg.Err)
		if status == contact.StatusSuccess {
			m.validation = contact.ValidationResult{IsValid: true}
		}
		m.syncInputs()
		return m, nil

	case spinner.TickMsg:
		if !m.controller.IsSubmitting() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if !m.active {
			return m, nil
		}
		return m.handleKey(msg)
	}

	if !m.active {
		return m, nil
	}
	return m, m.updateFocusedInput(msg)
}

func (m *ContactFormModel) handleKey(msg tea.KeyMsg) (*ContactFormModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m, m.submit()

	case key.Matches(msg, m.keys.Next):
		return m, m.focusField(ContactFormField((int(m.focused) + 1) % formFieldCount))

	case key.Matches(msg, m.keys.Previous):
		return m, m.focusField(ContactFormField((int(m.focused) + formFieldCount - 1) % formFieldCount))
	}

	switch m.focused {
	case FormFieldSubmit:
		if msg.String() == "enter" {
			return m, m.submit()
		}
		return m, nil

	case FormFieldService:
		switch msg.String() {
		case "left":
			m.cycleService(-1)
		case "right", " ":
			m.cycleService(1)
		case "enter":
			return m, m.focusField(FormFieldMessage)
		}
		return m, nil

	case FormFieldName, FormFieldEmail, FormFieldPhone:
		if msg.String() == "enter" {
			return m, m.focusField(m.focused + 1)
		}
	}

	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused input and pushes the
// resulting value into the controller. Edits are ignored while a
// submission is in flight.
func (m *ContactFormModel) updateFocusedInput(msg tea.Msg) tea.Cmd {
	if _, isKey := msg.(tea.KeyMsg); isKey && m.controller.IsSubmitting() {
		return nil
	}

	var cmd tea.Cmd
	switch m.focused {
	case FormFieldName:
		m.name, cmd = m.name.Update(msg)
		m.controller.UpdateField(contact.FieldName, m.name.Value())
	case FormFieldEmail:
		m.email, cmd = m.email.Update(msg)
		m.controller.UpdateField(contact.FieldEmail, m.email.Value())
	case FormFieldPhone:
		m.phone, cmd = m.phone.Update(msg)
		m.controller.UpdateField(contact.FieldPhone, m.phone.Value())
	case FormFieldMessage:
		m.message, cmd = m.message.Update(msg)
		m.controller.UpdateField(contact.FieldMessage, m.message.Value())
	}
	return cmd
}

func (m *ContactFormModel) cycleService(delta int) {
	if m.controller.IsSubmitting() {
		return
	}

	current := -1
	if service, ok := contact.ParseService(m.controller.Form().Service); ok {
		for i, opt := range contact.Services {
			if opt.Value == service {
				current = i
				break
			}
		}
	}

	n := len(contact.Services)
	next := 0
	switch {
	case current < 0 && delta < 0:
		next = n - 1
	case current >= 0:
		next = (current + delta + n) % n
	}
	m.controller.SelectService(contact.Services[next].Value)
}

// submit validates the form and, if it passes, starts a submission. It is
// a no-op while one is already in flight.
func (m *ContactFormModel) submit() tea.Cmd {
	if m.controller.IsSubmitting() {
		return nil
	}

	m.validation = contact.Validate(m.controller.Form())
	if !m.validation.IsValid {
		if first := m.validation.Errors[0]; first.Field != "" {
			return m.focusField(fieldFor(first.Field))
		}
		return nil
	}

	form, ok := m.controller.Begin()
	if !ok {
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.sendCmd(form))
}

func (m *ContactFormModel) sendCmd(form contact.Form) tea.Cmd {
	ctx := m.ctx
	controller := m.controller
	return func() tea.Msg {
		resp, err := controller.Send(ctx, form)
		return SubmissionResultMsg{Response: resp, Err: err}
	}
}

func (m *ContactFormModel) focusField(field ContactFormField) tea.Cmd {
	m.focused = field
	m.blurAll()
	if !m.active {
		return nil
	}

	switch field {
	case FormFieldName:
		return m.name.Focus()
	case FormFieldEmail:
		return m.email.Focus()
	case FormFieldPhone:
		return m.phone.Focus()
	case FormFieldMessage:
		return m.message.Focus()
	}
	return nil
}

func (m *ContactFormModel) blurAll() {
	m.name.Blur()
	m.email.Blur()
	m.phone.Blur()
	m.message.Blur()
}

// syncInputs copies controller values into the inputs where they differ.
func (m *ContactFormModel) syncInputs() {
	form := m.controller.Form()
	if m.name.Value() != form.Name {
		m.name.SetValue(form.Name)
	}
	if m.email.Value() != form.Email {
		m.email.SetValue(form.Email)
	}
	if m.phone.Value() != form.Phone {
		m.phone.SetValue(form.Phone)
	}
	if m.message.Value() != form.Message {
		m.message.SetValue(form.Message)
	}
}

func fieldFor(field contact.Field) ContactFormField {
	switch field {
	case contact.FieldName:
		return FormFieldName
	case contact.FieldEmail:
		return FormFieldEmail
	case contact.FieldPhone:
		return FormFieldPhone
	case contact.FieldService:
		return FormFieldService
	default:
		return FormFieldMessage
	}
}

// Feedback derives the status line from the controller's submission status.
func (m *ContactFormModel) Feedback() *FeedbackMessage {
	switch m.controller.Status() {
	case contact.StatusSubmitting:
		return &FeedbackMessage{Type: FeedbackInfo, Message: "Sending..."}
	case contact.StatusSuccess:
		return &FeedbackMessage{Type: FeedbackSuccess, Message: contact.SuccessMessage}
	case contact.StatusError:
		return &FeedbackMessage{Type: FeedbackError, Message: contact.GenericFailureMessage}
	default:
		return nil
	}
}

func (m *ContactFormModel) View() string {
	containerStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(utils.Colours.Surface1)).
		Background(lipgloss.Color(utils.Colours.Surface)).
		Padding(1, 2).
		Width(m.width)
	if m.active {
		containerStyle = containerStyle.BorderForeground(lipgloss.Color(utils.Colours.Primary))
	}

	var content strings.Builder
	content.WriteString(headingStyle().Render("BOOK A FREE CONSULTATION"))
	content.WriteString("\n\n")

	content.WriteString(m.renderField(FormFieldName, "Full Name *", m.name.View(), contact.FieldName))
	content.WriteString(m.renderField(FormFieldEmail, "Email *", m.email.View(), contact.FieldEmail))
	content.WriteString(m.renderField(FormFieldPhone, "Phone", m.phone.View(), contact.FieldPhone))
	content.WriteString(m.renderField(FormFieldService, "Service *", m.renderServicePicker(), contact.FieldService))
	content.WriteString(m.renderField(FormFieldMessage, "Message", m.message.View(), contact.FieldMessage))

	content.WriteString(m.renderSubmitButton())

	if feedback := m.Feedback(); feedback != nil && feedback.Type != FeedbackInfo {
		content.WriteString("\n\n")
		content.WriteString(m.renderFeedbackMessage(feedback))
	}

	return containerStyle.Render(content.String())
}

func (m *ContactFormModel) renderField(field ContactFormField, label, input string, name contact.Field) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Subtext))
	if m.active && m.focused == field {
		labelStyle = labelStyle.Foreground(lipgloss.Color(utils.Colours.Text)).Bold(true)
	}

	errorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Red))

	var content strings.Builder
	content.WriteString(labelStyle.Render(label))
	content.WriteString("\n")
	content.WriteString(input)
	content.WriteString("\n")
	if msg := m.validation.FieldError(name); msg != "" {
		content.WriteString(errorStyle.Render("✗ " + msg))
		content.WriteString("\n")
	}
	content.WriteString("\n")
	return content.String()
}

func (m *ContactFormModel) renderServicePicker() string {
	focused := m.active && m.focused == FormFieldService

	service := m.controller.Form().Service
	if service == "" {
		placeholder := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Muted))
		return placeholder.Render(utils.FormatSelection("Select a service", focused))
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(utils.Colours.Text))
	label := utils.TruncateString(contact.Service(service).Label(), m.width-10)
	return style.Render(utils.FormatSelection(label, focused))
}

func (m *ContactFormModel) renderSubmitButton() string {
	buttonStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(utils.Colours.Text)).
		Background(lipgloss.Color(utils.Colours.PrimaryDim)).
		Padding(0, 2).
		Bold(true)
	if m.active && m.focused == FormFieldSubmit {
		buttonStyle = buttonStyle.Background(lipgloss.Color(utils.Colours.Primary))
	}

	if m.controller.IsSubmitting() {
		return buttonStyle.
			Background(lipgloss.Color(utils.Colours.Surface1)).
			Render(m.spinner.View() + " Sending...")
	}
	return buttonStyle.Render("Send Message")
}

func (m *ContactFormModel) renderFeedbackMessage(feedback *FeedbackMessage) string {
	var color string
	var icon string
	switch feedback.Type {
	case FeedbackSuccess:
		color = utils.Colours.Green
		icon = "✓ "
	case FeedbackError:
		color = utils.Colours.Red
		icon = "✗ "
	default:
		color = utils.Colours.Text
	}

	feedbackStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true)

	return feedbackStyle.Render(icon + feedback.Message)
}
