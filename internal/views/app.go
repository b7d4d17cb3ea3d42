package views

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"premrishi/fitterm/internal/contact"
	"premrishi/fitterm/internal/navigation"
	"premrishi/fitterm/internal/utils"
)

type Focus int

const (
	FocusPage Focus = iota
	FocusForm
)

// AppModel is the page shell: a fixed navigation bar above one scrolling
// viewport holding Hero, Services, About, Contact and Footer in that order.
type AppModel struct {
	width  int
	height int
	ready  bool

	logger *slog.Logger
	now    func() time.Time

	nav          *navigation.Controller
	scrollEvents *navigation.ScrollEvents
	scroller     *pageScroller
	lastOffset   int

	viewport viewport.Model
	form     *ContactFormModel
	focus    Focus

	keys PageKeyMap
	help help.Model

	err         error
	noSubmitter bool
}

// ErrNoSubmitter is shown when the page starts without a contact endpoint.
var ErrNoSubmitter = errors.New("contact form disabled: no endpoint configured")

type ErrorMsg struct {
	Err error
}

type Options struct {
	Submitter       contact.Submitter
	Logger          *slog.Logger
	ScrollThreshold int
	Context         context.Context
}

func NewAppModel(opts Options) *AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	scroller := newPageScroller()
	nav := navigation.NewController(scroller)
	nav.SetThreshold(opts.ScrollThreshold)

	controller := contact.NewController(opts.Submitter, logger.With("component", "contact"))

	m := &AppModel{
		logger:       logger,
		now:          time.Now,
		nav:          nav,
		scrollEvents: navigation.NewScrollEvents(),
		scroller:     scroller,
		form:         NewContactFormModel(opts.Context, controller),
		keys:         DefaultPageKeyMap,
		help:         help.New(),
		noSubmitter:  opts.Submitter == nil,
	}

	m.nav.Activate(m.scrollEvents)
	return m
}

func (m *AppModel) Init() tea.Cmd {
	if m.noSubmitter {
		return ShowError(ErrNoSubmitter)
	}
	return nil
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case smoothScrollMsg:
		return m, m.stepSmoothScroll()

	case SubmissionResultMsg:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		m.refresh()
		return m, cmd

	case tea.KeyMsg:
		if m.focus == FocusForm {
			return m, m.handleFormKey(msg)
		}
		if cmd, handled := m.handlePageKey(msg); handled {
			return m, cmd
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			m.scroller.cancel()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	cmds = append(cmds, cmd)

	if m.ready {
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.refresh()
	return m, tea.Batch(cmds...)
}

func (m *AppModel) handlePageKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Shutdown()
		return tea.Quit, true

	case key.Matches(msg, m.keys.Home):
		return m.navigate(navigation.SectionHero), true
	case key.Matches(msg, m.keys.Services):
		return m.navigate(navigation.SectionServices), true
	case key.Matches(msg, m.keys.About):
		return m.navigate(navigation.SectionAbout), true
	case key.Matches(msg, m.keys.Contact):
		return m.navigate(navigation.SectionContact), true

	case key.Matches(msg, m.keys.Book):
		return m.focusForm(), true

	case key.Matches(msg, m.keys.FocusForm):
		return m.focusForm(), true

	case key.Matches(msg, m.keys.ToggleMenu):
		if isCompact(m.width) {
			m.nav.ToggleMobileMenu()
		}
		return nil, true

	case msg.String() == "esc" && m.nav.IsMobileMenuOpen():
		m.nav.ToggleMobileMenu()
		return nil, true

	case key.Matches(msg, m.keys.Top):
		m.scroller.cancel()
		m.viewport.GotoTop()
		m.publishScroll()
		return nil, true

	case key.Matches(msg, m.keys.Bottom):
		m.scroller.cancel()
		m.viewport.GotoBottom()
		m.publishScroll()
		return nil, true

	case key.Matches(msg, m.keys.Up, m.keys.Down, m.keys.PageUp, m.keys.PageDown):
		m.scroller.cancel()
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.publishScroll()
		return cmd, true
	}

	return nil, false
}

func (m *AppModel) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultFormKeyMap.Quit):
		m.Shutdown()
		return tea.Quit
	case key.Matches(msg, DefaultFormKeyMap.Leave):
		m.focus = FocusPage
		m.form.Deactivate()
		m.refresh()
		return nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	m.refresh()
	return cmd
}

func (m *AppModel) focusForm() tea.Cmd {
	m.focus = FocusForm
	m.nav.Navigate(navigation.SectionContact)
	cmd := m.form.Activate()
	m.refresh()
	return tea.Batch(cmd, m.scroller.start())
}

// navigate delegates to the navigation controller and starts the smooth
// scroll if a target was found.
func (m *AppModel) navigate(id navigation.SectionID) tea.Cmd {
	m.nav.Navigate(id)
	m.logger.Debug("navigate", "section", string(id))
	return m.scroller.start()
}

func (m *AppModel) stepSmoothScroll() tea.Cmd {
	if !m.scroller.animating || !m.ready {
		m.scroller.animating = false
		return nil
	}

	target := clampOffset(m.scroller.target, m.viewport.TotalLineCount(), m.viewport.Height)
	next := nextScrollStep(m.viewport.YOffset, target)
	m.viewport.SetYOffset(next)
	m.publishScroll()

	if m.viewport.YOffset == target {
		m.scroller.animating = false
		return nil
	}
	return smoothScrollTick()
}

// publishScroll emits the current offset to scroll subscribers when it
// changed since the last publish.
func (m *AppModel) publishScroll() {
	if m.viewport.YOffset == m.lastOffset {
		return
	}
	m.lastOffset = m.viewport.YOffset
	m.scrollEvents.Publish(m.lastOffset * PixelsPerRow)
}

func (m *AppModel) resize(width, height int) {
	m.width = width
	m.height = height

	vpHeight := height - 2
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.viewport.MouseWheelEnabled = true
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}

	if !isCompact(width) && m.nav.IsMobileMenuOpen() {
		m.nav.ToggleMobileMenu()
	}

	m.form.SetWidth(min(sectionWidth(width), 72))
	m.help.Width = width
	m.refresh()
}

// refresh recomposes the page and records the anchor row of each section.
func (m *AppModel) refresh() {
	if !m.ready {
		return
	}

	content, anchors := m.composePage()
	m.scroller.setAnchors(anchors)
	m.viewport.SetContent(content)
	m.publishScroll()
}

func (m *AppModel) composePage() (string, map[navigation.SectionID]int) {
	width := m.width
	sections := []struct {
		id     navigation.SectionID
		render string
	}{
		{navigation.SectionHero, renderHero(width)},
		{navigation.SectionServices, renderServices(width)},
		{navigation.SectionAbout, renderAbout(width)},
		{navigation.SectionContact, m.renderContact(width)},
		{"", renderFooter(width, m.now())},
	}

	anchors := make(map[navigation.SectionID]int, len(navigation.Links))
	parts := make([]string, 0, len(sections))
	row := 0
	for _, section := range sections {
		if section.id != "" {
			anchors[section.id] = row
		}
		parts = append(parts, section.render)
		row += lipgloss.Height(section.render)
	}

	return strings.Join(parts, "\n"), anchors
}

func (m *AppModel) renderContact(width int) string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		renderContactIntro(width),
		"",
		m.form.View(),
	)
	return sectionStyle(width).Render(content)
}

func (m *AppModel) View() string {
	if !m.ready || m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	state := m.nav.State()
	bar := renderNavBar(state, m.width)

	body := m.viewport.View()
	if state.IsMobileMenuOpen {
		body = overlayLines(body, renderMobileMenu(m.width))
	}

	var helpView string
	if m.focus == FocusForm {
		helpView = m.help.View(DefaultFormKeyMap)
	} else {
		helpView = m.help.View(m.keys)
	}

	if m.err != nil {
		errorStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(utils.Colours.Red)).
			Bold(true)
		helpView = errorStyle.Render(fmt.Sprintf("Error: %s", m.err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Left, bar, body, helpView)
}

// overlayLines replaces the first lines of body with overlay.
func overlayLines(body string, overlay []string) string {
	lines := strings.Split(body, "\n")
	for i := 0; i < len(overlay) && i < len(lines); i++ {
		lines[i] = overlay[i]
	}
	return strings.Join(lines, "\n")
}

func (m *AppModel) NavigationState() navigation.State {
	return m.nav.State()
}

func (m *AppModel) FormState() contact.FormState {
	return m.form.Controller().State()
}

func (m *AppModel) Focus() Focus {
	return m.focus
}

func (m *AppModel) ScrollOffset() int {
	return m.viewport.YOffset
}

// Shutdown releases the navigation scroll subscription.
func (m *AppModel) Shutdown() {
	m.nav.Deactivate()
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}
