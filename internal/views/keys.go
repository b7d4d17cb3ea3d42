package views

import "github.com/charmbracelet/bubbles/key"

// PageKeyMap holds bindings active while the page itself has focus.
type PageKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	Home     key.Binding
	Services key.Binding
	About    key.Binding
	Contact  key.Binding

	Book       key.Binding // Hero and About call to action.
	ToggleMenu key.Binding
	FocusForm  key.Binding
	Quit       key.Binding
}

// FormKeyMap holds bindings active while the contact form has focus.
type FormKeyMap struct {
	Next     key.Binding
	Previous key.Binding
	Cycle    key.Binding
	Submit   key.Binding
	Leave    key.Binding
	Quit     key.Binding
}

var DefaultPageKeyMap = PageKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown", " "),
		key.WithHelp("C-d", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	Home: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "home"),
	),
	Services: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "services"),
	),
	About: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "about"),
	),
	Contact: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "contact"),
	),
	Book: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "book consultation"),
	),
	ToggleMenu: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "menu"),
	),
	FocusForm: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "form"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

var DefaultFormKeyMap = FormKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	Previous: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Cycle: key.NewBinding(
		key.WithKeys("left", "right"),
		key.WithHelp("←/→", "choose service"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "send"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "back to page"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}

func (k PageKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Home, k.Services, k.About, k.Contact, k.Book, k.FocusForm, k.Quit}
}

func (k PageKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.Home, k.Services, k.About, k.Contact},
		{k.Book, k.ToggleMenu, k.FocusForm, k.Quit},
	}
}

func (k FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Previous, k.Cycle, k.Submit, k.Leave}
}

func (k FormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Previous, k.Cycle},
		{k.Submit, k.Leave, k.Quit},
	}
}
