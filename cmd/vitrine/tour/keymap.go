package tour

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the page's key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	Menu      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Select    key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),

		Menu:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")),
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous testimonial")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next testimonial")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "activate")),
		FocusNext: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		FocusPrev: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous control")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to page")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
