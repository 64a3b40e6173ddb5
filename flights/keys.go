package flights

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	next   key.Binding
	prev   key.Binding
	toggle key.Binding
	book   key.Binding
	quit   key.Binding
}

var defaultKeymap = keymap{
	next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next"),
	),
	prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous"),
	),
	toggle: key.NewBinding(
		key.WithKeys("left", "right", " ", "space"),
		key.WithHelp("←/→", "flight type"),
	),
	book: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "book"),
	),
	quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}
