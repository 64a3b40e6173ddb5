package timer

import "github.com/charmbracelet/bubbles/key"

type keymap struct {
	reset        key.Binding
	increase     key.Binding
	decrease     key.Binding
	increaseMore key.Binding
	decreaseMore key.Binding
	quit         key.Binding
}

var defaultKeymap = keymap{
	reset: key.NewBinding(
		key.WithKeys("r", "enter"),
		key.WithHelp("r", "reset"),
	),
	increase: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "+0.1s"),
	),
	decrease: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "-0.1s"),
	),
	increaseMore: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "+1s"),
	),
	decreaseMore: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "-1s"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
