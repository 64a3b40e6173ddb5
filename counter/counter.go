// Package counter is the terminal interface for the counter task.
package counter

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/sevenguis/internal/config"
	"github.com/ayoisaiah/sevenguis/internal/ui"
)

type keymap struct {
	count key.Binding
	quit  key.Binding
}

var defaultKeymap = keymap{
	count: key.NewBinding(
		key.WithKeys("enter", " ", "space", "+"),
		key.WithHelp("enter", "count"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Counter displays a value that goes up by one on every press.
type Counter struct {
	styles ui.Styles
	help   help.Model
	value  int
}

func New(cfg *config.Config) *Counter {
	return &Counter{
		styles: ui.NewStyles(
			cfg.Display.AccentColor,
			cfg.Display.InvalidColor,
			cfg.Display.DarkTheme,
		),
		help: help.New(),
	}
}

// Value returns the current count.
func (c *Counter) Value() int {
	return c.value
}

func (c *Counter) Init() tea.Cmd {
	return nil
}

func (c *Counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, defaultKeymap.count):
		c.value++
	case key.Matches(keyMsg, defaultKeymap.quit):
		return c, tea.Quit
	}

	return c, nil
}

func (c *Counter) View() string {
	var s strings.Builder

	s.WriteString(c.styles.Title.Render("Counter"))
	s.WriteString("\n\n")
	s.WriteString(c.styles.Main.Render(strconv.Itoa(c.value)))
	s.WriteString("  ")
	s.WriteString(c.styles.Focused.Render("[ Count ]"))
	s.WriteString("\n\n")
	s.WriteString(c.help.ShortHelpView([]key.Binding{
		defaultKeymap.count,
		defaultKeymap.quit,
	}))

	return c.styles.Base.Render(s.String())
}
