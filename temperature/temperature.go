// Package temperature is the terminal interface for the temperature
// converter task.
package temperature

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/sevenguis/internal/config"
	"github.com/ayoisaiah/sevenguis/internal/logger"
	"github.com/ayoisaiah/sevenguis/internal/temperature"
	"github.com/ayoisaiah/sevenguis/internal/ui"
)

const (
	celsius = iota
	fahrenheit
)

type keymap struct {
	next key.Binding
	quit key.Binding
}

var defaultKeymap = keymap{
	next: key.NewBinding(
		key.WithKeys("tab", "shift+tab", "up", "down"),
		key.WithHelp("tab", "switch field"),
	),
	quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

// Converter keeps a Celsius and a Fahrenheit field in sync.
type Converter struct {
	conv   temperature.Converter
	styles ui.Styles
	help   help.Model
	inputs [2]textinput.Model
	focus  int
}

func newInput() textinput.Model {
	in := textinput.New()
	in.CharLimit = 32
	in.Width = 12

	return in
}

func New(cfg *config.Config) *Converter {
	c := &Converter{
		styles: ui.NewStyles(
			cfg.Display.AccentColor,
			cfg.Display.InvalidColor,
			cfg.Display.DarkTheme,
		),
		help:   help.New(),
		inputs: [2]textinput.Model{newInput(), newInput()},
	}

	c.inputs[celsius].Focus()

	return c
}

// Celsius returns the text of the Celsius field.
func (c *Converter) Celsius() string {
	return c.inputs[celsius].Value()
}

// Fahrenheit returns the text of the Fahrenheit field.
func (c *Converter) Fahrenheit() string {
	return c.inputs[fahrenheit].Value()
}

func (c *Converter) Init() tea.Cmd {
	return textinput.Blink
}

// sync copies the converter state into the field that was not edited.
func (c *Converter) sync() {
	if c.focus == celsius {
		c.conv.SetCelsius(c.inputs[celsius].Value())
		c.inputs[fahrenheit].SetValue(c.conv.Fahrenheit)

		return
	}

	c.conv.SetFahrenheit(c.inputs[fahrenheit].Value())
	c.inputs[celsius].SetValue(c.conv.Celsius)
}

func (c *Converter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		logger.Dump("temperature key", msg)

		switch {
		case key.Matches(msg, defaultKeymap.quit):
			return c, tea.Quit

		case key.Matches(msg, defaultKeymap.next):
			c.inputs[c.focus].Blur()
			c.focus = (c.focus + 1) % len(c.inputs)

			return c, c.inputs[c.focus].Focus()
		}
	}

	before := c.inputs[c.focus].Value()

	var cmd tea.Cmd

	c.inputs[c.focus], cmd = c.inputs[c.focus].Update(msg)

	if c.inputs[c.focus].Value() != before {
		c.sync()
	}

	return c, cmd
}

func (c *Converter) field(i int, label string) string {
	style := c.styles.Valid

	if c.inputs[i].Value() == temperature.Invalid {
		style = c.styles.Invalid
	}

	return style.Render(c.inputs[i].View()) + " " + c.styles.Hint.Render(label)
}

func (c *Converter) View() string {
	var s strings.Builder

	s.WriteString(c.styles.Title.Render("Temperature Converter"))
	s.WriteString("\n\n")
	s.WriteString(c.field(celsius, "Celsius"))
	s.WriteString("\n")
	s.WriteString(c.field(fahrenheit, "Fahrenheit"))
	s.WriteString("\n\n")
	s.WriteString(c.help.ShortHelpView([]key.Binding{
		defaultKeymap.next,
		defaultKeymap.quit,
	}))

	return c.styles.Base.Render(s.String())
}
