package counter

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/ayoisaiah/sevenguis/internal/config"
)

func TestCount(t *testing.T) {
	c := New(config.Default())

	c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	c.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")})
	c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.Equal(t, 3, c.Value())
	assert.Contains(t, c.View(), "3")
}

func TestCounterIgnoresOtherMessages(t *testing.T) {
	c := New(config.Default())

	_, cmd := c.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, c.Value())
}

func TestCounterQuit(t *testing.T) {
	c := New(config.Default())

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if assert.NotNil(t, cmd) {
		assert.Equal(t, tea.Quit(), cmd())
	}
}
