package flights

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/sevenguis/internal/logger"
)

func (b *Booker) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return b, tea.Quit

	case key.Matches(msg, defaultKeymap.next):
		return b, b.move(1)

	case key.Matches(msg, defaultKeymap.prev):
		return b, b.move(-1)
	}

	switch b.focus {
	case fieldType:
		if key.Matches(msg, defaultKeymap.toggle) {
			b.toggleType()
		}

	case fieldBook:
		if key.Matches(msg, defaultKeymap.book) {
			return b, b.book()
		}

	case fieldOutbound:
		var cmd tea.Cmd

		b.outbound, cmd = b.outbound.Update(msg)
		b.form.SetOutbound(b.outbound.Value())

		return b, cmd

	case fieldInbound:
		var cmd tea.Cmd

		b.inbound, cmd = b.inbound.Update(msg)

		// rejected for one-way flights, so keep the field in step
		if !b.form.SetInbound(b.inbound.Value()) {
			b.inbound.SetValue(b.form.Inbound())
		}

		return b, cmd
	}

	return b, nil
}

func (b *Booker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		logger.Dump("flights key", msg)
		return b.handleKeyPress(msg)

	case hookMsg:
		b.err = msg.err
		return b, nil
	}

	return b, nil
}
