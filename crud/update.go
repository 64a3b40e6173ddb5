package crud

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/sevenguis/internal/logger"
)

func (m *Manager) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, defaultKeymap.quit):
		return m, tea.Quit

	case key.Matches(msg, defaultKeymap.next):
		return m, m.setFocus((m.focus + 1) % numFields)

	case key.Matches(msg, defaultKeymap.prev):
		return m, m.setFocus((m.focus + numFields - 1) % numFields)

	case key.Matches(msg, defaultKeymap.create):
		m.create()
		return m, nil

	case key.Matches(msg, defaultKeymap.update):
		m.update()
		return m, nil

	case key.Matches(msg, defaultKeymap.delete):
		m.delete()
		return m, nil
	}

	var cmd tea.Cmd

	switch m.focus {
	case fieldFilter:
		before := m.filter.Value()

		m.filter, cmd = m.filter.Update(msg)
		if m.filter.Value() != before {
			m.refilter()
		}

	case fieldList:
		switch {
		case key.Matches(msg, defaultKeymap.up):
			m.step(-1)
		case key.Matches(msg, defaultKeymap.down):
			m.step(1)
		case msg.Type == tea.KeyEnter || msg.Type == tea.KeySpace:
			m.selectAt(m.cursor)
		}

	case fieldName:
		m.name, cmd = m.name.Update(msg)

	case fieldSurname:
		m.surname, cmd = m.surname.Update(msg)
	}

	return m, cmd
}

func (m *Manager) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		logger.Dump("crud key", msg)
		return m.handleKeyPress(msg)
	}

	return m, nil
}
