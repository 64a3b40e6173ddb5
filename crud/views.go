package crud

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

func (m *Manager) listView() string {
	visible := m.Visible()
	if len(visible) == 0 {
		return m.styles.Hint.Render("  (no entries)")
	}

	selected, hasSelection := m.list.Selected()

	lines := make([]string, len(visible))

	for i, p := range visible {
		prefix := "  "
		if m.focus == fieldList && i == m.cursor {
			prefix = "> "
		}

		line := prefix + p.Label()

		switch {
		case hasSelection && p.ID == selected.ID:
			lines[i] = m.styles.Focused.Render(line)
		default:
			lines[i] = m.styles.Valid.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func (m *Manager) View() string {
	var s strings.Builder

	s.WriteString(m.styles.Title.Render("CRUD"))
	s.WriteString("\n\n")
	s.WriteString(m.filter.View() + "\n\n")
	s.WriteString(m.listView() + "\n\n")
	s.WriteString(m.name.View() + "\n")
	s.WriteString(m.surname.View() + "\n")

	if m.err != nil {
		s.WriteString("\n" + m.styles.Invalid.Render(m.err.Error()) + "\n")
	}

	s.WriteString("\n" + m.help.ShortHelpView([]key.Binding{
		defaultKeymap.next,
		defaultKeymap.create,
		defaultKeymap.update,
		defaultKeymap.delete,
		defaultKeymap.quit,
	}))

	return m.styles.Base.Render(s.String())
}
