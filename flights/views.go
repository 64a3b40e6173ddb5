package flights

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/sevenguis/internal/booking"
)

const cursor = "> "

func (b *Booker) marker(field int) string {
	if b.focus == field {
		return b.styles.Focused.Render(cursor)
	}

	return strings.Repeat(" ", len(cursor))
}

func (b *Booker) dateStyle(valid, enabled bool) lipgloss.Style {
	switch {
	case !enabled:
		return b.styles.Disabled
	case !valid:
		return b.styles.Invalid
	}

	return b.styles.Valid
}

func (b *Booker) typeView() string {
	options := make([]string, 0, len(booking.FlightTypes))

	for _, ft := range booking.FlightTypes {
		if ft == b.form.Type() {
			options = append(options, b.styles.Focused.Render("● "+ft.String()))
			continue
		}

		options = append(options, b.styles.Hint.Render("○ "+ft.String()))
	}

	return strings.Join(options, "  ")
}

func (b *Booker) bookView() string {
	if !b.form.Validity().Bookable {
		return b.styles.Disabled.Render("[ Book ]")
	}

	if b.focus == fieldBook {
		return b.styles.Focused.Render("[ Book ]")
	}

	return b.styles.Valid.Render("[ Book ]")
}

func (b *Booker) View() string {
	v := b.form.Validity()

	var s strings.Builder

	s.WriteString(b.styles.Title.Render("Flight Booker"))
	s.WriteString("\n\n")

	s.WriteString(b.marker(fieldType) + b.typeView() + "\n")
	s.WriteString(
		b.marker(fieldOutbound) +
			b.dateStyle(v.Outbound, true).Render(b.outbound.View()) + "\n",
	)
	s.WriteString(
		b.marker(fieldInbound) +
			b.dateStyle(v.Inbound, b.form.Type() == booking.Return).
				Render(b.inbound.View()) + "\n",
	)
	s.WriteString(b.marker(fieldBook) + b.bookView() + "\n")

	if b.booked != nil {
		s.WriteString("\n" + b.styles.Main.Render(b.booked.Summary()))
	}

	if b.err != nil {
		s.WriteString("\n" + b.styles.Invalid.Render(b.err.Error()) + "\n")
	}

	s.WriteString("\n" + b.help.ShortHelpView([]key.Binding{
		defaultKeymap.next,
		defaultKeymap.toggle,
		defaultKeymap.book,
		defaultKeymap.quit,
	}))

	return b.styles.Base.Render(s.String())
}
