// Package flights is the terminal interface for the flight booker task.
package flights

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/sevenguis/internal/alert"
	"github.com/ayoisaiah/sevenguis/internal/booking"
	"github.com/ayoisaiah/sevenguis/internal/config"
	"github.com/ayoisaiah/sevenguis/internal/models"
	"github.com/ayoisaiah/sevenguis/internal/ui"
	"github.com/ayoisaiah/sevenguis/store"
)

// fields in focus order.
const (
	fieldType = iota
	fieldOutbound
	fieldInbound
	fieldBook
	numFields
)

// hookMsg reports the result of the command run after a booking.
type hookMsg struct {
	err error
}

// Booker is the bubbletea model for the flight booker.
type Booker struct {
	open     store.Opener
	form     *booking.Form
	booked   *booking.Booking
	now      func() time.Time
	err      error
	hook     string
	styles   ui.Styles
	help     help.Model
	outbound textinput.Model
	inbound  textinput.Model
	focus    int
}

// Option customises a Booker.
type Option func(b *Booker)

// WithClock replaces the source of today's date and booking timestamps.
func WithClock(now func() time.Time) Option {
	return func(b *Booker) {
		b.now = now
	}
}

func newDateInput(value string) textinput.Model {
	in := textinput.New()
	in.Placeholder = "DD-MM-YYYY"
	in.CharLimit = len("DD-MM-YYYY")
	in.Width = len("DD-MM-YYYY") + 1
	in.SetValue(value)

	return in
}

// New creates the booker. Both dates are pre-filled with today's date.
// Confirmed bookings are saved through a connection from open, which is
// only held while saving.
func New(cfg *config.Config, open store.Opener, opts ...Option) (*Booker, error) {
	ft, err := booking.ParseFlightType(cfg.Flights.Type)
	if err != nil {
		return nil, err
	}

	b := &Booker{
		open: open,
		now:  time.Now,
		hook: cfg.Flights.Cmd,
		styles: ui.NewStyles(
			cfg.Display.AccentColor,
			cfg.Display.InvalidColor,
			cfg.Display.DarkTheme,
		),
		help: help.New(),
	}

	for _, opt := range opts {
		opt(b)
	}

	today := b.now().Format(booking.DisplayLayout)

	b.form = booking.NewForm(ft, today)
	b.outbound = newDateInput(today)
	b.inbound = newDateInput(today)

	return b, nil
}

// Form exposes the state of the booking form.
func (b *Booker) Form() *booking.Form {
	return b.form
}

// Booked returns the last confirmed booking, if any.
func (b *Booker) Booked() *booking.Booking {
	return b.booked
}

func (b *Booker) Init() tea.Cmd {
	return nil
}

// skip reports whether a field cannot receive focus.
func (b *Booker) skip(field int) bool {
	switch field {
	case fieldInbound:
		return b.form.Type() != booking.Return
	case fieldBook:
		return !b.form.Validity().Bookable
	}

	return false
}

// move shifts the focus by step, passing over disabled fields.
func (b *Booker) move(step int) tea.Cmd {
	next := b.focus

	for range numFields {
		next = (next + step + numFields) % numFields
		if !b.skip(next) {
			break
		}
	}

	return b.setFocus(next)
}

func (b *Booker) setFocus(field int) tea.Cmd {
	b.focus = field

	b.outbound.Blur()
	b.inbound.Blur()

	switch field {
	case fieldOutbound:
		return b.outbound.Focus()
	case fieldInbound:
		return b.inbound.Focus()
	}

	return nil
}

func (b *Booker) toggleType() {
	next := booking.OneWay
	if b.form.Type() == booking.OneWay {
		next = booking.Return
	}

	b.form.SetType(next)
}

// book confirms the booking, saves it and schedules the post-booking hook.
func (b *Booker) book() tea.Cmd {
	bk, err := booking.NewBooking(b.form, b.now())
	if err != nil {
		b.err = err
		return nil
	}

	if b.open != nil {
		err := store.With(b.open, func(db store.DB) error {
			return db.SaveBooking(models.NewBooking(bk))
		})
		if err != nil {
			b.err = err
			return nil
		}
	}

	slog.Info(
		"flight booked",
		slog.String("id", bk.ID.String()),
		slog.String("type", bk.Type.Slug()),
	)

	b.booked = bk
	b.err = nil

	hook := b.hook

	return func() tea.Msg {
		return hookMsg{err: alert.RunCmd(context.Background(), hook)}
	}
}
