package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Booking is a confirmed flight booking.
type Booking struct {
	BookedAt time.Time  `json:"booked_at"`
	Outbound time.Time  `json:"outbound"`
	Inbound  time.Time  `json:"inbound,omitzero"`
	ID       uuid.UUID  `json:"id"`
	Type     FlightType `json:"type"`
}

// NewBooking confirms the booking described by f. It fails with
// ErrNotBookable unless every field in the form is valid.
func NewBooking(f *Form, now time.Time) (*Booking, error) {
	if !f.Validity().Bookable {
		return nil, ErrNotBookable
	}

	b := &Booking{
		ID:       uuid.New(),
		Type:     f.Type(),
		BookedAt: now,
	}

	// Validity guarantees both dates parse.
	b.Outbound, _ = ParseDate(f.Outbound())

	if b.Type == Return {
		b.Inbound, _ = ParseDate(f.Inbound())
	}

	return b, nil
}

// Summary describes the booking in a few lines of text.
func (b *Booking) Summary() string {
	var s strings.Builder

	fmt.Fprintf(&s, "A %s has been booked\n", b.Type)
	fmt.Fprintf(&s, "Departing on: %s\n", b.Outbound.Format(DisplayLayout))

	if b.Type == Return {
		fmt.Fprintf(&s, "Returning on: %s\n", b.Inbound.Format(DisplayLayout))
	}

	return s.String()
}
