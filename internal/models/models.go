// Package models defines the records persisted by the store
package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/ayoisaiah/sevenguis/internal/booking"
	"github.com/ayoisaiah/sevenguis/internal/people"
)

// Booking is the stored form of a confirmed flight booking.
type Booking struct {
	BookedAt time.Time `json:"booked_at"`
	Outbound time.Time `json:"outbound"`
	Inbound  time.Time `json:"inbound,omitzero"`
	ID       string    `json:"id"`
	Type     string    `json:"type"`
}

// Person is the stored form of a CRUD entry. Position preserves the order of
// the list across runs.
type Person struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Position int    `json:"position"`
}

func NewBooking(b *booking.Booking) *Booking {
	return &Booking{
		ID:       b.ID.String(),
		Type:     b.Type.Slug(),
		Outbound: b.Outbound,
		Inbound:  b.Inbound,
		BookedAt: b.BookedAt,
	}
}

// ToDomain converts the record back into a booking.
func (b *Booking) ToDomain() (*booking.Booking, error) {
	id, err := uuid.Parse(b.ID)
	if err != nil {
		return nil, err
	}

	ft, err := booking.ParseFlightType(b.Type)
	if err != nil {
		return nil, err
	}

	return &booking.Booking{
		ID:       id,
		Type:     ft,
		Outbound: b.Outbound,
		Inbound:  b.Inbound,
		BookedAt: b.BookedAt,
	}, nil
}

func NewPerson(p people.Person, position int) *Person {
	return &Person{
		ID:       p.ID.String(),
		Name:     p.Name,
		Surname:  p.Surname,
		Position: position,
	}
}

func (p *Person) ToDomain() (people.Person, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return people.Person{}, err
	}

	return people.Person{
		ID:      id,
		Name:    p.Name,
		Surname: p.Surname,
	}, nil
}

func (p *Person) Label() string {
	return p.Surname + ", " + p.Name
}
