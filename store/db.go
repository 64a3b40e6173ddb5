package store

import (
	"time"

	"github.com/ayoisaiah/sevenguis/internal/models"
)

// DB is the database storage interface.
type DB interface {
	// SaveBooking stores a confirmed booking
	SaveBooking(b *models.Booking) error
	// GetBookings returns bookings made within [since, until]. A zero until
	// means no upper bound
	GetBookings(since, until time.Time) ([]*models.Booking, error)
	// DeleteBookings deletes one or more saved bookings
	DeleteBookings(bookings []*models.Booking) error
	// GetPeople returns the saved CRUD list in order. The boolean reports
	// whether a list was ever saved
	GetPeople() ([]*models.Person, bool, error)
	// ReplacePeople overwrites the saved CRUD list
	ReplacePeople(people []*models.Person) error
	// Close ends the database connection
	Close() error
	// Open begins a database connection
	Open() error
}

// Opener returns a database connection for the duration of one operation.
// Callers close the connection as soon as the operation is done so that the
// file lock is never held while waiting on the user.
type Opener func() (DB, error)

// Writable opens the database at path with an exclusive lock.
func Writable(path string) Opener {
	return func() (DB, error) {
		return NewClient(path)
	}
}

// ReadOnly opens the database at path with a shared lock.
func ReadOnly(path string) Opener {
	return func() (DB, error) {
		return NewReadOnlyClient(path)
	}
}

// With runs fn with a connection from open and closes it afterwards.
func With(open Opener, fn func(db DB) error) error {
	db, err := open()
	if err != nil {
		return err
	}

	err = fn(db)

	if closeErr := db.Close(); err == nil {
		err = closeErr
	}

	return err
}
