// Package store connects to the data store and manages bookings and the CRUD
// list
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/sevenguis/internal/apperr"
	"github.com/ayoisaiah/sevenguis/internal/models"
	"github.com/ayoisaiah/sevenguis/internal/osutil"
	"github.com/ayoisaiah/sevenguis/internal/timeutil"
)

const (
	metaBucket    = "meta"
	bookingBucket = "bookings"
	peopleBucket  = "people"
)

var keyPeopleSaved = []byte("people_saved")

var (
	errAlreadyOpen = &apperr.Error{
		Message: "is sevenguis already running? The database is locked by another process",
	}

	errNewerSchema = &apperr.Error{
		Message: "database schema version %d is newer than the supported version %d",
	}
)

// Client is a BoltDB database client.
type Client struct {
	*bolt.DB
	path     string
	readOnly bool
}

func bookingKey(b *models.Booking) []byte {
	return append(timeutil.ToKey(b.BookedAt), []byte("_"+b.ID)...)
}

// SaveBooking stores a booking keyed by the time it was made.
func (c *Client) SaveBooking(b *models.Booking) error {
	value, err := json.Marshal(b)
	if err != nil {
		return err
	}

	return c.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bookingBucket)).Put(bookingKey(b), value)
	})
}

// GetBookings returns the bookings made between since and until in
// chronological order.
func (c *Client) GetBookings(
	since, until time.Time,
) ([]*models.Booking, error) {
	var bookings []*models.Booking

	err := c.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bookingBucket))
		if bucket == nil {
			return nil
		}

		cur := bucket.Cursor()

		minKey := timeutil.ToKey(since)
		maxKey := timeutil.ToKey(until)

		for k, v := cur.Seek(minKey); k != nil; k, v = cur.Next() {
			if !until.IsZero() && bytes.Compare(k[:len(maxKey)], maxKey) > 0 {
				break
			}

			var b models.Booking

			err := json.Unmarshal(v, &b)
			if err != nil {
				return err
			}

			bookings = append(bookings, &b)
		}

		return nil
	})

	return bookings, err
}

// DeleteBookings removes the specified bookings.
func (c *Client) DeleteBookings(bookings []*models.Booking) error {
	return c.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bookingBucket))

		for _, b := range bookings {
			err := bucket.Delete(bookingKey(b))
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// GetPeople returns the saved CRUD list sorted by position.
func (c *Client) GetPeople() ([]*models.Person, bool, error) {
	var (
		list  []*models.Person
		saved bool
	)

	err := c.View(func(tx *bolt.Tx) error {
		if meta := tx.Bucket([]byte(metaBucket)); meta != nil {
			saved = meta.Get(keyPeopleSaved) != nil
		}

		bucket := tx.Bucket([]byte(peopleBucket))
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(_, v []byte) error {
			var p models.Person

			err := json.Unmarshal(v, &p)
			if err != nil {
				return err
			}

			list = append(list, &p)

			return nil
		})
	})
	if err != nil {
		return nil, false, err
	}

	slices.SortStableFunc(list, func(a, b *models.Person) int {
		return a.Position - b.Position
	})

	return list, saved, nil
}

// ReplacePeople overwrites the CRUD list in a single transaction.
func (c *Client) ReplacePeople(list []*models.Person) error {
	return c.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(peopleBucket))
		if err != nil && !errors.Is(err, bolt.ErrBucketNotFound) {
			return err
		}

		bucket, err := tx.CreateBucket([]byte(peopleBucket))
		if err != nil {
			return err
		}

		for _, p := range list {
			value, err := json.Marshal(p)
			if err != nil {
				return err
			}

			err = bucket.Put([]byte(p.ID), value)
			if err != nil {
				return err
			}
		}

		return tx.Bucket([]byte(metaBucket)).Put(keyPeopleSaved, []byte("1"))
	})
}

// Open reopens a previously closed connection.
func (c *Client) Open() error {
	db, err := openDB(c.path, c.readOnly)
	if err != nil {
		return err
	}

	c.DB = db

	return nil
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string, readOnly bool) (*bolt.DB, error) {
	db, err := bolt.Open(
		pathToDB,
		osutil.FilePermission,
		&bolt.Options{
			Timeout:  1 * time.Second,
			ReadOnly: readOnly,
		},
	)
	if err != nil {
		// a lock held by another process surfaces as a timeout
		if errors.Is(err, bolt.ErrTimeout) {
			return nil, errAlreadyOpen
		}

		return nil, err
	}

	return db, nil
}

// NewClient returns a wrapper to a BoltDB connection. The necessary buckets
// are created if they do not exist already.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, false)
	if err != nil {
		return nil, err
	}

	err = db.Update(migrate)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		DB:   db,
		path: dbPath,
	}, nil
}

// NewReadOnlyClient opens the database with a shared lock so that several
// readers can coexist. Writes through the returned client fail.
func NewReadOnlyClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath, true)
	if err != nil {
		return nil, err
	}

	return &Client{
		DB:       db,
		path:     dbPath,
		readOnly: true,
	}, nil
}
