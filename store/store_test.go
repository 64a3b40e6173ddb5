package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/sevenguis/internal/models"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	c, err := NewClient(filepath.Join(t.TempDir(), "sevenguis_test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
	})

	return c
}

func testBookings() []*models.Booking {
	base := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	return []*models.Booking{
		{
			ID:       "0f8fad5b-d9cb-469f-a165-70867728950e",
			Type:     "one-way",
			Outbound: base.AddDate(0, 1, 0),
			BookedAt: base,
		},
		{
			ID:       "7c9e6679-7425-40de-944b-e07fc1f90ae7",
			Type:     "return",
			Outbound: base.AddDate(0, 2, 0),
			Inbound:  base.AddDate(0, 2, 7),
			BookedAt: base.Add(26 * time.Hour),
		},
		{
			ID:       "2c1b3f4e-8b7a-4c2d-9e6f-1a2b3c4d5e6f",
			Type:     "one-way",
			Outbound: base.AddDate(0, 3, 0),
			BookedAt: base.Add(72 * time.Hour),
		},
	}
}

func TestBookings(t *testing.T) {
	c := newTestClient(t)

	bookings := testBookings()

	// insertion order must not matter
	for _, i := range []int{2, 0, 1} {
		require.NoError(t, c.SaveBooking(bookings[i]))
	}

	all, err := c.GetBookings(time.Time{}, time.Time{})
	require.NoError(t, err)

	if diff := cmp.Diff(bookings, all); diff != "" {
		t.Fatalf("bookings mismatch (-want +got):\n%s", diff)
	}

	window, err := c.GetBookings(
		bookings[1].BookedAt.Add(-time.Minute),
		bookings[1].BookedAt.Add(time.Minute),
	)
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, bookings[1].ID, window[0].ID)

	require.NoError(t, c.DeleteBookings(bookings[:2]))

	rest, err := c.GetBookings(time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, bookings[2].ID, rest[0].ID)
}

func TestPeople(t *testing.T) {
	c := newTestClient(t)

	list, saved, err := c.GetPeople()
	require.NoError(t, err)
	assert.False(t, saved)
	assert.Empty(t, list)

	want := []*models.Person{
		{ID: "b", Name: "Max", Surname: "Mustermann", Position: 0},
		{ID: "a", Name: "Hans", Surname: "Emil", Position: 1},
	}

	require.NoError(t, c.ReplacePeople(want))

	list, saved, err = c.GetPeople()
	require.NoError(t, err)
	assert.True(t, saved)

	if diff := cmp.Diff(want, list); diff != "" {
		t.Fatalf("people mismatch (-want +got):\n%s", diff)
	}

	require.NoError(t, c.ReplacePeople(nil))

	list, saved, err = c.GetPeople()
	require.NoError(t, err)
	assert.True(t, saved, "an emptied list is still a saved list")
	assert.Empty(t, list)
}

func TestReopen(t *testing.T) {
	c := newTestClient(t)

	require.NoError(t, c.SaveBooking(testBookings()[0]))
	require.NoError(t, c.Close())
	require.NoError(t, c.Open())

	all, err := c.GetBookings(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestLockedDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sevenguis_test.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	defer c.Close()

	_, err = NewReadOnlyClient(path)
	assert.ErrorIs(t, err, errAlreadyOpen)
}

func TestReadOnlyClient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sevenguis_test.db")

	c, err := NewClient(path)
	require.NoError(t, err)
	require.NoError(t, c.SaveBooking(testBookings()[0]))
	require.NoError(t, c.Close())

	ro, err := NewReadOnlyClient(path)
	require.NoError(t, err)

	defer ro.Close()

	all, err := ro.GetBookings(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	err = ro.SaveBooking(testBookings()[1])
	assert.ErrorIs(t, err, bolt.ErrDatabaseReadOnly)
}

func TestWithReleasesLock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sevenguis_test.db")

	err := With(Writable(path), func(db DB) error {
		return db.SaveBooking(testBookings()[0])
	})
	require.NoError(t, err)

	// the exclusive lock is gone, so a reader gets in straight away
	var got []*models.Booking

	err = With(ReadOnly(path), func(db DB) error {
		got, err = db.GetBookings(time.Time{}, time.Time{})
		return err
	})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
