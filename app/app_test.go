package app

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/sevenguis/internal/models"
	"github.com/ayoisaiah/sevenguis/store"
)

func TestMain(m *testing.M) {
	disableStyling()
	m.Run()
}

func TestFindTask(t *testing.T) {
	for _, name := range []string{"counter", "temperature", "flights", "timer", "crud"} {
		got, err := findTask(name)
		require.NoError(t, err)
		assert.Equal(t, name, got.name)
	}

	_, err := findTask("cells")
	assert.ErrorIs(t, err, errUnknownTask)
}

func TestEveryTaskHasACommand(t *testing.T) {
	app := Get()

	for _, tk := range tasks {
		assert.NotNil(t, app.Command(tk.name), tk.name)
	}
}

func TestSortPeople(t *testing.T) {
	list := []*models.Person{
		{Name: "A", Surname: "Entry 10"},
		{Name: "A", Surname: "Entry 2"},
		{Name: "Max", Surname: "Mustermann"},
		{Name: "Hans", Surname: "Emil"},
	}

	sortPeople(list)

	got := make([]string, len(list))
	for i := range list {
		got[i] = list[i].Label()
	}

	want := []string{"Emil, Hans", "Entry 2, A", "Entry 10, A", "Mustermann, Max"}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingRows(t *testing.T) {
	bookedAt := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.Local)

	rows := bookingRows([]*models.Booking{
		{
			ID:       "0f8fad5b-d9cb-469f-a165-70867728950e",
			Type:     "return",
			BookedAt: bookedAt,
			Outbound: time.Date(2024, time.March, 27, 0, 0, 0, 0, time.UTC),
			Inbound:  time.Date(2024, time.April, 3, 0, 0, 0, 0, time.UTC),
		},
	})

	want := [][]string{
		{"#", "BOOKED AT", "TYPE", "DEPARTING", "RETURNING"},
		{"1", "Mar 01, 2024 09:30 AM", "Return Flight", "27-03-2024", "03-04-2024"},
	}

	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestConfirmDelete(t *testing.T) {
	db, err := store.NewClient(filepath.Join(t.TempDir(), "app_test.db"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = db.Close()
	})

	b := &models.Booking{
		ID:       "7c9e6679-7425-40de-944b-e07fc1f90ae7",
		Type:     "one-way",
		BookedAt: time.Now(),
		Outbound: time.Now().AddDate(0, 1, 0),
	}

	require.NoError(t, db.SaveBooking(b))

	var out bytes.Buffer

	err = confirmDelete(db, []*models.Booking{b}, strings.NewReader("\n"), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "deleted permanently")

	left, err := db.GetBookings(time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, left)
}
