package app

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/ayoisaiah/sevenguis/internal/models"
	"github.com/ayoisaiah/sevenguis/report"
	"github.com/ayoisaiah/sevenguis/store"
)

// delBookings deletes all the specified bookings. It requests for
// confirmation before proceeding with the operation.
func delBookings(db store.DB, bookings []*models.Booking) error {
	return confirmDelete(db, bookings, os.Stdin, os.Stdout)
}

func confirmDelete(
	db store.DB,
	bookings []*models.Booking,
	r io.Reader,
	w io.Writer,
) error {
	if len(bookings) == 0 {
		report.Info(noBookingsMsg)
		return nil
	}

	printBookingsTable(w, bookings)

	warning := pterm.Warning.Sprint(
		"The above bookings will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(w, warning)

	reader := bufio.NewReader(r)

	_, _ = reader.ReadString('\n')

	err := db.DeleteBookings(bookings)
	if err != nil {
		return err
	}

	report.Success(fmt.Sprintf("%d booking(s) deleted", len(bookings)))

	return nil
}
