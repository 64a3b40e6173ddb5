package app

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/sevenguis/internal/booking"
	"github.com/ayoisaiah/sevenguis/internal/models"
	"github.com/ayoisaiah/sevenguis/internal/ui"
	"github.com/ayoisaiah/sevenguis/report"
)

const (
	noBookingsMsg = "No bookings found for the specified time range"
	noPeopleMsg   = "The list is empty"

	bookedAtLayout = "Jan 02, 2006 03:04 PM"
)

// bookingRows converts bookings into table rows, header first.
func bookingRows(bookings []*models.Booking) [][]string {
	rows := make([][]string, 0, len(bookings)+1)

	rows = append(rows, []string{"#", "BOOKED AT", "TYPE", "DEPARTING", "RETURNING"})

	for i, b := range bookings {
		returning := ""
		if !b.Inbound.IsZero() {
			returning = b.Inbound.Format(booking.DisplayLayout)
		}

		flightType := b.Type

		if ft, err := booking.ParseFlightType(b.Type); err == nil {
			flightType = ft.String()
		}

		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			b.BookedAt.Local().Format(bookedAtLayout),
			ui.Green(flightType),
			b.Outbound.Format(booking.DisplayLayout),
			returning,
		})
	}

	return rows
}

// printBookingsTable prints a booking table to the command-line.
func printBookingsTable(w io.Writer, bookings []*models.Booking) {
	ui.PrintTable(bookingRows(bookings), w)
}

// listBookings prints out a table of bookings.
func listBookings(bookings []*models.Booking) error {
	if len(bookings) == 0 {
		report.Info(noBookingsMsg)
		return nil
	}

	printBookingsTable(os.Stdout, bookings)

	return nil
}

// sortPeople orders the list by label so that "Entry 2" comes before
// "Entry 10".
func sortPeople(list []*models.Person) {
	slices.SortStableFunc(list, func(a, b *models.Person) int {
		switch {
		case natural.Less(a.Label(), b.Label()):
			return -1
		case natural.Less(b.Label(), a.Label()):
			return 1
		}

		return 0
	})
}

func listPeople(list []*models.Person) error {
	if len(list) == 0 {
		report.Info(noPeopleMsg)
		return nil
	}

	rows := [][]string{{"#", "SURNAME", "NAME"}}

	for i, p := range list {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			ui.Highlight(p.Surname),
			p.Name,
		})
	}

	ui.PrintTable(rows, os.Stdout)

	return nil
}
