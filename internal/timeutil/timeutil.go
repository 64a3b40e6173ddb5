// Package timeutil provides utility functions and types for working with
// time-related operations.
package timeutil

import (
	"fmt"
	"strings"
	"time"

	dps "github.com/markusmobius/go-dateparser"

	"github.com/ayoisaiah/sevenguis/internal/apperr"
)

// keyLayout is a fixed width RFC3339 variant so that keys sort
// chronologically.
const keyLayout = "2006-01-02T15:04:05.000000000Z07:00"

var errParsingDate = &apperr.Error{
	Message: "unable to understand the date %q",
}

// FromStr interprets s as an absolute or relative date such as
// "2024-03-01" or "2 days ago", relative to now.
func FromStr(s string, now time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errParsingDate.Fmt(s)
	}

	cfg := &dps.Configuration{
		CurrentTime: now,
	}

	d, err := dps.Parse(cfg, s)
	if err != nil {
		return time.Time{}, errParsingDate.Fmt(s).Wrap(err)
	}

	return d.Time, nil
}

// RoundToStart resets the given time to the start of the day.
func RoundToStart(t time.Time) time.Time {
	return time.Date(
		t.Year(),
		t.Month(),
		t.Day(),
		0,
		0,
		0,
		0,
		t.Location(),
	)
}

// Seconds formats d as seconds with a single decimal, e.g. "12.3s".
func Seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// ToKey converts a time value to a database key for Bolt.
func ToKey(t time.Time) []byte {
	return []byte(t.UTC().Format(keyLayout))
}
