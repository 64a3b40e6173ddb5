// Package booking decides whether a flight can be booked from the dates a
// user has typed in so far.
package booking

import (
	"strings"
	"time"

	"github.com/ayoisaiah/sevenguis/internal/apperr"
)

// FlightType distinguishes one-way flights from return flights.
type FlightType int

const (
	OneWay FlightType = iota
	Return
)

// DateLayout is the DD-MM-YYYY format accepted for travel dates. Day and
// month may omit the leading zero.
const DateLayout = "2-1-2006"

// DisplayLayout is used when printing dates back to the user.
const DisplayLayout = "02-01-2006"

const hoursInADay = 24

var (
	errUnknownFlightType = &apperr.Error{
		Message: "unknown flight type: %q",
	}

	ErrNotBookable = &apperr.Error{
		Message: "the flight cannot be booked with the current dates",
	}
)

// FlightTypes lists every flight type in display order.
var FlightTypes = []FlightType{OneWay, Return}

func (f FlightType) String() string {
	if f == Return {
		return "Return Flight"
	}

	return "One-way Flight"
}

// Slug is the identifier used in configuration files and URLs.
func (f FlightType) Slug() string {
	if f == Return {
		return "return"
	}

	return "one-way"
}

// ParseFlightType converts a slug back into a FlightType.
func ParseFlightType(s string) (FlightType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "one-way", "oneway", "one_way":
		return OneWay, nil
	case "return":
		return Return, nil
	}

	return OneWay, errUnknownFlightType.Fmt(s)
}

// Validity reports which parts of a booking are acceptable.
type Validity struct {
	Outbound bool `json:"outbound_valid"`
	Inbound  bool `json:"inbound_valid"`
	Bookable bool `json:"bookable"`
}

// ParseDate parses s as a DD-MM-YYYY date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// daysBetween returns the whole number of days from a to b.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / hoursInADay)
}

// Evaluate computes the validity of a booking. A date that fails to parse is
// reported as invalid and never as an error. The inbound date of a one-way
// flight is not examined.
func Evaluate(ft FlightType, outbound, inbound string) Validity {
	var v Validity

	out, err := ParseDate(outbound)
	v.Outbound = err == nil

	if ft == Return {
		in, err := ParseDate(inbound)
		if err == nil && v.Outbound {
			v.Inbound = daysBetween(out, in) > 0
		}
	} else {
		v.Inbound = true
	}

	v.Bookable = v.Outbound && v.Inbound

	return v
}
