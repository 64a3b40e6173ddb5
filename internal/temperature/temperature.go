// Package temperature converts between Celsius and Fahrenheit
package temperature

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Invalid is shown in place of a conversion whose input does not parse.
const Invalid = "err"

const places = 1

var (
	nine      = decimal.NewFromInt(9)
	five      = decimal.NewFromInt(5)
	thirtyTwo = decimal.NewFromInt(32)
)

// ToFahrenheit converts a Celsius value.
func ToFahrenheit(c decimal.Decimal) decimal.Decimal {
	return c.Mul(nine).Div(five).Add(thirtyTwo)
}

// ToCelsius converts a Fahrenheit value.
func ToCelsius(f decimal.Decimal) decimal.Decimal {
	return f.Sub(thirtyTwo).Mul(five).Div(nine)
}

// Format renders d rounded to one decimal place. Ties round to even.
func Format(d decimal.Decimal) string {
	return d.RoundBank(places).StringFixed(places)
}

func convert(s string, fn func(decimal.Decimal) decimal.Decimal) string {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Invalid
	}

	return Format(fn(d))
}

// Converter keeps both sides of the converter in sync. The side that was
// edited last keeps the text as typed.
type Converter struct {
	Celsius    string
	Fahrenheit string
}

// SetCelsius records a new Celsius entry and updates the Fahrenheit side.
func (c *Converter) SetCelsius(s string) {
	c.Celsius = s
	c.Fahrenheit = convert(s, ToFahrenheit)
}

// SetFahrenheit records a new Fahrenheit entry and updates the Celsius side.
func (c *Converter) SetFahrenheit(s string) {
	c.Fahrenheit = s
	c.Celsius = convert(s, ToCelsius)
}
