package temperature

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConverter(t *testing.T) {
	cases := []struct {
		name string
		edit func(c *Converter)
		want Converter
	}{
		{
			name: "freezing point",
			edit: func(c *Converter) { c.SetCelsius("0") },
			want: Converter{Celsius: "0", Fahrenheit: "32.0"},
		},
		{
			name: "boiling point",
			edit: func(c *Converter) { c.SetCelsius("100") },
			want: Converter{Celsius: "100", Fahrenheit: "212.0"},
		},
		{
			name: "negative forty meets",
			edit: func(c *Converter) { c.SetFahrenheit("-40") },
			want: Converter{Celsius: "-40.0", Fahrenheit: "-40"},
		},
		{
			name: "fractional fahrenheit",
			edit: func(c *Converter) { c.SetFahrenheit("98.6") },
			want: Converter{Celsius: "37.0", Fahrenheit: "98.6"},
		},
		{
			name: "rounds to one place",
			edit: func(c *Converter) { c.SetFahrenheit("50") },
			want: Converter{Celsius: "10.0", Fahrenheit: "50"},
		},
		{
			name: "ties round to even",
			edit: func(c *Converter) { c.SetCelsius("1.25") },
			want: Converter{Celsius: "1.25", Fahrenheit: "34.2"},
		},
		{
			name: "ties round to even upwards",
			edit: func(c *Converter) { c.SetCelsius("1.75") },
			want: Converter{Celsius: "1.75", Fahrenheit: "35.2"},
		},
		{
			name: "repeating fraction",
			edit: func(c *Converter) { c.SetFahrenheit("0") },
			want: Converter{Celsius: "-17.8", Fahrenheit: "0"},
		},
		{
			name: "unparseable input",
			edit: func(c *Converter) { c.SetCelsius("abc") },
			want: Converter{Celsius: "abc", Fahrenheit: Invalid},
		},
		{
			name: "empty input",
			edit: func(c *Converter) { c.SetFahrenheit("") },
			want: Converter{Celsius: Invalid, Fahrenheit: ""},
		},
		{
			name: "last edit wins",
			edit: func(c *Converter) {
				c.SetCelsius("100")
				c.SetFahrenheit("32")
			},
			want: Converter{Celsius: "0.0", Fahrenheit: "32"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c Converter

			tc.edit(&c)

			if diff := cmp.Diff(tc.want, c); diff != "" {
				t.Errorf("converter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
