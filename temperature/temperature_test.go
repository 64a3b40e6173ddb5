package temperature

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/ayoisaiah/sevenguis/internal/config"
)

func typeText(c *Converter, s string) {
	for _, r := range s {
		c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestConverterFields(t *testing.T) {
	testCases := []struct {
		name           string
		celsius        string
		fahrenheit     string
		wantCelsius    string
		wantFahrenheit string
	}{
		{
			name:           "celsius entry",
			celsius:        "100",
			wantCelsius:    "100",
			wantFahrenheit: "212.0",
		},
		{
			name:           "fahrenheit entry",
			fahrenheit:     "-40",
			wantCelsius:    "-40.0",
			wantFahrenheit: "-40",
		},
		{
			name:           "invalid celsius",
			celsius:        "ab",
			wantCelsius:    "ab",
			wantFahrenheit: "err",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := New(config.Default())

			typeText(c, tc.celsius)

			if tc.fahrenheit != "" {
				c.Update(tea.KeyMsg{Type: tea.KeyTab})
				typeText(c, tc.fahrenheit)
			}

			got := []string{c.Celsius(), c.Fahrenheit()}
			want := []string{tc.wantCelsius, tc.wantFahrenheit}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("fields mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
