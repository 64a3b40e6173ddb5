package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/sevenguis/internal/elapsed"
	"github.com/ayoisaiah/sevenguis/internal/timeutil"
)

// sliderPosition maps the current duration onto [0, 1] across the accepted
// range.
func (t *Timer) sliderPosition() float64 {
	span := elapsed.MaxDuration - elapsed.MinDuration

	return float64(t.clock.Max()-elapsed.MinDuration) / float64(span)
}

func (t *Timer) View() string {
	var s strings.Builder

	s.WriteString(t.styles.Title.Render("Timer"))
	s.WriteString("\n\n")
	s.WriteString(t.styles.Hint.Render("Elapsed Time "))
	s.WriteString(t.gauge.ViewAs(t.clock.Fraction()))
	s.WriteString("\n")
	s.WriteString(t.styles.Main.Render(timeutil.Seconds(t.clock.Elapsed())))
	s.WriteString("\n\n")
	s.WriteString(t.styles.Hint.Render("Duration     "))
	s.WriteString(t.slider.ViewAs(t.sliderPosition()))
	s.WriteString(" " + timeutil.Seconds(t.clock.Max()))

	if t.err != nil {
		s.WriteString("\n\n" + t.styles.Invalid.Render(t.err.Error()))
	}

	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.decrease,
		defaultKeymap.increase,
		defaultKeymap.decreaseMore,
		defaultKeymap.increaseMore,
		defaultKeymap.reset,
		defaultKeymap.quit,
	}))

	return t.styles.Base.Render(s.String())
}
