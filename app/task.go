package app

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/ayoisaiah/sevenguis/counter"
	"github.com/ayoisaiah/sevenguis/crud"
	"github.com/ayoisaiah/sevenguis/flights"
	"github.com/ayoisaiah/sevenguis/internal/apperr"
	"github.com/ayoisaiah/sevenguis/internal/config"
	"github.com/ayoisaiah/sevenguis/store"
	"github.com/ayoisaiah/sevenguis/temperature"
	"github.com/ayoisaiah/sevenguis/timer"
)

var errUnknownTask = &apperr.Error{
	Message: "unknown task: %q",
}

// task is one of the programs that can be started from the launcher.
type task struct {
	model   func(cfg *config.Config, open store.Opener) (tea.Model, error)
	name    string
	title   string
	usage   string
	needsDB bool
}

var (
	counterTask = task{
		name:  "counter",
		title: "Counter",
		usage: "Count button presses",
		model: func(cfg *config.Config, _ store.Opener) (tea.Model, error) {
			return counter.New(cfg), nil
		},
	}

	temperatureTask = task{
		name:  "temperature",
		title: "Temperature Converter",
		usage: "Convert between Celsius and Fahrenheit",
		model: func(cfg *config.Config, _ store.Opener) (tea.Model, error) {
			return temperature.New(cfg), nil
		},
	}

	flightsTask = task{
		name:    "flights",
		title:   "Flight Booker",
		usage:   "Book a one-way or return flight",
		needsDB: true,
		model: func(cfg *config.Config, open store.Opener) (tea.Model, error) {
			return flights.New(cfg, open)
		},
	}

	timerTask = task{
		name:  "timer",
		title: "Timer",
		usage: "Watch the elapsed time fill up towards an adjustable duration",
		model: func(cfg *config.Config, _ store.Opener) (tea.Model, error) {
			return timer.New(cfg)
		},
	}

	crudTask = task{
		name:    "crud",
		title:   "CRUD",
		usage:   "Create, update and delete names in a filterable list",
		needsDB: true,
		model: func(cfg *config.Config, open store.Opener) (tea.Model, error) {
			return crud.New(cfg, open)
		},
	}
)

// tasks lists every task in launcher order.
var tasks = []task{
	counterTask,
	temperatureTask,
	flightsTask,
	timerTask,
	crudTask,
}

func findTask(name string) (task, error) {
	i := slices.IndexFunc(tasks, func(t task) bool {
		return t.name == name
	})
	if i == -1 {
		return task{}, errUnknownTask.Fmt(name)
	}

	return tasks[i], nil
}

// pickTask asks the user which task to start.
func pickTask() (task, error) {
	options := make([]huh.Option[string], len(tasks))

	for i, t := range tasks {
		options[i] = huh.NewOption(t.title, t.name)
	}

	var choice string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a task").
				Options(options...).
				Value(&choice),
		),
	)

	err := form.Run()
	if err != nil {
		return task{}, err
	}

	return findTask(choice)
}
