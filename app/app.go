package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sevenguis/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

func taskCommand(t task, flags ...cli.Flag) *cli.Command {
	return &cli.Command{
		Name:  t.name,
		Usage: t.usage,
		Flags: flags,
		Action: func(ctx *cli.Context) error {
			return runTask(ctx, t)
		},
	}
}

// Get retrieves the sevenguis app instance.
func Get() *cli.App {
	guiApp := &cli.App{
		Name: "sevenguis",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		sevenguis is a terminal rendition of the 7GUIs tasks: a counter, a
		temperature converter, a flight booker, a timer and a CRUD list.
		Run it without a command to pick a task from a menu.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			taskCommand(counterTask),
			taskCommand(temperatureTask),
			taskCommand(flightsTask, flightTypeFlag, flightsCmdFlag),
			taskCommand(timerTask, maxFlag, timerCmdFlag, notifyFlag, chimeFlag),
			taskCommand(crudTask),
			{
				Name:   "bookings",
				Usage:  "List confirmed flight bookings",
				Flags:  []cli.Flag{sinceFlag, jsonFlag},
				Action: bookingsAction,
				Subcommands: []*cli.Command{
					{
						Name:   "delete",
						Usage:  "Delete the bookings made within the --since window",
						Flags:  []cli.Flag{sinceFlag},
						Action: deleteBookingsAction,
					},
				},
			},
			{
				Name:   "people",
				Usage:  "Print the CRUD list in natural order",
				Flags:  []cli.Flag{jsonFlag},
				Action: peopleAction,
			},
			{
				Name:   "serve",
				Usage:  "Serve bookings, people and flight validation over a JSON API",
				Flags:  []cli.Flag{portFlag},
				Action: serveAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			maxFlag,
			timerCmdFlag,
			notifyFlag,
			chimeFlag,
			flightTypeFlag,
			flightsCmdFlag,
			logLevelFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return guiApp
}
