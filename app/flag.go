package app

import "github.com/urfave/cli/v2"

var (
	maxFlag = &cli.StringFlag{
		Name:    "max",
		Aliases: []string{"m"},
		Usage:   "Timer duration between 1s and 60s. Bare numbers are seconds (default: 30s)",
	}

	timerCmdFlag = &cli.StringFlag{
		Name:  "timer-cmd",
		Usage: "Execute an arbitrary command when the timer fills up",
	}

	notifyFlag = &cli.BoolFlag{
		Name:  "notify",
		Usage: "Show a desktop notification when the timer fills up",
	}

	chimeFlag = &cli.BoolFlag{
		Name:  "chime",
		Usage: "Play a short chime when the timer fills up",
	}

	flightTypeFlag = &cli.StringFlag{
		Name:    "flight-type",
		Aliases: []string{"t"},
		Usage:   "Initial flight type: one-way or return (default: one-way)",
	}

	flightsCmdFlag = &cli.StringFlag{
		Name:  "flights-cmd",
		Usage: "Execute an arbitrary command after each booking",
	}

	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level: debug, info, warn or error (default: info)",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sinceFlag = &cli.StringFlag{
		Name:  "since",
		Usage: "Only include bookings made after this date (e.g. '2 days ago')",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print the output as JSON",
	}

	portFlag = &cli.UintFlag{
		Name:  "port",
		Usage: "Specify the port for the API server",
		Value: 1111,
	}
)
