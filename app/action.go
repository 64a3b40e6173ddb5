package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/sevenguis/internal/config"
	"github.com/ayoisaiah/sevenguis/internal/logger"
	"github.com/ayoisaiah/sevenguis/internal/models"
	"github.com/ayoisaiah/sevenguis/internal/osutil"
	"github.com/ayoisaiah/sevenguis/internal/pathutil"
	"github.com/ayoisaiah/sevenguis/internal/timeutil"
	"github.com/ayoisaiah/sevenguis/internal/ui"
	"github.com/ayoisaiah/sevenguis/server"
	"github.com/ayoisaiah/sevenguis/store"
)

const (
	envNoColor          = "NO_COLOR"
	envSevenguisNoColor = "SEVENGUIS_NO_COLOR"
)

// logCloser is the log file opened by setup.
var logCloser interface{ Close() error }

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// setup loads the configuration from the config file and the command-line
// flags, then starts logging at the configured level.
func setup(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(pathutil.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	if logCloser == nil {
		logCloser = logger.Setup(pathutil.LogFilePath(), level)
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	return cfg, nil
}

// runTask starts the bubbletea program for t.
func runTask(ctx *cli.Context, t task) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}

	var open store.Opener

	if t.needsDB {
		open = store.Writable(pathutil.DBFilePath())
	}

	m, err := t.model(cfg, open)
	if err != nil {
		return err
	}

	slog.InfoContext(ctx.Context, "starting task", slog.String("task", t.name))

	_, err = tea.NewProgram(m).Run()

	return err
}

// defaultAction shows the launcher and starts the selected task.
func defaultAction(ctx *cli.Context) error {
	t, err := pickTask()
	if err != nil {
		return err
	}

	return runTask(ctx, t)
}

// sinceTime interprets the --since flag. An empty flag means all time.
func sinceTime(ctx *cli.Context) (time.Time, error) {
	s := ctx.String("since")
	if s == "" {
		return time.Time{}, nil
	}

	return timeutil.FromStr(s, time.Now())
}

func bookingsHelper(ctx *cli.Context) ([]*models.Booking, store.DB, error) {
	if _, err := setup(ctx); err != nil {
		return nil, nil, err
	}

	since, err := sinceTime(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	bookings, err := db.GetBookings(since, time.Time{})
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return bookings, db, nil
}

// bookingsAction handles the bookings command which prints a table of the
// confirmed bookings.
func bookingsAction(ctx *cli.Context) error {
	bookings, db, err := bookingsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		b, err := json.Marshal(bookings)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return listBookings(bookings)
}

// deleteBookingsAction handles the bookings delete command.
func deleteBookingsAction(ctx *cli.Context) error {
	bookings, db, err := bookingsHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return delBookings(db, bookings)
}

// peopleAction prints the saved CRUD list.
func peopleAction(ctx *cli.Context) error {
	if _, err := setup(ctx); err != nil {
		return err
	}

	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	defer db.Close()

	list, _, err := db.GetPeople()
	if err != nil {
		return err
	}

	sortPeople(list)

	if ctx.Bool("json") {
		b, err := json.Marshal(list)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return listPeople(list)
}

// serveAction starts the JSON API. The database is opened read-only for each
// request. Tasks only lock the database while saving, so a request made at
// that moment waits for the save to finish.
func serveAction(ctx *cli.Context) error {
	if _, err := setup(ctx); err != nil {
		return err
	}

	// make sure the buckets exist before serving read-only connections
	db, err := store.NewClient(pathutil.DBFilePath())
	if err != nil {
		return err
	}

	if err := db.Close(); err != nil {
		return err
	}

	handler := server.NewRouter(store.ReadOnly(pathutil.DBFilePath()))

	return server.Serve(ctx.Context, ctx.Uint("port"), handler)
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	// writes the defaults on first run
	if _, err := setup(ctx); err != nil {
		return err
	}

	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, pathutil.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/sevenguis/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if SEVENGUIS_NO_COLOR is set
	if _, exists := os.LookupEnv(envSevenguisNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return pathutil.Initialize()
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting sevenguis")

	if logCloser != nil {
		return logCloser.Close()
	}

	return nil
}
