// Package alert lets the user know that something happened outside of the
// terminal window: desktop notifications, an audible chime, and user defined
// shell commands.
package alert

import (
	"context"
	"log/slog"
	"os/exec"
	"sync"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/kballard/go-shellquote"

	"github.com/ayoisaiah/sevenguis/internal/apperr"
)

const (
	sampleRate     = beep.SampleRate(44100)
	chimeFrequency = 880
	chimeLength    = 300 * time.Millisecond
	bufferDivisor  = 10
)

var (
	errParseCmd = &apperr.Error{
		Message: "unable to parse command %q",
	}

	errRunCmd = &apperr.Error{
		Message: "command %q failed",
	}
)

var (
	speakerOnce sync.Once
	speakerErr  error
)

// Alerter delivers alerts. The zero value does nothing.
type Alerter struct {
	// Title is used as the notification title.
	Title string
	// Cmd is run through the shell quoting rules and executed directly.
	Cmd    string
	Notify bool
	Chime  bool
}

// Fire delivers every enabled alert for the given message. Failures are
// logged and the first error is returned; one failing channel does not
// prevent the others.
func (a *Alerter) Fire(ctx context.Context, msg string) error {
	var first error

	record := func(err error) {
		if err == nil {
			return
		}

		slog.WarnContext(ctx, "alert failed", slog.Any("error", err))

		if first == nil {
			first = err
		}
	}

	if a.Notify {
		record(beeep.Notify(a.Title, msg, ""))
	}

	if a.Chime {
		record(chime())
	}

	record(RunCmd(ctx, a.Cmd))

	return first
}

// RunCmd executes cmdline without a shell. An empty command line is a no-op.
func RunCmd(ctx context.Context, cmdline string) error {
	if cmdline == "" {
		return nil
	}

	args, err := shellquote.Split(cmdline)
	if err != nil {
		return errParseCmd.Fmt(cmdline).Wrap(err)
	}

	if len(args) == 0 {
		return nil
	}

	slog.InfoContext(ctx, "running command", slog.Any("args", args))

	err = exec.CommandContext(ctx, args[0], args[1:]...).Run()
	if err != nil {
		return errRunCmd.Fmt(cmdline).Wrap(err)
	}

	return nil
}

// chime plays a short sine tone and blocks until it has finished.
func chime() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(
			sampleRate,
			sampleRate.N(time.Second/bufferDivisor),
		)
	})

	if speakerErr != nil {
		return speakerErr
	}

	tone, err := generators.SineTone(sampleRate, chimeFrequency)
	if err != nil {
		return err
	}

	done := make(chan struct{})

	speaker.Play(beep.Seq(
		beep.Take(sampleRate.N(chimeLength), tone),
		beep.Callback(func() {
			close(done)
		}),
	))

	<-done

	return nil
}
