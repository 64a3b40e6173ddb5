// Package report prints results and errors to the terminal
package report

import (
	"os"

	"github.com/pterm/pterm"
)

func Info(msg string) {
	pterm.Info.Println(msg)
}

func Success(msg string) {
	pterm.Success.Println(msg)
}

// Quit prints err and exits with a non-zero status.
func Quit(err error) {
	pterm.Error.Println(err)
	os.Exit(1)
}
