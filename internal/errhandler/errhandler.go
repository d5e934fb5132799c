package errhandler

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// IsInterrupt reports whether err means the user backed out of a prompt.
func IsInterrupt(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

// HandleError exits cleanly when the user backed out of a prompt and hands
// any other error back to the caller, so a real prompt failure surfaces as a
// non-zero exit.
func HandleError(err error) error {
	if IsInterrupt(err) {
		pterm.Warning.Println("Operation cancelled")
		os.Exit(0)
	}

	return err
}
