package errhandler_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/mfarouk/teller/internal/errhandler"
	"github.com/stretchr/testify/assert"
)

func TestIsInterrupt(t *testing.T) {
	t.Parallel()

	assert.True(t, errhandler.IsInterrupt(terminal.InterruptErr))
	assert.True(t, errhandler.IsInterrupt(huh.ErrUserAborted))
	assert.True(t, errhandler.IsInterrupt(fmt.Errorf("prompt failed: %w", huh.ErrUserAborted)))
	assert.True(t, errhandler.IsInterrupt(errors.New("received interrupt signal")))

	assert.False(t, errhandler.IsInterrupt(nil))
	assert.False(t, errhandler.IsInterrupt(errors.New("terminal is not a tty")))
}

func TestHandleErrorReturnsNonInterrupt(t *testing.T) {
	t.Parallel()

	// a real prompt failure must come back to the caller so the process
	// exits non-zero
	err := errors.New("terminal is not a tty")
	assert.ErrorIs(t, errhandler.HandleError(err), err)

	assert.NoError(t, errhandler.HandleError(nil))
}
