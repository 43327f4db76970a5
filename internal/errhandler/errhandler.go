package errhandler

import (
	"errors"
	"strings"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/cardcore/internal/service"
	"github.com/pterm/pterm"
)

const (
	ExitOK      = 0
	ExitFailure = 1
	ExitDecline = 2
)

type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Reported marks err as already shown to the user, so HandleError only
// turns it into an exit code.
func Reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}

// HandleError prints err and returns the exit code for it.
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	if IsInterrupt(err) {
		pterm.Warning.Println("Operation Cancelled")
		return ExitOK
	}

	var reported *reportedError
	if !errors.As(err, &reported) {
		pterm.Error.Println(capitalize(err.Error()))
	}

	return ExitCode(err)
}

// ExitCode is 2 for declines and rejected input, 1 for everything else.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, service.ErrStoreUnavailable):
		return ExitFailure
	case errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, service.ErrAccountNotFound),
		errors.Is(err, service.ErrAuthenticationFailed),
		errors.Is(err, service.ErrInsufficientFunds):
		return ExitDecline
	default:
		return ExitFailure
	}
}

func IsInterrupt(err error) bool {
	return errors.Is(err, terminal.InterruptErr) ||
		errors.Is(err, huh.ErrUserAborted) ||
		strings.Contains(err.Error(), "interrupt")
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
