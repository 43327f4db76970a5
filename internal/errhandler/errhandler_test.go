package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/cardcore/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitOK},
		{"decline", fmt.Errorf("%w: Insufficient funds", service.ErrInsufficientFunds), ExitDecline},
		{"bad pin", service.ErrAuthenticationFailed, ExitDecline},
		{"unknown card", service.ErrAccountNotFound, ExitDecline},
		{"invalid input", service.ErrInvalidRequest, ExitDecline},
		{"store fault", fmt.Errorf("%w: disk I/O error", service.ErrStoreUnavailable), ExitFailure},
		{"reported decline", Reported(service.ErrInsufficientFunds), ExitDecline},
		{"other", errors.New("flag needs an argument"), ExitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestHandleErrorInterrupts(t *testing.T) {
	assert.Equal(t, ExitOK, HandleError(terminal.InterruptErr))
	assert.Equal(t, ExitOK, HandleError(fmt.Errorf("input cancelled: %w", huh.ErrUserAborted)))
}

func TestReported(t *testing.T) {
	assert.Nil(t, Reported(nil))

	err := Reported(service.ErrInsufficientFunds)
	assert.ErrorIs(t, err, service.ErrInsufficientFunds)
	assert.Equal(t, "insufficient funds", err.Error())
	assert.Equal(t, ExitDecline, HandleError(err))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Store unavailable", capitalize("store unavailable"))
	assert.Equal(t, "", capitalize(""))
}
