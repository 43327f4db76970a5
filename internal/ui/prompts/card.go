package prompts

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/huh"
	"github.com/hance08/cardcore/internal/validation"
)

// NewCardInput holds the raw answers of the card creation form.
type NewCardInput struct {
	CardID     string
	HolderName string
	Balance    string
	PIN        string
}

// PromptNewCard runs the card creation form. Fields already set in input are
// used as defaults.
func PromptNewCard(input NewCardInput) (NewCardInput, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Card number:").
				Value(&input.CardID).
				Validate(func(s string) error { return validation.ValidateCardID(s) }),
			huh.NewInput().
				Title("Holder name:").
				Value(&input.HolderName).
				Validate(func(s string) error { return validation.ValidateHolderName(s) }),
			huh.NewInput().
				Title("Initial balance:").
				Description("Leave empty for 0.00").
				Value(&input.Balance).
				Validate(func(s string) error { return validation.ValidateInitialBalance(s) }),
			huh.NewInput().
				Title("PIN:").
				Description("4 to 12 digits").
				EchoMode(huh.EchoModePassword).
				Value(&input.PIN).
				Validate(func(s string) error { return validation.ValidatePIN(s) }),
		),
	)

	if err := form.Run(); err != nil {
		return NewCardInput{}, err
	}
	return input, nil
}

// PromptPIN asks for the card PIN with a masked survey prompt. The format is
// not checked here; a malformed PIN is declined and logged like a wrong one.
func PromptPIN() (string, error) {
	return PromptSecret("PIN:", survey.Required)
}
