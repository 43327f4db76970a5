package card

import (
	"context"
	"fmt"

	"github.com/hance08/cardcore/internal/service"
	"github.com/hance08/cardcore/internal/ui"
	"github.com/hance08/cardcore/internal/ui/prompts"
	"github.com/hance08/cardcore/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

type createFlags struct {
	CardID     string
	HolderName string
	Balance    string
	PIN        string
}

// CardCreator collects the fields of a new card from flags or the form.
type CardCreator struct {
	input prompts.NewCardInput

	svc *service.Service

	// Prompts, replaced in tests.
	askForm    func(prompts.NewCardInput) (prompts.NewCardInput, error)
	askPIN     func() (string, error)
	askConfirm func(string, bool) (bool, error)
}

func NewCardCreator(svc *service.Service) *CardCreator {
	return &CardCreator{
		svc:        svc,
		askForm:    prompts.PromptNewCard,
		askPIN:     prompts.PromptPIN,
		askConfirm: prompts.PromptConfirm,
	}
}

func NewCreateCmd(svc *service.Service) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new card.",
		Long: `Create a new card with a PIN, holder name and opening balance.
Without flags an interactive form is shown.

Example: cardcore card create --card 4000000000000002 --holder "Bob Lee" --balance 250`,
		RunE: func(cmd *cobra.Command, args []string) error {
			creator := NewCardCreator(svc)

			hasFlags := cmd.Flags().Changed("card") ||
				cmd.Flags().Changed("holder") ||
				cmd.Flags().Changed("balance")

			if hasFlags {
				return creator.FlagsMode(cmd.Context(), flags, cmd.Flags().Changed("pin"))
			}
			return creator.InteractiveMode(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flags.CardID, "card", "", "Card number (digits only)")
	cmd.Flags().StringVarP(&flags.HolderName, "holder", "n", "", "Card holder name")
	cmd.Flags().StringVarP(&flags.Balance, "balance", "b", "", "Opening balance (defaults to 0)")
	cmd.Flags().StringVarP(&flags.PIN, "pin", "p", "", "Card PIN (prompted when omitted)")

	return cmd
}

// FlagsMode builds a card from command-line flags
func (cc *CardCreator) FlagsMode(ctx context.Context, flags *createFlags, hasPIN bool) error {
	cc.input = prompts.NewCardInput{
		CardID:     flags.CardID,
		HolderName: flags.HolderName,
		Balance:    flags.Balance,
		PIN:        flags.PIN,
	}

	if !hasPIN {
		pin, err := cc.askPIN()
		if err != nil {
			return err
		}
		cc.input.PIN = pin
	}

	return cc.Save(ctx)
}

// InteractiveMode builds a card through the huh form
func (cc *CardCreator) InteractiveMode(ctx context.Context) error {
	input, err := cc.askForm(cc.input)
	if err != nil {
		return err
	}
	cc.input = input

	cc.displaySummary()

	confirm, err := cc.askConfirm("Proceed with card creation?", true)
	if err != nil {
		return err
	}
	if !confirm {
		return fmt.Errorf("card creation cancelled")
	}

	return cc.Save(ctx)
}

// Save persists the card through the card service
func (cc *CardCreator) Save(ctx context.Context) error {
	balance := decimal.Zero
	if cc.input.Balance != "" {
		var err error
		balance, err = utils.ParseAmount(cc.input.Balance)
		if err != nil {
			return fmt.Errorf("%w: %w", service.ErrInvalidRequest, err)
		}
	}

	card, err := cc.svc.Card.CreateCard(ctx, service.CreateCardInput{
		CardID:     cc.input.CardID,
		PIN:        cc.input.PIN,
		HolderName: cc.input.HolderName,
		Balance:    balance,
	})
	if err != nil {
		return err
	}

	displaySuccessInformation(card)
	return nil
}

func (cc *CardCreator) displaySummary() {
	ui.Separator()
	ui.PrintL2Title("New card")

	balance := cc.input.Balance
	if balance == "" {
		balance = "0.00"
	}

	tableData := pterm.TableData{
		{pterm.Blue("Card"), utils.MaskCardID(cc.input.CardID)},
		{pterm.Blue("Holder"), cc.input.HolderName},
		{pterm.Blue("Balance"), balance},
	}

	pterm.DefaultTable.WithData(tableData).Render()
}

func displaySuccessInformation(card *service.CardSummary) {
	ui.Separator()
	ui.PrintL2Title("Card created")
	tableData := pterm.TableData{
		{pterm.Blue("Card"), utils.MaskCardID(card.CardID)},
		{pterm.Blue("Holder"), card.HolderName},
		{pterm.Blue("Balance"), utils.FormatAmount(card.Balance)},
	}
	pterm.DefaultTable.WithData(tableData).Render()
	pterm.Success.Println("Card created successfully!")
}
