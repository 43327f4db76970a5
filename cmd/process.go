package cmd

import (
	"fmt"

	"github.com/hance08/cardcore/internal/errhandler"
	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/service"
	"github.com/hance08/cardcore/internal/ui/prompts"
	"github.com/hance08/cardcore/internal/ui/views"
	"github.com/hance08/cardcore/internal/utils"
	"github.com/spf13/cobra"
)

type processFlags struct {
	CardID string
	Amount string
	PIN    string
	Kind   string
}

type processRunner struct {
	svc   *service.Service
	flags *processFlags
	// askPIN is used when --pin is not given.
	askPIN func() (string, error)
}

func NewWithdrawCmd(svc *service.Service) *cobra.Command {
	return newProcessCmd(svc, model.KindWithdraw, &cobra.Command{
		Use:   "withdraw",
		Short: "Withdraw money from a card",
		Long: `Withdraw money from a card after checking its PIN and balance.

Example: cardcore withdraw --card 4123456789012345 --amount 200`,
	})
}

func NewTopUpCmd(svc *service.Service) *cobra.Command {
	return newProcessCmd(svc, model.KindTopUp, &cobra.Command{
		Use:   "topup",
		Short: "Add money to a card",
		Long: `Add money to a card after checking its PIN.

Example: cardcore topup --card 4123456789012345 --amount 50`,
	})
}

// NewProcessCmd submits a request of any kind. Unknown kinds are declined and
// still logged.
func NewProcessCmd(svc *service.Service) *cobra.Command {
	return newProcessCmd(svc, "", &cobra.Command{
		Use:   "process",
		Short: "Submit a transaction request of the given kind",
		Long: `Submit a transaction request with an explicit kind (withdraw or topup).

Example: cardcore process --card 4123456789012345 --amount 10 --kind withdraw`,
	})
}

func newProcessCmd(svc *service.Service, kind model.Kind, cmd *cobra.Command) *cobra.Command {
	flags := &processFlags{Kind: string(kind)}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		runner := &processRunner{
			svc:    svc,
			flags:  flags,
			askPIN: prompts.PromptPIN,
		}
		return runner.Run(cmd)
	}

	cmd.Flags().StringVar(&flags.CardID, "card", "", "Card number")
	cmd.Flags().StringVarP(&flags.Amount, "amount", "a", "", "Amount, at most two decimal places")
	cmd.Flags().StringVarP(&flags.PIN, "pin", "p", "", "Card PIN (prompted when omitted)")
	_ = cmd.MarkFlagRequired("card")
	_ = cmd.MarkFlagRequired("amount")

	if kind == "" {
		cmd.Flags().StringVarP(&flags.Kind, "kind", "k", "", "Transaction type: withdraw or topup")
		_ = cmd.MarkFlagRequired("kind")
	}

	return cmd
}

func (r *processRunner) Run(cmd *cobra.Command) error {
	amount, err := utils.ParseAmount(r.flags.Amount)
	if err != nil {
		return fmt.Errorf("%w: %w", service.ErrInvalidRequest, err)
	}

	pin := r.flags.PIN
	if !cmd.Flags().Changed("pin") {
		pin, err = r.askPIN()
		if err != nil {
			return err
		}
	}

	req := service.ProcessRequest{
		CardID: r.flags.CardID,
		PIN:    pin,
		Amount: amount,
		Kind:   model.Kind(r.flags.Kind),
	}

	out, err := r.svc.Processor.Process(cmd.Context(), req)
	if err != nil {
		return err
	}

	item := views.OutcomeItem{
		Card:   utils.MaskCardID(req.CardID),
		Kind:   string(req.Kind),
		Amount: utils.FormatAmount(amount),
		Status: string(out.Status),
		Reason: out.Reason,
	}
	if out.Approved() {
		if balance, err := r.svc.Query.GetBalance(cmd.Context(), req.CardID); err == nil {
			item.Balance = utils.FormatAmount(balance)
		}
	}

	if err := views.RenderOutcome(item); err != nil {
		return err
	}

	if !out.Approved() {
		return errhandler.Reported(fmt.Errorf("%w: %s", out.Err(), out.Reason))
	}
	return nil
}
