package cmd

import (
	"github.com/hance08/cardcore/internal/service"
	"github.com/hance08/cardcore/internal/ui/views"
	"github.com/hance08/cardcore/internal/utils"
	"github.com/spf13/cobra"
)

type balanceRunner struct {
	svc *service.Service
}

func NewBalanceCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <card>",
		Short: "Show the current balance of a card",
		Long:  `Show the current balance of a card. Reading a balance never writes to the ledger.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &balanceRunner{
				svc: svc,
			}
			return runner.Run(cmd, args[0])
		},
	}
}

func (r *balanceRunner) Run(cmd *cobra.Command, cardID string) error {
	balance, err := r.svc.Query.GetBalance(cmd.Context(), cardID)
	if err != nil {
		return err
	}

	return views.RenderBalance(utils.MaskCardID(cardID), utils.FormatAmount(balance))
}
