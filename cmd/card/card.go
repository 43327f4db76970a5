package card

import (
	"github.com/hance08/cardcore/internal/service"
	"github.com/spf13/cobra"
)

func NewCardCmd(svc *service.Service) *cobra.Command {
	cardCmd := &cobra.Command{
		Use:   "card",
		Short: "Create cards and show the list of all cards.",
		Long:  `Create cards and show the list of all cards.`,
	}

	cardCmd.AddCommand(NewCreateCmd(svc))
	cardCmd.AddCommand(NewListCmd(svc))

	return cardCmd
}
