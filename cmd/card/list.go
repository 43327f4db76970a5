package card

import (
	"github.com/hance08/cardcore/internal/service"
	"github.com/hance08/cardcore/internal/ui/views"
	"github.com/hance08/cardcore/internal/utils"
	"github.com/spf13/cobra"
)

type ListCommandRunner struct {
	svc *service.Service
}

func NewListCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all cards with their balances",
		Long:  `List all cards in the system with their holders and current balances.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				svc: svc,
			}
			return runner.Run(cmd)
		},
	}
}

func (r *ListCommandRunner) Run(cmd *cobra.Command) error {
	cards, err := r.svc.Card.ListCards(cmd.Context())
	if err != nil {
		return err
	}

	items := make([]views.CardListItem, 0, len(cards))
	for _, c := range cards {
		items = append(items, views.CardListItem{
			Card:       c.CardID,
			HolderName: c.HolderName,
			Balance:    utils.FormatAmount(c.Balance),
			Created:    c.CreatedAt.Local().Format("2006-01-02"),
		})
	}

	return views.NewCardListView().Render(items)
}
