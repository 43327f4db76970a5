package cmd

import (
	"fmt"

	"github.com/hance08/cardcore/internal/constants"
	"github.com/hance08/cardcore/internal/model"
	"github.com/hance08/cardcore/internal/service"
	"github.com/hance08/cardcore/internal/ui/views"
	"github.com/hance08/cardcore/internal/utils"
	"github.com/spf13/cobra"
)

type historyFlags struct {
	CardID string
	Limit  int
}

type historyRunner struct {
	svc   *service.Service
	flags *historyFlags
}

func NewHistoryCmd(svc *service.Service) *cobra.Command {
	flags := &historyFlags{}

	cmd := &cobra.Command{
		Use:     "history",
		Aliases: []string{"log"},
		Short:   "Show the transaction ledger",
		Long: `Show ledger records in the order they were written, declined attempts
included. Without --card every card is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &historyRunner{
				svc:   svc,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().StringVar(&flags.CardID, "card", "", "Only show records for this card")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 20, "Show only the most recent N records (0 shows all)")

	return cmd
}

func (r *historyRunner) Run(cmd *cobra.Command) error {
	if r.flags.Limit < 0 {
		return fmt.Errorf("--limit can't be negative")
	}

	records, err := r.svc.Query.GetHistory(cmd.Context(), r.flags.CardID)
	if err != nil {
		return err
	}

	total := len(records)
	records = lastN(records, r.flags.Limit)

	return views.NewHistoryView().Render(toHistoryItems(records), total)
}

func lastN(records []*model.TransactionRecord, n int) []*model.TransactionRecord {
	if n <= 0 || len(records) <= n {
		return records
	}
	return records[len(records)-n:]
}

func toHistoryItems(records []*model.TransactionRecord) []views.HistoryItem {
	items := make([]views.HistoryItem, 0, len(records))
	for _, rec := range records {
		items = append(items, views.HistoryItem{
			Time:   rec.Timestamp.Local().Format(constants.DateTimeFormat),
			Card:   utils.MaskCardID(rec.CardID),
			Kind:   string(rec.Kind),
			Amount: utils.FormatAmount(rec.Amount),
			Status: string(rec.Status),
			Reason: rec.Reason,
		})
	}
	return items
}
