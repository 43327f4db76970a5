package views

import (
	"github.com/pterm/pterm"
)

type HistoryItem struct {
	Time   string
	Card   string
	Kind   string
	Amount string
	Status string
	Reason string
}

type HistoryView struct{}

func NewHistoryView() *HistoryView {
	return &HistoryView{}
}

func (v *HistoryView) tableData(items []HistoryItem) pterm.TableData {
	tableData := pterm.TableData{
		{"Time", "Card", "Type", "Amount", "Status", "Reason"},
	}

	for _, item := range items {
		var coloredStatus, coloredAmount string
		switch item.Status {
		case "SUCCESS":
			coloredStatus = pterm.Green(item.Status)
			if item.Kind == "withdraw" {
				coloredAmount = pterm.Red(item.Amount)
			} else {
				coloredAmount = pterm.Green(item.Amount)
			}
		default:
			coloredStatus = pterm.Red(item.Status)
			coloredAmount = pterm.Gray(item.Amount)
		}

		tableData = append(tableData, []string{
			item.Time,
			item.Card,
			item.Kind,
			coloredAmount,
			coloredStatus,
			item.Reason,
		})
	}
	return tableData
}

// Render shows items, which the caller has already cut to limit. total is
// the number of records before the cut.
func (v *HistoryView) Render(items []HistoryItem, total int) error {
	if len(items) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	if len(items) < total {
		pterm.DefaultSection.Printf("Showing the last %d of %d transactions", len(items), total)
	} else {
		pterm.DefaultSection.Printf("Transaction History")
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(v.tableData(items)).Render(); err != nil {
		return err
	}
	pterm.Info.Printf("Total: %d transactions\n", total)
	return nil
}
