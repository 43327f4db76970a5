package views

import (
	"github.com/pterm/pterm"
)

type OutcomeItem struct {
	Card    string
	Kind    string
	Amount  string
	Status  string
	Reason  string
	Balance string // empty when not shown
}

func outcomeTableData(item OutcomeItem) pterm.TableData {
	status := pterm.Green(item.Status)
	if item.Status != "SUCCESS" {
		status = pterm.Red(item.Status)
	}

	tableData := pterm.TableData{
		{pterm.Blue("Card"), item.Card},
		{pterm.Blue("Type"), item.Kind},
		{pterm.Blue("Amount"), item.Amount},
		{pterm.Blue("Status"), status},
		{pterm.Blue("Reason"), item.Reason},
	}
	if item.Balance != "" {
		tableData = append(tableData, []string{pterm.Blue("Balance"), item.Balance})
	}
	return tableData
}

func RenderOutcome(item OutcomeItem) error {
	if err := pterm.DefaultTable.WithData(outcomeTableData(item)).Render(); err != nil {
		return err
	}

	if item.Status == "SUCCESS" {
		pterm.Success.Println(item.Reason)
	} else {
		pterm.Error.Println(item.Reason)
	}
	return nil
}
