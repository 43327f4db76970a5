package views

import "github.com/pterm/pterm"

func RenderBalance(card, balance string) error {
	tableData := pterm.TableData{
		{pterm.Blue("Card"), card},
		{pterm.Blue("Balance"), pterm.Green(balance)},
	}
	return pterm.DefaultTable.WithData(tableData).Render()
}
