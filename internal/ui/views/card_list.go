package views

import (
	"github.com/pterm/pterm"
)

type CardListItem struct {
	Card       string
	HolderName string
	Balance    string
	Created    string
}

type CardListView struct{}

func NewCardListView() *CardListView {
	return &CardListView{}
}

func (v *CardListView) tableData(items []CardListItem) pterm.TableData {
	tableData := pterm.TableData{{"Card", "Holder", "Balance", "Created"}}
	for _, item := range items {
		tableData = append(tableData, []string{
			item.Card,
			item.HolderName,
			pterm.Green(item.Balance),
			item.Created,
		})
	}
	return tableData
}

func (v *CardListView) Render(items []CardListItem) error {
	if len(items) == 0 {
		pterm.Warning.Println("No cards found")
		return nil
	}

	pterm.DefaultSection.Printf("Card List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(v.tableData(items)).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d cards\n", len(items))
	return nil
}
