package views

import (
	"fmt"

	"github.com/mfarouk/teller/internal/account"
	"github.com/pterm/pterm"
)

type SummaryItem struct {
	Profile  account.Profile
	Balance  string
	Currency string
	Status   account.Status
}

// RenderSummary prints the "My Account" panel.
func RenderSummary(item SummaryItem) error {
	pterm.DefaultSection.Println("My Account")

	data := pterm.TableData{
		{"Client Name", item.Profile.Owner},
		{"Account Number", item.Profile.Number},
		{"Account Type", item.Profile.AccountType},
		{"Balance", fmt.Sprintf("%s%s", item.Currency, item.Balance)},
		{"Status", StatusLabel(item.Status)},
	}

	if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
		return err
	}

	switch item.Status {
	case account.StatusSuspended:
		pterm.Warning.Println("Account suspended. Withdraw and Transfer are illegal actions. Deposit allowed.")
	case account.StatusClosed:
		pterm.Warning.Println("Account closed. Deposit and Withdraw are illegal actions. View only.")
	}
	return nil
}
