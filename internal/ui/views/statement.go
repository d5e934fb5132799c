package views

import (
	"fmt"

	"github.com/mfarouk/teller/internal/account"
	"github.com/pterm/pterm"
)

const dateLayout = "Jan 2, 2006 3:04 PM"

// RenderStatement prints the transaction history table plus the summary
// footer (record count, current balance, status).
func RenderStatement(stmt account.StatementView, currency string) error {
	if stmt.Count == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println("Transaction History")

	tableData := pterm.TableData{
		{"#", "Date & Time", "Type", "Amount", "Balance"},
	}

	for _, rec := range stmt.Records {
		amount := fmt.Sprintf("+%s%s", currency, rec.Amount.StringFixed(2))
		coloredAmount := pterm.Green(amount)
		if rec.Kind.Outgoing() {
			amount = fmt.Sprintf("-%s%s", currency, rec.Amount.StringFixed(2))
			coloredAmount = pterm.Red(amount)
		}

		tableData = append(tableData, []string{
			fmt.Sprintf("%d", rec.Seq),
			rec.Time.Format(dateLayout),
			KindLabel(rec),
			coloredAmount,
			fmt.Sprintf("%s%s", currency, rec.Balance.StringFixed(2)),
		})
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total Transactions: %d\n", stmt.Count)
	pterm.Info.Printf("Current Balance: %s%s\n", currency, stmt.Balance.StringFixed(2))
	pterm.Info.Printf("Account Status: %s\n", StatusLabel(stmt.Status))
	return nil
}

// Truncate caps the rendered records at limit. The summary footer keeps the
// full totals: the count and balance describe the account, not the page.
// A limit of zero or less keeps every record.
func Truncate(stmt account.StatementView, limit int) account.StatementView {
	if limit > 0 && limit < len(stmt.Records) {
		stmt.Records = stmt.Records[:limit]
	}
	return stmt
}

// KindLabel is the display name of a record's kind; transfers name their
// target.
func KindLabel(rec account.Record) string {
	switch rec.Kind {
	case account.KindInitialBalance:
		return "Initial Balance"
	case account.KindTransferOut:
		return fmt.Sprintf("Transfer to %s", rec.TargetName)
	default:
		return string(rec.Kind)
	}
}

// StatusLabel colors a status for terminal display.
func StatusLabel(status account.Status) string {
	switch status {
	case account.StatusVerified:
		return pterm.Green(string(status))
	case account.StatusSuspended:
		return pterm.Yellow(string(status))
	case account.StatusClosed:
		return pterm.Red(string(status))
	default:
		return string(status)
	}
}
