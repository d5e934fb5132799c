package cmd

import (
	"github.com/mfarouk/teller/internal/account"
	"github.com/mfarouk/teller/internal/service"
	"github.com/mfarouk/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

var (
	oldestFirst    bool
	statementLimit int
)

func NewStatementCmd(svc *service.Service) *cobra.Command {
	statementCmd := &cobra.Command{
		Use:   "statement",
		Short: "Show the transaction history",
		Long: `Show the full transaction history with the current balance and status.

Viewing the statement is always legal, regardless of account status.
Records are shown most recent first unless --oldest-first is given; the
order is keyed by sequence number, so it is deterministic. With --limit
only the first n records are shown, while the summary footer keeps the
full record count and current balance.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			order := account.NewestFirst
			if oldestFirst {
				order = account.OldestFirst
			}

			stmt := views.Truncate(svc.Statement(order), statementLimit)
			return views.RenderStatement(stmt, svc.Currency())
		},
	}

	statementCmd.Flags().BoolVar(&oldestFirst, "oldest-first", false, "show oldest records first")
	statementCmd.Flags().IntVarP(&statementLimit, "limit", "n", 0, "maximum number of records to show (0 shows all)")

	return statementCmd
}
