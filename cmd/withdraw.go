package cmd

import (
	"github.com/mfarouk/teller/internal/errhandler"
	"github.com/mfarouk/teller/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewWithdrawCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [amount]",
		Short: "Withdraw funds from the account",
		Long: `Withdraw funds from the account.

Withdrawals are legal for Verified accounts only, and may not exceed the
current balance.

Example: teller withdraw 50`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := amountFromArgsOrPrompt(args, "Withdrawal amount:")
			if err != nil {
				return errhandler.HandleError(err)
			}

			rec, err := svc.Withdraw(amount)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Withdrawal of %s%s successful. New balance: %s%s\n",
				svc.Currency(), rec.Amount.StringFixed(2),
				svc.Currency(), rec.Balance.StringFixed(2))
			return nil
		},
	}
}
