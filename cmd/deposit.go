package cmd

import (
	"github.com/mfarouk/teller/internal/errhandler"
	"github.com/mfarouk/teller/internal/service"
	"github.com/mfarouk/teller/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewDepositCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit [amount]",
		Short: "Deposit funds into the account",
		Long: `Deposit funds into the account.

Deposits are legal for Verified and Suspended accounts and illegal for
Closed accounts.

Example: teller deposit 200`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := amountFromArgsOrPrompt(args, "Deposit amount:")
			if err != nil {
				return errhandler.HandleError(err)
			}

			rec, err := svc.Deposit(amount)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Deposit of %s%s successful. New balance: %s%s\n",
				svc.Currency(), rec.Amount.StringFixed(2),
				svc.Currency(), rec.Balance.StringFixed(2))
			return nil
		},
	}
}

func amountFromArgsOrPrompt(args []string, title string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	return prompts.PromptAmount(title)
}
