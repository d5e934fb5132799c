package cmd

import (
	"fmt"

	"github.com/mfarouk/teller/internal/errhandler"
	"github.com/mfarouk/teller/internal/service"
	"github.com/mfarouk/teller/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	transferTo     string
	transferAmount string
)

func NewTransferCmd(svc *service.Service) *cobra.Command {
	transferCmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer funds to a known target account",
		Long: `Transfer funds to one of the known target accounts.

The transfer runs in two phases: first a target is selected, then the
transfer is confirmed. Transfers are legal for Verified accounts only, and
the status is checked again at confirmation time.

Example: teller transfer --to 789012 --amount 300`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("to") || cmd.Flags().Changed("amount") {
				return runTransferFlags(svc, cmd)
			}
			return runTransferInteractive(svc)
		},
	}

	transferCmd.Flags().StringVar(&transferTo, "to", "", "target account id")
	transferCmd.Flags().StringVar(&transferAmount, "amount", "", "amount to transfer")

	return transferCmd
}

func runTransferFlags(svc *service.Service, cmd *cobra.Command) error {
	if transferTo == "" || transferAmount == "" {
		return fmt.Errorf("both --to and --amount are required")
	}

	if err := svc.BeginTransfer(); err != nil {
		return err
	}

	rec, err := svc.ConfirmTransfer(transferTo, transferAmount)
	if err != nil {
		svc.CancelTransfer()
		return err
	}

	printTransferResult(svc, rec.TargetName, rec.TargetID, rec.Amount.StringFixed(2), rec.Balance.StringFixed(2))
	return nil
}

func runTransferInteractive(svc *service.Service) error {
	// Phase 1: opening the session has no financial side effect; it only
	// makes target selection the expected next step.
	if err := svc.BeginTransfer(); err != nil {
		return err
	}

	targetID, err := prompts.PromptTargetSelection(svc.Targets())
	if err != nil {
		svc.CancelTransfer()
		return errhandler.HandleError(err)
	}

	amount, err := prompts.PromptAmount("Transfer amount:")
	if err != nil {
		svc.CancelTransfer()
		return errhandler.HandleError(err)
	}

	targetName := targetID
	for _, t := range svc.Targets() {
		if t.ID == targetID {
			targetName = t.Name
			break
		}
	}

	confirmed, err := prompts.PromptConfirmTransfer(targetName, targetID, amount, svc.Currency())
	if err != nil {
		svc.CancelTransfer()
		return errhandler.HandleError(err)
	}
	if !confirmed {
		svc.CancelTransfer()
		pterm.Warning.Println("Transfer cancelled")
		return nil
	}

	// Phase 2: status legality is re-checked inside the confirmation.
	rec, err := svc.ConfirmTransfer(targetID, amount)
	if err != nil {
		svc.CancelTransfer()
		return err
	}

	printTransferResult(svc, rec.TargetName, rec.TargetID, rec.Amount.StringFixed(2), rec.Balance.StringFixed(2))
	return nil
}

func printTransferResult(svc *service.Service, targetName, targetID, amount, balance string) {
	pterm.Success.Printf("Transfer of %s%s to %s (%s) completed. New balance: %s%s\n",
		svc.Currency(), amount, targetName, targetID, svc.Currency(), balance)
}
