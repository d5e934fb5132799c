package prompts

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/mfarouk/teller/internal/account"
	"github.com/mfarouk/teller/internal/validation"
)

// PromptAmount asks for a transaction amount and validates its shape inline.
func PromptAmount(title string) (string, error) {
	return PromptInput(title, "e.g. 150 or 150.50", validation.AmountValidator)
}

// PromptTargetSelection lets the user pick a transfer target from the
// directory. Returns the selected target id.
func PromptTargetSelection(targets []account.Target) (string, error) {
	if len(targets) == 0 {
		return "", fmt.Errorf("no transfer targets available")
	}

	opts := make([]huh.Option[string], 0, len(targets))
	for _, t := range targets {
		label := fmt.Sprintf("%s - %s (%s)", t.Name, t.ID, t.AccountType)
		opts = append(opts, huh.NewOption(label, t.ID))
	}

	return PromptSelect("Select target account for the transfer:", opts, targets[0].ID)
}

// PromptStatusSelection lets the user pick the new account status.
func PromptStatusSelection(current account.Status) (string, error) {
	statuses := account.Statuses()
	opts := make([]huh.Option[string], 0, len(statuses))
	for _, s := range statuses {
		label := string(s)
		if s == current {
			label += " (current)"
		}
		opts = append(opts, huh.NewOption(label, string(s)))
	}

	return PromptSelect("Choose the new account status:", opts, string(current))
}

// PromptConfirmTransfer is the phase-two confirmation gate.
func PromptConfirmTransfer(targetName, targetID, amount, currency string) (bool, error) {
	title := fmt.Sprintf("Transfer %s%s to %s (%s)?", currency, amount, targetName, targetID)
	return PromptConfirm(title, false)
}
