package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptInput prompts for a generic text input with optional validator.
func PromptInput(title, help string, validator func(string) error) (string, error) {
	var value string

	input := huh.NewInput().
		Title(title).
		Description(help).
		Value(&value)

	if validator != nil {
		input.Validate(validator)
	}

	err := input.Run()
	return value, err
}

// PromptConfirm prompts for yes/no confirmation.
func PromptConfirm(title string, defaultValue bool) (bool, error) {
	confirm := defaultValue

	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&confirm).
		Run()

	return confirm, err
}

// PromptSelect prompts for a selection; keys are shown, values returned.
func PromptSelect(title string, options []huh.Option[string], defaultValue string) (string, error) {
	selected := defaultValue

	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&selected).
		Run()

	return selected, err
}
