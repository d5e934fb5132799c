package cmd

import (
	"github.com/mfarouk/teller/internal/errhandler"
	"github.com/mfarouk/teller/internal/service"
	"github.com/mfarouk/teller/internal/ui/prompts"
	"github.com/mfarouk/teller/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func NewStatusCmd(svc *service.Service) *cobra.Command {
	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show or change the account status",
		Long: `Show the current account status, or change it with "status set".

Status changes are always legal: any status can move to any other. The
status decides which operations are legal:

  Verified   deposit, withdraw and transfer allowed
  Suspended  deposit allowed; withdraw and transfer illegal
  Closed     view only; deposit and withdraw illegal`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			pterm.Info.Printf("Account status: %s\n", views.StatusLabel(svc.Status()))
			return nil
		},
	}

	statusCmd.AddCommand(newStatusSetCmd(svc))

	return statusCmd
}

func newStatusSetCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "set [Verified|Suspended|Closed]",
		Short:        "Change the account status",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw string
			if len(args) == 1 {
				raw = args[0]
			} else {
				selected, err := prompts.PromptStatusSelection(svc.Status())
				if err != nil {
					return errhandler.HandleError(err)
				}
				raw = selected
			}

			status, err := svc.SetStatus(raw)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Account status changed to %s\n", views.StatusLabel(status))
			return nil
		},
	}
}
