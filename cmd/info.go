package cmd

import (
	"github.com/mfarouk/teller/internal/service"
	"github.com/mfarouk/teller/internal/ui/views"
	"github.com/spf13/cobra"
)

func NewInfoCmd(svc *service.Service) *cobra.Command {
	return &cobra.Command{
		Use:          "info",
		Short:        "Display the account summary",
		Long:         `Display the account owner, number, type, balance and status.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return views.RenderSummary(views.SummaryItem{
				Profile:  svc.Profile(),
				Balance:  svc.Balance().StringFixed(2),
				Currency: svc.Currency(),
				Status:   svc.Status(),
			})
		},
	}
}
