package commands

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/adapters/http/dto"
)

func (c *cli) localesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List configured locales",
		Args:  cobra.NoArgs,
		RunE: c.withService(func(cmd *cobra.Command, _ []string) error {
			return printJSON(cmd.OutOrStdout(), dto.ToLocaleListResponse(c.svc.Locales(cmd.Context())))
		}),
	}
}
