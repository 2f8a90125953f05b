package commands

import (
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/adapters/http/dto"
)

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Print one article with its tags",
		Args:  cobra.ExactArgs(1),
		RunE: c.withService(func(cmd *cobra.Command, args []string) error {
			culture, err := c.sourceCulture(cmd.Context())
			if err != nil {
				return err
			}
			view, err := c.svc.Get(cmd.Context(), culture, args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.ToArticleResponse(view))
		}),
	}
}
