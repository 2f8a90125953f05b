package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/app/fanout"
)

type removeOutput struct {
	ID      string   `json:"id"`
	Removed bool     `json:"removed"`
	Errors  []string `json:"errors,omitempty"`
}

func (c *cli) removeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID...",
		Short: "Remove articles and their tags in one culture",
		Args:  cobra.MinimumNArgs(1),
		RunE: c.withService(func(cmd *cobra.Command, ids []string) error {
			culture, err := c.sourceCulture(cmd.Context())
			if err != nil {
				return err
			}

			results := fanout.Run(cmd.Context(), c.workers, ids,
				func(ctx context.Context, id string) (removeOutput, error) {
					res := c.svc.Remove(ctx, culture, id)
					return removeOutput{ID: id, Removed: res.Success, Errors: res.Errors}, res.Err()
				})

			outputs := make([]removeOutput, len(results))
			for i, r := range results {
				outputs[i] = r.Value
				outputs[i].ID = r.Item
			}
			if err := printJSON(cmd.OutOrStdout(), outputs); err != nil {
				return err
			}
			return fanout.Errors(results)
		}),
	}

	cmd.Flags().IntVarP(&c.workers, "workers", "w", defaultWorkers, "articles processed concurrently")
	return cmd
}
