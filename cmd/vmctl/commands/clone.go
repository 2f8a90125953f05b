package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/app/fanout"
)

type cloneOutput struct {
	ID     string                `json:"id"`
	Clones []dto.ArticleResponse `json:"clones,omitempty"`
	Errors []string              `json:"errors,omitempty"`
}

func (c *cli) cloneCmd() *cobra.Command {
	var targets []string

	cmd := &cobra.Command{
		Use:   "clone ID...",
		Short: "Clone articles into other locales",
		Long: "Clone each article into the --to cultures, or into every other supported " +
			"locale when --to is omitted. Each article is cloned in its own transaction; " +
			"locales that already hold the article are skipped.",
		Args: cobra.MinimumNArgs(1),
		RunE: c.withService(func(cmd *cobra.Command, ids []string) error {
			culture, err := c.sourceCulture(cmd.Context())
			if err != nil {
				return err
			}

			results := fanout.Run(cmd.Context(), c.workers, ids,
				func(ctx context.Context, id string) (cloneOutput, error) {
					res := c.svc.Clone(ctx, culture, id, targets)
					out := cloneOutput{ID: id, Errors: res.Errors}
					if res.Success {
						out.Clones = dto.ToCloneResponse(res.Payload).Articles
					}
					return out, res.Err()
				})

			outputs := make([]cloneOutput, len(results))
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

	cmd.Flags().StringSliceVar(&targets, "to", nil, "target cultures (default: all other supported locales)")
	cmd.Flags().IntVarP(&c.workers, "workers", "w", defaultWorkers, "articles processed concurrently")
	return cmd
}
