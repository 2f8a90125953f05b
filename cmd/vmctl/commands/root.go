// Package commands implements the vmctl command tree.
package commands

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

const defaultWorkers = 4

// Connector opens an ArticleService for profile. The returned function
// releases whatever the service holds.
type Connector func(ctx context.Context, profile, configDir string) (ports.ArticleService, func() error, error)

type cli struct {
	connect   Connector
	profile   string
	configDir string
	culture   string
	workers   int

	svc ports.ArticleService
}

// Execute runs vmctl against the database described by the loaded config.
func Execute() error {
	return NewRootCommand(Connect).Execute()
}

// NewRootCommand builds the command tree. connect is called once by each
// subcommand that talks to the service.
func NewRootCommand(connect Connector) *cobra.Command {
	c := &cli{connect: connect}

	root := &cobra.Command{
		Use:          "vmctl",
		Short:        "Inspect, clone and remove localized articles",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&c.profile, "profile", "", "config profile (default $APP_PROFILE)")
	root.PersistentFlags().StringVar(&c.configDir, "config-dir", "configs", "directory holding base.yaml and profile files")
	root.PersistentFlags().StringVarP(&c.culture, "culture", "c", "", "source culture (default: the configured default locale)")

	root.AddCommand(c.localesCmd(), c.getCmd(), c.cloneCmd(), c.removeCmd())
	return root
}

// withService connects before fn runs and releases the service afterwards,
// whether or not fn fails.
func (c *cli) withService(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		if c.profile == "" {
			c.profile = os.Getenv("APP_PROFILE")
		}
		if c.profile == "" {
			return errors.New("--profile or APP_PROFILE is required (e.g. local, dev, qa, prod)")
		}

		svc, release, err := c.connect(cmd.Context(), c.profile, c.configDir)
		if err != nil {
			return err
		}
		c.svc = svc
		defer func() {
			err = errors.Join(err, release())
		}()

		return fn(cmd, args)
	}
}

// sourceCulture resolves --culture, falling back to the default locale.
func (c *cli) sourceCulture(ctx context.Context) (string, error) {
	if c.culture != "" {
		return c.culture, nil
	}
	for _, l := range c.svc.Locales(ctx) {
		if l.IsDefault {
			return l.Code, nil
		}
	}
	return "", errors.New("--culture is required when no default locale is configured")
}
