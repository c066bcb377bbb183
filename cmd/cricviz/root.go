package main

import (
	"context"
	"fmt"

	"github.com/riskibarqy/cricviz/internal/app"
	"github.com/riskibarqy/cricviz/internal/platform/logging"
	"github.com/riskibarqy/cricviz/internal/usecase"
	"github.com/spf13/cobra"
)

type openAppFunc func(ctx context.Context) (*app.App, error)

// annotationWrites marks commands that change stored records.
const annotationWrites = "cricviz/writes"

var writesRecords = map[string]string{annotationWrites: "true"}

// cli opens the application lazily so that help and flag errors never touch storage.
type cli struct {
	open   openAppFunc
	app    *app.App
	logger *logging.Logger
}

func newCLI(open openAppFunc, logger *logging.Logger) *cli {
	if logger == nil {
		logger = logging.Default()
	}
	return &cli{open: open, logger: logger}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cricviz",
		Short: "Cricketer career statistics store",
		Long: `cricviz keeps cumulative career statistics for cricketers.

Records are looked up by exact name. Scorecards update career totals,
ban removes a player, and seed imports five classical batters.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c.app == nil {
				a, err := c.open(cmd.Context())
				if err != nil {
					return fmt.Errorf("open app: %w", err)
				}
				c.app = a
			}
			if c.app.Ephemeral && cmd.Annotations[annotationWrites] == "true" {
				c.logger.WarnContext(cmd.Context(), "changes are discarded on exit, set STORE_BACKEND=postgres to keep them",
					"command", cmd.Name(),
					"store_backend", "memory",
				)
			}
			return nil
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	})

	root.AddCommand(
		c.listCmd(),
		c.showCmd(),
		c.createCmd(),
		c.seedCmd(),
		c.bootstrapCmd(),
		c.inningsCmd(),
		c.banCmd(),
	)
	return root
}

func (c *cli) service() *usecase.CricketerService {
	return c.app.Cricketers
}

func (c *cli) close() error {
	if c.app == nil {
		return nil
	}
	err := c.app.Close()
	c.app = nil
	return err
}

// exactName accepts one non-empty positional argument.
func exactName(cmd *cobra.Command, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return fmt.Errorf("%w: %s requires exactly one player name", usecase.ErrInvalidInput, cmd.Name())
	}
	return nil
}
