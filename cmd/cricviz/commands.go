package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/cricviz/internal/domain/cricketer"
	"github.com/riskibarqy/cricviz/internal/usecase"
	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	var (
		australian bool
		batters    bool
		bowlers    bool
		byMatches  bool
		asJSON     bool
		countries  []string
		roles      []string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List cricketers matching every given filter",
		Example: `  cricviz list --australian --by-matches
  cricviz list --batters --country India --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 0 {
				return fmt.Errorf("%w: --limit must be >= 0", usecase.ErrInvalidInput)
			}

			query := cricketer.All()
			if australian {
				query = query.AustralianPlayers()
			}
			for _, country := range countries {
				query = query.Country(country)
			}
			if batters {
				query = query.Batters()
			}
			if bowlers {
				query = query.Bowlers()
			}
			for _, role := range roles {
				query = query.Role(cricketer.Role(role))
			}
			if byMatches {
				query = query.SortByMatches()
			}
			query = query.Take(limit)

			items, err := c.service().List(cmd.Context(), query)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), cricketerViews(items))
			}
			return writeCricketerTable(cmd.OutOrStdout(), items)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&australian, "australian", false, "only players from Australia")
	flags.BoolVar(&batters, "batters", false, "only players with role Batter")
	flags.BoolVar(&bowlers, "bowlers", false, "only players with role Bowler")
	flags.StringSliceVar(&countries, "country", nil, "only players from this country (repeatable)")
	flags.StringSliceVar(&roles, "role", nil, "only players with this role (repeatable)")
	flags.BoolVar(&byMatches, "by-matches", false, "sort by matches played, most first")
	flags.IntVar(&limit, "limit", 0, "maximum number of rows, 0 for all")
	flags.BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func (c *cli) showCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one cricketer with batting average and strike rate",
		Args:  exactName,
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := c.service().BattingSummary(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), summaryView(summary))
			}
			return writeSummary(cmd.OutOrStdout(), summary)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}

func (c *cli) createCmd() *cobra.Command {
	var country, role string
	cmd := &cobra.Command{
		Use:         "create <name>",
		Annotations: writesRecords,
		Short:       "Create a cricketer with all counters at zero",
		Args:        exactName,
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := c.service().Create(cmd.Context(), usecase.CreateCricketerInput{
				Name:    args[0],
				Country: country,
				Role:    role,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s (%s)\n", created.Name, created.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&country, "country", "", "country the player represents")
	cmd.Flags().StringVar(&role, "role", "", "Batter, Bowler, Wicketkeeper or any other role")
	return cmd
}

func (c *cli) seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "seed",
		Annotations: writesRecords,
		Short:       "Import the classical batters, even if they already exist",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			created, err := c.service().ImportClassicalBatters(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d cricketers\n", len(created))
			return nil
		},
	}
}

func (c *cli) bootstrapCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "bootstrap",
		Annotations: writesRecords,
		Short:       "Import the classical batters only if the store is empty",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			imported, err := c.service().Bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			if !imported {
				fmt.Fprintln(cmd.OutOrStdout(), "store not empty, nothing imported")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "imported classical batters")
			return nil
		},
	}
}

func (c *cli) inningsCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:         "innings",
		Annotations: writesRecords,
		Short:       "Apply an innings scorecard read as JSON",
		Long: `Apply an innings scorecard. The scorecard is read from --file or stdin:

  {"batting": [{"player_name": "Brian Lara", "dismissed": true, "runs": 55,
                "balls_faced": 80, "fours": 5, "sixes": 1}],
   "bowling": [{"player_name": "Shane Warne", "balls_bowled": 120,
                "maidens": 3, "runs_given": 48, "wickets": 4}]}

Batting lines are applied before bowling lines. Processing stops at the first
unknown player; lines applied before it are kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := cmd.InOrStdin()
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("open scorecard: %w", err)
				}
				defer f.Close()
				in = f
			}

			card, err := decodeScorecard(in)
			if err != nil {
				return err
			}
			if err := c.service().UpdateInnings(cmd.Context(), card); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d batting and %d bowling lines\n", len(card.Batting), len(card.Bowling))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "scorecard JSON file, - or empty for stdin")
	return cmd
}

func (c *cli) banCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "ban <name>",
		Annotations: writesRecords,
		Short:       "Delete a cricketer",
		Args:        exactName,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.service().Ban(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "banned %s\n", args[0])
			return nil
		},
	}
}

func decodeScorecard(r io.Reader) (cricketer.Scorecard, error) {
	var card cricketer.Scorecard
	decoder := sonic.ConfigDefault.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&card); err != nil {
		return cricketer.Scorecard{}, fmt.Errorf("%w: invalid scorecard JSON: %v", usecase.ErrInvalidInput, err)
	}
	return card, nil
}
