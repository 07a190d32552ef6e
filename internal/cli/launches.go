package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/pipeline"
	"github.com/ppiankov/launchwatch/internal/render"
)

var (
	launchSearch  string
	launchYear    string
	launchVehicle string
	launchPages   int
	launchHTML    string
	launchJSON    bool
)

// launchesCmd represents the launches command
var launchesCmd = &cobra.Command{
	Use:   "launches [upcoming|past]",
	Short: "List upcoming or past launches",
	Long: `Launches fetches one or more pages of 30 launches, filters them and
prints the result.

Example:
  launchwatch launches
  launchwatch launches past --year 2024 --vehicle Heavy
  launchwatch launches upcoming --search starlink --pages 3 --html upcoming.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLaunches,
}

func init() {
	rootCmd.AddCommand(launchesCmd)

	launchesCmd.Flags().StringVarP(&launchSearch, "search", "s", "", "case-insensitive mission name filter")
	launchesCmd.Flags().StringVar(&launchYear, "year", pipeline.Any, "launch year, or \"all\"")
	launchesCmd.Flags().StringVar(&launchVehicle, "vehicle", pipeline.Any, "vehicle name fragment, or \"all\"")
	launchesCmd.Flags().IntVar(&launchPages, "pages", 1, "number of pages to load")
	launchesCmd.Flags().StringVar(&launchHTML, "html", "", "write the launch cards to this HTML file")
	launchesCmd.Flags().BoolVar(&launchJSON, "json", false, "print the filtered launches as JSON")
}

func runLaunches(cmd *cobra.Command, args []string) error {
	mode := model.ModeUpcoming
	if len(args) == 1 {
		m, err := model.ParseMode(args[0])
		if err != nil {
			return err
		}
		mode = m
	}

	a, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	frags := render.NewFragments()
	acc := a.newAccumulator(cmd.ErrOrStderr(), frags)

	if _, err := acc.Load(ctx, mode); err != nil {
		return fmt.Errorf("load %s launches: %w", mode, err)
	}
	for i := 1; i < launchPages; i++ {
		if _, err := acc.LoadMore(ctx, mode); err != nil {
			if errors.Is(err, pipeline.ErrNoMorePages) {
				break
			}
			return fmt.Errorf("load more %s launches: %w", mode, err)
		}
	}

	view := acc.SetCriteria(mode, pipeline.Criteria{Term: launchSearch, Year: launchYear, Vehicle: launchVehicle})

	if launchHTML != "" {
		fragment, err := frags.Fragment(mode)
		if err != nil {
			return err
		}
		if err := writeHTML(launchHTML, fragment, a.cfg.Output.Pretty); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d launch cards to %s\n", len(view), launchHTML)
	}

	out := cmd.OutOrStdout()
	if launchJSON {
		return writeJSON(out, view)
	}

	printLaunches(out, view, mode)
	if next, ok := frags.Next(); ok {
		if t, ok := next.Scheduled(); ok {
			fmt.Fprintf(out, "Next mission: %s in %s\n", next.Name, render.Countdown(timeNow(), t))
		}
	}
	return nil
}
