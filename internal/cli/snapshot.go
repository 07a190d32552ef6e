package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/render"
	"github.com/ppiankov/launchwatch/internal/worker"
)

var snapshotConcurrency int

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot [dir]",
	Short: "Write every HTML fragment to a directory",
	Long: `Snapshot loads the first page of upcoming and past launches, the vehicle
list and the statistics in parallel and writes one HTML fragment for each:

  upcoming.html  next.html  past.html  rockets.html  stats.html

Example:
  launchwatch snapshot ./site --concurrency 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "launchwatch-site"
		if len(args) == 1 {
			dir = args[0]
		}

		a, err := setup(cmd)
		if err != nil {
			return err
		}

		results := worker.RunAll(cmd.Context(), snapshotConcurrency, a.snapshotTasks(cmd, dir)...)
		for _, r := range results {
			if r.Err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %v\n", r.Name, r.Err)
				continue
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ %s (%s)\n", r.Name, r.Elapsed.Round(time.Millisecond))
		}
		return worker.Errors(results)
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().IntVar(&snapshotConcurrency, "concurrency", 4, "number of parallel fetches")
}

func (a *app) snapshotTasks(cmd *cobra.Command, dir string) []worker.Task {
	pretty := a.cfg.Output.Pretty
	frags := render.NewFragments()
	acc := a.newAccumulator(cmd.ErrOrStderr(), frags)

	loadMode := func(mode model.Mode) func(ctx context.Context) error {
		return func(ctx context.Context) error {
			// The fragment is written even on failure so the page shows the alert.
			_, loadErr := acc.Load(ctx, mode)
			fragment, err := frags.Fragment(mode)
			if err != nil {
				return err
			}
			if err := writeHTML(filepath.Join(dir, string(mode)+".html"), fragment, pretty); err != nil {
				return err
			}
			if mode == model.ModeUpcoming && loadErr == nil {
				banner, err := frags.NextLaunch()
				if err != nil {
					return err
				}
				if err := writeHTML(filepath.Join(dir, "next.html"), banner, pretty); err != nil {
					return err
				}
			}
			return loadErr
		}
	}

	return []worker.Task{
		{Name: "upcoming launches", Run: loadMode(model.ModeUpcoming)},
		{Name: "past launches", Run: loadMode(model.ModePast)},
		{Name: "rockets", Run: func(ctx context.Context) error {
			vehicles, err := a.vehicles.FetchVehicles(ctx)
			if err != nil {
				return err
			}
			fragment, err := render.Render(render.VehicleList(vehicles))
			if err != nil {
				return err
			}
			return writeHTML(filepath.Join(dir, "rockets.html"), fragment, pretty)
		}},
		{Name: "stats", Run: func(ctx context.Context) error {
			fragment, err := render.Render(render.StatsTable(a.summary(ctx, cmd.ErrOrStderr())))
			if err != nil {
				return err
			}
			return writeHTML(filepath.Join(dir, "stats.html"), fragment, pretty)
		}},
	}
}
