package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/render"
	"github.com/ppiankov/launchwatch/internal/source"
	"github.com/ppiankov/launchwatch/internal/stats"
)

var (
	statsHTML string
	statsJSON bool
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show launches per year and the success rate",
	Long: `Stats merges the historical launch record through 2024 with the most
recent past launches from the Launch Library. When the live data cannot be
fetched the historical record is shown on its own.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}

		summary := a.summary(cmd.Context(), cmd.ErrOrStderr())

		if statsHTML != "" {
			fragment, err := render.Render(render.StatsTable(summary))
			if err != nil {
				return err
			}
			if err := writeHTML(statsHTML, fragment, a.cfg.Output.Pretty); err != nil {
				return err
			}
		}

		if statsJSON {
			return writeJSON(cmd.OutOrStdout(), summary)
		}
		printStats(cmd.OutOrStdout(), summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsHTML, "html", "", "write the statistics table to this HTML file")
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print the statistics as JSON")
}

// summary computes statistics, falling back to the historical record alone
// when the live request fails
func (a *app) summary(ctx context.Context, w io.Writer) stats.Summary {
	live, err := a.launches.FetchPage(ctx, model.ModePast, 0, stats.LiveSampleSize)
	if err != nil {
		a.logger.Warn().Err(err).Msg("live launch data unavailable")
		fmt.Fprintf(w, "✗ %s Showing the historical record only.\n", source.UserMessage(err))
		return stats.Compute(nil)
	}
	return stats.Compute(live)
}
