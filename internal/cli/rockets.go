package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/launchwatch/internal/render"
)

var (
	rocketsHTML string
	rocketsJSON bool
)

// rocketsCmd represents the rockets command
var rocketsCmd = &cobra.Command{
	Use:   "rockets",
	Short: "List launch vehicles",
	Long: `Rockets fetches the vehicle list from the SpaceX API and adds Starship,
which the API does not list.

Example:
  launchwatch rockets
  launchwatch rockets --html rockets.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}

		vehicles, err := a.vehicles.FetchVehicles(cmd.Context())
		if err != nil {
			return fmt.Errorf("fetch vehicles: %w", err)
		}

		if rocketsHTML != "" {
			fragment, err := render.Render(render.VehicleList(vehicles))
			if err != nil {
				return err
			}
			if err := writeHTML(rocketsHTML, fragment, a.cfg.Output.Pretty); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Wrote %d vehicle cards to %s\n", len(vehicles), rocketsHTML)
		}

		if rocketsJSON {
			return writeJSON(cmd.OutOrStdout(), vehicles)
		}
		printVehicles(cmd.OutOrStdout(), vehicles)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rocketsCmd)

	rocketsCmd.Flags().StringVar(&rocketsHTML, "html", "", "write the vehicle cards to this HTML file")
	rocketsCmd.Flags().BoolVar(&rocketsJSON, "json", false, "print the vehicles as JSON")
}
