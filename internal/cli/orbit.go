package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ppiankov/launchwatch/internal/render"
)

// orbitCmd represents the orbit command
var orbitCmd = &cobra.Command{
	Use:   "orbit [code]",
	Short: "Explain an orbit code",
	Long: `Orbit prints the full name of an orbit code such as LEO or GTO and the
ring it is drawn on. Without a code every known orbit is listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			codes := render.OrbitCodes()
			sort.Strings(codes)
			for _, c := range codes {
				info, _ := render.LookupOrbit(c)
				fmt.Fprintf(out, "%-5s %s\n", info.Abbrev, info.Name)
			}
			return nil
		}

		info, ok := render.LookupOrbit(args[0])
		if !ok {
			return fmt.Errorf("unknown orbit code %q", args[0])
		}
		fmt.Fprintf(out, "%s: %s\n", info.Abbrev, info.Name)
		if info.Ring != render.RingNone {
			fmt.Fprintf(out, "Ring: %s\n", info.Ring)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orbitCmd)
}
