package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/pipeline"
	"github.com/ppiankov/launchwatch/internal/source"
)

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:   "browse [upcoming|past]",
	Short: "Browse launches interactively",
	Long: `Browse loads the first page of launches and reads commands from stdin:

  search <text>      filter by mission name (empty clears)
  year <yyyy|all>    filter by year
  vehicle <name|all> filter by vehicle
  more               load the next page
  reload             start over from the first page, bypassing the cache
  mode <upcoming|past>
  years              list the years present in the loaded launches
  quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		acc := a.newAccumulator(cmd.ErrOrStderr(), nil)
		return browse(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), acc, mode)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

// browse runs the command loop until quit or end of input. Fetch failures are
// printed and the session continues.
func browse(ctx context.Context, in io.Reader, out io.Writer, acc *pipeline.Accumulator, mode model.Mode) error {
	load := func(ctx context.Context) {
		if _, err := acc.Load(ctx, mode); err != nil {
			fmt.Fprintf(out, "✗ %s\n", source.UserMessage(err))
			return
		}
		printLaunches(out, acc.View(mode), mode)
	}
	load(ctx)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", mode)
		if !scanner.Scan() {
			break
		}
		verb, arg, _ := strings.Cut(strings.TrimSpace(scanner.Text()), " ")
		arg = strings.TrimSpace(arg)

		switch verb {
		case "":
		case "quit", "exit", "q":
			return nil
		case "search":
			c := acc.Criteria(mode)
			c.Term = arg
			printLaunches(out, acc.SetCriteria(mode, c), mode)
		case "year":
			c := acc.Criteria(mode)
			c.Year = arg
			printLaunches(out, acc.SetCriteria(mode, c), mode)
		case "vehicle":
			c := acc.Criteria(mode)
			c.Vehicle = arg
			printLaunches(out, acc.SetCriteria(mode, c), mode)
		case "more":
			_, err := acc.LoadMore(ctx, mode)
			switch {
			case errors.Is(err, pipeline.ErrNoMorePages):
				fmt.Fprintln(out, "No more launches to load.")
			case err != nil:
				fmt.Fprintf(out, "✗ %s\n", source.UserMessage(err))
			default:
				printLaunches(out, acc.View(mode), mode)
			}
		case "reload":
			load(source.Refresh(ctx))
		case "mode":
			m, err := model.ParseMode(arg)
			if err != nil {
				fmt.Fprintf(out, "✗ %v\n", err)
				continue
			}
			mode = m
			if acc.Cursor(mode).State == pipeline.StateIdle {
				load(ctx)
			} else {
				printLaunches(out, acc.View(mode), mode)
			}
		case "years":
			fmt.Fprintln(out, strings.Join(pipeline.Years(acc.Dataset(mode)), " "))
		default:
			fmt.Fprintf(out, "✗ unknown command %q\n", verb)
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
