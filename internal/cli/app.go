package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ppiankov/launchwatch/internal/model"
	"github.com/ppiankov/launchwatch/internal/pipeline"
	"github.com/ppiankov/launchwatch/internal/render"
	"github.com/ppiankov/launchwatch/internal/source"
)

var timeNow = time.Now

// app bundles the clients every command works with
type app struct {
	cfg      *model.Config
	logger   zerolog.Logger
	launches *source.LaunchClient
	vehicles *source.VehicleClient
}

func newApp(cfg *model.Config, logger zerolog.Logger) (*app, error) {
	f, err := source.NewFetcherFromConfig(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create fetcher: %w", err)
	}
	return &app{
		cfg:      cfg,
		logger:   logger,
		launches: source.NewLaunchClient(f, cfg.API.LaunchBaseURL, cfg.API.Search, logger),
		vehicles: source.NewVehicleClient(f, cfg.API.VehicleBaseURL, logger),
	}, nil
}

// setup loads the effective config and builds the app for a command
func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return newApp(cfg, newLogger(cmd.ErrOrStderr(), cfg.Output.Verbose))
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("app", "launchwatch").Logger()
}

// newAccumulator wires an accumulator to the given fragments plus stderr progress
func (a *app) newAccumulator(w io.Writer, frags *render.Fragments) *pipeline.Accumulator {
	observers := pipeline.Observers{progress{w: w, verbose: a.cfg.Output.Verbose}}
	if frags != nil {
		observers = append(observers, frags)
	}
	return pipeline.NewAccumulator(a.launches, observers, a.logger)
}

// progress prints pipeline events in verbose mode
type progress struct {
	pipeline.NopObserver
	w       io.Writer
	verbose bool
}

func (p progress) OnLoading(mode model.Mode, loading bool) {
	if p.verbose && loading {
		fmt.Fprintf(p.w, "⚙️  Fetching %s launches...\n", mode)
	}
}

func (p progress) OnResults(mode model.Mode, view []model.Launch) {
	if p.verbose {
		fmt.Fprintf(p.w, "✓ %d %s launches match\n", len(view), mode)
	}
}

func (p progress) OnPagination(mode model.Mode, hasMore bool) {
	if p.verbose && !hasMore {
		fmt.Fprintf(p.w, "✓ All %s launches loaded\n", mode)
	}
}

// writeHTML writes a fragment to path, indented when pretty is set
func writeHTML(path, fragment string, pretty bool) error {
	if pretty {
		fragment = render.Pretty(fragment)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(fragment), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
