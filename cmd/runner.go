package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playgen/internal/catalog"
	"github.com/desertthunder/playgen/internal/shared"
	"github.com/desertthunder/playgen/internal/sources"
	"github.com/desertthunder/playgen/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	source     catalog.Source
	catalog    *catalog.Catalog
	generator  *tasks.Generator
	logger     *log.Logger
	output     io.Writer
	fixed      catalog.Source // source injected through RunnerOpts, never replaced by config
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Source     catalog.Source
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	r := &Runner{
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		fixed:      opts.Source,
	}
	r.configure(opts.Config)
	return r
}

// configure rebuilds the catalog, its source and the generator from config.
func (r *Runner) configure(config *shared.Config) {
	r.config = config

	opts := []catalog.Option{
		catalog.WithLogger(shared.WithLogger(r.logger, "component", "catalog")),
		catalog.WithDescription(config.Catalog.Description),
		catalog.WithMaxSongs(config.Catalog.MaxSongs),
	}
	if config.Catalog.Shuffle {
		seed := uint64(time.Now().UnixNano())
		opts = append(opts, catalog.WithShuffle(rand.New(rand.NewPCG(seed, seed>>1))))
	}

	r.catalog = catalog.New(config.Catalog.SourceLink, opts...)
	r.generator = tasks.NewGenerator(r.catalog)

	if r.fixed != nil {
		r.source = r.fixed
	} else {
		r.source = sources.New(config.Library.Path)
	}
}

// Before applies the global flags: it loads the config file, overrides the library path and sets the log level.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("verbose") {
		shared.SetLogLevel(r.logger, log.DebugLevel)
	}

	config := r.config
	path := cmd.String("config")
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if config, err = shared.LoadConfig(path); err != nil {
				return ctx, err
			}
			r.logger.Debug("loaded config", "path", path)
		} else if cmd.IsSet("config") {
			return ctx, fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
		}
		r.configPath = path
	}

	if lib := cmd.String("library"); lib != "" {
		config.Library.Path = lib
	}

	r.configure(config)
	return ctx, nil
}

// populate fills the catalog from the configured source.
func (r *Runner) populate(ctx context.Context, progress chan<- tasks.ProgressUpdate) error {
	n, err := r.generator.Populate(ctx, progress, r.source)
	if err != nil {
		return err
	}
	r.logger.Debug("catalog populated", "source", r.source.Name(), "songs", n)
	return nil
}

// app builds the root command.
func (r *Runner) app() *cli.Command {
	return &cli.Command{
		Name:      "playgen",
		Usage:     "Generate playlists from a song catalog by genre",
		Version:   "0.1.0",
		Writer:    r.output,
		ErrWriter: r.output,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "library",
				Aliases: []string{"l"},
				Usage:   "Path to a TOML or JSON library export (default: built-in fixture)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before:   r.Before,
		Commands: r.register(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		demoCommand, genresCommand, subgenresCommand, songsCommand, generateCommand, planCommand, tuiCommand, configCommand, libraryCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
