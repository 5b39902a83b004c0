package main

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/playgen/internal/shared"
	"github.com/desertthunder/playgen/internal/sources"
	"github.com/urfave/cli/v3"
)

// ConfigInit writes the example configuration to --path, or to the --config path when unset.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")
	if path == "" {
		path = r.configPath
	}
	if path == "" {
		return fmt.Errorf("%w: --path", shared.ErrMissingArgument)
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Config written to %s\n", path)
}

// ConfigShow prints the effective configuration as TOML.
func (r *Runner) ConfigShow(ctx context.Context, cmd *cli.Command) error {
	if err := toml.NewEncoder(r.output).Encode(r.config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// LibraryInit writes the built-in sample songs as a library file that --library can read back.
func (r *Runner) LibraryInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	tracks, err := sources.NewFixture().Tracks(ctx, r.catalog.SourceLink())
	if err != nil {
		return err
	}

	lib := &sources.Library{Account: r.catalog.SourceLink(), Tracks: tracks}
	if err := sources.WriteLibrary(path, lib); err != nil {
		return err
	}

	r.logger.Info("library written", "path", path, "tracks", len(tracks))
	r.writePlain("✓ Library written to %s (%d tracks)\n", path, len(tracks))
	r.writePlainln("Next steps:")
	r.writePlain("1. Edit the tracks in %s\n", path)
	r.writePlain("2. Run 'playgen --library %s genres' to check it\n", path)
	return nil
}

// LibraryCheck populates the catalog from the configured source and reports what it holds.
func (r *Runner) LibraryCheck(ctx context.Context, cmd *cli.Command) error {
	if err := r.populate(ctx, nil); err != nil {
		return err
	}

	stats := r.catalog.Stats()
	return r.writePlain("✓ %s: %d songs across %d genres\n", r.source.Name(), stats.Songs, stats.Genres)
}
