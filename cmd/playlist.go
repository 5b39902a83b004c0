package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/desertthunder/playgen/internal/catalog"
	"github.com/desertthunder/playgen/internal/formatter"
	"github.com/desertthunder/playgen/internal/models"
	"github.com/desertthunder/playgen/internal/shared"
	"github.com/desertthunder/playgen/internal/tasks"
	"github.com/urfave/cli/v3"
)

// watch prints progress updates until progress is closed. The returned channel closes once every update is written.
func (r *Runner) watch(progress <-chan tasks.ProgressUpdate) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			switch update.Phase {
			case tasks.PopulateCatalog:
				r.writePlain("📥 %s\n", update.Message)
			case tasks.CreatePlaylist:
				r.writePlain("📝 [%d/%d] %s\n", update.Step, update.Total, update.Message)
			case tasks.SkipPlaylist:
				r.writePlain("⚠  [%d/%d] %s\n", update.Step, update.Total, update.Message)
			case tasks.Complete:
				r.writePlain("✓ %s\n", update.Message)
			}
		}
	}()
	return done
}

// runBatch populates the catalog and runs requests, reporting progress on the output.
func (r *Runner) runBatch(ctx context.Context, requests []tasks.Request) (*tasks.BatchResult, error) {
	progress := make(chan tasks.ProgressUpdate, len(requests)+2)
	done := r.watch(progress)

	var result *tasks.BatchResult
	err := r.populate(ctx, progress)
	if err == nil {
		result, err = r.generator.Run(ctx, progress, requests)
	}

	close(progress)
	<-done
	return result, err
}

// Demo populates the catalog, asks for the rock, alt and fake playlists, then prints the catalog and history.
func (r *Runner) Demo(ctx context.Context, cmd *cli.Command) error {
	r.logger.Info("running demo", "source", r.source.Name())

	if _, err := r.runBatch(ctx, tasks.DemoRequests()); err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Catalog")
	if err := formatter.WriteCatalog(r.output, r.catalog.Genres(), r.catalog.Songs()); err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Playlists")
	if err := formatter.WritePlaylists(r.output, r.catalog.Playlists()); err != nil {
		return err
	}

	stats := r.catalog.Stats()
	r.writePlainln("%d songs, %d genres, %d subgenres, %d playlists", stats.Songs, stats.Genres, stats.Subgenres, stats.Playlists)
	return nil
}

// Generate creates one playlist and prints or writes it in the chosen format.
func (r *Runner) Generate(ctx context.Context, cmd *cli.Command) error {
	name := strings.TrimSpace(cmd.String("name"))
	if name == "" {
		return fmt.Errorf("%w: --name", shared.ErrMissingArgument)
	}

	field, filters, err := filterFlags(cmd)
	if err != nil {
		return err
	}

	format := r.format(cmd)
	if err := formatter.CheckFormat(format); err != nil {
		return err
	}

	if err := r.populate(ctx, nil); err != nil {
		return err
	}

	res := r.catalog.CreatePlaylistBy(field, name, filters)
	if res.Status == catalog.NoMatch {
		return r.writePlain("No songs fit [%s] for '%s'\n", strings.Join(filters, ", "), name)
	}

	if path := cmd.String("output"); path != "" {
		if err := formatter.WriteExport(res.Playlist, format, path); err != nil {
			return err
		}
		r.logger.Info("playlist exported", "name", name, "songs", res.Playlist.Len(), "path", path)
		return r.writePlain("✓ Exported '%s' (%d songs) to %s\n", name, res.Playlist.Len(), path)
	}

	data, err := formatter.Export(res.Playlist, format)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// Plan creates every playlist listed in a plan file, optionally exporting each one.
func (r *Runner) Plan(ctx context.Context, cmd *cli.Command) error {
	requests, err := tasks.ReadPlan(cmd.String("file"))
	if err != nil {
		return err
	}

	exportDir := cmd.String("export-dir")
	format := r.format(cmd)
	if err := formatter.CheckFormat(format); err != nil {
		return err
	}
	if exportDir != "" {
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			return fmt.Errorf("failed to create export directory: %w", err)
		}
	}

	r.logger.Info("running plan", "file", cmd.String("file"), "requests", len(requests))

	result, err := r.runBatch(ctx, requests)
	if err != nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Plan Complete!")
	r.writePlain("Created: %d/%d\n", len(result.Created), result.Total)
	for _, req := range result.Skipped {
		r.writePlain("  - skipped %s [%s]\n", req.Name, strings.Join(req.Filters(), ", "))
	}

	if exportDir == "" {
		r.writePlain("\n")
		if err := formatter.WritePlaylists(r.output, result.Created); err != nil {
			return err
		}
	} else {
		used := make(map[string]bool, len(result.Created))
		for _, p := range result.Created {
			name := uniqueFileName(used, exportFileName(p.Name(), format))
			path := filepath.Join(exportDir, name)
			if err := formatter.WriteExport(p, format, path); err != nil {
				return err
			}
			r.writePlain("  → %s\n", path)
		}
	}

	if cmd.IsSet("show") {
		return r.show(int(cmd.Int("show")), format)
	}
	return nil
}

// show prints the playlist at index in the catalog history.
func (r *Runner) show(index int, format string) error {
	p, err := r.catalog.Playlist(index)
	if err != nil {
		return err
	}

	data, err := formatter.Export(p, format)
	if err != nil {
		return err
	}
	r.writePlain("\n")
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// filterFlags reads --genre or --subgenre. Exactly one of them must carry tags.
func filterFlags(cmd *cli.Command) (models.Field, []string, error) {
	genres := shared.CleanTags(cmd.StringSlice("genre"))
	subgenres := shared.CleanTags(cmd.StringSlice("subgenre"))

	switch {
	case len(genres) > 0 && len(subgenres) > 0:
		return models.GenreField, nil, fmt.Errorf("%w: use either --genre or --subgenre", shared.ErrInvalidInput)
	case len(subgenres) > 0:
		return models.SubgenreField, subgenres, nil
	case len(genres) > 0:
		return models.GenreField, genres, nil
	default:
		return models.GenreField, nil, fmt.Errorf("%w: at least one --genre or --subgenre", shared.ErrMissingArgument)
	}
}

// format resolves the --format flag against the configured default.
func (r *Runner) format(cmd *cli.Command) string {
	if f := cmd.String("format"); f != "" {
		return f
	}
	return r.config.Output.Format
}

// exportFileName turns a playlist name into a file name with the extension for format.
func exportFileName(name, format string) string {
	ext := map[string]string{"markdown": "md", "md": "md", "csv": "csv", "json": "json"}[format]
	if ext == "" {
		ext = "txt"
	}

	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(name))

	return slug + "." + ext
}

// uniqueFileName returns name, or name with a numeric suffix when used already holds it, and records the result.
func uniqueFileName(used map[string]bool, name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate := name
	for i := 2; used[candidate]; i++ {
		candidate = fmt.Sprintf("%s-%d%s", base, i, ext)
	}
	used[candidate] = true
	return candidate
}
