package main

import (
	"context"
	"strings"

	"github.com/desertthunder/playgen/internal/formatter"
	"github.com/desertthunder/playgen/internal/models"
	"github.com/desertthunder/playgen/internal/shared"
	"github.com/urfave/cli/v3"
)

// Genres prints the genre index of the populated catalog.
func (r *Runner) Genres(ctx context.Context, cmd *cli.Command) error {
	if err := r.populate(ctx, nil); err != nil {
		return err
	}
	return r.writeIndex(r.catalog.Genres(), cmd.Bool("json"))
}

// Subgenres prints the subgenre index of the populated catalog.
func (r *Runner) Subgenres(ctx context.Context, cmd *cli.Command) error {
	if err := r.populate(ctx, nil); err != nil {
		return err
	}
	return r.writeIndex(r.catalog.Subgenres(), cmd.Bool("json"))
}

func (r *Runner) writeIndex(tags []string, asJSON bool) error {
	if asJSON {
		return r.writeJSON(tags, false)
	}

	for _, tag := range tags {
		if err := r.writePlain("%s\n", tag); err != nil {
			return err
		}
	}
	return nil
}

// Songs prints catalog songs. Each of --genre and --subgenre, when given, narrows the listing.
func (r *Runner) Songs(ctx context.Context, cmd *cli.Command) error {
	if err := r.populate(ctx, nil); err != nil {
		return err
	}

	songs := r.catalog.Songs()
	songs = filterSongs(songs, models.GenreField, shared.CleanTags(cmd.StringSlice("genre")))
	songs = filterSongs(songs, models.SubgenreField, shared.CleanTags(cmd.StringSlice("subgenre")))

	if cmd.Bool("json") {
		views := make([]formatter.SongView, len(songs))
		for i, s := range songs {
			views[i] = formatter.NewSongView(s)
		}
		return r.writeJSON(views, cmd.Bool("pretty"))
	}

	for _, s := range songs {
		liked := ""
		if s.IsLiked() {
			liked = " ♥"
		}
		if err := r.writePlain("Song: %s, with: %s (plays: %d)%s\n", s.Name(), strings.Join(s.Genres(), ", "), s.RecentPlayCount(), liked); err != nil {
			return err
		}
	}
	return nil
}

// filterSongs keeps songs matching any of filters on field. No filters keeps everything.
func filterSongs(songs []models.Song, field models.Field, filters []string) []models.Song {
	if len(filters) == 0 {
		return songs
	}

	matched := make([]models.Song, 0, len(songs))
	for _, s := range songs {
		if s.Matches(field, filters) {
			matched = append(matched, s)
		}
	}
	return matched
}
