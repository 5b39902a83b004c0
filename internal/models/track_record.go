package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/playgen/internal/shared"
)

// TrackRecord is a track as handed over by a source, before it becomes a [Song].
type TrackRecord struct {
	Name            string   `json:"name" toml:"name"`
	Link            string   `json:"link" toml:"link"`
	Liked           bool     `json:"liked" toml:"liked"`
	RecentPlayCount int      `json:"recent_play_count" toml:"recent_play_count"`
	Genres          []string `json:"genres" toml:"genres"`
	Subgenres       []string `json:"subgenres,omitempty" toml:"subgenres,omitempty"`
}

// Validate rejects records that cannot become a usable [Song].
func (r TrackRecord) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", shared.ErrInvalidTrack)
	}
	if r.RecentPlayCount < 0 {
		return fmt.Errorf("%w: %q has negative play count %d", shared.ErrInvalidTrack, r.Name, r.RecentPlayCount)
	}
	if len(shared.CleanTags(r.Genres)) == 0 {
		return fmt.Errorf("%w: %q has no genres", shared.ErrInvalidTrack, r.Name)
	}
	return nil
}

// Song converts the record into a [Song], trimming names, genre and subgenre tags.
func (r TrackRecord) Song() Song {
	return NewSong(strings.TrimSpace(r.Name), r.Link, r.Liked, r.RecentPlayCount, shared.CleanTags(r.Genres)).
		WithSubgenres(shared.CleanTags(r.Subgenres))
}
