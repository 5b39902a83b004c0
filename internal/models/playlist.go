package models

import (
	"fmt"
	"slices"
	"time"

	"github.com/desertthunder/playgen/internal/shared"
)

var _ Model = (*Playlist)(nil)

// Playlist is the immutable result of one filter operation over a catalog.
type Playlist struct {
	id          string
	name        string
	description string
	field       Field
	filters     []string
	songs       []Song
	createdAt   time.Time
}

// NewPlaylist creates a genre-filtered [Playlist] with a generated ID.
//
// filters is kept in caller order for provenance; songs is copied as given.
func NewPlaylist(name, description string, filters []string, songs []Song) *Playlist {
	return NewPlaylistBy(GenreField, name, description, filters, songs)
}

// NewPlaylistBy is [NewPlaylist] for filters matched against field.
func NewPlaylistBy(field Field, name, description string, filters []string, songs []Song) *Playlist {
	return &Playlist{
		id:          shared.GenerateID(),
		name:        name,
		description: description,
		field:       field,
		filters:     slices.Clone(filters),
		songs:       slices.Clone(songs),
		createdAt:   time.Now(),
	}
}

func (p *Playlist) ID() string           { return p.id }
func (p *Playlist) Name() string         { return p.name }
func (p *Playlist) Description() string  { return p.description }
func (p *Playlist) CreatedAt() time.Time { return p.createdAt }
func (p *Playlist) Len() int             { return len(p.songs) }
func (p *Playlist) Field() Field         { return p.field }

// Filters returns the genres the playlist was built from, in caller order.
func (p *Playlist) Filters() []string {
	return slices.Clone(p.filters)
}

// Songs returns a copy of the matched songs.
func (p *Playlist) Songs() []Song {
	return slices.Clone(p.songs)
}

// SongNames returns the names of the matched songs in playlist order.
func (p *Playlist) SongNames() []string {
	names := make([]string, len(p.songs))
	for i, s := range p.songs {
		names[i] = s.Name()
	}
	return names
}

// Validate checks that the playlist is non-empty and that every song matches a filter.
func (p *Playlist) Validate() error {
	if p.name == "" {
		return fmt.Errorf("%w: playlist name is required", shared.ErrInvalidInput)
	}
	if len(p.songs) == 0 {
		return fmt.Errorf("%w: playlist %q has no songs", shared.ErrInvalidInput, p.name)
	}
	for _, s := range p.songs {
		if !s.Matches(p.field, p.filters) {
			return fmt.Errorf("%w: song %q matches no %s in %v", shared.ErrInvalidInput, s.Name(), p.field, p.filters)
		}
	}
	return nil
}
