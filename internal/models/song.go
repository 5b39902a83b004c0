package models

import (
	"slices"

	"github.com/desertthunder/playgen/internal/shared"
)

// Song is one track in a catalog. It is immutable once constructed.
type Song struct {
	name            string
	sourceLink      string
	isLiked         bool
	recentPlayCount int
	genres          []string // sorted, unique
	subgenres       []string // sorted, unique
}

// NewSong builds a [Song]. Duplicate genres collapse; nil genres become an empty set.
//
// No other validation happens here: a song without genres is legal but no filter will ever reach it.
func NewSong(name, sourceLink string, isLiked bool, recentPlayCount int, genres []string) Song {
	return Song{
		name:            name,
		sourceLink:      sourceLink,
		isLiked:         isLiked,
		recentPlayCount: recentPlayCount,
		genres:          shared.UniqueSorted(genres),
		subgenres:       []string{},
	}
}

// WithSubgenres returns a copy of s tagged with subgenres. Duplicates collapse.
func (s Song) WithSubgenres(subgenres []string) Song {
	s.subgenres = shared.UniqueSorted(subgenres)
	return s
}

func (s Song) Name() string         { return s.name }
func (s Song) SourceLink() string   { return s.sourceLink }
func (s Song) IsLiked() bool        { return s.isLiked }
func (s Song) RecentPlayCount() int { return s.recentPlayCount }

// Genres returns a sorted copy of the song's genre tags.
func (s Song) Genres() []string {
	return slices.Clone(s.genres)
}

// Subgenres returns a sorted copy of the song's subgenre tags.
func (s Song) Subgenres() []string {
	return slices.Clone(s.subgenres)
}

// Tags returns a sorted copy of the tag set selected by f.
func (s Song) Tags(f Field) []string {
	if f == SubgenreField {
		return s.Subgenres()
	}
	return s.Genres()
}

// HasGenre reports whether the song is tagged with genre (exact match).
func (s Song) HasGenre(genre string) bool {
	_, found := slices.BinarySearch(s.genres, genre)
	return found
}

// HasSubgenre reports whether the song is tagged with subgenre (exact match).
func (s Song) HasSubgenre(subgenre string) bool {
	_, found := slices.BinarySearch(s.subgenres, subgenre)
	return found
}

// MatchesAny reports whether at least one of filters is among the song's genres.
func (s Song) MatchesAny(filters []string) bool {
	return s.Matches(GenreField, filters)
}

// Matches reports whether at least one of filters is in the tag set selected by field.
func (s Song) Matches(field Field, filters []string) bool {
	tags := s.genres
	if field == SubgenreField {
		tags = s.subgenres
	}
	for _, f := range filters {
		if _, found := slices.BinarySearch(tags, f); found {
			return true
		}
	}
	return false
}
