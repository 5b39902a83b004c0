package models

import (
	"errors"
	"reflect"
	"testing"

	"github.com/desertthunder/playgen/internal/shared"
)

func TestSong(t *testing.T) {
	t.Run("accessors", func(t *testing.T) {
		s := NewSong("song1", "songLink", true, 50, []string{"Rock", "Indie"})

		if s.Name() != "song1" {
			t.Errorf("expected name song1, got %s", s.Name())
		}
		if s.SourceLink() != "songLink" {
			t.Errorf("expected link songLink, got %s", s.SourceLink())
		}
		if !s.IsLiked() {
			t.Error("expected song to be liked")
		}
		if s.RecentPlayCount() != 50 {
			t.Errorf("expected play count 50, got %d", s.RecentPlayCount())
		}
		if !reflect.DeepEqual(s.Genres(), []string{"Indie", "Rock"}) {
			t.Errorf("expected sorted genres, got %v", s.Genres())
		}
	})

	t.Run("duplicate genres collapse", func(t *testing.T) {
		s := NewSong("song", "", false, 0, []string{"Rock", "Rock", "Rap"})
		if got := s.Genres(); len(got) != 2 {
			t.Errorf("expected 2 genres, got %v", got)
		}
	})

	t.Run("nil genres are never nil", func(t *testing.T) {
		s := NewSong("song", "", false, 0, nil)
		if s.Genres() == nil {
			t.Error("expected empty, non-nil genres")
		}
		if s.MatchesAny([]string{"Rock"}) {
			t.Error("song without genres must not match")
		}
	})

	t.Run("Genres returns a copy", func(t *testing.T) {
		s := NewSong("song", "", false, 0, []string{"Rock"})
		g := s.Genres()
		g[0] = "Jazz"
		if !s.HasGenre("Rock") || s.HasGenre("Jazz") {
			t.Error("mutating the returned slice must not affect the song")
		}
	})

	t.Run("MatchesAny", func(t *testing.T) {
		s := NewSong("song", "", false, 0, []string{"Rock", "Alternative"})

		tc := []struct {
			name    string
			filters []string
			want    bool
		}{
			{name: "single hit", filters: []string{"Rock"}, want: true},
			{name: "any of several", filters: []string{"Jazz", "Alternative"}, want: true},
			{name: "miss", filters: []string{"FakeGenre"}, want: false},
			{name: "case sensitive", filters: []string{"rock"}, want: false},
			{name: "empty filters", filters: nil, want: false},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				if got := s.MatchesAny(tt.filters); got != tt.want {
					t.Errorf("MatchesAny(%v) = %v, want %v", tt.filters, got, tt.want)
				}
			})
		}
	})
}

func TestPlaylist(t *testing.T) {
	songs := []Song{
		NewSong("song1", "songLink", true, 50, []string{"Rock", "Indie"}),
		NewSong("song2", "songLink", false, 20, []string{"Rock", "Alternative"}),
	}

	t.Run("NewPlaylist", func(t *testing.T) {
		filters := []string{"Rock"}
		p := NewPlaylist("rock playlist", "desc", filters, songs)

		if p.ID() == "" {
			t.Error("expected generated ID")
		}
		if p.CreatedAt().IsZero() {
			t.Error("expected creation timestamp")
		}
		if p.Name() != "rock playlist" || p.Description() != "desc" {
			t.Errorf("unexpected name/description: %s/%s", p.Name(), p.Description())
		}
		if p.Len() != 2 {
			t.Errorf("expected 2 songs, got %d", p.Len())
		}
		if !reflect.DeepEqual(p.SongNames(), []string{"song1", "song2"}) {
			t.Errorf("unexpected song names %v", p.SongNames())
		}

		filters[0] = "Jazz"
		if p.Filters()[0] != "Rock" {
			t.Error("playlist filters must not alias caller slice")
		}
	})

	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name     string
			playlist *Playlist
			wantErr  bool
		}{
			{name: "valid", playlist: NewPlaylist("rock", "desc", []string{"Rock"}, songs)},
			{name: "missing name", playlist: NewPlaylist("", "desc", []string{"Rock"}, songs), wantErr: true},
			{name: "no songs", playlist: NewPlaylist("empty", "desc", []string{"Rock"}, nil), wantErr: true},
			{name: "song outside filters", playlist: NewPlaylist("alt", "desc", []string{"Alternative"}, songs), wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.playlist.Validate()
				if tt.wantErr {
					if !errors.Is(err, shared.ErrInvalidInput) {
						t.Errorf("expected ErrInvalidInput, got %v", err)
					}
				} else if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			})
		}
	})
}

func TestTrackRecord(t *testing.T) {
	t.Run("Validate", func(t *testing.T) {
		tc := []struct {
			name    string
			record  TrackRecord
			wantErr bool
		}{
			{name: "valid", record: TrackRecord{Name: "song1", Genres: []string{"Rock"}}},
			{name: "blank name", record: TrackRecord{Name: "  ", Genres: []string{"Rock"}}, wantErr: true},
			{name: "negative play count", record: TrackRecord{Name: "song1", RecentPlayCount: -1, Genres: []string{"Rock"}}, wantErr: true},
			{name: "no genres", record: TrackRecord{Name: "song1"}, wantErr: true},
			{name: "only blank genres", record: TrackRecord{Name: "song1", Genres: []string{" ", ""}}, wantErr: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				err := tt.record.Validate()
				if tt.wantErr && !errors.Is(err, shared.ErrInvalidTrack) {
					t.Errorf("expected ErrInvalidTrack, got %v", err)
				}
				if !tt.wantErr && err != nil {
					t.Errorf("expected no error, got %v", err)
				}
			})
		}
	})

	t.Run("Song trims values", func(t *testing.T) {
		r := TrackRecord{Name: " song1 ", Link: "songLink", Liked: true, RecentPlayCount: 3, Genres: []string{" Rock", "Rock "}}
		s := r.Song()

		if s.Name() != "song1" {
			t.Errorf("expected trimmed name, got %q", s.Name())
		}
		if !reflect.DeepEqual(s.Genres(), []string{"Rock"}) {
			t.Errorf("expected single cleaned genre, got %v", s.Genres())
		}
		if !s.IsLiked() || s.RecentPlayCount() != 3 || s.SourceLink() != "songLink" {
			t.Errorf("metadata not carried over: %+v", s)
		}
	})
}

func TestSubgenres(t *testing.T) {
	s := NewSong("song2", "songLink", false, 20, []string{"Rock", "Alternative"}).
		WithSubgenres([]string{"Grunge", "Alt Rock", "Grunge"})

	t.Run("sorted and unique", func(t *testing.T) {
		if got := s.Subgenres(); !reflect.DeepEqual(got, []string{"Alt Rock", "Grunge"}) {
			t.Errorf("unexpected subgenres %v", got)
		}
		if !reflect.DeepEqual(s.Tags(SubgenreField), s.Subgenres()) || !reflect.DeepEqual(s.Tags(GenreField), s.Genres()) {
			t.Error("Tags must select the matching tag set")
		}
	})

	t.Run("song without subgenres", func(t *testing.T) {
		plain := NewSong("song", "", false, 0, []string{"Rock"})
		if plain.Subgenres() == nil {
			t.Error("expected empty, non-nil subgenres")
		}
		if plain.Matches(SubgenreField, []string{"Rock"}) {
			t.Error("genres must not satisfy a subgenre filter")
		}
	})

	t.Run("Matches", func(t *testing.T) {
		tc := []struct {
			name    string
			field   Field
			filters []string
			want    bool
		}{
			{name: "subgenre hit", field: SubgenreField, filters: []string{"Grunge"}, want: true},
			{name: "genre is not a subgenre", field: SubgenreField, filters: []string{"Rock"}, want: false},
			{name: "subgenre is not a genre", field: GenreField, filters: []string{"Grunge"}, want: false},
			{name: "genre hit", field: GenreField, filters: []string{"Jazz", "Rock"}, want: true},
		}

		for _, tt := range tc {
			t.Run(tt.name, func(t *testing.T) {
				if got := s.Matches(tt.field, tt.filters); got != tt.want {
					t.Errorf("Matches(%v, %v) = %v, want %v", tt.field, tt.filters, got, tt.want)
				}
			})
		}
	})

	t.Run("subgenre playlist validates against subgenres", func(t *testing.T) {
		p := NewPlaylistBy(SubgenreField, "grunge", "desc", []string{"Grunge"}, []Song{s})
		if p.Field() != SubgenreField {
			t.Errorf("expected subgenre field, got %v", p.Field())
		}
		if err := p.Validate(); err != nil {
			t.Errorf("expected valid playlist, got %v", err)
		}

		wrong := NewPlaylistBy(SubgenreField, "rock", "desc", []string{"Rock"}, []Song{s})
		if err := wrong.Validate(); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("record carries cleaned subgenres", func(t *testing.T) {
		r := TrackRecord{Name: "song", Genres: []string{"Rap"}, Subgenres: []string{" Alt Rap ", ""}}
		if got := r.Song().Subgenres(); !reflect.DeepEqual(got, []string{"Alt Rap"}) {
			t.Errorf("unexpected subgenres %v", got)
		}
	})

	t.Run("field names", func(t *testing.T) {
		if GenreField.String() != "genre" || SubgenreField.String() != "subgenre" || Field(9).String() != "" {
			t.Error("unexpected Field strings")
		}
	})
}
