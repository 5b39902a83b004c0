package catalog

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/playgen/internal/models"
	"github.com/desertthunder/playgen/internal/shared"
)

// DefaultDescription is given to playlists when no description is configured.
const DefaultDescription = "desc"

// Source returns the track records that belong to an account reference.
type Source interface {
	Tracks(ctx context.Context, account string) ([]models.TrackRecord, error)
	Name() string
}

// Status distinguishes the outcomes of [Catalog.CreatePlaylist].
type Status int

const (
	Created Status = iota
	NoMatch
)

func (s Status) String() string {
	switch s {
	case Created:
		return "created"
	case NoMatch:
		return "no_match"
	default:
		return ""
	}
}

// Result is the outcome of a playlist request. Playlist is nil unless Status is [Created].
type Result struct {
	Status   Status
	Name     string
	Field    models.Field
	Filters  []string
	Playlist *models.Playlist
}

// Stats summarises the size of a catalog.
type Stats struct {
	Songs     int `json:"songs"`
	Genres    int `json:"genres"`
	Subgenres int `json:"subgenres"`
	Playlists int `json:"playlists"`
}

// Catalog owns the songs of one source reference and the history of playlists generated from them.
type Catalog struct {
	mu          sync.RWMutex
	sourceLink  string
	songs       map[string]models.Song
	playlists   []*models.Playlist
	logger      *log.Logger
	description string
	maxSongs    int
	rng         *rand.Rand
}

// Option configures a [Catalog].
type Option func(*Catalog)

// WithLogger sets the logger used for diagnostics. The default writes to stderr.
func WithLogger(l *log.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDescription sets the description given to every generated playlist.
func WithDescription(d string) Option {
	return func(c *Catalog) {
		if d != "" {
			c.description = d
		}
	}
}

// WithMaxSongs caps the number of songs in a playlist. Zero or less means no cap.
func WithMaxSongs(n int) Option {
	return func(c *Catalog) { c.maxSongs = max(n, 0) }
}

// WithShuffle randomises matched songs with r before the cap is applied.
func WithShuffle(r *rand.Rand) Option {
	return func(c *Catalog) { c.rng = r }
}

// New creates an empty catalog for sourceLink.
func New(sourceLink string, opts ...Option) *Catalog {
	c := &Catalog{
		sourceLink:  sourceLink,
		songs:       make(map[string]models.Song),
		logger:      shared.NewLogger(nil),
		description: DefaultDescription,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SourceLink returns the account reference the catalog was created for.
func (c *Catalog) SourceLink() string {
	return c.sourceLink
}

// Populate loads every track src reports for the catalog's source link.
//
// All records are validated before any is added, so a bad record leaves the catalog unchanged.
// Returns the number of songs added or replaced.
func (c *Catalog) Populate(ctx context.Context, src Source) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("%w: source is nil", shared.ErrIngestion)
	}

	records, err := src.Tracks(ctx, c.sourceLink)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", shared.ErrIngestion, src.Name(), err)
	}

	songs := make([]models.Song, 0, len(records))
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return 0, fmt.Errorf("record %d from %s: %w", i, src.Name(), err)
		}
		songs = append(songs, r.Song())
	}

	c.Add(songs...)
	c.logger.Debug("populated catalog", "source", src.Name(), "records", len(records))
	return len(songs), nil
}

// Add inserts songs keyed by name. A song with a name already present replaces the old one.
func (c *Catalog) Add(songs ...models.Song) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, s := range songs {
		c.songs[s.Name()] = s
	}
}

// Songs returns the catalog's songs ordered by name.
func (c *Catalog) Songs() []models.Song {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.sortedSongs()
}

// Genres returns the union of genres over all songs, sorted.
func (c *Catalog) Genres() []string {
	return c.index(models.GenreField)
}

// Subgenres returns the union of subgenres over all songs, sorted.
func (c *Catalog) Subgenres() []string {
	return c.index(models.SubgenreField)
}

func (c *Catalog) index(field models.Field) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var all []string
	for _, s := range c.songs {
		all = append(all, s.Tags(field)...)
	}
	return shared.UniqueSorted(all)
}

// CreatePlaylist builds a playlist of every song tagged with at least one of filters.
//
// When nothing matches a warning naming the playlist is logged and the history is left unchanged.
func (c *Catalog) CreatePlaylist(name string, filters []string) Result {
	return c.CreatePlaylistBy(models.GenreField, name, filters)
}

// CreateSubgenrePlaylist is [Catalog.CreatePlaylist] matching filters against subgenres.
func (c *Catalog) CreateSubgenrePlaylist(name string, filters []string) Result {
	return c.CreatePlaylistBy(models.SubgenreField, name, filters)
}

// CreatePlaylistBy builds a playlist of every song whose field tags include at least one of filters.
func (c *Catalog) CreatePlaylistBy(field models.Field, name string, filters []string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := Result{Status: NoMatch, Name: name, Field: field, Filters: slices.Clone(filters)}

	var matched []models.Song
	for _, s := range c.sortedSongs() {
		if s.Matches(field, filters) {
			matched = append(matched, s)
		}
	}

	if len(matched) == 0 {
		c.logger.Warn("no songs fit filters", "playlist", name, "field", field, "filters", strings.Join(filters, ", "))
		return result
	}

	if c.rng != nil {
		c.rng.Shuffle(len(matched), func(i, j int) {
			matched[i], matched[j] = matched[j], matched[i]
		})
	}
	if c.maxSongs > 0 && len(matched) > c.maxSongs {
		matched = matched[:c.maxSongs]
	}

	playlist := models.NewPlaylistBy(field, name, c.description, filters, matched)
	c.playlists = append(c.playlists, playlist)

	c.logger.Debug("created playlist", "playlist", name, "songs", playlist.Len())

	result.Status = Created
	result.Playlist = playlist
	return result
}

// Playlists returns the generated playlists in creation order.
func (c *Catalog) Playlists() []*models.Playlist {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*models.Playlist, len(c.playlists))
	copy(out, c.playlists)
	return out
}

// Playlist returns the playlist at index in the generation history.
func (c *Catalog) Playlist(index int) (*models.Playlist, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if index < 0 || index >= len(c.playlists) {
		return nil, fmt.Errorf("%w: no playlist at index %d", shared.ErrPlaylistNotFound, index)
	}
	return c.playlists[index], nil
}

// Stats reports song, genre, subgenre and playlist counts.
func (c *Catalog) Stats() Stats {
	genres, subgenres := len(c.Genres()), len(c.Subgenres())

	c.mu.RLock()
	defer c.mu.RUnlock()

	return Stats{Songs: len(c.songs), Genres: genres, Subgenres: subgenres, Playlists: len(c.playlists)}
}

// sortedSongs must be called with mu held.
func (c *Catalog) sortedSongs() []models.Song {
	out := make([]models.Song, 0, len(c.songs))
	for _, s := range c.songs {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}
