package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/playgen/internal/catalog"
	"github.com/desertthunder/playgen/internal/models"
	"github.com/desertthunder/playgen/internal/shared"
)

var (
	_ catalog.Source = (*Fixture)(nil)
	_ catalog.Source = (*File)(nil)
)

// Library is the on-disk shape of an exported track library.
type Library struct {
	Account string               `json:"account,omitempty" toml:"account,omitempty"`
	Tracks  []models.TrackRecord `json:"tracks" toml:"tracks"`
}

// Fixture is the built-in placeholder library.
type Fixture struct{}

// NewFixture creates the placeholder source.
func NewFixture() *Fixture {
	return &Fixture{}
}

func (f *Fixture) Name() string { return "fixture" }

// Tracks returns the placeholder songs regardless of account.
func (f *Fixture) Tracks(ctx context.Context, account string) ([]models.TrackRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []models.TrackRecord{
		{Name: "song1", Link: "songLink", Liked: true, RecentPlayCount: 50, Genres: []string{"Rock", "Indie"}, Subgenres: []string{"Indie Rock"}},
		{Name: "song2", Link: "songLink", Liked: false, RecentPlayCount: 20, Genres: []string{"Rock", "Alternative"}, Subgenres: []string{"Alt Rock", "Grunge"}},
		{Name: "song3", Link: "songLink", Liked: false, RecentPlayCount: 20, Genres: []string{"Rap", "Alternative"}, Subgenres: []string{"Alt Rap"}},
	}, nil
}

// File reads track records from a TOML or JSON library export.
type File struct {
	path string
}

// NewFile creates a [File] source for path.
func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Name() string { return "file:" + filepath.Base(f.path) }

// Tracks decodes the library file and returns its records.
func (f *File) Tracks(ctx context.Context, account string) ([]models.TrackRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lib, err := ReadLibrary(f.path)
	if err != nil {
		return nil, err
	}

	if lib.Account != "" && account != "" && lib.Account != account {
		return nil, fmt.Errorf("%w: library belongs to %q, not %q", shared.ErrInvalidInput, lib.Account, account)
	}

	return lib.Tracks, nil
}

// ReadLibrary decodes a library file, choosing the decoder from its extension.
func ReadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library: %w", err)
	}

	var lib Library
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &lib); err != nil {
			return nil, fmt.Errorf("failed to parse library: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &lib); err != nil {
			return nil, fmt.Errorf("failed to parse library: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: library extension %q", shared.ErrUnsupportedFormat, ext)
	}

	return &lib, nil
}

// WriteLibrary encodes lib to path as TOML or JSON, chosen by extension.
func WriteLibrary(path string, lib *Library) error {
	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		var buf strings.Builder
		if err := toml.NewEncoder(&buf).Encode(lib); err != nil {
			return fmt.Errorf("failed to encode library: %w", err)
		}
		data = []byte(buf.String())
	case ".json":
		out, err := json.MarshalIndent(lib, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode library: %w", err)
		}
		data = append(out, '\n')
	default:
		return fmt.Errorf("%w: library extension %q", shared.ErrUnsupportedFormat, ext)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write library: %w", err)
	}
	return nil
}

// New returns a [File] source when path is set and the [Fixture] otherwise.
func New(path string) catalog.Source {
	if path == "" {
		return NewFixture()
	}
	return NewFile(path)
}
