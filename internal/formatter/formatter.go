// package formatter renders catalogs and playlists as text, Markdown, CSV and JSON
package formatter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/playgen/internal/models"
	"github.com/desertthunder/playgen/internal/shared"
)

// Formats lists the renderings accepted by [Export].
var Formats = []string{"text", "markdown", "csv", "json"}

// SongView is the JSON shape of a [models.Song].
type SongView struct {
	Name            string   `json:"name"`
	Link            string   `json:"link,omitempty"`
	Liked           bool     `json:"liked"`
	RecentPlayCount int      `json:"recent_play_count"`
	Genres          []string `json:"genres"`
	Subgenres       []string `json:"subgenres,omitempty"`
}

// PlaylistView is the JSON shape of a [models.Playlist].
type PlaylistView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Field       string     `json:"field"`
	Filters     []string   `json:"filters"`
	CreatedAt   time.Time  `json:"created_at"`
	Songs       []SongView `json:"songs"`
}

// NewSongView converts a song for JSON output.
func NewSongView(s models.Song) SongView {
	return SongView{
		Name:            s.Name(),
		Link:            s.SourceLink(),
		Liked:           s.IsLiked(),
		RecentPlayCount: s.RecentPlayCount(),
		Genres:          s.Genres(),
		Subgenres:       s.Subgenres(),
	}
}

// NewPlaylistView converts a playlist for JSON output.
func NewPlaylistView(p *models.Playlist) PlaylistView {
	songs := p.Songs()
	views := make([]SongView, len(songs))
	for i, s := range songs {
		views[i] = NewSongView(s)
	}
	return PlaylistView{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Field:       p.Field().String(),
		Filters:     p.Filters(),
		CreatedAt:   p.CreatedAt(),
		Songs:       views,
	}
}

// WriteCatalog writes the diagnostic listing of genres and songs.
func WriteCatalog(w io.Writer, genres []string, songs []models.Song) error {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Genres: %s\n\n", strings.Join(genres, ", ")))
	for _, s := range songs {
		buf.WriteString(fmt.Sprintf("Song: %s, with: %s\n", s.Name(), strings.Join(s.Genres(), ", ")))
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	return nil
}

// WritePlaylists writes the diagnostic listing of generated playlists.
func WritePlaylists(w io.Writer, playlists []*models.Playlist) error {
	for _, p := range playlists {
		var buf bytes.Buffer
		buf.WriteString(fmt.Sprintf("Playlist: %s\n", p.Name()))
		buf.WriteString(fmt.Sprintf("\tDescription:\t%s\n", p.Description()))
		buf.WriteString(fmt.Sprintf("\tFilters:\t%s\n", strings.Join(p.Filters(), ", ")))
		buf.WriteString(fmt.Sprintf("\tSongs:\t\t%s\n", strings.Join(p.SongNames(), ", ")))

		if _, err := w.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("failed to write playlist %s: %w", p.Name(), err)
		}
	}
	return nil
}

// ExportToCSV converts a playlist to CSV with columns: Name, Link, Liked, RecentPlayCount, Genres
//
// Genres are joined with ";" inside their cell.
func ExportToCSV(p *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Link", "Liked", "RecentPlayCount", "Genres"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, s := range p.Songs() {
		record := []string{
			s.Name(),
			s.SourceLink(),
			strconv.FormatBool(s.IsLiked()),
			strconv.Itoa(s.RecentPlayCount()),
			strings.Join(s.Genres(), ";"),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a playlist to Markdown
func ExportToMarkdown(p *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", p.Name()))

	if p.Description() != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", p.Description()))
	}

	buf.WriteString(fmt.Sprintf("**Filters**: %s\n", strings.Join(p.Filters(), ", ")))
	buf.WriteString(fmt.Sprintf("**Songs**: %d\n\n", p.Len()))

	buf.WriteString("## Songs\n\n")
	for i, s := range p.Songs() {
		liked := ""
		if s.IsLiked() {
			liked = " ♥"
		}
		buf.WriteString(fmt.Sprintf("%d. %s (%s)%s\n", i+1, s.Name(), strings.Join(s.Genres(), ", "), liked))
	}

	return buf.Bytes(), nil
}

// ExportToText converts a playlist to plain text format
func ExportToText(p *models.Playlist) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", p.Name()))
	if p.Description() != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", p.Description()))
	}
	buf.WriteString(fmt.Sprintf("Filters: %s\n", strings.Join(p.Filters(), ", ")))
	buf.WriteString(fmt.Sprintf("Songs: %d\n\n", p.Len()))

	for i, s := range p.Songs() {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, s.Name()))
	}

	return buf.Bytes(), nil
}

// ExportToJSON converts a playlist to indented JSON
func ExportToJSON(p *models.Playlist) ([]byte, error) {
	data, err := json.MarshalIndent(NewPlaylistView(p), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal playlist: %w", err)
	}
	return append(data, '\n'), nil
}

// CheckFormat reports [shared.ErrUnsupportedFormat] when [Export] would reject format.
func CheckFormat(format string) error {
	switch format {
	case "", "text", "txt", "markdown", "md", "csv", "json":
		return nil
	default:
		return fmt.Errorf("%w: %q (want one of %s)", shared.ErrUnsupportedFormat, format, strings.Join(Formats, ", "))
	}
}

// Export renders p in format, one of [Formats].
func Export(p *models.Playlist, format string) ([]byte, error) {
	if err := CheckFormat(format); err != nil {
		return nil, err
	}

	switch format {
	case "", "text", "txt":
		return ExportToText(p)
	case "markdown", "md":
		return ExportToMarkdown(p)
	case "csv":
		return ExportToCSV(p)
	default:
		return ExportToJSON(p)
	}
}

// WriteExport renders p in format and writes it to path.
func WriteExport(p *models.Playlist, format, path string) error {
	data, err := Export(p, format)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
