package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/playgen/internal/models"
)

var (
	_ list.Item = genreItem{}
	_ list.Item = songItem{}
)

// genreItem is one selectable genre with the number of songs tagged with it.
type genreItem struct {
	name     string
	songs    int
	selected bool
}

func (i genreItem) FilterValue() string { return i.name }
func (i genreItem) Title() string {
	if i.selected {
		return "[x] " + i.name
	}
	return "[ ] " + i.name
}
func (i genreItem) Description() string {
	if i.songs == 1 {
		return "1 song"
	}
	return fmt.Sprintf("%d songs", i.songs)
}

// songItem wraps [models.Song] to implement [list.Item].
type songItem struct {
	song models.Song
}

func (i songItem) FilterValue() string { return i.song.Name() }
func (i songItem) Title() string       { return i.song.Name() }
func (i songItem) Description() string {
	desc := strings.Join(i.song.Genres(), ", ")
	if i.song.IsLiked() {
		desc = "♥ • " + desc
	}
	return desc
}

// genreItems counts songs per genre and builds list items in genre order.
func genreItems(genres []string, songs []models.Song) []list.Item {
	counts := make(map[string]int, len(genres))
	for _, s := range songs {
		for _, g := range s.Genres() {
			counts[g]++
		}
	}

	items := make([]list.Item, len(genres))
	for i, g := range genres {
		items[i] = genreItem{name: g, songs: counts[g]}
	}
	return items
}
