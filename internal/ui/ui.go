package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/playgen/internal/catalog"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	GenreView ViewState = iota
	ResultView
)

// Model represents the TUI application state.
type Model struct {
	view      ViewState
	catalog   *catalog.Catalog
	name      string
	width     int
	height    int
	genreList list.Model
	songList  list.Model
	selected  []string // genres in the order they were toggled on
	result    *catalog.Result
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model over c. Playlists are named name, or after the chosen genres when name is empty.
func NewModel(c *catalog.Catalog, name string) *Model {
	genres := genreItems(c.Genres(), c.Songs())
	genreList := list.New(genres, list.NewDefaultDelegate(), 0, 0)
	genreList.Title = "Genres"

	return &Model{
		view:      GenreView,
		catalog:   c,
		name:      name,
		genreList: genreList,
		help:      help.New(),
		keys:      newKeyMap(),
	}
}

// Init has nothing to fetch: the catalog is populated before the program starts.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.genreList.SetSize(msg.Width-4, msg.Height-8)
		if m.view == ResultView {
			m.songList.SetSize(msg.Width-4, msg.Height-10)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case GenreView:
			return m.handleGenreKeys(msg)
		case ResultView:
			return m.handleResultKeys(msg)
		}

	case Msg:
		if msg.kind == MsgPlaylistCreated {
			result := msg.data.(catalog.Result)
			m.result = &result
			m.view = ResultView
			if result.Playlist != nil {
				songs := result.Playlist.Songs()
				items := make([]list.Item, len(songs))
				for i, s := range songs {
					items[i] = songItem{song: s}
				}
				m.songList = list.New(items, list.NewDefaultDelegate(), 0, 0)
				m.songList.Title = fmt.Sprintf("Songs in '%s'", result.Playlist.Name())
				m.songList.SetSize(m.width-4, m.height-10)
			}
			return m, nil
		}
	}

	return m.updateLists(msg)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case GenreView:
		return m.renderGenres()
	case ResultView:
		return m.renderResult()
	default:
		return ""
	}
}

// Selected returns the genres currently toggled on, in toggle order.
func (m *Model) Selected() []string {
	return slices.Clone(m.selected)
}

// Result returns the last playlist request outcome, or nil before one is made.
func (m *Model) Result() *catalog.Result {
	return m.result
}

func (m *Model) handleGenreKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.genreList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.genreList, cmd = m.genreList.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.toggle):
		m.toggleCurrent()
		return m, nil
	case key.Matches(msg, m.keys.enter):
		if len(m.selected) == 0 {
			m.toggleCurrent()
		}
		return m, m.createPlaylist()
	}

	var cmd tea.Cmd
	m.genreList, cmd = m.genreList.Update(msg)
	return m, cmd
}

func (m *Model) handleResultKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.restart):
		m.reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.songList, cmd = m.songList.Update(msg)
	return m, cmd
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case GenreView:
		m.genreList, cmd = m.genreList.Update(msg)
	case ResultView:
		m.songList, cmd = m.songList.Update(msg)
	}
	return m, cmd
}

// toggleCurrent flips the highlighted genre in or out of the selection.
func (m *Model) toggleCurrent() {
	item, ok := m.genreList.SelectedItem().(genreItem)
	if !ok {
		return
	}

	item.selected = !item.selected
	if item.selected {
		m.selected = append(m.selected, item.name)
	} else {
		m.selected = slices.DeleteFunc(m.selected, func(g string) bool { return g == item.name })
	}

	m.setItem(item)
}

// setItem replaces the list item with the same genre name.
func (m *Model) setItem(item genreItem) {
	for i, it := range m.genreList.Items() {
		if g, ok := it.(genreItem); ok && g.name == item.name {
			m.genreList.SetItem(i, item)
			return
		}
	}
}

func (m *Model) reset() {
	for _, it := range m.genreList.Items() {
		if g, ok := it.(genreItem); ok && g.selected {
			g.selected = false
			m.setItem(g)
		}
	}
	m.selected = nil
	m.result = nil
	m.view = GenreView
}

func (m *Model) playlistName() string {
	if m.name != "" {
		return m.name
	}
	return strings.Join(m.selected, " + ") + " playlist"
}

func (m *Model) createPlaylist() tea.Cmd {
	name := m.playlistName()
	filters := m.Selected()
	return func() tea.Msg {
		return playlistCreatedMsg(m.catalog.CreatePlaylist(name, filters))
	}
}

func (m *Model) renderGenres() string {
	status := pickerTheme.hint.Render("No genres selected")
	if len(m.selected) > 0 {
		status = pickerTheme.selected.Render("Selected: " + strings.Join(m.selected, ", "))
	}

	helpKeys := []key.Binding{m.keys.toggle, m.keys.enter, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)
	return fmt.Sprintf("%s\n%s\n\n%s", m.genreList.View(), status, helpView)
}

func (m *Model) renderResult() string {
	helpKeys := []key.Binding{m.keys.restart, m.keys.quit}
	helpView := m.help.ShortHelpView(helpKeys)

	if m.result == nil {
		return pickerTheme.failure.Render("No result available") + "\n\n" + helpView
	}

	if m.result.Status == catalog.NoMatch {
		msg := pickerTheme.notice.Render(fmt.Sprintf("No songs fit [%s] for '%s'", strings.Join(m.result.Filters, ", "), m.result.Name))
		return fmt.Sprintf("%s\n\n%s", msg, helpView)
	}

	p := m.result.Playlist
	title := pickerTheme.heading.Render(fmt.Sprintf("✓ Created '%s'", p.Name()))
	info := fmt.Sprintf("Filters: %s\nSongs: %d\n", strings.Join(p.Filters(), ", "), p.Len())

	return fmt.Sprintf("%s\n%s\n%s\n\n%s", title, info, m.songList.View(), helpView)
}
