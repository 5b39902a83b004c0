package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/playgen/internal/catalog"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgPlaylistCreated MsgKind = iota
)

// playlistCreatedMsg is the constructor for [MsgPlaylistCreated]
func playlistCreatedMsg(result catalog.Result) Msg {
	return Msg{kind: MsgPlaylistCreated, data: result}
}
