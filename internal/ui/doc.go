// Package ui implements an interactive terminal genre picker using bubbletea's Elm architecture.
//
// The TUI has two views:
//  1. [GenreView] : Browse the catalog's genres and toggle the ones to include
//  2. [ResultView] : Show the generated playlist, or report that no songs matched
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern, receiving messages via the Msg union type.
//
// Keyboard navigation uses vim-style bindings (j/k, space, enter, esc, r, q) with contextual help displayed via charmbracelet/bubbles/help.
package ui
