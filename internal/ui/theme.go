package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// theme holds the styles the genre picker renders with, one per message role.
type theme struct {
	heading  lipgloss.Style // created playlist title
	selected lipgloss.Style // current genre selection
	failure  lipgloss.Style
	notice   lipgloss.Style // no songs fit the selection
	hint     lipgloss.Style
}

var pickerTheme = newTheme(themeColors{
	heading:  "#E56B6F",
	selected: "#6A994E",
	failure:  "#D62828",
	notice:   "#F4A261",
	hint:     "#8D99AE",
})

type themeColors struct {
	heading, selected, failure, notice, hint lipgloss.Color
}

func newTheme(c themeColors) theme {
	fg := func(color lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(color)
	}

	return theme{
		heading:  fg(c.heading).Bold(true).MarginBottom(1),
		selected: fg(c.selected).Bold(true),
		failure:  fg(c.failure).Bold(true),
		notice:   fg(c.notice),
		hint:     fg(c.hint).Italic(true),
	}
}
