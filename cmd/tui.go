package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/playgen/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive genre picker over the populated catalog.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if err := r.populate(ctx, nil); err != nil {
		return err
	}

	before := len(r.catalog.Playlists())
	model := ui.NewModel(r.catalog, cmd.String("name"))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	_, err := p.Run()
	if reportErr := r.reportCreated(before); reportErr != nil && err == nil {
		err = reportErr
	}
	if err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// reportCreated prints every playlist added to the catalog history after the first since entries.
func (r *Runner) reportCreated(since int) error {
	playlists := r.catalog.Playlists()
	if since >= len(playlists) {
		return nil
	}

	for _, p := range playlists[since:] {
		if err := r.writePlain("✓ Created '%s' (%d songs)\n", p.Name(), p.Len()); err != nil {
			return err
		}
	}
	return nil
}
