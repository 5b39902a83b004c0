package tasks

import (
	"fmt"
	"strings"

	"github.com/desertthunder/playgen/internal/models"
)

// ProgressUpdate represents a progress event during a batch.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	PopulateCatalog Phase = iota
	CreatePlaylist
	SkipPlaylist
	Complete
)

func (p Phase) String() string {
	switch p {
	case PopulateCatalog:
		return "populate_catalog"
	case CreatePlaylist:
		return "create_playlist"
	case SkipPlaylist:
		return "skip_playlist"
	case Complete:
		return "complete"
	default:
		return ""
	}
}

func populateUpdate(source string, songs int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   PopulateCatalog,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Loaded %d songs from %s", songs, source),
	}
}

func createdUpdate(step, total int, playlist *models.Playlist) ProgressUpdate {
	return ProgressUpdate{
		Phase:   CreatePlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Created '%s' (%d songs)", playlist.Name(), playlist.Len()),
		Data:    playlist,
	}
}

func skippedUpdate(step, total int, req Request) ProgressUpdate {
	return ProgressUpdate{
		Phase:   SkipPlaylist,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("No songs fit [%s] for '%s'", strings.Join(req.Filters(), ", "), req.Name),
		Data:    req,
	}
}

func completeUpdate(result *BatchResult) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Complete,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("%d created, %d skipped", len(result.Created), len(result.Skipped)),
		Data:    result,
	}
}
