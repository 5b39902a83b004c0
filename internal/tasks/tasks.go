package tasks

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/desertthunder/playgen/internal/catalog"
	"github.com/desertthunder/playgen/internal/models"
	"github.com/desertthunder/playgen/internal/shared"
)

// Request asks for one playlist. Subgenres are used instead of Genres when set.
type Request struct {
	Name      string   `toml:"name"`
	Genres    []string `toml:"genres"`
	Subgenres []string `toml:"subgenres,omitempty"`
}

// Field reports which tag set the request filters on.
func (r Request) Field() models.Field {
	if len(r.Subgenres) > 0 {
		return models.SubgenreField
	}
	return models.GenreField
}

// Filters returns the tags the request filters on.
func (r Request) Filters() []string {
	if r.Field() == models.SubgenreField {
		return r.Subgenres
	}
	return r.Genres
}

// Plan is the on-disk shape of a batch of requests.
type Plan struct {
	Requests []Request `toml:"playlist"`
}

// BatchResult contains the outcome of a batch.
type BatchResult struct {
	Created []*models.Playlist // Playlists added to the catalog, in request order
	Skipped []Request          // Requests that matched no songs
	Total   int                // Requests processed
}

// Generator runs playlist requests against a catalog.
type Generator struct {
	catalog *catalog.Catalog
}

// NewGenerator creates a Generator for c.
func NewGenerator(c *catalog.Catalog) *Generator {
	return &Generator{catalog: c}
}

// sendProgress sends a progress update through the channel without blocking.
func (g *Generator) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// Populate fills the catalog from src and reports it on progress.
func (g *Generator) Populate(ctx context.Context, progress chan<- ProgressUpdate, src catalog.Source) (int, error) {
	if g.catalog == nil {
		return 0, fmt.Errorf("%w: catalog not initialized", shared.ErrInvalidInput)
	}

	n, err := g.catalog.Populate(ctx, src)
	if err != nil {
		return 0, err
	}
	g.sendProgress(progress, populateUpdate(src.Name(), n))
	return n, nil
}

// Run processes requests in order. A request with no matching songs is recorded as skipped, not as an error.
//
// On cancellation the partial result is returned with the context's error.
func (g *Generator) Run(ctx context.Context, progress chan<- ProgressUpdate, requests []Request) (*BatchResult, error) {
	if g.catalog == nil {
		return nil, fmt.Errorf("%w: catalog not initialized", shared.ErrInvalidInput)
	}

	result := &BatchResult{}
	total := len(requests)

	for i, req := range requests {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		res := g.catalog.CreatePlaylistBy(req.Field(), req.Name, req.Filters())
		result.Total++

		switch res.Status {
		case catalog.Created:
			result.Created = append(result.Created, res.Playlist)
			g.sendProgress(progress, createdUpdate(i+1, total, res.Playlist))
		case catalog.NoMatch:
			result.Skipped = append(result.Skipped, req)
			g.sendProgress(progress, skippedUpdate(i+1, total, req))
		}
	}

	g.sendProgress(progress, completeUpdate(result))
	return result, nil
}

// DemoRequests are the three requests of the built-in demo scenario.
func DemoRequests() []Request {
	return []Request{
		{Name: "rock playlist", Genres: []string{"Rock"}},
		{Name: "alt playlist", Genres: []string{"Alternative"}},
		{Name: "fake playlist", Genres: []string{"FakeGenre"}},
	}
}

// ReadPlan loads a TOML plan file of [[playlist]] tables.
func ReadPlan(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan: %w", err)
	}

	var plan Plan
	if err := toml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}

	for i := range plan.Requests {
		req := &plan.Requests[i]
		req.Name = strings.TrimSpace(req.Name)
		if req.Name == "" {
			return nil, fmt.Errorf("%w: plan entry %d has no name", shared.ErrMissingArgument, i)
		}
		if len(req.Genres) > 0 && len(req.Subgenres) > 0 {
			return nil, fmt.Errorf("%w: plan entry %q sets both genres and subgenres", shared.ErrInvalidInput, req.Name)
		}
	}

	return plan.Requests, nil
}
