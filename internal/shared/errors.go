package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Ingestion errors
	ErrIngestion    = fmt.Errorf("ingestion failed")
	ErrInvalidTrack = fmt.Errorf("invalid track record")

	// Catalog errors
	ErrPlaylistNotFound  = fmt.Errorf("playlist not found")
	ErrUnsupportedFormat = fmt.Errorf("unsupported format")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
