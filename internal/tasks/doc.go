// Package tasks runs batches of playlist requests against a catalog with progress reporting.
//
// # Core Operations
//
// [Generator.Run] works through a list of [Request] values in order:
//   - Each request is handed to [catalog.Catalog.CreatePlaylist]
//   - Created playlists and skipped (no match) requests are collected separately
//   - Cancellation of the context stops the batch between requests
//
// [ReadPlan] loads requests from a TOML plan file.
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
// The [ProgressUpdate] struct contains phase, step counters, a message and optional data.
// Updates use select with default to prevent blocking.
package tasks
