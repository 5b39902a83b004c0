// Package catalog holds one user's song corpus and produces genre-filtered playlists from it.
//
// # Population
//
// A [Catalog] is filled from a [Source], the collaborator that turns an account reference into track records.
// Records are validated and keyed by song name, so repeated population replaces rather than duplicates.
// Source failures wrap [shared.ErrIngestion]; bad records wrap [shared.ErrInvalidTrack].
//
// # Genre index
//
// [Catalog.Genres] is computed from the current songs on every call.
// There is no separately maintained genre set to drift out of sync.
//
// # Playlist generation
//
// [Catalog.CreatePlaylist] includes a song when any of its genres appears in the filter list.
// Matches are ordered by name unless shuffling is enabled, then capped by [WithMaxSongs].
// A filter that matches nothing yields a [Result] with status [NoMatch] and a warning log; it is never an error.
package catalog
