// Package sources implements [catalog.Source] for the places track records can come from.
//
// # Fixture
//
// [Fixture] returns a fixed three-song library. It stands in for a live music-service account and ignores the account reference.
//
// # Library files
//
// [File] reads an exported library from disk. The format is chosen by extension:
//   - .toml : a [[tracks]] array of tables
//   - .json : an object with a "tracks" array
//
// A library may name the account it was exported from; asking it for a different account is an error.
//
// Sources only decode. Validation of individual records happens in the catalog.
package sources
