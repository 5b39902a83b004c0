// Package models defines the domain entities for the playgen playlist generator.
//
// The package contains two categories of types:
//
// 1. Ingestion records: loosely typed data handed over by a track source
//   - [TrackRecord] : one track as reported by a library export or fixture
//
// 2. Domain entities: immutable values owned by a catalog
//   - [Song] : a track with its genre tags and like/play-count metadata
//   - [Playlist] : a named subset of a catalog matching a genre filter
//
// Entities are constructed once and only expose read accessors.
// [Playlist] implements the [Model] interface providing an ID, a creation timestamp and validation.
package models
