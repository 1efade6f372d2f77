// Package models defines domain entities for the playlist migration tool.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): lightweight structs representing catalog data
//   - [Playlist] : Basic playlist metadata from a streaming catalog
//   - [PlaylistExport] : Playlist with its complete, ordered track listing
//   - [Track] : Song metadata used for cross-catalog matching
//   - [MatchCandidate] : A destination track paired with its similarity score
//   - [MigrationResult] : Per-playlist outcome of a migration run
//
// 2. Persistent entities: database-backed records with lifecycle management
//   - [MigrationRecord] : A completed playlist migration stored in history
//
// Persistent entities implement the [Model] interface providing ID access,
// timestamps, and validation.
package models
