// Package database stores the playlist build history in SQLite.
//
// Every build run is recorded with its root directory, combine order,
// timing, result counts and error, keyed by a random UUID. The history is a
// journal only: builds never read it back, so deleting the database file
// changes nothing about the playlists a run produces.
//
// The database uses WAL mode and creates its schema on open.
package database
