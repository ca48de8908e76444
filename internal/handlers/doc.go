// Package handlers provides HTTP request handlers for the playlist builder API.
//
// It includes handlers for:
//   - Triggering a full playlist build of the media directory
//   - Listing the run history
//   - Listing and reading the generated playlists
//   - Health checks and version information
package handlers
