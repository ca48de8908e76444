// Package aggregator runs a full playlist build over a directory tree.
//
// A run has three phases:
//
//  1. Purge: every .xspf and .m3u document in the tree is deleted.
//  2. Generate: every directory, parents before children, gets its direct
//     playlist (builder.BuildDirectory) and its storyline playlist
//     (builder.BuildStoryline).
//  3. Combine: every directory, children before parents, that holds at least
//     one playlist document has those documents merged into a single
//     playlist stored next to it. Locations are deduplicated and then sorted
//     by the configured Order, so combined playlists climb the tree one
//     level per directory until the root's is written beside the root.
//
// Runs are sequential. Filesystem errors abort the run; documents that cannot
// be parsed during the combine phase are skipped with a warning.
package aggregator
