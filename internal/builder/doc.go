// Package builder writes the per-directory playlist documents.
//
// BuildDirectory lists the media files directly inside a directory in natural
// order and stores them in a playlist next to that directory, so the media in
// "Shows/Season 1" end up in "Shows/Season 1.xspf".
//
// BuildStoryline reads the Storyline.txt manifest of a directory, resolves
// every line to a media file anywhere below it using the matcher package, and
// writes the resolved files in manifest order to Storyline.xspf inside the
// directory.
package builder
