// Package mediatypes defines which files take part in a playlist build.
//
// It is a dependency-free foundation shared by the builders, the aggregator
// and the HTTP shell:
//
//	mediatypes.IsMediaFile("01 Pilot.mkv")  // true, becomes a track
//	mediatypes.IsPlaylistFile("Season.xspf") // true, combined into the parent
//	mediatypes.IsPurgeable("old.m3u")        // true, deleted before a build
//
// Extension checks are case-insensitive. The maps (VideoExtensions,
// AudioExtensions, PlaylistExtensions, LegacyPlaylistExtensions) expect
// lowercase extensions with the leading dot, as returned by Ext.
package mediatypes
