// Package playlist reads and writes XSPF playlist documents.
//
// Every document the builder produces has the same shape:
//
//	<?xml version="1.0" ?>
//	<playlist version="1" xmlns="http://xspf.org/ns/0/">
//	  <title>Playlist</title>
//	  <trackList>
//	    <track>
//	      <location>file:///media/Show/S01/Ep%201.mp4</location>
//	    </track>
//	  </trackList>
//	</playlist>
//
// Locations are file:// URIs produced by FileURI. Marshal is deterministic,
// so rebuilding an unchanged tree yields byte-identical files, and Parse reads
// back exactly what Marshal wrote, which the combination step relies on.
//
// File access goes through the filesystem package, so reads and writes on
// NFS-mounted libraries retry on stale file handles.
package playlist
