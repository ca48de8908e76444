// Command playlist-builder generates XSPF playlists for a media directory
// tree from the command line.
//
// Usage:
//
//	playlist-builder <command> [flags] [args]
//
// Commands:
//
//	build [--order o] [--history db] [root]
//	        Purge the playlists of a previous build, write one playlist per
//	        directory and per Storyline.txt, then combine them. Without a
//	        root the command prompts for one when run in a terminal.
//
//	directory <dir>
//	        Write the playlist of the media files directly inside dir.
//
//	storyline <dir>
//	        Write dir/Storyline.xspf from dir/Storyline.txt.
//
//	history [--history db] [--limit n]
//	        List recorded runs, newest first.
//
// Environment:
//
//	COMBINE_ORDER - Default for --order (default: directory)
//	HISTORY_DB    - Default for --history
//
// A .env file in the working directory is loaded before flags are read.
package main
