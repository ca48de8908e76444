// Package runner serializes playlist builds and records them in the run
// history.
//
// Both the HTTP service and the command line tool go through a Runner, so a
// build is never started twice at the same time and every attempt, failed or
// not, lands in the history database when one is configured.
package runner
