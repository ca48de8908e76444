// Package logging provides a simple leveled logging interface for the
// playlist builder.
//
// It supports the following log levels:
//   - DEBUG: Per-directory build decisions and storyline matches
//   - INFO: Run progress and summaries
//   - WARN: Skipped documents and recoverable filesystem trouble
//   - ERROR: Failed runs
//   - FATAL: Fatal errors that terminate the application
//
// The log level is configured via the LOG_LEVEL environment variable (or
// DEBUG=true) and can be overridden at startup with SetLevel. Output goes to
// stderr unless redirected with SetOutput.
package logging
