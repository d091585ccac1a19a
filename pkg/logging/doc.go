// Package logging provides structured logging for recipemd components.
//
// It wraps the standard library slog package with shared defaults: JSON
// output to stderr, LOG_LEVEL environment configuration, module/version
// context attributes on every record, and source location tracking when
// debug logging is enabled.
//
// Typical use, early in main():
//
//	logging.SetDefaultStructuredLogger("recipemd", version)
//	slog.Info("starting", "args", len(os.Args))
//
// The LOG_LEVEL environment variable (debug, info, warn, error,
// case-insensitive) controls verbosity; unset defaults to info. The core
// parsing packages do not log — logging is a host-surface concern.
package logging
