// Package errors provides structured error types for the recipemd host
// surfaces (CLI and HTTP API).
//
// Core recipe parsing never returns errors: unparseable quantities degrade
// through the volume -> simple -> none fallback chain. Structured errors
// exist for the layers around the core, where files go missing and requests
// arrive malformed.
//
// Example:
//
//	err := errors.Wrap(
//	    errors.ErrCodeNotFound,
//	    "failed to read recipe file",
//	    ioErr,
//	)
package errors
