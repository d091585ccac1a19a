// Package api implements the recipemd HTTP API: endpoints for parsing
// recipe Markdown into its structured form and for scaling recipes by an
// arbitrary positive factor. Serve wires the handlers into the shared
// server with its middleware chain and blocks until shutdown.
package api
