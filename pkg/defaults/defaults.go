// Package defaults centralizes timeout and limit constants shared across
// the recipemd CLI and API server.
package defaults

import "time"

const (
	// ServerReadTimeout bounds reading a full request, including the body.
	ServerReadTimeout = 10 * time.Second
	// ServerWriteTimeout bounds writing a full response.
	ServerWriteTimeout = 30 * time.Second
	// ServerIdleTimeout bounds keep-alive connections between requests.
	ServerIdleTimeout = 120 * time.Second
	// ServerShutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
	ServerShutdownTimeout = 30 * time.Second

	// MaxRecipeBytes caps the recipe payload accepted by the API. Recipes
	// are human-typed Markdown; anything larger is not a recipe.
	MaxRecipeBytes = 1 << 20
)
