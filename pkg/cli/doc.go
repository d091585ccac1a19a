// Package cli implements the recipemd command-line interface.
//
// # Commands
//
// scale - Scale recipe quantities:
//
//	recipemd scale --factor 2 recipe.md
//
// Parses the recipe, multiplies every ingredient quantity by the factor,
// and writes the scaled Markdown. Reads stdin when the file argument is
// "-". With --write, rewrites the input files in place.
//
// fmt - Canonicalize recipe Markdown:
//
//	recipemd fmt recipe.md
//	recipemd fmt --check recipe.md
//
// Rewrites recipes in their canonical rendering. With --check, reports
// files whose content differs from the canonical form without modifying
// them.
//
// inspect - Show the structured form of a recipe:
//
//	recipemd inspect recipe.md [--format yaml|json|table] [--output FILE]
//
// render - Render a structured recipe back to Markdown:
//
//	recipemd render recipe.json
//
// serve - Run the recipemd HTTP API server:
//
//	recipemd serve [--port 8080]
//
// # Global Flags
//
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//	PORT       Override the serve listen port
//
// The CLI uses the urfave/cli/v3 framework and delegates to the recipe,
// quantity, serializer, and api packages. Version information is embedded
// at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/recipemd/recipemd/pkg/cli.version=1.0.0'"
package cli
