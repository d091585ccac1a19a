package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/recipemd/recipemd/pkg/recipe"
	"github.com/recipemd/recipemd/pkg/serializer"
)

func renderCmd() *cli.Command {
	return &cli.Command{
		Name:                  "render",
		EnableShellCompletion: true,
		Usage:                 "Render a structured recipe back to Markdown",
		ArgsUsage:             "FILE",
		Description: `Load a structured recipe from a JSON or YAML file (as produced by
"recipemd inspect") and write its Markdown rendering.

The format is inferred from the file extension.

# Examples

Render a structured recipe to stdout:
  recipemd render recipe.json

Render to a file:
  recipemd render recipe.yaml --output recipe.md`,
		Flags: []cli.Flag{
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return fmt.Errorf("a structured recipe file is required")
			}

			r, err := serializer.FromFile[recipe.Recipe](path)
			if err != nil {
				return fmt.Errorf("failed to load structured recipe from %q: %w", path, err)
			}

			out := os.Stdout
			if outPath := cmd.String("output"); outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("failed to create output file %q: %w", outPath, err)
				}
				defer f.Close()
				out = f
			}

			if _, err := io.WriteString(out, r.String()); err != nil {
				return fmt.Errorf("failed to write rendered recipe: %w", err)
			}
			return nil
		},
	}
}
