package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/recipemd/recipemd/pkg/recipe"
	"github.com/recipemd/recipemd/pkg/serializer"
)

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Show the structured form of a recipe",
		ArgsUsage:             "FILE",
		Description: `Parse a recipe and print its structured form: the preface, each
ingredient with its parsed quantity, and the instructions.

The structure can be output in JSON, YAML, or table format.

# Examples

Inspect a recipe as YAML:
  recipemd inspect recipe.md

Save the structured form as JSON:
  recipemd inspect recipe.md --format json --output recipe.json`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat := serializer.Format(cmd.String("format"))
			if outFormat.IsUnknown() {
				return fmt.Errorf("unknown output format: %q", outFormat)
			}

			path := cmd.Args().First()
			if path == "" {
				path = stdinPath
			}

			src, err := readRecipeSource(path)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(recipe.Parse(src))
		},
	}
}
