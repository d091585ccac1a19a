package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/recipemd/recipemd/pkg/recipe"
)

func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:                  "fmt",
		EnableShellCompletion: true,
		Usage:                 "Rewrite recipes in canonical form",
		ArgsUsage:             "FILE [FILE...]",
		Description: `Parse each recipe and write back its canonical rendering. A recipe
that already parses cleanly round-trips unchanged; one with
non-canonical quantity spellings (for example "0.5 cups") is rewritten
using the standard fraction forms ("1/2 cup").

With --check, no files are modified: the command lists files whose
content differs from the canonical form and exits with an error if any
are found.

Reading from stdin ("-") always writes the canonical form to stdout.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "check",
				Aliases: []string{"c"},
				Usage:   "Report non-canonical files without rewriting them",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				paths = []string{stdinPath}
			}

			var dirty []string
			for _, path := range paths {
				src, err := readRecipeSource(path)
				if err != nil {
					return err
				}

				canonical := recipe.Parse(src).String()

				if path == stdinPath {
					if _, err := io.WriteString(os.Stdout, canonical); err != nil {
						return fmt.Errorf("failed to write canonical recipe: %w", err)
					}
					continue
				}

				if canonical == src {
					continue
				}

				if cmd.Bool("check") {
					dirty = append(dirty, path)
					continue
				}

				if err := writeRecipeFile(path, canonical); err != nil {
					return err
				}
			}

			if len(dirty) > 0 {
				return fmt.Errorf("files not in canonical form: %s", strings.Join(dirty, ", "))
			}
			return nil
		},
	}
}
