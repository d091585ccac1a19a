package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/recipemd/recipemd/pkg/recipe"
)

func scaleCmd() *cli.Command {
	return &cli.Command{
		Name:                  "scale",
		EnableShellCompletion: true,
		Usage:                 "Scale recipe quantities by a factor",
		ArgsUsage:             "FILE [FILE...]",
		Description: `Parse each recipe, multiply every ingredient quantity by the given
factor, and write the scaled Markdown.

Quantities are scaled exactly: volume measurements are converted to
quarter-teaspoon units, multiplied, and rendered back using the largest
units that fit (cups, tablespoons, teaspoons). Unitless counts are
multiplied directly, and unquantified ingredients pass through unchanged.

# Examples

Double a recipe to stdout:
  recipemd scale --factor 2 recipe.md

Halve a recipe read from stdin:
  cat recipe.md | recipemd scale --factor 0.5 -

Scale several recipes in place:
  recipemd scale --factor 3 --write breakfast.md lunch.md dinner.md`,
		Flags: []cli.Flag{
			&cli.FloatFlag{
				Name:     "factor",
				Aliases:  []string{"x"},
				Usage:    "Scaling factor (must be greater than zero)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Rewrite input files in place instead of printing to stdout",
			},
			outputFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			factor := cmd.Float("factor")
			if factor <= 0 {
				return fmt.Errorf("factor must be greater than zero, got %v", factor)
			}

			paths := cmd.Args().Slice()
			if len(paths) == 0 {
				paths = []string{stdinPath}
			}

			if cmd.Bool("write") {
				return scaleInPlace(ctx, paths, factor)
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

			for _, path := range paths {
				src, err := readRecipeSource(path)
				if err != nil {
					return err
				}
				if _, err := io.WriteString(out, recipe.Parse(src).Scale(factor).String()); err != nil {
					return fmt.Errorf("failed to write scaled recipe: %w", err)
				}
			}
			return nil
		},
	}
}

// scaleInPlace rewrites each file with its scaled rendering, processing
// files concurrently.
func scaleInPlace(ctx context.Context, paths []string, factor float64) error {
	for _, path := range paths {
		if path == stdinPath {
			return fmt.Errorf("cannot combine --write with stdin input")
		}
	}

	g, _ := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var failed []string

	for _, path := range paths {
		path := path
		g.Go(func() error {
			src, err := readRecipeSource(path)
			if err != nil {
				mu.Lock()
				failed = append(failed, path)
				mu.Unlock()
				return err
			}
			return writeRecipeFile(path, recipe.Parse(src).Scale(factor).String())
		})
	}

	if err := g.Wait(); err != nil {
		if len(failed) > 0 {
			return fmt.Errorf("failed to scale %v: %w", failed, err)
		}
		return err
	}
	return nil
}
