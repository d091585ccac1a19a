package cli

import (
	"context"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/recipemd/recipemd/pkg/api"
	"github.com/recipemd/recipemd/pkg/server"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:                  "serve",
		EnableShellCompletion: true,
		Usage:                 "Run the recipemd HTTP API server",
		Description: `Start the HTTP API server exposing recipe parsing and scaling:

  POST /v1/parse  - parse recipe Markdown into its structured form
  POST /v1/scale  - scale a recipe by a positive factor

System endpoints /health, /ready, and /metrics are also served. The
server shuts down gracefully on SIGINT/SIGTERM.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "Listen port",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.FloatFlag{
				Name:  "rate-limit",
				Value: 100,
				Usage: "Request rate limit per second",
			},
			&cli.IntFlag{
				Name:  "rate-limit-burst",
				Value: 200,
				Usage: "Request burst size",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return api.Serve(ctx,
				server.WithPort(int(cmd.Int("port"))),
				server.WithRateLimit(rate.Limit(cmd.Float("rate-limit")), int(cmd.Int("rate-limit-burst"))),
			)
		},
	}
}
