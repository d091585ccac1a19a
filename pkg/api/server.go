package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/recipemd/recipemd/pkg/logging"
	"github.com/recipemd/recipemd/pkg/server"
)

const (
	name           = "recipemd-api-server"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/recipemd/recipemd/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Serve starts the API server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve(ctx context.Context, opts ...server.Option) error {
	logging.SetDefaultStructuredLogger(name, version)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	h := NewHandler()

	routes := map[string]http.HandlerFunc{
		"/v1/parse": h.HandleParse,
		"/v1/scale": h.HandleScale,
	}

	serverOpts := append([]server.Option{
		server.WithName(name),
		server.WithVersion(version),
		server.WithHandlers(routes),
	}, opts...)

	s := server.New(serverOpts...)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
