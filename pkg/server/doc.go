// Package server provides the HTTP server scaffolding for the recipemd
// API: routing, middleware, health probes, and graceful shutdown.
//
// The middleware chain applied to API endpoints, outermost first:
//
//	metrics -> request-id -> panic recovery -> rate limit -> request logging
//
// System endpoints (/health, /ready, /metrics) bypass the chain so probes
// and scrapes are never rate limited. Handlers for the recipe endpoints
// themselves are registered by the caller (see pkg/api); this package is
// deliberately ignorant of recipe semantics.
package server
