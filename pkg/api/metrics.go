package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recipesParsed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipemd_recipes_parsed_total",
			Help: "Total number of recipes parsed via the API",
		},
	)

	recipesScaled = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recipemd_recipes_scaled_total",
			Help: "Total number of recipes scaled via the API",
		},
	)
)
