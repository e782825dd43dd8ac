package nutrition

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ingredientsDefined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "nutrictl_ingredients_defined_total",
			Help: "Total number of ingredient definitions registered",
		},
	)

	productAddsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrictl_product_adds_total",
			Help: "Total number of add-ingredient operations",
		},
		[]string{"status"}, // accepted or undefined
	)

	scalingSkippedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nutrictl_nutrient_scaling_skipped_total",
			Help: "Total number of ingredients whose nutrient scaling was skipped",
		},
		[]string{"reason"},
	)
)
