package filter

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeMapped   = "mapped"
	outcomeDeclined = "declined"
)

var dbErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "helix_db_errors_total",
		Help: "Database errors seen by the error filter, labeled by code, host kind and outcome.",
	},
	[]string{"code", "host", "outcome"},
)
