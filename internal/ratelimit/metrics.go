package ratelimit

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var checksTotal = promauto.NewCounterVec(
    prometheus.CounterOpts{
        Name: "ratelimit_checks_total",
        Help: "Total number of rate limit checks by action and outcome",
    },
    []string{"action", "outcome"},
)

func RecordCheck(action, outcome string) {
    checksTotal.WithLabelValues(action, outcome).Inc()
}
