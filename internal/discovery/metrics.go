package discovery

import (
    "github.com/prometheus/client_golang/prometheus"
    "github.com/prometheus/client_golang/prometheus/promauto"
)

var (
    matchRequestsTotal = promauto.NewCounterVec(
        prometheus.CounterOpts{
            Name: "discovery_match_requests_total",
            Help: "Total number of match requests",
        },
        []string{"outcome"},
    )

    matchResultsReturned = promauto.NewHistogram(
        prometheus.HistogramOpts{
            Name:    "discovery_match_results_returned",
            Help:    "Number of matches returned per request",
            Buckets: prometheus.LinearBuckets(0, 1, 11),
        },
    )

    searchResultsReturned = promauto.NewHistogram(
        prometheus.HistogramOpts{
            Name:    "discovery_search_results_returned",
            Help:    "Number of search results returned per request",
            Buckets: prometheus.LinearBuckets(0, 2, 11),
        },
    )

    compatibilityScores = promauto.NewHistogram(
        prometheus.HistogramOpts{
            Name:    "discovery_compatibility_scores",
            Help:    "Distribution of computed compatibility scores",
            Buckets: prometheus.LinearBuckets(0, 10, 11),
        },
    )
)

func RecordMatchRequest(outcome string, results int) {
    matchRequestsTotal.WithLabelValues(outcome).Inc()
    if outcome == "ok" {
        matchResultsReturned.Observe(float64(results))
    }
}

func RecordSearchRequest(results int) {
    searchResultsReturned.Observe(float64(results))
}

func RecordCompatibilityScore(score int) {
    compatibilityScores.Observe(float64(score))
}
