// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthSuccesses counts successful logins.
	AuthSuccesses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_successes_total",
		Help: "Total number of successful authentications.",
	})

	// AuthFailures counts rejected logins (unknown email or bad password,
	// which are deliberately not distinguished).
	AuthFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auth_failures_total",
		Help: "Total number of failed authentications.",
	})

	// TokensIssued counts minted session tokens.
	TokensIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "session_tokens_issued_total",
		Help: "Total number of session tokens issued.",
	})

	// BalanceAdjustments counts applied ledger increments.
	BalanceAdjustments = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ledger_balance_adjustments_total",
		Help: "Total number of applied balance adjustments.",
	})

	// HTTPRequests counts requests by method, route pattern, and status class.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests handled.",
	}, []string{"method", "route", "status"})

	// HTTPDuration observes request latency by route pattern.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency distribution.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
