// SPDX-License-Identifier: MIT

// Package server - Prometheus collectors, registered on the default registry.
package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twocycle_runs_total",
		Help: "Finished runs by algorithm and result",
	}, []string{"algo", "result"})

	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "twocycle_run_duration_seconds",
		Help:    "Wall time of finished runs",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
	}, []string{"algo"})

	runIterations = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "twocycle_run_iterations",
		Help:    "Driver iterations of finished runs",
		Buckets: prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"algo"})

	runsActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "twocycle_runs_active",
		Help: "Runs currently executing",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "twocycle_http_requests_total",
		Help: "HTTP requests by method and status code",
	}, []string{"method", "status"})
)
