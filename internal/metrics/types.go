package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	Registrations      prometheus.Counter
	LoginFailures      prometheus.Counter
	GamesRecorded      prometheus.Counter
	RecomputeDuration  prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
