package metrics

// Metrics defines the interface for collecting application metrics.
type Metrics interface {
	IncRegistrations()
	IncLoginFailures()
	IncGamesRecorded()
	ObserveRecomputeDuration(duration float64)
	SetStartupTime(duration float64)
}
