package tracker

import (
	"sync"

	"github.com/mauv0809/hoopstats/internal/account"
	"github.com/mauv0809/hoopstats/internal/gamelog"
	"github.com/mauv0809/hoopstats/internal/metrics"
	"github.com/mauv0809/hoopstats/internal/stats"
	"github.com/mauv0809/hoopstats/internal/storage"
)

// Tracker ties the account store, the game log and the derived statistics together.
// Derived values are cached and rebuilt from the full log after every append.
type Tracker struct {
	storage  storage.Storage
	accounts account.AccountStore
	games    *gamelog.Log
	metrics  metrics.Metrics

	highs   stats.CareerHighs
	summary *stats.Summary
	totals  stats.Totals

	mu sync.RWMutex
}

// View is a read-only snapshot of the log and everything derived from it.
// Summary is nil while the log is empty.
type View struct {
	Games   []gamelog.Record  `json:"games"`
	Highs   stats.CareerHighs `json:"career_highs"`
	Summary *stats.Summary    `json:"summary"`
	Totals  stats.Totals      `json:"totals"`
}
