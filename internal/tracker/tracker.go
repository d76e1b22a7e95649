package tracker

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hoopstats/internal/account"
	"github.com/mauv0809/hoopstats/internal/gamelog"
	"github.com/mauv0809/hoopstats/internal/metrics"
	"github.com/mauv0809/hoopstats/internal/stats"
	"github.com/mauv0809/hoopstats/internal/storage"
)

// New loads accounts, the session and the game log from s. Statistics are computed
// up front when the stored log is non-empty.
func New(s storage.Storage, m metrics.Metrics) (*Tracker, error) {
	accounts, err := account.New(s)
	if err != nil {
		return nil, err
	}

	records, _, err := storage.LoadJSON[[]gamelog.Record](s, storage.KeyStats)
	if err != nil {
		return nil, fmt.Errorf("failed to load game log: %w", err)
	}

	t := &Tracker{
		storage:  s,
		accounts: accounts,
		games:    gamelog.New(records),
		metrics:  m,
	}
	if t.games.Len() > 0 {
		t.recompute()
	}
	log.Info("Tracker loaded", "games", t.games.Len())
	return t, nil
}

// Register creates a new local account.
func (t *Tracker) Register(username, password string) error {
	if err := t.accounts.Register(username, password); err != nil {
		return err
	}
	t.metrics.IncRegistrations()
	return nil
}

// Login authenticates the user and marks them as the active session.
func (t *Tracker) Login(username, password string) (account.Session, error) {
	session, err := t.accounts.Authenticate(username, password)
	if errors.Is(err, account.ErrInvalidCredentials) {
		t.metrics.IncLoginFailures()
	}
	return session, err
}

// Logout clears the active session.
func (t *Tracker) Logout() error {
	return t.accounts.Logout()
}

// CurrentUser returns the logged-in username, if any.
func (t *Tracker) CurrentUser() (string, bool) {
	return t.accounts.CurrentUser()
}

// AddGameRecord appends record to the log, rewrites the persisted log and
// recomputes all derived statistics. The in-memory log is left unchanged when the
// write fails.
func (t *Tracker) AddGameRecord(record gamelog.Record) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	next := append(t.games.All(), record)
	if err := storage.SaveJSON(t.storage, storage.KeyStats, next); err != nil {
		return fmt.Errorf("failed to save game log: %w", err)
	}
	t.games.Append(record)
	t.metrics.IncGamesRecorded()
	log.Info("Recorded game", "games", t.games.Len(), "points", record.Points, "won", record.Won)

	t.recompute()
	return nil
}

// recompute rebuilds every derived value from the full log. Callers hold t.mu.
func (t *Tracker) recompute() {
	start := time.Now()
	games := t.games.All()

	t.highs = stats.ComputeCareerHighs(games)
	t.totals = stats.ComputeTotals(games)
	if summary, ok := stats.ComputeSummary(games); ok {
		t.summary = &summary
	} else {
		t.summary = nil
	}

	t.metrics.ObserveRecomputeDuration(time.Since(start).Seconds())
	log.Debug("Recomputed statistics", "games", len(games))
}

// Games returns the full history, oldest first.
func (t *Tracker) Games() []gamelog.Record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.games.All()
}

// Recent returns the last n games in their original order.
func (t *Tracker) Recent(n int) []gamelog.Record {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.games.Recent(n)
}

func (t *Tracker) CareerHighs() stats.CareerHighs {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.highs
}

// Summary returns the season summary; false while no games are recorded.
func (t *Tracker) Summary() (stats.Summary, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.summary == nil {
		return stats.Summary{}, false
	}
	return *t.summary, true
}

func (t *Tracker) Totals() stats.Totals {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.totals
}

// Snapshot returns the history and derived statistics in one consistent read.
// With all unset only the last window games are included.
func (t *Tracker) Snapshot(all bool, window int) View {
	t.mu.RLock()
	defer t.mu.RUnlock()

	games := t.games.All()
	if !all {
		games = t.games.Recent(window)
	}
	v := View{
		Games:  games,
		Highs:  t.highs,
		Totals: t.totals,
	}
	if t.summary != nil {
		summary := *t.summary
		v.Summary = &summary
	}
	return v
}
