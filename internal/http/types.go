package http

import (
	"net/http"

	"github.com/mauv0809/hoopstats/internal/account"
	"github.com/mauv0809/hoopstats/internal/config"
	"github.com/mauv0809/hoopstats/internal/gamelog"
	"github.com/mauv0809/hoopstats/internal/stats"
	"github.com/mauv0809/hoopstats/internal/tracker"
)

// Tracker is the subset of the tracker the HTTP layer needs.
type Tracker interface {
	Register(username, password string) error
	Login(username, password string) (account.Session, error)
	Logout() error
	CurrentUser() (string, bool)
	AddGameRecord(record gamelog.Record) error
	Snapshot(all bool, window int) tracker.View
	Recent(n int) []gamelog.Record
	Games() []gamelog.Record
}

type Server struct {
	Tracker        Tracker
	MetricsHandler http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type statsResponse struct {
	CareerHighs   stats.CareerHighs `json:"career_highs"`
	Summary       *stats.Summary    `json:"summary"`
	WinPercentage *float64          `json:"win_percentage"`
	Totals        stats.Totals      `json:"totals"`
}

type messageResponse struct {
	Message string `json:"message"`
}
