package http

import (
	"net/http"

	"github.com/mauv0809/hoopstats/internal/config"
)

func NewServer(tracker Tracker, metricsHandler http.Handler, cfg config.Config) *Server {
	server := &Server{
		Tracker:        tracker,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /register", Chain(s.RegisterHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /login", Chain(s.LoginHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /logout", Chain(s.LogoutHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /session", Chain(s.SessionHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /games", Chain(s.AddGameHandler(), requestIDMiddleware, paramsMiddleware, sessionMiddleware(s.Tracker)))
	s.Router.Handle("GET /games", Chain(s.ListGamesHandler(), requestIDMiddleware, paramsMiddleware, sessionMiddleware(s.Tracker)))
	s.Router.Handle("GET /stats", Chain(s.StatsHandler(), requestIDMiddleware, paramsMiddleware, sessionMiddleware(s.Tracker)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
