package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/hoopstats/internal/account"
	"github.com/mauv0809/hoopstats/internal/gamelog"
)

const maxBodyBytes = 4 << 10

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) RegisterHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		if err := decodeBody(w, r, &creds); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid JSON"})
			return
		}

		err := s.Tracker.Register(creds.Username, creds.Password)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, messageResponse{Message: "Registration successful!"})
		case errors.Is(err, account.ErrEmptyField):
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Username and password cannot be empty."})
		case errors.Is(err, account.ErrAlreadyExists):
			writeJSON(w, http.StatusConflict, messageResponse{Message: "Username already exists."})
		default:
			log.Error("Failed to register account", "error", err, "request_id", requestIDFromContext(r))
			http.Error(w, "Failed to register account", http.StatusInternalServerError)
		}
	}
}

func (s *Server) LoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds credentials
		if err := decodeBody(w, r, &creds); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid JSON"})
			return
		}

		session, err := s.Tracker.Login(creds.Username, creds.Password)
		switch {
		case err == nil:
			writeJSON(w, http.StatusOK, session)
		case errors.Is(err, account.ErrInvalidCredentials):
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Invalid username or password"})
		default:
			log.Error("Failed to log in", "error", err, "request_id", requestIDFromContext(r))
			http.Error(w, "Failed to log in", http.StatusInternalServerError)
		}
	}
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.Tracker.Logout(); err != nil {
			log.Error("Failed to log out", "error", err, "request_id", requestIDFromContext(r))
			http.Error(w, "Failed to log out", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) SessionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := s.Tracker.CurrentUser()
		if !ok {
			writeJSON(w, http.StatusUnauthorized, messageResponse{Message: "Not logged in"})
			return
		}
		writeJSON(w, http.StatusOK, account.Session{Username: username})
	}
}

// AddGameHandler appends a game and responds with the refreshed full view.
func (s *Server) AddGameHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var record gamelog.Record
		if err := decodeBody(w, r, &record); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: "Invalid JSON"})
			return
		}
		if err := record.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, messageResponse{Message: err.Error()})
			return
		}

		if err := s.Tracker.AddGameRecord(record); err != nil {
			log.Error("Failed to record game", "error", err, "username", usernameFromContext(r), "request_id", requestIDFromContext(r))
			http.Error(w, "Failed to record game", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, s.Tracker.Snapshot(true, s.Cfg.HistoryWindow))
	}
}

// ListGamesHandler returns the last few games, or every game with all=true.
func (s *Server) ListGamesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("all") == "true" {
			writeJSON(w, http.StatusOK, s.Tracker.Games())
			return
		}
		writeJSON(w, http.StatusOK, s.Tracker.Recent(s.Cfg.HistoryWindow))
	}
}

func (s *Server) StatsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := s.Tracker.Snapshot(false, 0)
		resp := statsResponse{
			CareerHighs: view.Highs,
			Summary:     view.Summary,
			Totals:      view.Totals,
		}
		if view.Summary != nil {
			pct := view.Summary.WinPercentage()
			resp.WinPercentage = &pct
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// decodeBody decodes a JSON request body of at most maxBodyBytes into v.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}
