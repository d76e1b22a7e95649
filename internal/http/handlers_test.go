package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mauv0809/hoopstats/internal/config"
	"github.com/mauv0809/hoopstats/internal/database"
	"github.com/mauv0809/hoopstats/internal/gamelog"
	"github.com/mauv0809/hoopstats/internal/metrics"
	"github.com/mauv0809/hoopstats/internal/stats"
	"github.com/mauv0809/hoopstats/internal/storage"
	"github.com/mauv0809/hoopstats/internal/tracker"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestServer initializes a new server with a test database.
func setupTestServer(t *testing.T) (*Server, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	metricsSvc := metrics.NewService(reg)
	metricsHandler := metrics.NewMetricsHandler(reg)

	tr, err := tracker.New(storage.New(db), metricsSvc)
	require.NoError(t, err)

	server := NewServer(tr, metricsHandler, config.Config{HistoryWindow: 4})
	return server, dbTeardown
}

func do(t *testing.T, server *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)
	return rr
}

func loginAs(t *testing.T, server *Server, username, password string) {
	t.Helper()

	creds := `{"username":"` + username + `","password":"` + password + `"}`
	require.Equal(t, http.StatusCreated, do(t, server, "POST", "/register", creds).Code)
	require.Equal(t, http.StatusOK, do(t, server, "POST", "/login", creds).Code)
}

func TestHealthCheckHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	rr := do(t, server, "GET", "/health", "")

	assert.Equal(t, http.StatusOK, rr.Code, "handler returned wrong status code")
	assert.Equal(t, "OK!", rr.Body.String(), "handler returned unexpected body")
	assert.NotEmpty(t, rr.Header().Get(requestIDHeader), "every response carries a request id")
}

func TestRequestIDIsEchoed(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	req := httptest.NewRequest("GET", "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	server.Router.ServeHTTP(rr, req)

	assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))
}

func TestRegisterHandler(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	rr := do(t, server, "POST", "/register", `{"username":"alice","password":"pw1"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), "Registration successful!")

	rr = do(t, server, "POST", "/register", `{"username":"alice","password":"pw2"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = do(t, server, "POST", "/register", `{"username":"  ","password":"pw"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = do(t, server, "POST", "/register", `not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoginLogoutHandlers(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	assert.Equal(t, http.StatusUnauthorized, do(t, server, "GET", "/session", "").Code)

	require.Equal(t, http.StatusCreated, do(t, server, "POST", "/register", `{"username":"alice","password":"pw1"}`).Code)

	rr := do(t, server, "POST", "/login", `{"username":"alice","password":"pw2"}`)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), "Invalid username or password")

	rr = do(t, server, "POST", "/login", `{"username":"alice","password":"pw1"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"username":"alice"}`, rr.Body.String())

	rr = do(t, server, "GET", "/session", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"username":"alice"}`, rr.Body.String())

	assert.Equal(t, http.StatusNoContent, do(t, server, "POST", "/logout", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, server, "GET", "/session", "").Code)
}

func TestGameRoutesRequireSession(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	assert.Equal(t, http.StatusUnauthorized, do(t, server, "POST", "/games", `{"points":10}`).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, server, "GET", "/games", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, server, "GET", "/stats", "").Code)
}

func TestAddGameAndStats(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()
	loginAs(t, server, "alice", "pw1")

	t.Run("empty log has no summary", func(t *testing.T) {
		rr := do(t, server, "GET", "/stats", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"career_highs": {"points":0,"assists":0,"rebounds":0,"blocks":0,"steals":0},
			"summary": null,
			"win_percentage": null,
			"totals": {"points":0,"assists":0,"rebounds":0,"blocks":0,"steals":0,"games":0}
		}`, rr.Body.String())
	})

	rr := do(t, server, "POST", "/games", `{"points":10,"assists":5,"rebounds":3,"blocks":1,"steals":2,"won":true}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	var view tracker.View
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	assert.Len(t, view.Games, 1)
	require.NotNil(t, view.Summary)

	rr = do(t, server, "POST", "/games", `{"points":20,"assists":2,"rebounds":8,"blocks":0,"steals":1,"won":false}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	t.Run("stats for the two game scenario", func(t *testing.T) {
		rr := do(t, server, "GET", "/stats", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"career_highs": {"points":20,"assists":5,"rebounds":8,"blocks":1,"steals":2},
			"summary": {"wins":1,"losses":1,"averages":{"points":15,"assists":3.5,"rebounds":5.5,"blocks":0.5,"steals":1.5}},
			"win_percentage": 50,
			"totals": {"points":30,"assists":7,"rebounds":11,"blocks":1,"steals":3,"games":2}
		}`, rr.Body.String())
	})

	t.Run("rejects negative values", func(t *testing.T) {
		rr := do(t, server, "POST", "/games", `{"points":-1}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "points cannot be negative")
	})

	t.Run("rejects values above the per-game cap", func(t *testing.T) {
		rr := do(t, server, "POST", "/games", `{"steals":9223372036854775807}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "steals cannot exceed 1000")
	})

	t.Run("rejects oversized bodies", func(t *testing.T) {
		body := `{"points":1,"padding":"` + strings.Repeat("x", maxBodyBytes) + `"}`
		rr := do(t, server, "POST", "/games", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, 30, statsTotals(t, server).Points, "rejected games are not recorded")
	})

	t.Run("rejects non-numeric values", func(t *testing.T) {
		rr := do(t, server, "POST", "/games", `{"points":"lots"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func statsTotals(t *testing.T, server *Server) stats.Totals {
	t.Helper()

	var resp statsResponse
	rr := do(t, server, "GET", "/stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Totals
}

func TestRegisterHandlerRejectsOversizedBody(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()

	body := `{"username":"alice","password":"` + strings.Repeat("p", maxBodyBytes) + `"}`
	assert.Equal(t, http.StatusBadRequest, do(t, server, "POST", "/register", body).Code)
	assert.Equal(t, http.StatusUnauthorized, do(t, server, "POST", "/login", `{"username":"alice","password":"x"}`).Code)
}

func TestListGamesHandlerWindow(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()
	loginAs(t, server, "alice", "pw1")

	for i := 1; i <= 6; i++ {
		body, err := json.Marshal(gamelog.Record{Points: i})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, do(t, server, "POST", "/games", string(body)).Code)
	}

	var recent []gamelog.Record
	rr := do(t, server, "GET", "/games", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &recent))
	require.Len(t, recent, 4)
	assert.Equal(t, 3, recent[0].Points)
	assert.Equal(t, 6, recent[3].Points)

	var all []gamelog.Record
	rr = do(t, server, "GET", "/games?all=true", "")
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &all))
	assert.Len(t, all, 6)
}

func TestMetricsEndpoint(t *testing.T) {
	server, teardown := setupTestServer(t)
	defer teardown()
	loginAs(t, server, "alice", "pw1")
	require.Equal(t, http.StatusCreated, do(t, server, "POST", "/games", `{"points":1}`).Code)

	rr := do(t, server, "GET", "/metrics", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "hoopstats_games_recorded_total 1")
	assert.Contains(t, rr.Body.String(), "hoopstats_registrations_total 1")
}
