package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twocycle/config"
	"github.com/katalvlaran/twocycle/search"
	"github.com/katalvlaran/twocycle/server"
)

// grid is an 8-point 4x2 lattice with 10-unit spacing.
var grid = [][2]float64{
	{0, 0}, {10, 0}, {20, 0}, {30, 0},
	{0, 10}, {10, 10}, {20, 10}, {30, 10},
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newServer(t *testing.T, mutate func(*config.Config)) *server.Server {
	t.Helper()
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)
	if mutate != nil {
		mutate(cfg)
	}
	s, err := server.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(s.Wait)

	return s
}

func do(t *testing.T, s *server.Server, method, path string, body any) (int, envelope) {
	t.Helper()
	var rd io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest(method, path, rd))

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func TestHealthz(t *testing.T) {
	s := newServer(t, nil)
	code, env := do(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, code)
	require.True(t, env.Success)
	require.JSONEq(t, `{"active":0}`, string(env.Data))
}

func TestCreateRun_Completes(t *testing.T) {
	s := newServer(t, nil)

	code, env := do(t, s, http.MethodPost, "/api/v1/runs", map[string]any{
		"points":         grid,
		"algo":           "ils",
		"time_limit_ms":  2000,
		"max_iterations": 20,
		"seed":           3,
	})
	require.Equal(t, http.StatusAccepted, code, env.Message)
	require.True(t, env.Success)

	var job server.Job
	require.NoError(t, json.Unmarshal(env.Data, &job))
	require.NotEmpty(t, job.ID)
	require.Equal(t, server.StatePending, job.State)
	require.Equal(t, 8, job.N)

	s.Wait()

	code, env = do(t, s, http.MethodGet, "/api/v1/runs/"+job.ID, nil)
	require.Equal(t, http.StatusOK, code)
	require.NoError(t, json.Unmarshal(env.Data, &job))
	require.Equal(t, server.StateCompleted, job.State)
	require.NotNil(t, job.Result)
	require.Len(t, job.Result.A, 4)
	require.Len(t, job.Result.B, 4)
	// Two 10x10 squares are optimal.
	require.GreaterOrEqual(t, job.Result.Cost, 80)
	require.NotNil(t, job.StartTime)
	require.NotNil(t, job.EndTime)

	code, env = do(t, s, http.MethodGet, "/api/v1/runs", nil)
	require.Equal(t, http.StatusOK, code)
	var jobs []server.Job
	require.NoError(t, json.Unmarshal(env.Data, &jobs))
	require.Len(t, jobs, 1)
	require.Equal(t, job.ID, jobs[0].ID)

	rec := httptest.NewRecorder()
	s.Mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `twocycle_runs_total{algo="ils",result="completed"}`)
}

func TestCreateRun_Distances(t *testing.T) {
	s := newServer(t, nil)
	code, env := do(t, s, http.MethodPost, "/api/v1/runs", map[string]any{
		"distances": [][]int{
			{0, 1, 1, 9, 9},
			{1, 0, 1, 9, 9},
			{1, 1, 0, 9, 9},
			{9, 9, 9, 0, 1},
			{9, 9, 9, 1, 0},
		},
		"iterations": 20,
	})
	require.Equal(t, http.StatusAccepted, code, env.Message)
	var job server.Job
	require.NoError(t, json.Unmarshal(env.Data, &job))

	s.Wait()
	got, ok := s.Jobs().Get(job.ID)
	require.True(t, ok)
	require.Equal(t, server.StateCompleted, got.State)
	require.Equal(t, 5, got.Result.Cost)
}

func TestCreateRun_Rejects(t *testing.T) {
	tests := map[string]struct {
		body any
		want string
	}{
		"malformed json": {body: `{"points":`},
		"unknown algo":   {body: map[string]any{"points": grid, "algo": "sa"}, want: "algo"},
		"no instance":    {body: map[string]any{"algo": "msls"}, want: "either distances or points"},
		"both instances": {body: map[string]any{"points": grid, "distances": [][]int{{0, 1}, {1, 0}, {0, 0}, {0, 0}}}, want: "mutually exclusive"},
		"three points":   {body: map[string]any{"points": grid[:3]}, want: "points"},
		"asymmetric": {body: map[string]any{"distances": [][]int{
			{0, 1, 2, 3}, {1, 0, 4, 5}, {2, 4, 0, 6}, {3, 5, 7, 0},
		}}},
		"long time limit": {body: map[string]any{"points": grid, "algo": "lns", "time_limit_ms": 3_600_000}, want: "exceeds"},
		"pop size":        {body: map[string]any{"points": grid, "pop_size": 1}, want: "pop_size"},
		"unknown search":  {body: map[string]any{"points": grid, "search": "tabu"}, want: "search"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := newServer(t, nil)
			code, env := do(t, s, http.MethodPost, "/api/v1/runs", tt.body)
			require.Equal(t, http.StatusBadRequest, code)
			require.False(t, env.Success)
			require.Contains(t, env.Message, tt.want)
			require.Empty(t, s.Jobs().List())
		})
	}
}

func TestCreateRun_TooManyVertices(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Server.MaxVertices = 5 })
	code, env := do(t, s, http.MethodPost, "/api/v1/runs", map[string]any{"points": grid})
	require.Equal(t, http.StatusBadRequest, code)
	require.Contains(t, env.Message, "limit is 5")
}

func TestCreateRun_Busy(t *testing.T) {
	s := newServer(t, func(c *config.Config) { c.Server.MaxRunning = 1 })
	body := map[string]any{"points": grid, "algo": "lns", "time_limit_ms": 500}

	code, _ := do(t, s, http.MethodPost, "/api/v1/runs", body)
	require.Equal(t, http.StatusAccepted, code)
	code, env := do(t, s, http.MethodPost, "/api/v1/runs", body)
	require.Equal(t, http.StatusTooManyRequests, code)
	require.Equal(t, server.ErrBusy.Error(), env.Message)

	s.Wait()
	code, _ = do(t, s, http.MethodPost, "/api/v1/runs", map[string]any{"points": grid, "iterations": 1})
	require.Equal(t, http.StatusAccepted, code)
}

func TestRun_CrowdedPopulation(t *testing.T) {
	s := newServer(t, nil)
	// No two local optima of this instance differ by a million.
	code, env := do(t, s, http.MethodPost, "/api/v1/runs", map[string]any{
		"points":         grid,
		"algo":           "hae",
		"pop_size":       4,
		"min_diff":       1_000_000,
		"time_limit_ms":  200,
		"max_iterations": 10,
		"search":         "move-list",
	})
	require.Equal(t, http.StatusAccepted, code, env.Message)
	var job server.Job
	require.NoError(t, json.Unmarshal(env.Data, &job))

	s.Wait()
	got, ok := s.Jobs().Get(job.ID)
	require.True(t, ok)
	require.Equal(t, server.StateCompleted, got.State, got.Error)
	require.NotNil(t, got.Result)
	require.Len(t, got.Result.Population, 4)
	require.GreaterOrEqual(t, got.Result.Cost, 80)
	require.Equal(t, search.MoveList, got.Options.Search)
}

func TestGetRun_NotFound(t *testing.T) {
	s := newServer(t, nil)
	code, env := do(t, s, http.MethodGet, "/api/v1/runs/nope", nil)
	require.Equal(t, http.StatusNotFound, code)
	require.False(t, env.Success)
}
