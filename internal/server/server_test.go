package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PlotFarm_Go/internal/catalog"
	"github.com/osse101/PlotFarm_Go/internal/clock"
	"github.com/osse101/PlotFarm_Go/internal/domain"
	"github.com/osse101/PlotFarm_Go/internal/farm"
	"github.com/osse101/PlotFarm_Go/internal/storage"
)

const testAPIKey = "test-key"

type testServer struct {
	handler http.Handler
	clock   *clock.Fake
	store   *storage.MemoryStore
}

func setupServer(t *testing.T, apiKey string) *testServer {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	clk := clock.NewFake(time.Date(2026, 7, 1, 11, 0, 0, 0, time.UTC))
	store := storage.NewMemoryStore()
	svc, err := farm.NewService(cat, farm.DefaultConfig(),
		farm.WithClock(clk),
		farm.WithRandom(func(min, max int) int { return min + (max-min)/2 }),
		farm.WithStore(store, string(store.Driver())),
	)
	require.NoError(t, err)

	srv := NewServer(Config{Port: 0, APIKey: apiKey}, svc, store)
	return &testServer{handler: srv.Handler(), clock: clk, store: store}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	req.Header.Set(HeaderAPIKey, testAPIKey)
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestServer_FarmLoop(t *testing.T) {
	ts := setupServer(t, testAPIKey)

	rec := ts.do(t, http.MethodPost, "/api/v1/farm/plant", `{"x":0,"y":0,"plant":"Wheat"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"ok":true,"message":"Planted Wheat"}`, rec.Body.String())

	rec = ts.do(t, http.MethodPost, "/api/v1/farm/harvest", `{"x":0,"y":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decode[map[string]any](t, rec)["ok"].(bool))

	ts.clock.Advance(2 * time.Minute)
	rec = ts.do(t, http.MethodPost, "/api/v1/farm/harvest", `{"x":0,"y":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	harvest := decode[map[string]any](t, rec)
	assert.Equal(t, "Harvested Wheat! +5 seeds, +10 crops", harvest["message"])

	rec = ts.do(t, http.MethodPost, "/api/v1/farm/sell", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(40), decode[map[string]any](t, rec)["total_credited"])

	rec = ts.do(t, http.MethodPost, "/api/v1/farm/upgrade", `{"x":0,"y":0}`)
	require.Equal(t, http.StatusOK, rec.Code)
	upgrade := decode[map[string]any](t, rec)
	assert.Equal(t, float64(1), upgrade["level"])
	assert.Equal(t, float64(100), upgrade["cost"])

	rec = ts.do(t, http.MethodGet, "/api/v1/inventory", "")
	require.Equal(t, http.StatusOK, rec.Code)
	inv := decode[domain.InventoryView](t, rec)
	assert.Equal(t, 40, inv.Gold)
	assert.Equal(t, 9, inv.Entries["Wheat Seeds"])

	rec = ts.do(t, http.MethodGet, "/api/v1/farm/cell?x=0&y=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	cell := decode[map[string]any](t, rec)
	assert.Nil(t, cell["plant"])
	assert.Equal(t, float64(1), cell["level"])
	assert.Equal(t, "Empty | Upgrade Lv. 1", cell["info"])
}

func TestServer_ViewsAndSnapshots(t *testing.T) {
	ts := setupServer(t, testAPIKey)

	rec := ts.do(t, http.MethodGet, "/api/v1/season", "")
	assert.JSONEq(t, `{"season":"Summer"}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/v1/plants?plantable=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, p := range decode[[]domain.PlantInfo](t, rec) {
		assert.True(t, p.Plantable, p.Name)
	}

	rec = ts.do(t, http.MethodGet, "/api/v1/farm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	board := decode[domain.BoardView](t, rec)
	assert.Len(t, board.Rows, 10)

	// nothing saved yet
	rec = ts.do(t, http.MethodPost, "/api/v1/load", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[map[string]any](t, rec)["found"].(bool))

	ts.do(t, http.MethodPost, "/api/v1/farm/plant", `{"x":3,"y":3,"plant":"Corn"}`)
	rec = ts.do(t, http.MethodPost, "/api/v1/save", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/snapshot", "")
	require.Equal(t, http.StatusOK, rec.Code)
	exported := rec.Body.String()
	assert.Contains(t, exported, `"plant":"Corn"`)

	rec = ts.do(t, http.MethodPut, "/api/v1/snapshot", `{"farm":[[{"plant":null,"plantedTime":null}]],"inventory":{"Gold":3}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec = ts.do(t, http.MethodGet, "/api/v1/farm", "")
	assert.Equal(t, 1, decode[domain.BoardView](t, rec).Width)

	rec = ts.do(t, http.MethodPut, "/api/v1/snapshot", `{"farm":[],"inventory":{}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/load", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[map[string]any](t, rec)["found"].(bool))
	rec = ts.do(t, http.MethodGet, "/api/v1/snapshot", "")
	assert.JSONEq(t, exported, rec.Body.String())
}

func TestServer_Auth(t *testing.T) {
	ts := setupServer(t, testAPIKey)

	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/farm", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	open := setupServer(t, "")
	rec = httptest.NewRecorder()
	open.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/farm", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_Operational(t *testing.T) {
	ts := setupServer(t, testAPIKey)

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		rec := ts.do(t, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := ts.do(t, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_SwaggerDocs(t *testing.T) {
	ts := setupServer(t, testAPIKey)

	// served without an API key
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		BasePath string                     `json:"basePath"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc.BasePath)
	for _, path := range []string{"/farm", "/farm/plant", "/farm/harvest", "/farm/upgrade", "/farm/sell", "/snapshot", "/load"} {
		assert.Contains(t, doc.Paths, path)
	}

	rec = httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "swagger-ui")
}
