package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"clickstudio/internal/catalog"
	"clickstudio/internal/config"
	"clickstudio/internal/game"
	"clickstudio/internal/serverapp"
)

func newBoltApp(t *testing.T, dataDir string, clock game.Clock) (http.Handler, *stores) {
	t.Helper()

	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Storage.DataDir = dataDir

	st, err := openStores(cfg)
	require.NoError(t, err)

	bal := config.Default()
	bal.EventClickProb = 0
	bal.EventOrderProb = 0

	engine := game.NewEngine(
		st.Players,
		st.World,
		st.Journal,
		catalog.Default(),
		bal,
		cfg.Night,
		clock,
		log.New(io.Discard, "", 0),
	)
	engine.SeedRand(1)

	h, err := serverapp.NewHandler(serverapp.Options{
		Config: cfg,
		Engine: engine,
		Logger: log.New(io.Discard, "", 0),
	})
	require.NoError(t, err)
	return h, st
}

func postJSON(t *testing.T, h http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(http.MethodPost, path, rd)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func getJSON(t *testing.T, h http.Handler, path string, out any) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestBoltBackedFlowSurvivesRestart(t *testing.T) {
	dataDir := t.TempDir()
	clock := game.NewFakeClock(time.Date(2026, 5, 12, 12, 0, 0, 0, time.UTC))

	h, st := newBoltApp(t, dataDir, clock)

	var profile map[string]any
	rec := getJSON(t, h, "/api/players/alice/profile", &profile)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.EqualValues(t, 200, profile["balance"])

	rec = postJSON(t, h, "/api/players/alice/orders/accept", map[string]any{"template": "social_avatar"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = postJSON(t, h, "/api/players/alice/click", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	st.Close()

	// A fresh handler over the same data dir sees the same state.
	h2, st2 := newBoltApp(t, dataDir, clock)
	defer st2.Close()

	profile = nil
	rec = getJSON(t, h2, "/api/players/alice/profile", &profile)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	order, ok := profile["activeOrder"].(map[string]any)
	require.True(t, ok, "expected active order to persist, profile=%v", profile)
	require.Equal(t, "social_avatar", order["templateCode"])
	require.EqualValues(t, 1, order["progress"])
}

func TestOpenStoresMemoryBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()
	cfg.Storage.Backend = "memory"

	st, err := openStores(cfg)
	require.NoError(t, err)
	defer st.Close()

	require.NotNil(t, st.Players)
	require.NotNil(t, st.World)
	require.NotNil(t, st.Journal)
}
