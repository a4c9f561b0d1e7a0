package credit

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		handler.MountRoutes(r)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestCalculateHandler(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/credits/calculate", map[string]any{
		"amount":           "$3,650.00",
		"purchase_date":    "2024-01-01",
		"duration_years":   1,
		"calculation_type": "custom",
		"calculation_date": "2024-07-01",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.True(t, out.Valid)
	assert.Equal(t, "2025-01-01", out.ExpirationDate)
	assert.Equal(t, 184, out.DaysRemaining)
	assert.Equal(t, "$10.00", out.CreditPerDayDisplay)
	assert.Equal(t, "$1,840.00", out.TotalCreditDisplay)
}

func TestCalculateHandlerWithUpgrade(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/credits/calculate", map[string]any{
		"amount":           "3650",
		"purchase_date":    "2024-01-01",
		"duration_years":   1,
		"calculation_type": "custom",
		"calculation_date": "2024-07-01",
		"new_license_cost": "5000",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "$3,160.00", out.WhatTheyOweDisplay)
}

func TestCalculateHandlerInvalidDateIsSentinelNotError(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/credits/calculate", map[string]any{
		"amount":           "100",
		"purchase_date":    "not-a-date",
		"duration_years":   1,
		"calculation_type": "today",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CalculateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.False(t, out.Valid)
	assert.Equal(t, "N/A", out.TotalCreditDisplay)
	assert.Equal(t, "N/A", out.ExpirationDateDisplay)
}

func TestCalculateHandlerRejectsBadDuration(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/credits/calculate", map[string]any{
		"amount":           "100",
		"purchase_date":    "2024-01-01",
		"duration_years":   5,
		"calculation_type": "today",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCalculateMultiHandler(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/credits/calculate-multi", map[string]any{
		"calculation_type": "custom",
		"calculation_date": "2024-07-01",
		"lines": []map[string]any{
			{"name": "base", "amount": "3650", "start_date": "2024-01-01", "duration_years": 1},
			{"name": "bad", "amount": "", "start_date": "2024-01-01", "duration_years": 1},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out CalculateMultiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Lines, 2)
	assert.True(t, out.Lines[0].Valid)
	assert.False(t, out.Lines[1].Valid)
	assert.Equal(t, "N/A", out.Lines[1].CreditDisplay)
	assert.InDelta(t, out.Lines[0].Credit, out.TotalCredit, 1e-9)
}

func TestCalculateMultiHandlerRequiresLines(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/api/credits/calculate-multi", map[string]any{
		"calculation_type": "today",
		"lines":            []map[string]any{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
