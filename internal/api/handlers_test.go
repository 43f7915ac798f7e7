package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quantpulse/internal/collector"
	"quantpulse/internal/metrics"
	"quantpulse/internal/model"
	"quantpulse/internal/scanner"
	"quantpulse/internal/watchlist"
)

func newTestServer(t *testing.T, fetcher collector.Fetcher, symbols []string) *httptest.Server {
	t.Helper()
	m := metrics.New()
	wl := watchlist.NewManager(symbols)
	sc := scanner.NewScanner(fetcher, m, 250)
	h := NewHandler(wl, fetcher, sc, scanner.NewReportCache(), m, 504)
	srv := httptest.NewServer(SetupRoutes(h))
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestWatchlistEndpoints(t *testing.T) {
	srv := newTestServer(t, &collector.MockFetcher{BasePrice: 100}, []string{"VOO", "NVDA"})

	// List
	resp, err := http.Get(srv.URL + "/api/v1/watchlist")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var symbols []string
	decodeBody(t, resp, &symbols)
	assert.Equal(t, []string{"VOO", "NVDA"}, symbols)

	// Add
	resp, err = http.Post(srv.URL+"/api/v1/watchlist", "application/json",
		strings.NewReader(`{"symbol":"tsla"}`))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decodeBody(t, resp, &symbols)
	assert.Equal(t, []string{"VOO", "NVDA", "TSLA"}, symbols)

	// Duplicate add
	resp, err = http.Post(srv.URL+"/api/v1/watchlist", "application/json",
		strings.NewReader(`{"symbol":"TSLA"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Empty add
	resp, err = http.Post(srv.URL+"/api/v1/watchlist", "application/json",
		strings.NewReader(`{"symbol":"  "}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Remove
	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/watchlist/NVDA", nil)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/api/v1/watchlist")
	require.NoError(t, err)
	decodeBody(t, resp, &symbols)
	assert.Equal(t, []string{"VOO", "TSLA"}, symbols)
}

func TestScanEndpoint_PartialFailure(t *testing.T) {
	fetcher := &collector.MockFetcher{
		BasePrice: 100,
		Errors:    map[string]error{"BAD": errors.New("lookup failed")},
	}
	srv := newTestServer(t, fetcher, []string{"VOO", "BAD", "NVDA"})

	resp, err := http.Get(srv.URL + "/api/v1/scan")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report model.ScanReport
	decodeBody(t, resp, &report)
	require.Len(t, report.Results, 3)
	assert.False(t, report.Results[0].Failed)
	assert.True(t, report.Results[1].Failed)
	assert.False(t, report.Results[2].Failed)
	assert.NotEmpty(t, report.ID)
}

func TestScanEndpoint_ServesCachedReport(t *testing.T) {
	srv := newTestServer(t, &collector.MockFetcher{BasePrice: 100}, []string{"VOO"})

	resp, err := http.Get(srv.URL + "/api/v1/scan")
	require.NoError(t, err)
	var first model.ScanReport
	decodeBody(t, resp, &first)

	resp, err = http.Get(srv.URL + "/api/v1/scan")
	require.NoError(t, err)
	var second model.ScanReport
	decodeBody(t, resp, &second)
	assert.Equal(t, first.ID, second.ID, "second hit must serve the cached report")

	resp, err = http.Get(srv.URL + "/api/v1/scan?refresh=1")
	require.NoError(t, err)
	var third model.ScanReport
	decodeBody(t, resp, &third)
	assert.NotEqual(t, first.ID, third.ID, "refresh must run a new scan")
}

func TestScanEndpoint_AbortedRequestNotCached(t *testing.T) {
	fetcher := &collector.MockFetcher{BasePrice: 100}
	m := metrics.New()
	wl := watchlist.NewManager([]string{"VOO"})
	sc := scanner.NewScanner(fetcher, m, 250)
	cache := scanner.NewReportCache()
	h := NewHandler(wl, fetcher, sc, cache, m, 504)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // client went away before the scan finished
	req := httptest.NewRequest(http.MethodGet, "/api/v1/scan", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.GetScan(rec, req)

	assert.Nil(t, cache.Latest(), "a scan run under a dead request must not become the cached report")

	// A healthy request afterwards caches normally.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/scan", nil)
	rec = httptest.NewRecorder()
	h.GetScan(rec, req)
	assert.NotNil(t, cache.Latest())
}

func TestChartEndpoint(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Series: map[string][]model.OHLCV{"VOO": collector.GenerateMockBars(400, 504)},
	}
	srv := newTestServer(t, fetcher, []string{"VOO"})

	resp, err := http.Get(srv.URL + "/api/v1/chart/VOO")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chart struct {
		Symbol     string                 `json:"symbol"`
		Bars       []model.OHLCV          `json:"bars"`
		Indicators []model.IndicatorPoint `json:"indicators"`
		Status     model.BreachStatus     `json:"status"`
	}
	decodeBody(t, resp, &chart)
	assert.Equal(t, "VOO", chart.Symbol)
	require.Len(t, chart.Indicators, len(chart.Bars), "indicators must align 1:1 with bars")
	assert.Nil(t, chart.Indicators[0].MA200)
	assert.NotNil(t, chart.Indicators[len(chart.Indicators)-1].MA200)
	assert.NotEqual(t, model.BreachUnknown, chart.Status)
}

func TestChartEndpoint_FetchFailure(t *testing.T) {
	fetcher := &collector.MockFetcher{
		Errors: map[string]error{"GONE": errors.New("no data")},
	}
	srv := newTestServer(t, fetcher, nil)

	resp, err := http.Get(srv.URL + "/api/v1/chart/GONE")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestChartEndpoint_BadDays(t *testing.T) {
	srv := newTestServer(t, &collector.MockFetcher{BasePrice: 100}, nil)

	resp, err := http.Get(srv.URL + "/api/v1/chart/VOO?days=zero")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProjectionEndpoint(t *testing.T) {
	srv := newTestServer(t, &collector.MockFetcher{BasePrice: 100}, nil)

	resp, err := http.Get(srv.URL + "/api/v1/projection?monthly=10000&years=10&rate=10")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var proj model.DcaProjection
	decodeBody(t, resp, &proj)
	require.Len(t, proj.Points, 120)
	assert.InDelta(t, 1200000, proj.Summary.FinalPrincipal, 1e-6)
	assert.Greater(t, proj.Summary.FinalValue, proj.Summary.FinalPrincipal)
}

func TestProjectionEndpoint_InvalidInput(t *testing.T) {
	srv := newTestServer(t, &collector.MockFetcher{BasePrice: 100}, nil)

	for _, query := range []string{
		"monthly=abc&years=10&rate=10",
		"monthly=1000&years=0&rate=10",
		"monthly=1000&years=10&rate=99",
		"monthly=-5&years=10&rate=10",
		"years=10&rate=10",
	} {
		resp, err := http.Get(srv.URL + "/api/v1/projection?" + query)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "query %q", query)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t, &collector.MockFetcher{BasePrice: 100}, []string{"VOO"})

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var health map[string]string
	decodeBody(t, resp, &health)
	assert.Equal(t, "healthy", health["status"])

	// Run a scan so the counters move, then confirm exposition works.
	resp, err = http.Get(srv.URL + "/api/v1/scan")
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
