package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"quantpulse/internal/calculator"
	"quantpulse/internal/collector"
	"quantpulse/internal/metrics"
	"quantpulse/internal/model"
	"quantpulse/internal/projection"
	"quantpulse/internal/scanner"
	"quantpulse/internal/watchlist"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	watchlist *watchlist.Manager
	fetcher   collector.Fetcher
	scanner   *scanner.Scanner
	cache     *scanner.ReportCache
	metrics   *metrics.Metrics

	chartLookbackDays int
}

// NewHandler creates a new Handler.
func NewHandler(wl *watchlist.Manager, fetcher collector.Fetcher, sc *scanner.Scanner, cache *scanner.ReportCache, m *metrics.Metrics, chartLookbackDays int) *Handler {
	if chartLookbackDays <= 0 {
		chartLookbackDays = 504
	}
	return &Handler{
		watchlist:         wl,
		fetcher:           fetcher,
		scanner:           sc,
		cache:             cache,
		metrics:           m,
		chartLookbackDays: chartLookbackDays,
	}
}

// GetWatchlist handles GET /api/v1/watchlist
func (h *Handler) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.watchlist.Symbols())
}

// AddSymbol handles POST /api/v1/watchlist
func (h *Handler) AddSymbol(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Symbol string `json:"symbol"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	symbol := watchlist.Normalize(req.Symbol)
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}
	if !h.watchlist.Add(symbol) {
		http.Error(w, "symbol already tracked", http.StatusConflict)
		return
	}
	respondJSON(w, http.StatusCreated, h.watchlist.Symbols())
}

// RemoveSymbol handles DELETE /api/v1/watchlist/{symbol}
func (h *Handler) RemoveSymbol(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	h.watchlist.Remove(vars["symbol"])
	w.WriteHeader(http.StatusNoContent)
}

// GetScan handles GET /api/v1/scan. It serves the cached report when one
// exists, running a fresh scan on first hit or when ?refresh=1 is passed.
func (h *Handler) GetScan(w http.ResponseWriter, r *http.Request) {
	report := h.cache.Latest()
	if report == nil || r.URL.Query().Get("refresh") == "1" {
		report = h.scanner.Scan(r.Context(), h.watchlist.Symbols())
		// A client disconnect mid-scan fails the remaining tickers; that
		// report must not shadow the cache until the next refresh.
		if r.Context().Err() == nil {
			h.cache.Set(report)
		}
	}
	respondJSON(w, http.StatusOK, report)
}

// chartResponse bundles everything the detail view charts for one symbol.
type chartResponse struct {
	Symbol     string                 `json:"symbol"`
	Bars       []model.OHLCV          `json:"bars"`
	Indicators []model.IndicatorPoint `json:"indicators"`
	Status     model.BreachStatus     `json:"status"`
}

// GetChart handles GET /api/v1/chart/{symbol}
func (h *Handler) GetChart(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	symbol := watchlist.Normalize(vars["symbol"])
	if symbol == "" {
		http.Error(w, "symbol is required", http.StatusBadRequest)
		return
	}

	days := h.chartLookbackDays
	if v := r.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "days must be a positive integer", http.StatusBadRequest)
			return
		}
		days = n
	}

	series, err := h.fetcher.FetchDailyBars(r.Context(), symbol, days)
	if err != nil {
		log.Printf("[WARN] chart fetch %s: %v", symbol, err)
		http.Error(w, "provider fetch failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	ind, err := calculator.ComputeIndicators(series)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, chartResponse{
		Symbol:     symbol,
		Bars:       series.Bars,
		Indicators: ind.Points,
		Status:     calculator.BreachFromIndicators(series, ind),
	})
}

// GetProjection handles GET /api/v1/projection
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	monthly, err := strconv.ParseFloat(q.Get("monthly"), 64)
	if err != nil {
		http.Error(w, "monthly must be a number", http.StatusBadRequest)
		return
	}
	years, err := strconv.Atoi(q.Get("years"))
	if err != nil {
		http.Error(w, "years must be an integer", http.StatusBadRequest)
		return
	}
	rate, err := strconv.ParseFloat(q.Get("rate"), 64)
	if err != nil {
		http.Error(w, "rate must be a number", http.StatusBadRequest)
		return
	}

	proj, err := projection.Project(monthly, years, rate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.metrics.ProjectionsTotal.Inc()
	respondJSON(w, http.StatusOK, proj)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}
