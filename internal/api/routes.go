package api

import (
	"github.com/gorilla/mux"
)

// SetupRoutes configures all API routes.
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	r.Handle("/metrics", handler.metrics.Handler()).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/watchlist", handler.GetWatchlist).Methods("GET")
	api.HandleFunc("/watchlist", handler.AddSymbol).Methods("POST")
	api.HandleFunc("/watchlist/{symbol}", handler.RemoveSymbol).Methods("DELETE")
	api.HandleFunc("/scan", handler.GetScan).Methods("GET")
	api.HandleFunc("/chart/{symbol}", handler.GetChart).Methods("GET")
	api.HandleFunc("/projection", handler.GetProjection).Methods("GET")

	return r
}
