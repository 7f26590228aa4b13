package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes configures all API routes
func SetupRoutes(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(handler.accessLog, handler.localize)

	// Health check and metrics
	r.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Trader routes
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/traders", handler.GetTraders).Methods("GET")
	api.HandleFunc("/traders/{id}", handler.GetTrader).Methods("GET")
	api.HandleFunc("/traders/{id}/trades", handler.GetTraderTrades).Methods("GET")
	api.HandleFunc("/traders/{id}/others", handler.GetOtherTraders).Methods("GET")

	// Trade routes
	api.HandleFunc("/trades/{id}", handler.GetTrade).Methods("GET")

	// Dashboard pages
	r.HandleFunc("/", handler.IndexPage).Methods("GET")
	r.HandleFunc("/traders/{id}", handler.TraderPage).Methods("GET")
	r.HandleFunc("/traders/{id}/trades/{tradeID}", handler.TradePage).Methods("GET")

	return r
}
