// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/sweetcookies/orderdesk/cliparse"
	"github.com/sweetcookies/orderdesk/handlers"
	"github.com/sweetcookies/orderdesk/middleware"
	"github.com/sweetcookies/orderdesk/store"
)

func NewRouter(st *store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(st, cfg)
	summaryHandler := handlers.NewSummaryHandler(st)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Order management
	mux.HandleFunc("POST /orders", middleware.WithLogging(orderHandler.CreateOrder))
	mux.HandleFunc("GET /orders", middleware.WithLogging(orderHandler.ListOrders))
	mux.HandleFunc("GET /orders/{id}", middleware.WithLogging(orderHandler.GetOrder))
	mux.HandleFunc("PUT /orders/{id}", middleware.WithLogging(orderHandler.UpdateOrder))
	mux.HandleFunc("DELETE /orders/{id}", middleware.WithLogging(orderHandler.DeleteOrder))
	mux.HandleFunc("POST /orders/{id}/toggle-paid", middleware.WithLogging(orderHandler.TogglePaid))

	// Production and revenue summaries
	mux.HandleFunc("GET /summary/production", middleware.WithLogging(summaryHandler.GetProduction))
	mux.HandleFunc("GET /summary/production-by-day", middleware.WithLogging(summaryHandler.GetProductionByDay))
	mux.HandleFunc("GET /summary/revenue", middleware.WithLogging(summaryHandler.GetRevenue))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("orderdesk API v1"))
	})

	return mux
}
