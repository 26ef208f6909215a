// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sweetcookies/orderdesk/middleware"
	"github.com/sweetcookies/orderdesk/models"
	"github.com/sweetcookies/orderdesk/report"
	"github.com/sweetcookies/orderdesk/store"
)

// SummaryHandler serves the derived production and revenue views. Every
// summary is recomputed from the full current order set on request; at
// this data scale recomputation is cheaper than staleness.
type SummaryHandler struct {
	store *store.Store
}

func NewSummaryHandler(st *store.Store) *SummaryHandler {
	return &SummaryHandler{store: st}
}

// GetProduction handles GET /summary/production
func (h *SummaryHandler) GetProduction(w http.ResponseWriter, r *http.Request) {
	orders, ok := h.loadOrders(w)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report.ProductionByFlavor(orders))
}

// GetProductionByDay handles GET /summary/production-by-day
func (h *SummaryHandler) GetProductionByDay(w http.ResponseWriter, r *http.Request) {
	orders, ok := h.loadOrders(w)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report.ProductionByDay(orders))
}

// GetRevenue handles GET /summary/revenue
func (h *SummaryHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	orders, ok := h.loadOrders(w)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.RevenueResponse{
		TotalRevenue: report.TotalRevenue(orders),
		OrderCount:   len(orders),
	})
}

func (h *SummaryHandler) loadOrders(w http.ResponseWriter) ([]models.Order, bool) {
	orders, err := h.store.ListOrders()
	if err != nil {
		slog.Error("failed to load orders for summary", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	return orders, true
}
