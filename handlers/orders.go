// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sweetcookies/orderdesk/cliparse"
	"github.com/sweetcookies/orderdesk/middleware"
	"github.com/sweetcookies/orderdesk/models"
	"github.com/sweetcookies/orderdesk/store"
)

type OrderHandler struct {
	store *store.Store
	cfg   cliparse.Config
}

func NewOrderHandler(st *store.Store, cfg cliparse.Config) *OrderHandler {
	return &OrderHandler{store: st, cfg: cfg}
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.CreateOrderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := h.validateOrder(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	id, err := h.store.CreateOrder(req.Fields(), req.Items)
	if err != nil {
		slog.Error("failed to create order", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	slog.Info("order created", "order_id", id, "customer", req.CustomerName, "day", req.Day)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateOrderResponse{OrderID: id})
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.ListOrders()
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, orders)
}

// GetOrder handles GET /orders/{id}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	order, found, err := h.store.GetOrder(id)
	if err != nil {
		slog.Error("failed to get order", "order_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !found {
		middleware.ErrorResponse(w, http.StatusNotFound, "Order not found")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, order)
}

// UpdateOrder handles PUT /orders/{id}
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	var req models.UpdateOrderRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if msg := h.validateOrder(req); msg != "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, msg)
		return
	}

	err := h.store.UpdateOrder(id, req.Fields(), req.Items)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		slog.Error("failed to update order", "order_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	slog.Info("order updated", "order_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// DeleteOrder handles DELETE /orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	deleted, err := h.store.DeleteOrder(id)
	if err != nil {
		slog.Error("failed to delete order", "order_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete order")
		return
	}
	if !deleted {
		middleware.ErrorResponse(w, http.StatusNotFound, "Order not found")
		return
	}

	slog.Info("order deleted", "order_id", id)

	w.WriteHeader(http.StatusNoContent)
}

// TogglePaid handles POST /orders/{id}/toggle-paid
func (h *OrderHandler) TogglePaid(w http.ResponseWriter, r *http.Request) {
	id, ok := parseOrderID(w, r)
	if !ok {
		return
	}

	paid, err := h.store.TogglePaid(id)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		slog.Error("failed to toggle paid flag", "order_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update order")
		return
	}

	slog.Info("paid flag toggled", "order_id", id, "paid", paid)

	middleware.JSONResponse(w, http.StatusOK, models.TogglePaidResponse{OrderID: id, Paid: paid})
}

// validateOrder enforces the caller-side rules the store deliberately
// does not: non-empty day and customer, positive price, at least one
// item, catalog flavors, positive quantities. Returns "" when valid.
func (h *OrderHandler) validateOrder(req models.CreateOrderRequest) string {
	if req.Day == "" {
		return "day is required"
	}
	if req.CustomerName == "" {
		return "customer_name is required"
	}
	if req.OrderPrice <= 0 {
		return "order_price must be greater than zero"
	}
	if req.ShippingPrice < 0 {
		return "shipping_price cannot be negative"
	}
	if len(req.Items) == 0 {
		return "at least one item is required"
	}
	for _, item := range req.Items {
		if !h.cfg.ValidFlavor(item.Flavor) {
			return fmt.Sprintf("unknown flavor %q", item.Flavor)
		}
		if item.Quantity <= 0 {
			return "item quantity must be greater than zero"
		}
	}
	return ""
}

// parseOrderID reads the {id} path value; on failure it writes the 400
// and reports false.
func parseOrderID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := r.PathValue("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "invalid order id")
		return 0, false
	}
	return id, true
}
