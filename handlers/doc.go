// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the orderdesk API.

# Handler Types

Each handler is a struct with its dependencies injected via a
constructor:

  - OrderHandler: order CRUD and the paid-flag toggle
  - SummaryHandler: production and revenue summaries

	orderHandler := handlers.NewOrderHandler(st, cfg)

# Order Operations

	POST   /orders                   → CreateOrder
	GET    /orders                   → ListOrders
	GET    /orders/{id}              → GetOrder
	PUT    /orders/{id}              → UpdateOrder (replaces items wholesale)
	DELETE /orders/{id}              → DeleteOrder
	POST   /orders/{id}/toggle-paid  → TogglePaid

Input validation happens here, before anything reaches the store:
required fields, positive prices and quantities, at least one item, and
flavor membership in the configured catalog. Validation failures are
400, a missing order id is 404, store failures are 500.

# Summaries

	GET /summary/production          → totals per flavor
	GET /summary/production-by-day   → per-day totals with subtotals
	GET /summary/revenue             → order price + shipping over all orders

Summaries are recomputed from the full order set on every request.
*/
package handlers
