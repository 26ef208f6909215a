// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the orderdesk API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(st, cfg)

# Endpoints

Health:

	GET /health

Order management:

	POST   /orders                  - Create order with items
	GET    /orders                  - List all orders
	GET    /orders/{id}             - Get one order
	PUT    /orders/{id}             - Update order, replacing items
	DELETE /orders/{id}             - Delete order (items cascade)
	POST   /orders/{id}/toggle-paid - Flip the paid flag

Summaries:

	GET /summary/production        - Totals per flavor
	GET /summary/production-by-day - Per-day totals with subtotals
	GET /summary/revenue           - Total revenue and order count

# Handler Initialization

The router creates handler instances with dependency injection:

	orderHandler := handlers.NewOrderHandler(st, cfg)
	summaryHandler := handlers.NewSummaryHandler(st)
*/
package router
