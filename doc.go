// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the orderdesk API server.

Orderdesk tracks customer orders for a small bakery-style business: each
order carries delivery metadata and pricing plus one or more line items
(flavor and quantity), and the server renders production and revenue
summaries from the stored set.

# Starting the Server

The server runs against a local sqlite database file:

	go run main.go -d cookies_orders.db

A .env file next to the binary is loaded if present; real environment
variables win.

# Configuration

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_PATH (-d): sqlite database file (default: cookies_orders.db)
  - FLAVORS (-flavors): comma-separated flavor catalog

# Architecture

The server uses a handler-based architecture with dependency injection:

  - store: durable order storage, schema bootstrap, additive migration
  - report: production and revenue summaries over the stored orders
  - handlers: HTTP request handlers (orders, summaries)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response and domain types
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
