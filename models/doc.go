// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Domain Types

  - Order: a customer order with delivery metadata, pricing, the paid
    flag, and its line items
  - LineItem: one (flavor, quantity) pair belonging to exactly one order
  - OrderFields: the caller-supplied scalar fields of an order, as the
    store's create/update operations accept them

# Request Types

  - CreateOrderRequest: full order payload including items
  - UpdateOrderRequest: same shape; the item list replaces the stored
    set wholesale

# Response Types

  - CreateOrderResponse: order_id
  - TogglePaidResponse: order_id, paid
  - RevenueResponse: total_revenue, order_count
  - ErrorResponse: error, message
*/
package models
