// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Request types

type CreateOrderRequest struct {
	Day           string     `json:"day"`
	CustomerName  string     `json:"customer_name"`
	OrderPrice    float64    `json:"order_price"`
	ShippingPrice float64    `json:"shipping_price"`
	Address       string     `json:"address"`
	Schedule      string     `json:"schedule"`
	Items         []LineItem `json:"items"`
}

// UpdateOrderRequest carries the full replacement state of an order.
// The item list replaces the stored one wholesale.
type UpdateOrderRequest = CreateOrderRequest

// Response types

type CreateOrderResponse struct {
	OrderID int64 `json:"order_id"`
}

type TogglePaidResponse struct {
	OrderID int64 `json:"order_id"`
	Paid    bool  `json:"paid"`
}

type RevenueResponse struct {
	TotalRevenue float64 `json:"total_revenue"`
	OrderCount   int     `json:"order_count"`
}

// Domain types

// Order is a customer order with delivery metadata, pricing, and the
// line items it owns. ID and RegisteredAt are assigned by the store.
type Order struct {
	ID            int64      `json:"id"`
	Day           string     `json:"day"`
	CustomerName  string     `json:"customer_name"`
	OrderPrice    float64    `json:"order_price"`
	ShippingPrice float64    `json:"shipping_price"`
	Address       string     `json:"address"`
	Schedule      string     `json:"schedule"`
	Paid          bool       `json:"paid"`
	RegisteredAt  string     `json:"registered_at"`
	Items         []LineItem `json:"items"`
}

// OrderFields holds the caller-supplied scalar fields of an order,
// everything except the store-assigned id, paid flag, and timestamp.
type OrderFields struct {
	Day           string
	CustomerName  string
	OrderPrice    float64
	ShippingPrice float64
	Address       string
	Schedule      string
}

// LineItem is one (flavor, quantity) pair belonging to exactly one order.
type LineItem struct {
	Flavor   string `json:"flavor"`
	Quantity int    `json:"quantity"`
}

// Fields extracts the scalar order fields from a create/update request.
func (r CreateOrderRequest) Fields() OrderFields {
	return OrderFields{
		Day:           r.Day,
		CustomerName:  r.CustomerName,
		OrderPrice:    r.OrderPrice,
		ShippingPrice: r.ShippingPrice,
		Address:       r.Address,
		Schedule:      r.Schedule,
	}
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
