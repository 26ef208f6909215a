// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sweetcookies/orderdesk/models"
)

func TestTotalRevenue(t *testing.T) {
	tests := []struct {
		name   string
		orders []models.Order
		want   float64
	}{
		{
			name: "orders with shipping",
			orders: []models.Order{
				{OrderPrice: 10.00, ShippingPrice: 2.50},
				{OrderPrice: 7.25, ShippingPrice: 0.0},
			},
			want: 19.75,
		},
		{
			name:   "no orders",
			orders: nil,
			want:   0,
		},
		{
			name: "rounded to two decimals",
			orders: []models.Order{
				{OrderPrice: 0.1, ShippingPrice: 0.2},
				{OrderPrice: 0.1},
			},
			want: 0.4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalRevenue(tt.orders))
		})
	}
}

func TestProductionByFlavor(t *testing.T) {
	orders := []models.Order{
		{Day: "Mon", Items: []models.LineItem{{Flavor: "Pistacho", Quantity: 3}}},
		{Day: "Mon", Items: []models.LineItem{{Flavor: "Pistacho", Quantity: 2}, {Flavor: "Coco", Quantity: 1}}},
		{Day: "Tue", Items: []models.LineItem{{Flavor: "Coco", Quantity: 4}}},
	}

	got := ProductionByFlavor(orders)

	assert.Equal(t, []FlavorTotal{
		{Flavor: "Coco", Quantity: 5},
		{Flavor: "Pistacho", Quantity: 5},
	}, got)
}

func TestProductionByFlavorSkipsBlankAndZero(t *testing.T) {
	orders := []models.Order{
		{Items: []models.LineItem{
			{Flavor: "", Quantity: 3},
			{Flavor: "Coco", Quantity: 0},
			{Flavor: "Kinder", Quantity: 2},
		}},
	}

	got := ProductionByFlavor(orders)

	assert.Equal(t, []FlavorTotal{{Flavor: "Kinder", Quantity: 2}}, got)
}

func TestProductionByFlavorEmpty(t *testing.T) {
	assert.Empty(t, ProductionByFlavor(nil))
}

func TestProductionByDay(t *testing.T) {
	orders := []models.Order{
		{Day: "Mon", Items: []models.LineItem{{Flavor: "Pistacho", Quantity: 3}}},
		{Day: "Mon", Items: []models.LineItem{{Flavor: "Pistacho", Quantity: 2}, {Flavor: "Coco", Quantity: 1}}},
		{Day: "Tue", Items: []models.LineItem{{Flavor: "Coco", Quantity: 4}}},
	}

	got := ProductionByDay(orders)

	assert.Equal(t, []DayProduction{
		{
			Day: "Mon",
			Flavors: []FlavorTotal{
				{Flavor: "Coco", Quantity: 1},
				{Flavor: "Pistacho", Quantity: 5},
			},
			Subtotal: 6,
		},
		{
			Day:      "Tue",
			Flavors:  []FlavorTotal{{Flavor: "Coco", Quantity: 4}},
			Subtotal: 4,
		},
	}, got)
}

func TestProductionByDayUnspecifiedBucket(t *testing.T) {
	orders := []models.Order{
		{Day: "", Items: []models.LineItem{{Flavor: "Coco", Quantity: 2}}},
		{Day: "Mon", Items: []models.LineItem{{Flavor: "Coco", Quantity: 1}}},
	}

	got := ProductionByDay(orders)

	if assert.Len(t, got, 2) {
		assert.Equal(t, "Mon", got[0].Day)
		assert.Equal(t, DayUnspecified, got[1].Day)
		assert.Equal(t, 2, got[1].Subtotal)
	}
}
