// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"math"
	"sort"

	"github.com/sweetcookies/orderdesk/models"
)

// DayUnspecified buckets orders whose day label is blank.
const DayUnspecified = "unspecified"

// FlavorTotal is the production quantity for one flavor.
type FlavorTotal struct {
	Flavor   string `json:"flavor"`
	Quantity int    `json:"quantity"`
}

// DayProduction is the per-flavor production for one delivery day plus
// the day's quantity subtotal.
type DayProduction struct {
	Day      string        `json:"day"`
	Flavors  []FlavorTotal `json:"flavors"`
	Subtotal int           `json:"subtotal"`
}

// TotalRevenue sums order price plus shipping over all orders, rounded
// to two decimals. Empty input yields 0.
func TotalRevenue(orders []models.Order) float64 {
	var total float64
	for _, order := range orders {
		total += order.OrderPrice + order.ShippingPrice
	}
	return math.Round(total*100) / 100
}

// ProductionByFlavor sums item quantities across all orders, grouped by
// flavor, emitted in lexicographic flavor order. Items with a blank
// flavor or non-positive quantity are skipped.
func ProductionByFlavor(orders []models.Order) []FlavorTotal {
	totals := make(map[string]int)
	for _, order := range orders {
		for _, item := range order.Items {
			if item.Flavor == "" || item.Quantity <= 0 {
				continue
			}
			totals[item.Flavor] += item.Quantity
		}
	}
	return sortedTotals(totals)
}

// ProductionByDay partitions production first by delivery day, then by
// flavor within each day, and reports a quantity subtotal per day. Days
// and flavors are both emitted in lexicographic order; orders without a
// day label fall under DayUnspecified.
func ProductionByDay(orders []models.Order) []DayProduction {
	byDay := make(map[string]map[string]int)
	for _, order := range orders {
		day := order.Day
		if day == "" {
			day = DayUnspecified
		}
		for _, item := range order.Items {
			if item.Flavor == "" || item.Quantity <= 0 {
				continue
			}
			if byDay[day] == nil {
				byDay[day] = make(map[string]int)
			}
			byDay[day][item.Flavor] += item.Quantity
		}
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]DayProduction, 0, len(days))
	for _, day := range days {
		flavors := sortedTotals(byDay[day])
		subtotal := 0
		for _, ft := range flavors {
			subtotal += ft.Quantity
		}
		result = append(result, DayProduction{Day: day, Flavors: flavors, Subtotal: subtotal})
	}
	return result
}

func sortedTotals(totals map[string]int) []FlavorTotal {
	result := make([]FlavorTotal, 0, len(totals))
	for flavor, quantity := range totals {
		result = append(result, FlavorTotal{Flavor: flavor, Quantity: quantity})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Flavor < result[j].Flavor })
	return result
}
