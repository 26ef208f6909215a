// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report computes derived views over the full order set: total
revenue, production totals per flavor, and production totals per
delivery day.

All three functions are pure and deterministic. They take the orders
already fetched from the store, never touch storage themselves, and are
cheap enough to recompute on every display refresh, so nothing is
cached between calls.

Flavors and days are emitted in lexicographic order. Orders without a
day label group under DayUnspecified; items with a blank flavor or
non-positive quantity are skipped.
*/
package report
