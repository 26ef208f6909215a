// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the durable representation of orders and their line
items over a local sqlite database.

# Opening

Open creates or opens the database file, enables foreign-key
enforcement, creates the schema on first run, and applies additive
migrations to files written by older versions:

	st, err := store.Open("cookies_orders.db")
	if err != nil {
		log.Fatal(err)
	}
	defer st.Close()

The Store holds the only handle to the database; no other component
touches the connection.

# Tables

	orders       one row per customer order
	order_items  (flavor, quantity) rows owned by exactly one order

order_items.order_id references orders(id) with ON DELETE CASCADE, so
deleting an order removes its items atomically. An index on
order_items(order_id) backs the per-order item lookups.

Column names, types, and defaults are a compatibility contract with
existing database files: evolution is additive only, never a drop or
rename. The paid column is the one addition so far; Open backfills it
on old files with its default.

# Transactions

CreateOrder, UpdateOrder, and TogglePaid each run as a single
transaction that is committed or rolled back before the call returns.
UpdateOrder replaces the order's item set wholesale: old items deleted
and new items inserted inside the same transaction, so a half-replaced
set is never observable.

# Errors

Operations fail with one of four sentinel kinds, checked via errors.Is:

	ErrInit      schema bootstrap or migration failure
	ErrRead      underlying read failure
	ErrWrite     write or transaction failure (already rolled back)
	ErrNotFound  operation targeted a non-existent order id

A GetOrder miss is reported through its boolean result rather than an
error. The package never logs; failures carry enough context for the
caller to present.

# What the store does not enforce

Flavor catalog membership, non-empty required fields, and the
at-least-one-item rule are the caller's responsibility. The store will
persist an order with zero items if asked; the HTTP layer rejects that
before it gets here.
*/
package store
