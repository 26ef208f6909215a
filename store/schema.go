// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
)

// Schema for the two order tables. Column names, types, and defaults are
// the persisted-state contract shared with older database files; they
// must not change except by adding columns.
const schema = `
-- Orders
CREATE TABLE IF NOT EXISTS orders (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    day TEXT NOT NULL,
    customer_name TEXT NOT NULL,
    order_price REAL NOT NULL,
    shipping_price REAL DEFAULT 0.0,
    address TEXT,
    schedule TEXT,
    paid INTEGER NOT NULL DEFAULT 0,
    registered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Line items, owned by exactly one order
CREATE TABLE IF NOT EXISTS order_items (
    item_id INTEGER PRIMARY KEY AUTOINCREMENT,
    order_id INTEGER NOT NULL REFERENCES orders (id) ON DELETE CASCADE,
    flavor TEXT NOT NULL,
    quantity INTEGER NOT NULL CHECK (quantity > 0)
);

CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items (order_id);
`

// migrations lists columns added to the orders table after the first
// schema version, keyed by column name. Applied additively at Open when
// the column is missing; columns are never dropped or renamed.
var migrations = map[string]string{
	"paid": `ALTER TABLE orders ADD COLUMN paid INTEGER NOT NULL DEFAULT 0`,
}

// createSchema creates both tables and the item index.
// Safe to call multiple times - uses IF NOT EXISTS.
func createSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w: %w", ErrInit, err)
	}
	return nil
}

// migrate reconciles an existing database file with the current orders
// column set. The column presence check runs once here, not per
// operation.
func migrate(db *sql.DB) error {
	present, err := orderColumns(db)
	if err != nil {
		return err
	}

	for column, alter := range migrations {
		if present[column] {
			continue
		}
		if _, err := db.Exec(alter); err != nil {
			return fmt.Errorf("add column %s: %w: %w", column, ErrInit, err)
		}
	}
	return nil
}

// orderColumns returns the set of column names currently on the orders
// table.
func orderColumns(db *sql.DB) (map[string]bool, error) {
	rows, err := db.Query(`PRAGMA table_info(orders)`)
	if err != nil {
		return nil, fmt.Errorf("inspect orders table: %w: %w", ErrInit, err)
	}
	defer rows.Close()

	columns := make(map[string]bool)
	for rows.Next() {
		var (
			cid     int
			name    string
			ctype   string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &ctype, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scan column info: %w: %w", ErrInit, err)
		}
		columns[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read column info: %w: %w", ErrInit, err)
	}
	return columns, nil
}
