// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/sweetcookies/orderdesk/models"
)

// Store owns the database handle for the order tables. All access to the
// underlying connection goes through it; every multi-row mutation runs
// inside a single transaction so an order's item set is never observable
// half-written.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path, enables foreign-key
// enforcement, bootstraps the schema, and applies any pending additive
// migration. Failures wrap ErrInit.
func Open(path string) (*Store, error) {
	// Cascade deletes depend on foreign_keys, which sqlite defaults
	// off; setting it in the DSN applies it to every pooled connection.
	dsn := path + "?_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w: %w", ErrInit, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w: %w", ErrInit, err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ListOrders returns every order with its items populated, ordered by
// day then registration time ascending. An empty database yields an
// empty slice, not an error.
func (s *Store) ListOrders() ([]models.Order, error) {
	rows, err := s.db.Query(`
		SELECT id, day, customer_name, order_price, shipping_price,
		       address, schedule, paid, registered_at
		FROM orders
		ORDER BY day, registered_at
	`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w: %w", ErrRead, err)
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read orders: %w: %w", ErrRead, err)
	}

	// One items lookup per order; order volumes are small.
	for i := range orders {
		items, err := s.orderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}

	return orders, nil
}

// GetOrder returns the order with its items. The boolean reports whether
// the id exists; a miss is not an error.
func (s *Store) GetOrder(id int64) (models.Order, bool, error) {
	row := s.db.QueryRow(`
		SELECT id, day, customer_name, order_price, shipping_price,
		       address, schedule, paid, registered_at
		FROM orders
		WHERE id = ?
	`, id)

	order, err := scanOrder(row)
	if err == sql.ErrNoRows {
		return models.Order{}, false, nil
	}
	if err != nil {
		return models.Order{}, false, err
	}

	items, err := s.orderItems(id)
	if err != nil {
		return models.Order{}, false, err
	}
	order.Items = items

	return order, true, nil
}

// CreateOrder inserts the order row and all item rows in one
// transaction and returns the assigned id. On any failure the whole
// transaction rolls back and the error wraps ErrWrite.
func (s *Store) CreateOrder(fields models.OrderFields, items []models.LineItem) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin create: %w: %w", ErrWrite, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO orders (day, customer_name, order_price, shipping_price, address, schedule)
		VALUES (?, ?, ?, ?, ?, ?)
	`, fields.Day, fields.CustomerName, fields.OrderPrice, fields.ShippingPrice, fields.Address, fields.Schedule)
	if err != nil {
		return 0, fmt.Errorf("insert order: %w: %w", ErrWrite, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("order id: %w: %w", ErrWrite, err)
	}

	if err := insertItems(tx, id, items); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create: %w: %w", ErrWrite, err)
	}
	return id, nil
}

// UpdateOrder overwrites the order's scalar fields and replaces its
// item set wholesale, all in one transaction. Returns ErrNotFound when
// id does not reference an existing order.
func (s *Store) UpdateOrder(id int64, fields models.OrderFields, items []models.LineItem) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin update: %w: %w", ErrWrite, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE orders
		SET day = ?, customer_name = ?, order_price = ?, shipping_price = ?, address = ?, schedule = ?
		WHERE id = ?
	`, fields.Day, fields.CustomerName, fields.OrderPrice, fields.ShippingPrice, fields.Address, fields.Schedule, id)
	if err != nil {
		return fmt.Errorf("update order: %w: %w", ErrWrite, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update order: %w: %w", ErrWrite, err)
	}
	if affected == 0 {
		return fmt.Errorf("update order %d: %w", id, ErrNotFound)
	}

	if _, err := tx.Exec(`DELETE FROM order_items WHERE order_id = ?`, id); err != nil {
		return fmt.Errorf("clear items: %w: %w", ErrWrite, err)
	}
	if err := insertItems(tx, id, items); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit update: %w: %w", ErrWrite, err)
	}
	return nil
}

// DeleteOrder removes the order; its items go with it via cascade. The
// boolean reports whether a row was actually deleted.
func (s *Store) DeleteOrder(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete order: %w: %w", ErrWrite, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete order: %w: %w", ErrWrite, err)
	}
	return affected > 0, nil
}

// TogglePaid flips the order's paid flag in one transaction and returns
// the resulting state. Returns ErrNotFound when the order does not
// exist.
func (s *Store) TogglePaid(id int64) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("begin toggle: %w: %w", ErrWrite, err)
	}
	defer tx.Rollback()

	var paid bool
	err = tx.QueryRow(`SELECT paid FROM orders WHERE id = ?`, id).Scan(&paid)
	if err == sql.ErrNoRows {
		return false, fmt.Errorf("toggle paid %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return false, fmt.Errorf("read paid flag: %w: %w", ErrRead, err)
	}

	newState := !paid
	if _, err := tx.Exec(`UPDATE orders SET paid = ? WHERE id = ?`, newState, id); err != nil {
		return false, fmt.Errorf("write paid flag: %w: %w", ErrWrite, err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit toggle: %w: %w", ErrWrite, err)
	}
	return newState, nil
}

// insertItems inserts the replacement item rows for an order inside an
// open transaction.
func insertItems(tx *sql.Tx, orderID int64, items []models.LineItem) error {
	for _, item := range items {
		_, err := tx.Exec(`
			INSERT INTO order_items (order_id, flavor, quantity)
			VALUES (?, ?, ?)
		`, orderID, item.Flavor, item.Quantity)
		if err != nil {
			return fmt.Errorf("insert item %q: %w: %w", item.Flavor, ErrWrite, err)
		}
	}
	return nil
}

// orderItems loads the line items belonging to one order.
func (s *Store) orderItems(orderID int64) ([]models.LineItem, error) {
	rows, err := s.db.Query(`
		SELECT flavor, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY item_id
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("query items: %w: %w", ErrRead, err)
	}
	defer rows.Close()

	items := []models.LineItem{}
	for rows.Next() {
		var item models.LineItem
		if err := rows.Scan(&item.Flavor, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan item: %w: %w", ErrRead, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w: %w", ErrRead, err)
	}
	return items, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrder maps one orders row into a typed Order, field by field.
// Optional text columns may be NULL in old database files.
func scanOrder(row rowScanner) (models.Order, error) {
	var (
		order    models.Order
		shipping sql.NullFloat64
		address  sql.NullString
		schedule sql.NullString
	)
	err := row.Scan(
		&order.ID, &order.Day, &order.CustomerName, &order.OrderPrice,
		&shipping, &address, &schedule, &order.Paid, &order.RegisteredAt,
	)
	if err == sql.ErrNoRows {
		return models.Order{}, err
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("scan order: %w: %w", ErrRead, err)
	}

	order.ShippingPrice = shipping.Float64
	order.Address = address.String
	order.Schedule = schedule.String
	return order, nil
}
