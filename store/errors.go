// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import "errors"

// Error kinds returned by Store operations. Callers branch with
// errors.Is; the underlying driver error stays in the chain.
var (
	// ErrInit marks a schema bootstrap or migration failure. Fatal to
	// startup; not recoverable by the store.
	ErrInit = errors.New("storage init failed")

	// ErrRead marks an underlying read failure, distinct from a
	// not-found miss.
	ErrRead = errors.New("storage read failed")

	// ErrWrite marks a write or transaction failure. The transaction
	// has been rolled back before this is returned.
	ErrWrite = errors.New("storage write failed")

	// ErrNotFound marks an operation that targeted a non-existent
	// order id.
	ErrNotFound = errors.New("order not found")
)
