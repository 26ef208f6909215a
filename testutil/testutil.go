// Copyright (c) 2025 SweetCookies.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/sweetcookies/orderdesk/cliparse"
	"github.com/sweetcookies/orderdesk/models"
	"github.com/sweetcookies/orderdesk/store"
)

// SetupTestStore opens a fresh store backed by a temp file that goes
// away with the test.
func SetupTestStore(t *testing.T) *store.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "orders_test.db")
	st, err := store.Open(path)
	if err != nil {
		t.Fatalf("Failed to open test store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	return st
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabasePath: "orders_test.db",
		Flavors:      cliparse.DefaultFlavors,
	}
}

// CreateTestOrder inserts an order with one Pistacho item and returns
// its id.
func CreateTestOrder(t *testing.T, st *store.Store, day, customer string) int64 {
	t.Helper()

	id, err := st.CreateOrder(models.OrderFields{
		Day:          day,
		CustomerName: customer,
		OrderPrice:   10.0,
	}, []models.LineItem{{Flavor: "Pistacho", Quantity: 2}})
	if err != nil {
		t.Fatalf("Failed to create test order: %v", err)
	}
	return id
}

// DoJSON performs a request with a JSON body against the handler and
// returns the recorder.
func DoJSON(t *testing.T, handler http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// DecodeJSON unmarshals a recorded response body into v.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
}
