package dao

import "testing"

// NewTestStore opens a fresh in-memory store for a test.
func NewTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	return s
}
