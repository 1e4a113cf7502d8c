package dao

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeed(t *testing.T) {
	s := NewTestStore(t)

	fixture := `[
		{"userId": "u1", "title": "Gold ring", "category": "jewelry",
		 "status": "lost", "beachId": "1", "date": "2025-06-10",
		 "tags": ["gold", "ring"], "contactInfo": "ana@example.com"},
		{"userId": "u2", "title": "Blue towel", "category": "other",
		 "status": "found", "beachId": "3", "date": "2025-06-02",
		 "tags": ["towel"], "contactInfo": "clara@example.com"}
	]`
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	n, err := LoadSeed(s, path)
	if err != nil {
		t.Fatalf("LoadSeed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 seeded items, got %d", n)
	}

	items, _ := s.ListAll()
	if len(items) != 2 {
		t.Fatalf("expected 2 stored items, got %d", len(items))
	}
	// Seeded data goes through Create, so it gets real ids and expiry.
	if items[0].ID == "" || items[0].ExpiresAt.IsZero() {
		t.Error("seeded item missing id or expiry")
	}
}

func TestLoadSeedRejectsInvalid(t *testing.T) {
	s := NewTestStore(t)

	fixture := `[{"userId": "u1", "title": "", "category": "jewelry",
		"status": "lost", "beachId": "1", "date": "2025-06-10",
		"contactInfo": "x"}]`
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(fixture), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadSeed(s, path); err == nil {
		t.Fatal("expected a validation error from the seed loader")
	}
}
