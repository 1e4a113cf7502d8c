package dao

import (
	"errors"
	"testing"
	"time"
)

func testInput() CreateInput {
	return CreateInput{
		Title:       "Gold ring",
		Description: "Thin gold ring with engraved initials",
		Category:    CategoryJewelry,
		Status:      StatusLost,
		BeachID:     "1",
		Date:        time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Tags:        []string{"gold", "ring"},
		ContactInfo: "ana@example.com",
	}
}

func TestCreateAndGet(t *testing.T) {
	s := NewTestStore(t)

	item, err := s.Create("u1", testInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID == "" {
		t.Error("expected an assigned id")
	}
	if item.UserID != "u1" {
		t.Errorf("expected userId 'u1', got %q", item.UserID)
	}
	wantExpiry := item.CreatedAt.AddDate(0, 0, DefaultExpiryDays)
	if !item.ExpiresAt.Equal(wantExpiry) {
		t.Errorf("expected expiry %v, got %v", wantExpiry, item.ExpiresAt)
	}

	got, err := s.Get(item.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Gold ring" {
		t.Errorf("expected title 'Gold ring', got %q", got.Title)
	}
}

func TestCreateUnauthenticated(t *testing.T) {
	s := NewTestStore(t)

	_, err := s.Create("", testInput())
	if !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestCreateValidation(t *testing.T) {
	s := NewTestStore(t)

	cases := []struct {
		field  string
		mutate func(*CreateInput)
	}{
		{"title", func(in *CreateInput) { in.Title = "" }},
		{"category", func(in *CreateInput) { in.Category = "furniture" }},
		{"status", func(in *CreateInput) { in.Status = StatusClaimed }},
		{"contactInfo", func(in *CreateInput) { in.ContactInfo = "" }},
		{"date", func(in *CreateInput) { in.Date = time.Time{} }},
		{"beachId", func(in *CreateInput) { in.BeachID = "" }},
	}
	for _, c := range cases {
		in := testInput()
		c.mutate(&in)
		_, err := s.Create("u1", in)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected ValidationError, got %v", c.field, err)
		}
		if verr.Field != c.field {
			t.Errorf("expected field %q, got %q", c.field, verr.Field)
		}
	}
}

func TestCreateNormalizesTags(t *testing.T) {
	s := NewTestStore(t)

	in := testInput()
	in.Tags = []string{"Gold", "ring", "gold", " RING ", ""}
	item, err := s.Create("u1", in)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.Tags != "gold,ring" {
		t.Errorf("expected tags 'gold,ring', got %q", item.Tags)
	}

	tags, err := s.ListTags()
	if err != nil {
		t.Fatalf("ListTags: %v", err)
	}
	if len(tags) != 2 || tags[0] != "gold" || tags[1] != "ring" {
		t.Errorf("expected vocabulary [gold ring], got %v", tags)
	}
}

func TestUpdatePartialMerge(t *testing.T) {
	s := NewTestStore(t)
	item, _ := s.Create("u1", testInput())

	title := "Gold wedding ring"
	updated, err := s.Update(item.ID, UpdateInput{Title: &title})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "Gold wedding ring" {
		t.Errorf("expected updated title, got %q", updated.Title)
	}
	if updated.Description != item.Description {
		t.Error("description should be untouched by a partial update")
	}
	if updated.UserID != "u1" || updated.ID != item.ID {
		t.Error("id and userId must survive updates")
	}
	if !updated.CreatedAt.Equal(item.CreatedAt) {
		t.Error("createdAt must survive updates")
	}
	if updated.UpdatedAt.Before(item.UpdatedAt) {
		t.Error("updatedAt must be refreshed")
	}
}

func TestUpdateMissing(t *testing.T) {
	s := NewTestStore(t)

	title := "x"
	_, err := s.Update("nope", UpdateInput{Title: &title})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStatusRunsStateMachine(t *testing.T) {
	s := NewTestStore(t)
	item, _ := s.Create("u1", testInput())

	resolved := StatusResolved
	if _, err := s.Update(item.ID, UpdateInput{Status: &resolved}); err != nil {
		t.Fatalf("lost -> resolved should be allowed: %v", err)
	}

	// No resurrection from resolved.
	lost := StatusLost
	_, err := s.Update(item.ID, UpdateInput{Status: &lost})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	s := NewTestStore(t)
	item, _ := s.Create("u1", testInput())

	if err := s.Delete(item.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Get(item.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Second delete of the same id is a silent no-op.
	if err := s.Delete(item.ID); err != nil {
		t.Fatalf("second Delete should be a no-op, got %v", err)
	}
}

func TestTransition(t *testing.T) {
	s := NewTestStore(t)
	item, _ := s.Create("u1", testInput())

	if _, err := s.Transition("", item.ID, StatusClaimed); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for empty user, got %v", err)
	}
	if _, err := s.Transition("intruder", item.ID, StatusClaimed); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for non-owner, got %v", err)
	}
	if _, err := s.Transition("u1", "nope", StatusClaimed); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	claimed, err := s.Transition("u1", item.ID, StatusClaimed)
	if err != nil {
		t.Fatalf("lost -> claimed: %v", err)
	}
	if claimed.Status != StatusClaimed {
		t.Errorf("expected status claimed, got %q", claimed.Status)
	}

	if _, err := s.Transition("u1", item.ID, StatusLost); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("claimed -> lost must fail, got %v", err)
	}

	resolved, err := s.Transition("u1", item.ID, StatusResolved)
	if err != nil {
		t.Fatalf("claimed -> resolved: %v", err)
	}
	if resolved.Status != StatusResolved {
		t.Errorf("expected status resolved, got %q", resolved.Status)
	}

	// Resolved is terminal.
	for _, to := range []Status{StatusLost, StatusFound, StatusClaimed, StatusResolved} {
		if _, err := s.Transition("u1", item.ID, to); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("resolved -> %s must fail, got %v", to, err)
		}
	}
}

func TestListByStatus(t *testing.T) {
	s := NewTestStore(t)

	lost := testInput()
	s.Create("u1", lost)

	found := testInput()
	found.Status = StatusFound
	found.Title = "Found a gold ring"
	s.Create("u2", found)

	items, err := s.ListByStatus(StatusFound)
	if err != nil {
		t.Fatalf("ListByStatus: %v", err)
	}
	if len(items) != 1 || items[0].Status != StatusFound {
		t.Fatalf("expected exactly the found item, got %v", items)
	}

	all, err := s.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 items, got %d", len(all))
	}
}
