package notes

import (
	"testing"

	"pharmadesk/models"
)

func TestFilterNotes(t *testing.T) {
	all := []models.Note{
		{ID: "n1", Title: "Order stock", CategoryID: "work", Tags: []string{"supplier"}},
		{ID: "n2", Title: "Holiday list", Content: "Eid closing days", CategoryID: "general"},
		{ID: "n3", Title: "Call supplier", CategoryID: "work"},
	}

	if got := FilterNotes(all, "work", ""); len(got) != 2 {
		t.Errorf("expected 2 work notes, got %d", len(got))
	}
	if got := FilterNotes(all, "", "eid"); len(got) != 1 || got[0].ID != "n2" {
		t.Errorf("expected content match on n2, got %v", got)
	}
	// tag matches count too
	if got := FilterNotes(all, "", "supplier"); len(got) != 2 {
		t.Errorf("expected tag+title matches, got %d", len(got))
	}
	if got := FilterNotes(all, "general", "supplier"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestSortNotesPinnedFirst(t *testing.T) {
	all := []models.Note{
		{ID: "old", Title: "b", CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-01-02T00:00:00Z"},
		{ID: "pinned", Title: "z", IsPinned: true, CreatedAt: "2025-01-01T00:00:00Z"},
		{ID: "fresh", Title: "a", CreatedAt: "2026-08-01T00:00:00Z"},
	}

	SortNotes(all, "updated")
	if all[0].ID != "pinned" {
		t.Fatalf("expected pinned note first, got %s", all[0].ID)
	}
	if all[1].ID != "fresh" {
		t.Errorf("expected most recently touched after pinned, got %s", all[1].ID)
	}

	SortNotes(all, "title")
	if all[0].ID != "pinned" || all[1].ID != "fresh" || all[2].ID != "old" {
		t.Errorf("unexpected title order: %s %s %s", all[0].ID, all[1].ID, all[2].ID)
	}

	SortNotes(all, "created")
	if all[0].ID != "pinned" || all[1].ID != "fresh" {
		t.Errorf("unexpected created order: %s %s", all[0].ID, all[1].ID)
	}
}
