package conversion

import (
	"fmt"
	"testing"
	"time"

	domain "osmcad/internal/domain/conversion"
)

func TestHistory_NewestFirst(t *testing.T) {
	h := NewHistory(10)
	h.Append(domain.HistoryEntry{JobID: "first", CompletedAt: time.Now()})
	h.Append(domain.HistoryEntry{JobID: "second", CompletedAt: time.Now()})

	entries := h.List()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].JobID != "second" || entries[1].JobID != "first" {
		t.Fatalf("expected newest first, got %q then %q", entries[0].JobID, entries[1].JobID)
	}
}

func TestHistory_CapacityEvictsOldest(t *testing.T) {
	const limit = 5
	h := NewHistory(limit)
	for i := 0; i < limit+1; i++ {
		h.Append(domain.HistoryEntry{JobID: fmt.Sprintf("job-%d", i)})
	}

	entries := h.List()
	if len(entries) != limit {
		t.Fatalf("expected history capped at %d, got %d", limit, len(entries))
	}
	if entries[0].JobID != fmt.Sprintf("job-%d", limit) {
		t.Fatalf("expected newest entry first, got %q", entries[0].JobID)
	}
	for _, entry := range entries {
		if entry.JobID == "job-0" {
			t.Fatalf("expected oldest entry evicted")
		}
	}
}

func TestHistory_ListReturnsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Append(domain.HistoryEntry{JobID: "a"})

	entries := h.List()
	entries[0].JobID = "mutated"

	if h.List()[0].JobID != "a" {
		t.Fatalf("list must return a copy")
	}
}
