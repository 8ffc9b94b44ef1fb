package conversion

import (
	"sync"

	domain "osmcad/internal/domain/conversion"
)

const defaultHistoryLimit = 50

// History is a bounded, newest-first log of completed conversions. It lives
// independently of the registry: reaped job records stay visible here until
// capacity pushes them out.
type History struct {
	mu      sync.Mutex
	limit   int
	entries []domain.HistoryEntry
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return &History{limit: limit}
}

// Append prepends an entry, evicting the oldest beyond capacity.
func (h *History) Append(entry domain.HistoryEntry) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append([]domain.HistoryEntry{entry}, h.entries...)
	if len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
}

// List returns the entries newest first.
func (h *History) List() []domain.HistoryEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]domain.HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}
