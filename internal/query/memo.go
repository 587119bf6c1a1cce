package query

import "github.com/violadsouza12/Social/internal/store"

// Memo caches the last Evaluate result keyed on the query.
// Replacing the items through SetItems always drops the cache.
// Not safe for concurrent use.
type Memo struct {
	items []store.SavedItem

	valid  bool
	last   Query
	result []store.SavedItem
	misses int
}

// NewMemo creates a Memo over items.
func NewMemo(items []store.SavedItem) *Memo {
	return &Memo{items: items}
}

// SetItems replaces the Item Store.
func (m *Memo) SetItems(items []store.SavedItem) {
	m.items = items
	m.valid = false
	m.result = nil
}

// Items returns the full, unfiltered collection.
func (m *Memo) Items() []store.SavedItem {
	return m.items
}

// Evaluate returns Evaluate(items, q), recomputing only when q differs from
// the previous call or the items were replaced. The returned slice is shared
// between calls with the same query and must not be modified.
func (m *Memo) Evaluate(q Query) []store.SavedItem {
	if m.valid && m.last == q {
		return m.result
	}
	m.result = Evaluate(m.items, q)
	m.last = q
	m.valid = true
	m.misses++
	return m.result
}

// Recomputes reports how many times Evaluate actually ran the pipeline.
func (m *Memo) Recomputes() int {
	return m.misses
}
