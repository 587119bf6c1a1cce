// Package picker implements Random Inspiration: draw one saved item at
// random, then step through the collection round-robin from there.
//
// The picker always works over the full, unfiltered Item Store. Whatever
// search or chip filter is active in the dashboard has no say in what can
// be picked or what comes next.
package picker

import (
	"math/rand/v2"
	"time"

	"github.com/violadsouza12/Social/internal/store"
)

// Source is the randomness the picker draws from. *rand.Rand satisfies it.
type Source interface {
	// IntN returns a value in [0, n). n is always > 0.
	IntN(n int) int
}

// State is the picker's display state.
type State int

const (
	Idle State = iota
	Showing
)

func (s State) String() string {
	if s == Showing {
		return "showing"
	}
	return "idle"
}

// Pick is one selected item and its index in the full collection.
type Pick struct {
	Index int
	Item  store.SavedItem
}

// Picker holds the current index. Not safe for concurrent use.
type Picker struct {
	src   Source
	state State
	index int
}

// New creates an idle Picker. A nil src uses a time-seeded generator.
func New(src Source) *Picker {
	if src == nil {
		src = NewSeeded(uint64(time.Now().UnixNano()))
	}
	return &Picker{src: src}
}

// NewSeeded returns a deterministic Source for the given seed.
func NewSeeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// State returns Idle or Showing.
func (p *Picker) State() State {
	return p.state
}

// Current returns the index on display. ok is false while idle.
func (p *Picker) Current() (index int, ok bool) {
	if p.state != Showing {
		return 0, false
	}
	return p.index, true
}

// PickRandom draws an index uniformly from [0, len(items)) and shows it.
// With no items there is nothing to pick: ok is false and the state is left
// as it was.
func (p *Picker) PickRandom(items []store.SavedItem) (Pick, bool) {
	if len(items) == 0 {
		return Pick{}, false
	}
	idx := p.src.IntN(len(items))
	if idx < 0 || idx >= len(items) {
		idx = ((idx % len(items)) + len(items)) % len(items)
	}
	return p.show(items, idx), true
}

// PickNext shows the item after the current one, wrapping to 0 after the
// last. It never draws again. From Idle it continues from the last index
// shown, which starts at 0.
func (p *Picker) PickNext(items []store.SavedItem) (Pick, bool) {
	idx, ok := Next(len(items), p.index)
	if !ok {
		return Pick{}, false
	}
	return p.show(items, idx), true
}

// Dismiss hides the current pick. The index is kept so a later PickNext
// continues from it.
func (p *Picker) Dismiss() {
	p.state = Idle
}

func (p *Picker) show(items []store.SavedItem, idx int) Pick {
	p.index = idx
	p.state = Showing
	return Pick{Index: idx, Item: items[idx]}
}

// Next returns (current+1) mod n. ok is false when n is 0.
func Next(n, current int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	return ((current+1)%n + n) % n, true
}
