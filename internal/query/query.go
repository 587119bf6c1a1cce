// Package query turns the Item Store plus the dashboard's current query into
// the ordered list of visible items.
// Every stage is a pure function: []SavedItem in, []SavedItem out. No side effects.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/violadsouza12/Social/internal/store"
)

// Sentinels meaning "do not constrain on this dimension".
const (
	AllCategories store.Category = "All"
	AllPlatforms  store.Platform = "All"
)

// SortMode selects the final ordering of the result list.
type SortMode int

const (
	Newest SortMode = iota
	Popular
)

var ErrUnknownSortMode = errors.New("unknown sort mode")

func (m SortMode) String() string {
	switch m {
	case Popular:
		return "popular"
	default:
		return "newest"
	}
}

// ParseSortMode accepts "newest" or "popular" in any case.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newest", "":
		return Newest, nil
	case "popular":
		return Popular, nil
	}
	return Newest, fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
}

// Query is what the user currently wants to see. The zero value shows
// everything, newest first.
type Query struct {
	Search   string
	Category store.Category
	Platform store.Platform
	Sort     SortMode
}

// Active reports whether any constraint narrows the result.
func (q Query) Active() bool {
	return q.Search != "" || !isAllCategory(q.Category) || !isAllPlatform(q.Platform)
}

func isAllCategory(c store.Category) bool { return c == "" || c == AllCategories }
func isAllPlatform(p store.Platform) bool { return p == "" || p == AllPlatforms }

// Evaluate applies the category, platform and search filters, in that
// order, and then sorts. items is never modified.
func Evaluate(items []store.SavedItem, q Query) []store.SavedItem {
	result := ByCategory(items, q.Category)
	result = ByPlatform(result, q.Platform)
	result = BySearch(result, q.Search)

	if q.Sort == Popular {
		return SortPopular(result)
	}
	return SortNewest(result)
}

// ByCategory keeps items whose category equals c exactly.
// The "All" sentinel (or an empty category) keeps everything.
func ByCategory(items []store.SavedItem, c store.Category) []store.SavedItem {
	if isAllCategory(c) {
		return clone(items)
	}

	result := make([]store.SavedItem, 0, len(items))
	for _, item := range items {
		if item.Category == c {
			result = append(result, item)
		}
	}
	return result
}

// ByPlatform keeps items whose platform equals p exactly.
// The "All" sentinel (or an empty platform) keeps everything.
func ByPlatform(items []store.SavedItem, p store.Platform) []store.SavedItem {
	if isAllPlatform(p) {
		return clone(items)
	}

	result := make([]store.SavedItem, 0, len(items))
	for _, item := range items {
		if item.Platform == p {
			result = append(result, item)
		}
	}
	return result
}

// BySearch keeps items where the lowercased search text is a substring of
// any searchable field. Whitespace-only text keeps everything; otherwise the
// text is matched as typed, surrounding spaces included.
func BySearch(items []store.SavedItem, text string) []store.SavedItem {
	if strings.TrimSpace(text) == "" {
		return clone(items)
	}

	needle := strings.ToLower(text)
	result := make([]store.SavedItem, 0, len(items))
	for _, item := range items {
		if Matches(item, needle) {
			result = append(result, item)
		}
	}
	return result
}

// Matches reports whether the already-lowercased needle occurs in any of
// the item's summary, caption, category, author, platform or hashtags.
func Matches(item store.SavedItem, needle string) bool {
	fields := [...]string{
		item.Summary,
		item.Caption,
		string(item.Category),
		item.Author,
		string(item.Platform),
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	for _, tag := range item.Hashtags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// SortPopular orders by likes, highest first. Missing likes count as zero
// and ties keep their input order.
func SortPopular(items []store.SavedItem) []store.SavedItem {
	result := clone(items)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LikeCount() > result[j].LikeCount()
	})
	return result
}

// SortNewest orders by savedAt, most recent first. Ties keep their input
// order. Unparseable timestamps sort after every parseable one.
func SortNewest(items []store.SavedItem) []store.SavedItem {
	type keyed struct {
		item  store.SavedItem
		saved time.Time
		valid bool
	}

	// Parse once up front rather than inside the comparator.
	keyedItems := make([]keyed, len(items))
	for i, item := range items {
		t, ok := item.SavedTime()
		keyedItems[i] = keyed{item: item, saved: t, valid: ok}
	}

	sort.SliceStable(keyedItems, func(i, j int) bool {
		a, b := keyedItems[i], keyedItems[j]
		if a.valid != b.valid {
			return a.valid
		}
		if !a.valid {
			return false
		}
		return a.saved.After(b.saved)
	})

	result := make([]store.SavedItem, len(keyedItems))
	for i, k := range keyedItems {
		result[i] = k.item
	}
	return result
}

// clone returns a new slice with the same elements, never nil.
func clone(items []store.SavedItem) []store.SavedItem {
	result := make([]store.SavedItem, len(items))
	copy(result, items)
	return result
}
