// Package stats computes the dashboard's header numbers and chip counts.
package stats

import (
	"fmt"
	"sort"

	"github.com/violadsouza12/Social/internal/query"
	"github.com/violadsouza12/Social/internal/store"
)

// CategoryCount is one row of the category breakdown.
type CategoryCount struct {
	Category store.Category
	Count    int
}

// Summary describes the whole collection.
type Summary struct {
	Total      int
	Platforms  map[store.Platform]int
	Categories []CategoryCount // count desc, ties in first-seen order
}

// Summarize counts the collection by platform and category.
func Summarize(items []store.SavedItem) Summary {
	s := Summary{
		Total:     len(items),
		Platforms: make(map[store.Platform]int, len(store.Platforms)),
	}
	for _, p := range store.Platforms {
		s.Platforms[p] = 0
	}

	index := map[store.Category]int{}
	for _, item := range items {
		s.Platforms[item.Platform]++
		if i, ok := index[item.Category]; ok {
			s.Categories[i].Count++
			continue
		}
		index[item.Category] = len(s.Categories)
		s.Categories = append(s.Categories, CategoryCount{Category: item.Category, Count: 1})
	}

	sort.SliceStable(s.Categories, func(i, j int) bool {
		return s.Categories[i].Count > s.Categories[j].Count
	})
	return s
}

// TopCategory is the most saved category. ok is false for an empty store.
func (s Summary) TopCategory() (CategoryCount, bool) {
	if len(s.Categories) == 0 {
		return CategoryCount{}, false
	}
	return s.Categories[0], true
}

// CountByCategory is the number shown on a category chip. The "All" chip
// counts everything.
func CountByCategory(items []store.SavedItem, c store.Category) int {
	if c == query.AllCategories || c == "" {
		return len(items)
	}
	n := 0
	for _, item := range items {
		if item.Category == c {
			n++
		}
	}
	return n
}

// ResultLine is the toolbar text above the card list.
func ResultLine(q query.Query, n int) string {
	if !q.Active() {
		return fmt.Sprintf("Showing all %d saved items", n)
	}
	noun := "results"
	if n == 1 {
		noun = "result"
	}
	line := fmt.Sprintf("%d %s", n, noun)
	if q.Search != "" {
		line += fmt.Sprintf(" for %q", q.Search)
	}
	return line
}
