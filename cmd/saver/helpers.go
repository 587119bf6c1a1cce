package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"github.com/violadsouza12/Social/internal/config"
	"github.com/violadsouza12/Social/internal/query"
	"github.com/violadsouza12/Social/internal/store"
)

// loadConfig reads the config or fatals.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

// loadItems reads the Item Store or fatals.
func loadItems(dbPath string) []store.SavedItem {
	items, err := store.Load(dbPath)
	if err != nil {
		log.Fatalf("failed to load items: %v", err)
	}
	return items
}

// openDB opens a writable store or fatals.
func openDB(dbPath string) *store.Store {
	if dbPath == "" {
		log.Fatal("-db is required")
	}
	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	return st
}

// buildQuery turns flag values into a query. Empty or "All" chips select
// everything.
func buildQuery(search, category, platform, sortMode string) (query.Query, error) {
	q := query.Query{
		Search:   search,
		Category: query.AllCategories,
		Platform: query.AllPlatforms,
	}

	mode, err := query.ParseSortMode(sortMode)
	if err != nil {
		return q, err
	}
	q.Sort = mode

	if category != "" && category != string(query.AllCategories) {
		c, err := store.ParseCategory(category)
		if err != nil {
			return q, err
		}
		q.Category = c
	}
	if platform != "" && platform != string(query.AllPlatforms) {
		p, err := store.ParsePlatform(platform)
		if err != nil {
			return q, err
		}
		q.Platform = p
	}
	return q, nil
}

// decodeItems reads a JSON array of items, assigning ids to records that
// lack one. Every record must pass store.Validate.
func decodeItems(r io.Reader) ([]store.SavedItem, error) {
	var items []store.SavedItem
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = uuid.NewString()
		}
		if err := store.Validate(items[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return items, nil
}

// truncate shortens a string to max runes, appending "..." if truncated.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
