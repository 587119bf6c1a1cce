package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/violadsouza12/Social/internal/format"
	"github.com/violadsouza12/Social/internal/query"
	"github.com/violadsouza12/Social/internal/stats"
	"github.com/violadsouza12/Social/internal/store"
)

func runList() {
	cfg := loadConfig()

	fs := flag.NewFlagSet("list", flag.ExitOnError)
	search := fs.String("q", "", "Search text (summary, caption, author, hashtags, category, platform)")
	category := fs.String("category", "All", "Category chip, e.g. Fitness")
	platform := fs.String("platform", "All", "Platform chip: instagram, twitter or blog")
	sortMode := fs.String("sort", cfg.UI.DefaultSort, "newest or popular")
	db := fs.String("db", cfg.Data.DBPath, "SQLite store (empty = built-in collection)")
	asJSON := fs.Bool("json", false, "Print results as JSON")
	fs.Parse(os.Args[1:])

	q, err := buildQuery(*search, *category, *platform, *sortMode)
	if err != nil {
		log.Fatalf("invalid query: %v", err)
	}

	results := query.Evaluate(loadItems(*db), q)

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			log.Fatalf("failed to encode results: %v", err)
		}
		return
	}

	fmt.Println(stats.ResultLine(q, len(results)))
	fmt.Println()
	for _, item := range results {
		fmt.Println(listRow(item))
	}
}

// listRow formats one item as a fixed-width line.
func listRow(item store.SavedItem) string {
	date := "?"
	if t, ok := item.SavedTime(); ok {
		date = format.Date(t)
	}
	return fmt.Sprintf("%-4s %-10s %-9s %6s  %-13s %-18s %s",
		item.ID, item.Category, item.Platform, format.CompactPtr(item.Likes),
		date, truncate(item.Author, 18), truncate(item.Caption, 60))
}
