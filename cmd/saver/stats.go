package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/violadsouza12/Social/internal/format"
	"github.com/violadsouza12/Social/internal/stats"
	"github.com/violadsouza12/Social/internal/store"
)

func runStats() {
	cfg := loadConfig()

	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	db := fs.String("db", cfg.Data.DBPath, "SQLite store (empty = built-in collection)")
	fs.Parse(os.Args[1:])

	items := loadItems(*db)
	s := stats.Summarize(items)

	fmt.Printf("Total saved:           %d\n", s.Total)
	for _, p := range store.Platforms {
		fmt.Printf("  %-20s %d\n", p.Label(), s.Platforms[p])
	}

	fmt.Printf("\nCategories (%d):\n", len(s.Categories))
	for _, c := range s.Categories {
		fmt.Printf("  %-20s %d\n", c.Category, c.Count)
	}
	if top, ok := s.TopCategory(); ok {
		fmt.Printf("\nTop category:          %s\n", top.Category)
	}

	likes := 0
	var newest time.Time
	for _, item := range items {
		likes += item.LikeCount()
		if t, ok := item.SavedTime(); ok && t.After(newest) {
			newest = t
		}
	}
	fmt.Printf("Total likes:           %s\n", humanize.Comma(int64(likes)))
	if !newest.IsZero() {
		fmt.Printf("Last saved:            %s\n", format.Ago(newest, time.Now()))
	}
}
