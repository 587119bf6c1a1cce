package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/violadsouza12/Social/internal/format"
	"github.com/violadsouza12/Social/internal/picker"
)

func runPick() {
	cfg := loadConfig()

	fs := flag.NewFlagSet("pick", flag.ExitOnError)
	seed := fs.Uint64("seed", cfg.Picker.Seed, "Random seed (0 = clock)")
	next := fs.Int("next", 0, "Also show this many following items, round-robin")
	db := fs.String("db", cfg.Data.DBPath, "SQLite store (empty = built-in collection)")
	fs.Parse(os.Args[1:])

	items := loadItems(*db)

	var src picker.Source
	if *seed != 0 {
		src = picker.NewSeeded(*seed)
	}
	p := picker.New(src)

	pick, ok := p.PickRandom(items)
	if !ok {
		fmt.Println("Nothing saved yet.")
		return
	}
	fmt.Println("🎲 Random Inspiration")
	printPick(pick, len(items))

	for i := 0; i < *next; i++ {
		pick, _ = p.PickNext(items)
		fmt.Println()
		printPick(pick, len(items))
	}
}

func printPick(pick picker.Pick, total int) {
	item := pick.Item
	fmt.Printf("[%d/%d] %s · %s\n", pick.Index+1, total, item.Category, item.Platform.Label())
	fmt.Printf("  %s\n", item.Summary)
	byline := "  by " + item.Author
	if t, ok := item.SavedTime(); ok {
		byline += " · " + format.ShortDate(t)
	}
	if item.Likes != nil {
		byline += " · " + format.Exact(*item.Likes) + " likes"
	}
	fmt.Println(byline)
	fmt.Printf("  %s\n", item.URL)
}
