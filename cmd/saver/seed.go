package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/violadsouza12/Social/internal/store"
)

func runSeed() {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	db := fs.String("db", "", "SQLite store to write (required)")
	fs.Parse(os.Args[1:])

	st := openDB(*db)
	defer st.Close()

	n, err := st.SaveItems(store.Builtin())
	if err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
	total, _ := st.Count()
	fmt.Printf("Seeded %d items into %s (%d total)\n", n, *db, total)
}
