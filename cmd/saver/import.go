package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

func runImport() {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	db := fs.String("db", "", "SQLite store to write (required)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: saver import -db path file.json")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		log.Fatalf("failed to open %s: %v", fs.Arg(0), err)
	}
	defer f.Close()

	items, err := decodeItems(f)
	if err != nil {
		log.Fatalf("failed to read %s: %v", fs.Arg(0), err)
	}

	st := openDB(*db)
	defer st.Close()

	n, err := st.SaveItems(items)
	if err != nil {
		log.Fatalf("failed to import: %v", err)
	}
	total, _ := st.Count()
	fmt.Printf("Imported %d items into %s (%d total)\n", n, *db, total)
}
