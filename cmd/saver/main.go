// Command saver is the Social Saver maintenance CLI.
//
// Usage:
//
//	saver                   Show help
//	saver list              Evaluate a query and print the results
//	saver pick              Random Inspiration from the terminal
//	saver stats             Collection statistics
//	saver seed              Write the built-in collection to SQLite
//	saver import            Load a JSON array of items into SQLite
package main

import (
	"fmt"
	"os"
)

const usage = `saver - Social Saver maintenance CLI

Usage:
  saver <command> [flags]

Commands:
  list        Search, filter and sort saved items
  pick        Pick a random item, then step through the collection
  stats       Totals per platform and category
  seed        Write the built-in demo collection to a SQLite store
  import      Load items from a JSON file into a SQLite store

Environment:
  SOCIALSAVER_DB     SQLite store to read (default: built-in collection)
  SOCIALSAVER_SEED   Seed for pick (default: clock)

Run 'saver <command> -h' for command-specific help.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd := os.Args[1]
	// Strip the program name + subcommand so flag sets see only their flags
	os.Args = os.Args[1:]

	switch cmd {
	case "list":
		runList()
	case "pick":
		runPick()
	case "stats":
		runStats()
	case "seed":
		runSeed()
	case "import":
		runImport()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "saver: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
