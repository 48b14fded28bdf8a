// Package main parses a seed dataset file and prints the catalog
// records it would produce, without writing anything.
//
// Usage:
//
//	go run ./cmd/seedcheck                  # check the bundled dataset
//	go run ./cmd/seedcheck regions.json     # check a dataset override
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/adamtorokhu/BriefBeer/internal/seed"
)

func main() {
	var raw []byte
	var err error

	if len(os.Args) > 1 {
		raw, err = os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to read dataset: %v", err)
		}
		fmt.Printf("Dataset: %s\n\n", os.Args[1])
	} else {
		raw = seed.Bundled()
		fmt.Print("Dataset: bundled\n\n")
	}

	records, err := seed.Parse(raw)
	if err != nil {
		log.Fatalf("Parse failed: %v", err)
	}

	fmt.Printf("Records: %d\n", len(records))
	for _, r := range records {
		fmt.Printf("  %-40s %s (%s, %s)\n", r.ID, r.Name, r.City, r.State)
		if r.Notes != "" {
			fmt.Printf("    %s\n", r.Notes)
		}
	}
}
