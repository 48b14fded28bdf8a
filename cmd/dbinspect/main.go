// Package main dumps the contents of a BriefBeer store directory.
//
// Usage:
//
//	DB_PATH=~/BriefBeer/data/db go run ./cmd/dbinspect
//	DB_PATH=~/BriefBeer/data/db go run ./cmd/dbinspect --favorites
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/adamtorokhu/BriefBeer/internal/logger"
	"github.com/adamtorokhu/BriefBeer/internal/store"
)

var showFavorites = flag.Bool("favorites", false, "Dump the favorites ledger instead of the catalog")

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/BriefBeer/data/db")
	}

	fmt.Printf("Opening store at: %s\n\n", dbPath)

	s, err := store.New(dbPath, logger.Discard().Logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if *showFavorites {
		favs, err := s.Favorites.All(ctx)
		if err != nil {
			log.Fatalf("Failed to read favorites: %v", err)
		}
		fmt.Printf("Favorites: %d\n", len(favs))
		for _, f := range favs {
			fmt.Printf("  %-32s %s (%s, %s)\n", f.BreweryID, f.Name, f.City, f.Country)
		}
		return
	}

	breweries, err := s.Breweries.All(ctx)
	if err != nil {
		log.Fatalf("Failed to read catalog: %v", err)
	}

	byOrigin := map[string]int{}
	for _, b := range breweries {
		byOrigin[string(b.Origin)]++
	}

	fmt.Printf("Catalog records: %d (remote=%d seed=%d user=%d)\n\n",
		len(breweries), byOrigin["remote"], byOrigin["seed"], byOrigin["user"])

	for _, b := range breweries {
		fmt.Printf("  [%-6s] %-36s %s", b.Origin, b.ID, b.Name)
		if b.City != "" {
			fmt.Printf(" (%s)", b.City)
		}
		fmt.Println()
	}
}
