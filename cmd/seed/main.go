package main

import (
	"flag"
	"log"

	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/config"
	"github.com/rishi048229/Shubh-vivah-app-sub002/internal/db"
)

func main() {
	minimal := flag.Bool("minimal", false, "seed the four-user fixture instead of the full demo set")
	flag.Parse()

	// Load configuration
	cfg := config.New()

	database, err := db.NewDB(cfg)
	if err != nil {
		log.Fatalf("failed to init db: %v", err)
	}

	seed := db.SeedTestData
	if *minimal {
		seed = db.SeedMinimalTestData
	}
	if err := seed(database); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}

	log.Println("Seeding completed.")
}
