// cmd/reconcile-votes/main.go
// Reports posts whose stored vote counter disagrees with the vote ledger,
// and optionally rewrites those counters from the ledger.
package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"

	"Dealio/internal/config"
	postgresRepo "Dealio/internal/db/postgres"
)

func main() {
	apply := flag.Bool("apply", false, "rewrite drifted counters from the ledger")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Connecting to database...")
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	repo := postgresRepo.NewVoteRepository(db)

	drift, err := repo.FindDrift(ctx)
	if err != nil {
		log.Fatalf("Failed to compare counters with the ledger: %v", err)
	}
	if len(drift) == 0 {
		log.Printf("All vote counters match the ledger")
		return
	}

	for _, d := range drift {
		log.Printf("post %d: stored=%d ledger=%d", d.PostID, d.Stored, d.Ledger)
	}
	log.Printf("Found %d drifted posts", len(drift))

	if !*apply {
		log.Printf("Dry run; pass -apply to repair")
		return
	}

	updated, err := repo.RepairCounts(ctx)
	if err != nil {
		log.Fatalf("Failed to repair counters: %v", err)
	}
	log.Printf("Repaired %d posts", updated)
}
