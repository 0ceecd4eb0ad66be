package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/apts18o9/leaderboard/internal/config"
)

// Demo roster inserted with a score of zero each.
var seedNames = []string{
	"Rahul",
	"Kamal",
	"Sanak",
	"Priya",
	"Amit",
	"Deepa",
	"Vikas",
	"Swati",
	"Rohan",
	"Anjali",
}

// Resets the participant table to a known demo roster. Existing
// participants and their claim history are removed first.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	conn, err := pgx.Connect(ctx, cfg.GetDBConnString())
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	if _, err := conn.Exec(ctx, "TRUNCATE participants, claim_events"); err != nil {
		log.Fatalf("Failed to clear existing data: %v", err)
	}

	for _, name := range seedNames {
		_, err := conn.Exec(ctx,
			"INSERT INTO participants (name, score) VALUES ($1, 0)", name)
		if err != nil {
			log.Fatalf("Failed to insert participant %s: %v", name, err)
		}
	}

	fmt.Printf("Seeded %d participants.\n", len(seedNames))
}
