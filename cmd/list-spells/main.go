package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()

	// Set up Redis
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})
	defer client.Close()

	// Test connection
	if _, pingErr := client.Ping(ctx).Result(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis: %v", pingErr)
	}

	// Find all spell keys
	spellKeys, err := client.Keys(ctx, "spell:*").Result()
	if err != nil {
		log.Fatalf("Failed to get spell keys: %v", err)
	}

	fmt.Printf("Found %d spells:\n", len(spellKeys))
	for _, key := range spellKeys {
		// Get the record
		data, getErr := client.Get(ctx, key).Result()
		if getErr != nil {
			fmt.Printf("  %s: ERROR - %v\n", key, getErr)
			continue
		}

		// Just show basic info
		fmt.Printf("  %s: %d bytes\n", key, len(data))
	}

	// Show the most recent import run
	raw, err := client.Get(ctx, "spells:import").Result()
	if errors.Is(err, redis.Nil) {
		fmt.Println("\nNo import run recorded")
		return
	}
	if err != nil {
		log.Fatalf("Failed to get import info: %v", err)
	}

	var info struct {
		RunID      string    `json:"run_id"`
		Files      int       `json:"files"`
		Spells     int       `json:"spells"`
		ImportedAt time.Time `json:"imported_at"`
	}
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		log.Fatalf("Failed to decode import info: %v", err)
	}

	fmt.Printf("\nLast import: %d spells from %d files\n", info.Spells, info.Files)
	fmt.Printf("  run: %s\n", info.RunID)
	fmt.Printf("  at:  %s\n", info.ImportedAt.Format(time.RFC3339))
}
