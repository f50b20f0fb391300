package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/spellbook-discord/internal/clients/fivetools"
	"github.com/KirkDiggler/spellbook-discord/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-discord/internal/services"
)

func main() {
	dataDir := flag.String("data", "", "directory of 5e.tools spell JSON files (defaults to SPELL_DATA_DIR)")
	flag.Parse()

	// Load .env file if present
	_ = godotenv.Load()

	dir := *dataDir
	if dir == "" {
		dir = os.Getenv("SPELL_DATA_DIR")
	}
	if dir == "" {
		dir = "data/spells"
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	dataClient, err := fivetools.New(&fivetools.Config{
		Dir:    dir,
		Logger: logger,
	})
	if err != nil {
		log.Fatalf("Failed to create spell data client: %v", err)
	}

	// Set up Redis
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	db := 0
	if value := os.Getenv("REDIS_DB"); value != "" {
		if intValue, atoiErr := strconv.Atoi(value); atoiErr == nil {
			db = intValue
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       db,
	})
	defer client.Close()

	ctx := context.Background()

	// Test connection
	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		log.Fatalf("Failed to connect to Redis at %s: %v", addr, pingErr)
	}

	provider := services.NewProvider(&services.ProviderConfig{
		FiveToolsClient: dataClient,
		SpellRepository: spells.NewRedisRepository(&spells.RedisRepoConfig{
			Client: client,
		}),
	})

	info, err := provider.SpellService.ImportAll(ctx)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("Imported %d spells from %d files\n", info.Spells, info.Files)
	fmt.Printf("  run:  %s\n", info.RunID)
	fmt.Printf("  data: %s\n", dir)
}
