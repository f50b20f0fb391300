package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spellbook-discord/internal/clients/fivetools"
	"github.com/KirkDiggler/spellbook-discord/internal/config"
	"github.com/KirkDiggler/spellbook-discord/internal/handlers/discord"
	"github.com/KirkDiggler/spellbook-discord/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-discord/internal/services"
)

func main() {
	initLogger()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log.Info().Str("app_id", cfg.Discord.AppID).Msg("loaded configuration")

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Discord session")
	}

	// Create the spell data client
	dataClient, err := fivetools.New(&fivetools.Config{
		Dir:    cfg.Data.Dir,
		Logger: log.Logger,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create spell data client")
	}

	// Create service provider config
	providerConfig := &services.ProviderConfig{
		FiveToolsClient: dataClient,
	}

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	// Try to connect to Redis
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if pingErr := redisClient.Ping(ctx).Err(); pingErr != nil {
		cancel()
		log.Warn().Err(pingErr).Str("addr", cfg.Redis.Addr).
			Msg("failed to connect to Redis, falling back to in-memory repository")
		_ = redisClient.Close()
		redisClient = nil
	} else {
		cancel()
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
		providerConfig.SpellRepository = spells.NewRedisRepository(&spells.RedisRepoConfig{
			Client: redisClient,
		})
	}

	// Create service provider
	serviceProvider := services.NewProvider(providerConfig)

	// Import spell data so lookups have something to find
	if info, importErr := serviceProvider.SpellService.ImportAll(context.Background()); importErr != nil {
		log.Warn().Err(importErr).Str("dir", cfg.Data.Dir).
			Msg("spell import failed, lookups may come up empty")
	} else {
		log.Info().
			Str("run_id", info.RunID).
			Int("files", info.Files).
			Int("spells", info.Spells).
			Msg("imported spell data")
	}

	// Create Discord handler
	handler := discord.NewHandler(&discord.HandlerConfig{
		ServiceProvider: serviceProvider,
	})

	// Register interaction handler
	dg.AddHandler(handler.HandleInteraction)

	// Open connection to Discord
	if err = dg.Open(); err != nil {
		log.Error().Err(err).Msg("failed to open Discord connection")
		return
	}
	defer func() {
		if clientErr := dg.Close(); clientErr != nil {
			log.Error().Err(clientErr).Msg("failed to close Discord connection")
		}
	}()

	// Register commands
	// Use empty string for global commands, or set a specific guild ID for testing
	if err := handler.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		log.Error().Err(err).Msg("failed to register commands")
		return
	}

	if cfg.Discord.GuildID != "" {
		log.Info().Str("guild_id", cfg.Discord.GuildID).Msg("registered guild commands")
	} else {
		log.Info().Msg("registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("error closing Redis connection")
		}
	}
}

// initLogger configures the global logger
func initLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Readable output outside production
	if os.Getenv("ENV") != "production" {
		output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	logLevel := zerolog.InfoLevel
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		logLevel = lvl
	}
	zerolog.SetGlobalLevel(logLevel)
}
