package services

import (
	"github.com/KirkDiggler/spellbook-discord/internal/clients/fivetools"
	"github.com/KirkDiggler/spellbook-discord/internal/dice"
	"github.com/KirkDiggler/spellbook-discord/internal/repositories/spells"
	spellService "github.com/KirkDiggler/spellbook-discord/internal/services/spell"
)

// Provider holds all service instances
type Provider struct {
	SpellService spellService.Service
}

// ProviderConfig holds configuration for creating services
type ProviderConfig struct {
	FiveToolsClient fivetools.Client
	SpellRepository spells.Repository
	Roller          dice.Roller
}

// NewProvider creates a new service provider with all services initialized
func NewProvider(cfg *ProviderConfig) *Provider {
	// Use in-memory repository if none provided
	spellRepo := cfg.SpellRepository
	if spellRepo == nil {
		spellRepo = spells.NewInMemoryRepository()
	}

	svc := spellService.NewService(&spellService.ServiceConfig{
		Repository: spellRepo,
		Client:     cfg.FiveToolsClient,
		Roller:     cfg.Roller,
	})

	return &Provider{
		SpellService: svc,
	}
}
