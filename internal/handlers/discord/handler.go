package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"github.com/KirkDiggler/spellbook-discord/internal/handlers/discord/spellbook/help"
	"github.com/KirkDiggler/spellbook-discord/internal/handlers/discord/spellbook/roll"
	spellHandler "github.com/KirkDiggler/spellbook-discord/internal/handlers/discord/spellbook/spell"
	"github.com/KirkDiggler/spellbook-discord/internal/services"
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider *services.Provider

	// Spell handlers
	spellShowHandler    *spellHandler.ShowHandler
	spellListHandler    *spellHandler.ListHandler
	spellScalingHandler *spellHandler.ScalingHandler

	// Dice handler
	rollHandler *roll.RollHandler

	// Help handler
	helpHandler *help.HelpHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	return &Handler{
		ServiceProvider:     cfg.ServiceProvider,
		spellShowHandler:    spellHandler.NewShowHandler(cfg.ServiceProvider),
		spellListHandler:    spellHandler.NewListHandler(cfg.ServiceProvider),
		spellScalingHandler: spellHandler.NewScalingHandler(cfg.ServiceProvider),
		rollHandler:         roll.NewRollHandler(cfg.ServiceProvider),
		helpHandler:         help.NewHelpHandler(),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "spellbook",
			Description: "D&D 5e spell lookup and dice rolling",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "spell",
					Description: "Spell lookup commands",
					Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Name:        "show",
							Description: "Show a spell's full card",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Spell name",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "source",
									Description: "Source book, e.g. PHB or XGE (optional)",
									Required:    false,
								},
							},
						},
						{
							Name:        "list",
							Description: "List spells by level or school",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "level",
									Description: "Spell level, 0 for cantrips (optional)",
									Required:    false,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "school",
									Description: "School of magic (optional)",
									Required:    false,
									Choices: []*discordgo.ApplicationCommandOptionChoice{
										{Name: "Abjuration", Value: "abjuration"},
										{Name: "Conjuration", Value: "conjuration"},
										{Name: "Divination", Value: "divination"},
										{Name: "Enchantment", Value: "enchantment"},
										{Name: "Evocation", Value: "evocation"},
										{Name: "Illusion", Value: "illusion"},
										{Name: "Necromancy", Value: "necromancy"},
										{Name: "Transmutation", Value: "transmutation"},
									},
								},
							},
						},
						{
							Name:        "scaling",
							Description: "Roll a spell's scaling dice at a caster level",
							Type:        discordgo.ApplicationCommandOptionSubCommand,
							Options: []*discordgo.ApplicationCommandOption{
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "name",
									Description: "Spell name",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionInteger,
									Name:        "level",
									Description: "Caster level (1-20)",
									Required:    true,
								},
								{
									Type:        discordgo.ApplicationCommandOptionString,
									Name:        "source",
									Description: "Source book (optional)",
									Required:    false,
								},
							},
						},
					},
				},
				{
					Name:        "roll",
					Description: "Roll dice notation like 8d6 or 2d4+2",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "notation",
							Description: "Dice notation",
							Required:    true,
						},
					},
				},
				{
					Name:        "help",
					Description: "Get help on using the bot",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "topic",
							Description: "Specific help topic (spell, roll)",
							Required:    false,
						},
					},
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Info().Str("command", cmd.Name).Msg("registered command")
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type == discordgo.InteractionApplicationCommand {
		h.handleCommand(s, i)
	}
}

// handleCommand handles slash command interactions
func (h *Handler) handleCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	// Check for /spellbook command
	if data.Name != "spellbook" {
		return
	}
	if len(data.Options) == 0 {
		return
	}

	top := data.Options[0]

	// Handle direct subcommands
	if top.Type == discordgo.ApplicationCommandOptionSubCommand {
		switch top.Name {
		case "roll":
			var notation string
			for _, opt := range top.Options {
				if opt.Name == "notation" {
					notation = opt.StringValue()
					break
				}
			}
			req := &roll.RollRequest{
				Session:     s,
				Interaction: i,
				Notation:    notation,
			}
			if err := h.rollHandler.Handle(req); err != nil {
				log.Error().Err(err).Msg("handling roll command")
			}
		case "help":
			var topic string
			for _, opt := range top.Options {
				if opt.Name == "topic" {
					topic = opt.StringValue()
					break
				}
			}
			req := &help.HelpRequest{
				Session:     s,
				Interaction: i,
				Topic:       topic,
			}
			if err := h.helpHandler.Handle(req); err != nil {
				log.Error().Err(err).Msg("handling help command")
			}
		}
		return
	}

	// Handle the spell subcommand group
	if top.Name == "spell" && len(top.Options) > 0 {
		sub := top.Options[0]

		switch sub.Name {
		case "show":
			req := &spellHandler.ShowRequest{
				Session:     s,
				Interaction: i,
			}
			for _, opt := range sub.Options {
				switch opt.Name {
				case "name":
					req.Name = opt.StringValue()
				case "source":
					req.Source = opt.StringValue()
				}
			}
			if err := h.spellShowHandler.Handle(req); err != nil {
				log.Error().Err(err).Msg("handling spell show")
			}
		case "list":
			req := &spellHandler.ListRequest{
				Session:     s,
				Interaction: i,
			}
			for _, opt := range sub.Options {
				switch opt.Name {
				case "level":
					level := int(opt.IntValue())
					req.Level = &level
				case "school":
					req.School = opt.StringValue()
				}
			}
			if err := h.spellListHandler.Handle(req); err != nil {
				log.Error().Err(err).Msg("handling spell list")
			}
		case "scaling":
			req := &spellHandler.ScalingRequest{
				Session:     s,
				Interaction: i,
			}
			for _, opt := range sub.Options {
				switch opt.Name {
				case "name":
					req.Name = opt.StringValue()
				case "level":
					req.CasterLevel = int(opt.IntValue())
				case "source":
					req.Source = opt.StringValue()
				}
			}
			if err := h.spellScalingHandler.Handle(req); err != nil {
				log.Error().Err(err).Msg("handling spell scaling")
			}
		}
	}
}
