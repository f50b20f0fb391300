package spell

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	"github.com/KirkDiggler/spellbook-discord/internal/services"
	spellService "github.com/KirkDiggler/spellbook-discord/internal/services/spell"
)

// listLimit keeps the listing inside Discord's embed field size
const listLimit = 20

type ListRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Level       *int   // Optional
	School      string // Optional
}

type ListHandler struct {
	services *services.Provider
}

func NewListHandler(services *services.Provider) *ListHandler {
	return &ListHandler{
		services: services,
	}
}

func (h *ListHandler) Handle(req *ListRequest) error {
	// Defer acknowledge the interaction
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	records, err := h.services.SpellService.ListSpells(context.Background(), &spellService.ListSpellsInput{
		Level:  req.Level,
		School: req.School,
	})
	if err != nil {
		content := fmt.Sprintf("❌ Failed to list spells: %v", err)
		_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
			Content: &content,
		})
		return err
	}

	if len(records) == 0 {
		content := "📝 No spells match those filters. Has the spell data been imported?"
		_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
			Content: &content,
		})
		return err
	}

	embed := buildListEmbed(req, records)
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}

func buildListEmbed(req *ListRequest, records []*spell.Spell) *discordgo.MessageEmbed {
	shown := records
	if len(shown) > listLimit {
		shown = shown[:listLimit]
	}

	lines := lo.Map(shown, func(record *spell.Spell, _ int) string {
		return listLine(record)
	})
	if len(records) > listLimit {
		lines = append(lines, fmt.Sprintf("_...and %d more_", len(records)-listLimit))
	}

	return &discordgo.MessageEmbed{
		Title:       "📜 Spells",
		Description: listFilterText(req),
		Color:       0x3498db, // Blue
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   fmt.Sprintf("%d found", len(records)),
				Value:  truncate(strings.Join(lines, "\n"), 1024),
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Use /spellbook spell show <name> for the full card",
		},
	}
}

func listLine(record *spell.Spell) string {
	level := "cantrip"
	if record.Level > 0 {
		level = fmt.Sprintf("level %d", record.Level)
	}
	return fmt.Sprintf("**%s** - %s %s, %s",
		record.Name, level, strings.ToLower(record.School), record.Source)
}

func listFilterText(req *ListRequest) string {
	var parts []string
	if req.Level != nil {
		if *req.Level == 0 {
			parts = append(parts, "cantrips")
		} else {
			parts = append(parts, fmt.Sprintf("level %d", *req.Level))
		}
	}
	if req.School != "" {
		parts = append(parts, strings.ToLower(req.School))
	}
	if len(parts) == 0 {
		return "All spells"
	}
	return "Filters: " + strings.Join(parts, ", ")
}
