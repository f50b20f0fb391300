package spell

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
	"github.com/KirkDiggler/spellbook-discord/internal/services"
	spellService "github.com/KirkDiggler/spellbook-discord/internal/services/spell"
)

type ShowRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Name        string
	Source      string // Optional source book filter
}

type ShowHandler struct {
	services *services.Provider
}

func NewShowHandler(services *services.Provider) *ShowHandler {
	return &ShowHandler{
		services: services,
	}
}

func (h *ShowHandler) Handle(req *ShowRequest) error {
	// Defer acknowledge the interaction
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return fmt.Errorf("failed to acknowledge interaction: %w", err)
	}

	record, err := h.services.SpellService.FindSpell(context.Background(), &spellService.FindSpellInput{
		Name:   req.Name,
		Source: req.Source,
	})
	if err != nil {
		content := fmt.Sprintf("❌ No spell named '%s' found", req.Name)
		if !dnderr.IsNotFound(err) {
			content = fmt.Sprintf("❌ Failed to look up '%s': %v", req.Name, err)
		}
		_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
			Content: &content,
		})
		return err
	}

	embed := BuildSpellEmbed(record)
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}
