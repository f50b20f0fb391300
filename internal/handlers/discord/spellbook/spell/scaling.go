package spell

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
	"github.com/KirkDiggler/spellbook-discord/internal/services"
	spellService "github.com/KirkDiggler/spellbook-discord/internal/services/spell"
)

type ScalingRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Name        string
	Source      string // Optional source book filter
	CasterLevel int
}

type ScalingHandler struct {
	services *services.Provider
}

func NewScalingHandler(services *services.Provider) *ScalingHandler {
	return &ScalingHandler{
		services: services,
	}
}

func (h *ScalingHandler) Handle(req *ScalingRequest) error {
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

	rolls, err := h.services.SpellService.RollScaling(context.Background(), &spellService.RollScalingInput{
		Key:         record.Key,
		CasterLevel: req.CasterLevel,
	})
	if err != nil {
		content := fmt.Sprintf("❌ %v", err)
		_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
			Content: &content,
		})
		return err
	}

	embed := buildScalingEmbed(record, req.CasterLevel, rolls)
	_, err = req.Session.InteractionResponseEdit(req.Interaction.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	})
	return err
}

func buildScalingEmbed(record *spell.Spell, casterLevel int, rolls []*spellService.ScalingRoll) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎲 %s", record.Name),
		Description: fmt.Sprintf("Scaling dice at caster level %d", casterLevel),
		Color:       schoolColor(record.School),
		Fields:      make([]*discordgo.MessageEmbedField, 0, len(rolls)),
	}

	for _, roll := range rolls {
		name := roll.Label
		if name == "" {
			name = "Scaling"
		}
		value := roll.Raw
		if roll.Result != nil {
			value = fmt.Sprintf("`%s` rolled %s", roll.Raw, roll.Result.Text())
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   titleCaser.String(name),
			Value:  value,
			Inline: false,
		})
	}

	return embed
}
