package roll

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/KirkDiggler/spellbook-discord/internal/services"
)

type RollRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Notation    string
}

type RollHandler struct {
	services *services.Provider
}

func NewRollHandler(services *services.Provider) *RollHandler {
	return &RollHandler{
		services: services,
	}
}

func (h *RollHandler) Handle(req *RollRequest) error {
	result, err := h.services.SpellService.RollFormula(req.Notation)
	if err != nil {
		return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: fmt.Sprintf("❌ `%s` is not dice notation I understand. Try something like `2d6+3`.", req.Notation),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("🎲 %s", req.Notation),
		Description: result.Text(),
		Color:       0x3498db, // Blue
	}

	return req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}
