package help

import (
	"github.com/bwmarrin/discordgo"
)

type HelpRequest struct {
	Session     *discordgo.Session
	Interaction *discordgo.InteractionCreate
	Topic       string // Optional specific help topic
}

type HelpHandler struct{}

func NewHelpHandler() *HelpHandler {
	return &HelpHandler{}
}

func (h *HelpHandler) Handle(req *HelpRequest) error {
	// Create help embed based on topic
	var embed *discordgo.MessageEmbed

	switch req.Topic {
	case "spell":
		embed = h.getSpellHelp()
	case "roll":
		embed = h.getRollHelp()
	default:
		embed = h.getGeneralHelp()
	}

	// Respond with the help embed
	err := req.Session.InteractionRespond(req.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral, // Only visible to the user
		},
	})

	return err
}

func (h *HelpHandler) getGeneralHelp() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "📖 Spellbook Help",
		Description: "Look up D&D 5e spells and roll their dice, right from Discord.",
		Color:       0x3498db, // Blue
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "🔍 Spell Commands",
				Value:  "`/spellbook spell show <name>` - Full spell card\n`/spellbook spell list` - Browse by level or school\n`/spellbook spell scaling <name> <level>` - Roll a spell's scaling dice at a caster level",
				Inline: false,
			},
			{
				Name:   "🎲 Dice Commands",
				Value:  "`/spellbook roll <notation>` - Roll dice notation like `8d6` or `2d4+2`",
				Inline: false,
			},
			{
				Name:   "❓ More Help",
				Value:  "Use `/spellbook help <topic>` for detailed help on:\n• `spell` - Spell lookup and scaling\n• `roll` - Dice notation",
				Inline: false,
			},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: "Spell data comes from local 5e.tools export files",
		},
	}
}

func (h *HelpHandler) getSpellHelp() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🔍 Spell Lookup Help",
		Description: "Finding spells and rolling their scaling dice.",
		Color:       0x9b59b6, // Purple
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Showing a Spell",
				Value:  "`/spellbook spell show name:Fireball` shows the full card.\nNames are matched loosely: `acid arrow` finds Acid Arrow.\nAdd `source:XGE` to pin a printing; otherwise the PHB printing wins.",
				Inline: false,
			},
			{
				Name:   "Listing Spells",
				Value:  "`/spellbook spell list level:3` - All 3rd-level spells\n`/spellbook spell list school:evocation` - All evocation spells\n`/spellbook spell list level:0 school:necromancy` - Necromancy cantrips",
				Inline: false,
			},
			{
				Name:   "Scaling Dice",
				Value:  "Cantrips grow with caster level. `/spellbook spell scaling name:Acid Splash level:11` rolls the dice the spell uses at caster level 11.",
				Inline: false,
			},
		},
	}
}

func (h *HelpHandler) getRollHelp() *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "🎲 Dice Notation Help",
		Description: "The `roll` command understands standard dice notation.",
		Color:       0xe67e22, // Orange
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:   "Notation",
				Value:  "`d20` - One twenty-sided die\n`8d6` - Eight six-sided dice\n`2d4+2` - Two d4s plus two\n`1d8-1` - One d8 minus one",
				Inline: false,
			},
			{
				Name:   "Reading Results",
				Value:  "Results show the total first, then each die: `12 ([3]+[4] + 5)`.",
				Inline: false,
			},
		},
	}
}
