package spell

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
)

var titleCaser = cases.Title(language.English)

// Embed accent colors per school of magic
var schoolColors = map[string]int{
	"abjuration":    0x3498db, // Blue
	"conjuration":   0xe67e22, // Orange
	"divination":    0xf1c40f, // Yellow
	"enchantment":   0xe91e63, // Pink
	"evocation":     0xe74c3c, // Red
	"illusion":      0x9b59b6, // Purple
	"necromancy":    0x2ecc71, // Green
	"transmutation": 0x1abc9c, // Teal
}

// BuildSpellEmbed renders a spell record as a spell card embed (pure
// presentation logic)
func BuildSpellEmbed(record *spell.Spell) *discordgo.MessageEmbed {
	description := headerLine(record)
	if body := RenderDescriptions(record.Descriptions); body != "" {
		description += "\n\n" + body
	}

	embed := &discordgo.MessageEmbed{
		Title:       record.Name,
		Description: truncate(description, 4096),
		Color:       schoolColor(record.School),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Casting Time", Value: castingTimeText(record.CastingTimes), Inline: true},
			{Name: "Range", Value: rangeText(record.Range), Inline: true},
			{Name: "Components", Value: componentsText(record.Components), Inline: true},
			{Name: "Duration", Value: durationText(record.Durations), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{Text: footerText(record)},
	}

	if record.HigherLevel != nil {
		name := record.HigherLevel.Name
		if name == "" {
			name = "At Higher Levels"
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   name,
			Value:  truncate(strings.Join(record.HigherLevel.Paragraphs, "\n\n"), 1024),
			Inline: false,
		})
	}

	if len(record.ScalingDice) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Scaling",
			Value:  truncate(scalingText(record.ScalingDice), 1024),
			Inline: false,
		})
	}

	if combat := combatText(record); combat != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Combat",
			Value:  combat,
			Inline: false,
		})
	}

	return embed
}

// headerLine renders the book-style level and school line, e.g.
// "*2nd-level evocation (ritual)*" or "*Conjuration cantrip*"
func headerLine(record *spell.Spell) string {
	var line string
	if record.Level == 0 {
		line = fmt.Sprintf("%s cantrip", record.School)
	} else {
		line = fmt.Sprintf("%s-level %s", ordinal(record.Level), strings.ToLower(record.School))
	}
	if record.Ritual {
		line += " (ritual)"
	}
	return "*" + line + "*"
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}

func castingTimeText(times []spell.CastingTime) string {
	if len(times) == 0 {
		return "Unknown"
	}
	parts := lo.Map(times, func(ct spell.CastingTime, _ int) string {
		text := fmt.Sprintf("%d %s", ct.Number, ct.Unit)
		if ct.Condition != "" {
			text += ", " + ct.Condition
		}
		return text
	})
	return strings.Join(parts, " or ")
}

func rangeText(r spell.Range) string {
	switch r.Type {
	case "", "special":
		return "Special"
	case "point":
		return distanceText(r.Distance)
	default:
		// Shape ranges (radius, cone, line, ...) center on the caster
		if r.Distance != nil && r.Distance.Amount != nil {
			return fmt.Sprintf("Self (%d-%s %s)",
				*r.Distance.Amount, shapeUnit(r.Distance.Type), r.Type)
		}
		return titleCaser.String(r.Type)
	}
}

func distanceText(d *spell.Distance) string {
	if d == nil {
		return "Self"
	}
	switch d.Type {
	case "self":
		return "Self"
	case "touch":
		return "Touch"
	case "sight":
		return "Sight"
	case "unlimited":
		return "Unlimited"
	default:
		if d.Amount == nil {
			return titleCaser.String(d.Type)
		}
		return fmt.Sprintf("%d %s", *d.Amount, d.Type)
	}
}

func shapeUnit(unit string) string {
	switch unit {
	case "feet":
		return "foot"
	case "miles":
		return "mile"
	default:
		return unit
	}
}

func componentsText(c spell.Components) string {
	var parts []string
	if c.Verbal {
		parts = append(parts, "V")
	}
	if c.Somatic {
		parts = append(parts, "S")
	}
	if c.Royalty {
		parts = append(parts, "R")
	}
	if c.Material != nil {
		if c.Material.Text != "" {
			parts = append(parts, fmt.Sprintf("M (%s)", c.Material.Text))
		} else {
			parts = append(parts, "M")
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, ", ")
}

func durationText(durations []spell.Duration) string {
	if len(durations) == 0 {
		return "Instantaneous"
	}
	parts := lo.Map(durations, func(d spell.Duration, _ int) string {
		return singleDurationText(d)
	})
	return strings.Join(parts, " or ")
}

func singleDurationText(d spell.Duration) string {
	switch d.Type {
	case "instant":
		return "Instantaneous"
	case "permanent":
		if len(d.Ends) > 0 {
			endings := lo.Map(d.Ends, func(end string, _ int) string {
				return endText(end)
			})
			return "Until " + strings.Join(endings, " or ")
		}
		return "Permanent"
	case "special":
		return "Special"
	case "timed":
		if d.Time == nil {
			return "Special"
		}
		unit := d.Time.Unit
		if d.Time.Amount != 1 {
			unit += "s"
		}
		text := fmt.Sprintf("%d %s", d.Time.Amount, unit)
		if d.Time.UpTo {
			text = "up to " + text
		}
		if d.Concentration {
			return "Concentration, " + text
		}
		return text
	default:
		return titleCaser.String(d.Type)
	}
}

func endText(end string) string {
	switch end {
	case "dispel":
		return "dispelled"
	case "trigger":
		return "triggered"
	default:
		return end
	}
}

// RenderDescriptions flattens description entries into Discord markdown,
// one blank line between entries
func RenderDescriptions(descs []spell.Description) string {
	parts := make([]string, 0, len(descs))
	for _, desc := range descs {
		switch d := desc.(type) {
		case spell.PlainText:
			parts = append(parts, d.Text)
		case spell.BulletList:
			lines := lo.Map(d.Items, func(item string, _ int) string {
				return "• " + item
			})
			parts = append(parts, strings.Join(lines, "\n"))
		case spell.Quote:
			lines := lo.Map(d.Paragraphs, func(p string, _ int) string {
				return "> " + p
			})
			if d.By != "" {
				lines = append(lines, "> *"+d.By+"*")
			}
			parts = append(parts, strings.Join(lines, "\n"))
		case spell.Subsection:
			parts = append(parts, fmt.Sprintf("**%s.** %s",
				d.Name, strings.Join(d.Paragraphs, "\n\n")))
		case spell.Table:
			parts = append(parts, tableText(d))
		}
	}
	return strings.Join(parts, "\n\n")
}

func tableText(table spell.Table) string {
	lines := make([]string, 0, len(table.Rows)+2)
	if table.Caption != "" {
		lines = append(lines, "**"+table.Caption+"**")
	}
	if len(table.ColLabels) > 0 {
		lines = append(lines, "`"+strings.Join(table.ColLabels, " | ")+"`")
	}
	for _, row := range table.Rows {
		lines = append(lines, strings.Join(row, " | "))
	}
	return strings.Join(lines, "\n")
}

func scalingText(tables []spell.ScalingTable) string {
	lines := make([]string, 0, len(tables))
	for i := range tables {
		table := &tables[i]
		entries := lo.Map(table.Levels(), func(level int, _ int) string {
			return fmt.Sprintf("%s at level %d", table.Entries[level].Raw, level)
		})
		lines = append(lines, fmt.Sprintf("**%s:** %s",
			table.Label, strings.Join(entries, ", ")))
	}
	return strings.Join(lines, "\n")
}

func combatText(record *spell.Spell) string {
	var parts []string
	switch record.AttackType {
	case spell.AttackMelee:
		parts = append(parts, "Melee spell attack")
	case spell.AttackRanged:
		parts = append(parts, "Ranged spell attack")
	}
	if len(record.SavingThrows) > 0 {
		saves := lo.Map(record.SavingThrows, func(save string, _ int) string {
			return titleCaser.String(save)
		})
		parts = append(parts, strings.Join(saves, "/")+" save")
	}
	if len(record.DamageInflicted) > 0 {
		parts = append(parts, strings.Join(record.DamageInflicted, ", ")+" damage")
	}
	if len(record.InflictedConditions) > 0 {
		parts = append(parts, "inflicts "+strings.Join(record.InflictedConditions, ", "))
	}
	return strings.Join(parts, " • ")
}

func footerText(record *spell.Spell) string {
	text := record.Source
	if record.Page > 0 {
		text = fmt.Sprintf("%s p.%d", record.Source, record.Page)
	}
	if record.InSRD {
		text += " • SRD"
	}
	return text
}

func schoolColor(school string) int {
	if color, ok := schoolColors[strings.ToLower(school)]; ok {
		return color
	}
	return 0x95a5a6 // Grey
}

// truncate caps s at limit runes, marking the cut with an ellipsis
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
