package testutils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
)

// CreateTestSpell creates a fully formed test spell record
func CreateTestSpell(name, source string, level int, school string) *spell.Spell {
	feet := 60
	return &spell.Spell{
		Key:          spell.MakeKey(name, source),
		Name:         name,
		Source:       source,
		Page:         241,
		InSRD:        true,
		Level:        level,
		School:       school,
		CastingTimes: []spell.CastingTime{{Number: 1, Unit: "action"}},
		Range:        spell.Range{Type: "point", Distance: &spell.Distance{Type: "feet", Amount: &feet}},
		Components:   spell.Components{Verbal: true, Somatic: true},
		Durations:    []spell.Duration{{Type: "instant"}},
		Descriptions: []spell.Description{
			spell.PlainText{Text: "Arcane energy streaks toward a creature of your choice."},
		},
	}
}

// SpellRecordJSON returns a minimal spell record in the 5e.tools layout.
// A record built from the same arguments as CreateTestSpell parses into the
// same fields, with the school given by its one-letter code.
func SpellRecordJSON(name, source string, level int, schoolCode string) string {
	return fmt.Sprintf(`{
		"name": %q,
		"source": %q,
		"page": 241,
		"srd": true,
		"level": %d,
		"school": %q,
		"time": [{"number": 1, "unit": "action"}],
		"range": {"type": "point", "distance": {"type": "feet", "amount": 60}},
		"components": {"v": true, "s": true},
		"duration": [{"type": "instant"}],
		"entries": ["Arcane energy streaks toward a creature of your choice."]
	}`, name, source, level, schoolCode)
}

// WriteSpellDataFile writes a data file in the 5e.tools layout wrapping the
// given spell records, and returns its path
func WriteSpellDataFile(t *testing.T, dir, name string, records ...string) string {
	t.Helper()

	doc := fmt.Sprintf(`{"spell": [%s]}`, strings.Join(records, ","))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}
