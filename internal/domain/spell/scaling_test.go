package spell_test

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parseScaling routes scaling JSON through a minimal spell record so tests
// exercise the same path production data takes.
func parseScaling(t *testing.T, scalingJSON string) []spell.ScalingTable {
	t.Helper()

	record := `{
		"name": "Test Spell",
		"source": "PHB",
		"page": 1,
		"level": 0,
		"school": "V",
		"time": [{"number": 1, "unit": "action"}],
		"range": {"type": "self"},
		"components": {"v": true},
		"duration": [{"type": "instant"}],
		"entries": ["Text."],
		"scalingLevelDice": ` + scalingJSON + `
	}`

	parsed, err := spell.Parse(json.RawMessage(record))
	require.NoError(t, err)
	return parsed.ScalingDice
}

func TestScalingTables_SingleObject(t *testing.T) {
	tables := parseScaling(t, `{"label":"Damage","scaling":{"5":"1d6","11":"2d6"}}`)

	require.Len(t, tables, 1)
	table := tables[0]
	assert.Equal(t, "Damage", table.Label)
	require.Len(t, table.Entries, 2)

	five := table.Entries[5]
	require.NotNil(t, five.Formula)
	assert.Equal(t, "1d6", five.Formula.String())
	assert.Equal(t, "1d6", five.Raw)

	eleven := table.Entries[11]
	require.NotNil(t, eleven.Formula)
	assert.Equal(t, "2d6", eleven.Formula.String())
}

func TestScalingTables_MalformedEntryDegrades(t *testing.T) {
	tables := parseScaling(t, `{"label":"Damage","scaling":{"5":"1d6","11":"Xd6"}}`)

	require.Len(t, tables, 1)
	table := tables[0]
	assert.Equal(t, "Damage", table.Label)

	five := table.Entries[5]
	require.NotNil(t, five.Formula)
	assert.Equal(t, "1d6", five.Formula.String())

	// the bad entry keeps its text but carries no formula
	eleven := table.Entries[11]
	assert.Nil(t, eleven.Formula)
	assert.Equal(t, "Xd6", eleven.Raw)
}

func TestScalingTables_ListNormalizes(t *testing.T) {
	tables := parseScaling(t, `[
		{"label":"Piercing Damage","scaling":{"1":"1d10"}},
		{"label":"Darts","scaling":{"5":"2","11":"3"}}
	]`)

	require.Len(t, tables, 2)
	assert.Equal(t, "Piercing Damage", tables[0].Label)
	assert.Equal(t, "Darts", tables[1].Label)

	// plain numbers are not dice notation
	assert.Nil(t, tables[1].Entries[5].Formula)
	assert.Equal(t, "2", tables[1].Entries[5].Raw)
}

func TestScalingTables_Absent(t *testing.T) {
	record := `{
		"name": "Test Spell",
		"source": "PHB",
		"page": 1,
		"level": 0,
		"school": "V",
		"time": [{"number": 1, "unit": "action"}],
		"range": {"type": "self"},
		"components": {"v": true},
		"duration": [{"type": "instant"}],
		"entries": ["Text."]
	}`

	parsed, err := spell.Parse(json.RawMessage(record))
	require.NoError(t, err)
	assert.Empty(t, parsed.ScalingDice)
}

func TestScalingTables_NonNumericLevelKey(t *testing.T) {
	record := `{
		"name": "Test Spell",
		"source": "PHB",
		"page": 1,
		"level": 0,
		"school": "V",
		"time": [{"number": 1, "unit": "action"}],
		"range": {"type": "self"},
		"components": {"v": true},
		"duration": [{"type": "instant"}],
		"entries": ["Text."],
		"scalingLevelDice": {"label":"Damage","scaling":{"five":"1d6"}}
	}`

	_, err := spell.Parse(json.RawMessage(record))
	assert.Error(t, err)
}

func TestScalingTable_AtLevel(t *testing.T) {
	tables := parseScaling(t, `{"label":"Damage","scaling":{"1":"1d4","5":"2d4","11":"3d4","17":"4d4"}}`)
	require.Len(t, tables, 1)
	table := tables[0]

	tests := []struct {
		name      string
		level     int
		wantRaw   string
		wantFound bool
	}{
		{name: "below first threshold", level: 0, wantFound: false},
		{name: "exact first threshold", level: 1, wantRaw: "1d4", wantFound: true},
		{name: "between thresholds", level: 7, wantRaw: "2d4", wantFound: true},
		{name: "exact later threshold", level: 11, wantRaw: "3d4", wantFound: true},
		{name: "above all thresholds", level: 20, wantRaw: "4d4", wantFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, found := table.AtLevel(tt.level)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.wantRaw, entry.Raw)
			}
		})
	}
}

func TestScalingTable_Levels(t *testing.T) {
	tables := parseScaling(t, `{"label":"Damage","scaling":{"17":"4d4","1":"1d4","11":"3d4","5":"2d4"}}`)
	require.Len(t, tables, 1)

	assert.Equal(t, []int{1, 5, 11, 17}, tables[0].Levels())
}
