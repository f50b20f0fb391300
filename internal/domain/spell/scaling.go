package spell

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/spellbook-discord/internal/dice"
	"github.com/samber/lo"
)

// ScalingEntry is the dice a spell uses once the caster reaches one level
// threshold. Formula is nil when the source text is not parseable dice
// notation (some entries also depend on an external modifier); Raw always
// keeps the source text for display.
type ScalingEntry struct {
	Formula *dice.Formula `json:"formula,omitempty"`
	Raw     string        `json:"raw"`
}

// ScalingTable maps character level thresholds to the dice in effect from
// that level on.
type ScalingTable struct {
	Label   string               `json:"label"`
	Entries map[int]ScalingEntry `json:"entries"`
}

// Levels returns the table's level thresholds in ascending order.
func (t *ScalingTable) Levels() []int {
	levels := lo.Keys(t.Entries)
	sort.Ints(levels)
	return levels
}

// AtLevel returns the entry for the highest threshold at or below level.
// The second return is false when level is below every threshold.
func (t *ScalingTable) AtLevel(level int) (ScalingEntry, bool) {
	var (
		entry ScalingEntry
		best  int
		found bool
	)
	for threshold, e := range t.Entries {
		if threshold > level {
			continue
		}
		if !found || threshold > best {
			entry, best, found = e, threshold, true
		}
	}
	return entry, found
}

type rawScalingTable struct {
	Label   string            `json:"label"`
	Scaling map[string]string `json:"scaling"`
}

// parseScalingTables normalizes the scaling-dice field of a spell record,
// which the source data writes as either a single table object or a list of
// them. A table entry whose text does not parse as dice notation degrades
// to a formula-less entry instead of failing its siblings.
func parseScalingTables(raw json.RawMessage) ([]ScalingTable, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var rawTables []rawScalingTable
	if trimmed[0] == '[' {
		if err := json.Unmarshal(raw, &rawTables); err != nil {
			return nil, fmt.Errorf("decoding scaling dice list: %w", err)
		}
	} else {
		var single rawScalingTable
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("decoding scaling dice: %w", err)
		}
		rawTables = []rawScalingTable{single}
	}

	tables := make([]ScalingTable, 0, len(rawTables))
	for _, rt := range rawTables {
		table := ScalingTable{
			Label:   rt.Label,
			Entries: make(map[int]ScalingEntry, len(rt.Scaling)),
		}
		for key, text := range rt.Scaling {
			level, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("scaling level %q is not a number", key)
			}

			entry := ScalingEntry{Raw: text}
			formula, err := dice.Parse(text)
			if err == nil {
				entry.Formula = formula
			} else if !errors.Is(err, dice.ErrMalformedFormula) {
				return nil, err
			}
			table.Entries[level] = entry
		}
		tables = append(tables, table)
	}
	return tables, nil
}
