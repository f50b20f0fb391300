package spell

import "strings"

// AttackType says whether casting the spell makes an attack roll
type AttackType string

const (
	AttackNone   AttackType = ""
	AttackMelee  AttackType = "melee"
	AttackRanged AttackType = "ranged"
)

// CastingTime is one way the spell can be cast
type CastingTime struct {
	Number    int    `json:"number"`
	Unit      string `json:"unit"`
	Condition string `json:"condition,omitempty"`
}

// Distance is the measured part of a spell's range. Amount is nil for
// self-descriptive types like "touch" or "sight".
type Distance struct {
	Type   string `json:"type"`
	Amount *int   `json:"amount,omitempty"`
}

// Range describes how far the spell reaches
type Range struct {
	Type     string    `json:"type"`
	Distance *Distance `json:"distance,omitempty"`
}

// MaterialComponent is the physical component a casting requires. Cost is
// in copper pieces when the source prices the component. Consume marks
// components the casting uses up.
type MaterialComponent struct {
	Text    string `json:"text"`
	Cost    *int   `json:"cost,omitempty"`
	Consume bool   `json:"consume,omitempty"`
}

// Components lists what a casting requires
type Components struct {
	Verbal   bool               `json:"verbal"`
	Somatic  bool               `json:"somatic"`
	Royalty  bool               `json:"royalty,omitempty"`
	Material *MaterialComponent `json:"material,omitempty"`
}

// DurationTime is the measured length of a timed duration
type DurationTime struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"`
	UpTo   bool   `json:"upTo,omitempty"`
}

// Duration is one way the spell's effect persists or ends
type Duration struct {
	Type          string        `json:"type"`
	Time          *DurationTime `json:"time,omitempty"`
	Concentration bool          `json:"concentration,omitempty"`
	Ends          []string      `json:"ends,omitempty"`
}

// Spell is a fully parsed spell record. Every field is set once by Parse
// and never mutated, so records are safe to share across goroutines.
type Spell struct {
	Key                 string         `json:"key"`
	Name                string         `json:"name"`
	Source              string         `json:"source"`
	Page                int            `json:"page"`
	InSRD               bool           `json:"in_srd"`
	Level               int            `json:"level"` // 0 for cantrips
	School              string         `json:"school"`
	Ritual              bool           `json:"ritual"`
	CastingTimes        []CastingTime  `json:"casting_times"`
	Range               Range          `json:"range"`
	Components          Components     `json:"components"`
	Durations           []Duration     `json:"durations"`
	Descriptions        []Description  `json:"-"`
	HigherLevel         *Subsection    `json:"higher_level,omitempty"`
	ScalingDice         []ScalingTable `json:"scaling_dice,omitempty"`
	MiscTags            []string       `json:"misc_tags,omitempty"`
	AreaTags            []string       `json:"area_tags,omitempty"`
	InflictedConditions []string       `json:"inflicted_conditions,omitempty"`
	DamageInflicted     []string       `json:"damage_inflicted,omitempty"`
	DamageResisted      []string       `json:"damage_resisted,omitempty"`
	DamageVulnerable    []string       `json:"damage_vulnerable,omitempty"`
	DamageImmune        []string       `json:"damage_immune,omitempty"`
	SavingThrows        []string       `json:"saving_throws,omitempty"`
	AttackType          AttackType     `json:"attack_type,omitempty"`
	AbilityChecks       []string       `json:"ability_checks,omitempty"`
}

// MakeKey derives the lookup key for a spell from its name and source book,
// e.g. ("Vicious Mockery", "PHB") -> "vicious-mockery-phb".
func MakeKey(name, source string) string {
	return Slugify(name) + "-" + Slugify(source)
}

// Slugify lowercases s and collapses every non-alphanumeric run into a
// single dash. Keys, and the name half of a free-form lookup, are built
// from slugs.
func Slugify(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingDash = b.Len() > 0
			continue
		}
		if pendingDash {
			b.WriteByte('-')
			pendingDash = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
