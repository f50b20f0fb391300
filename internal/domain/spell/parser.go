package spell

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Raw JSON shapes as 5e.tools writes them. Boolean-ish keys ("srd", "meta",
// "concentration", "upTo", component letters) appear only when set, so they
// decode as raw messages and map to presence checks.
type rawSpell struct {
	Name               string            `json:"name"`
	Source             string            `json:"source"`
	Page               int               `json:"page"`
	SRD                json.RawMessage   `json:"srd"`
	Level              int               `json:"level"`
	School             string            `json:"school"`
	Time               []rawTime         `json:"time"`
	Range              rawRange          `json:"range"`
	Meta               json.RawMessage   `json:"meta"`
	Components         rawComponents     `json:"components"`
	Duration           []rawDuration     `json:"duration"`
	Entries            []json.RawMessage `json:"entries"`
	EntriesHigherLevel []Subsection      `json:"entriesHigherLevel"`
	ScalingLevelDice   json.RawMessage   `json:"scalingLevelDice"`
	MiscTags           []string          `json:"miscTags"`
	AreaTags           []string          `json:"areaTags"`
	ConditionInflict   []string          `json:"conditionInflict"`
	DamageInflict      []string          `json:"damageInflict"`
	DamageResist       []string          `json:"damageResist"`
	DamageVulnerable   []string          `json:"damageVulnerable"`
	DamageImmune       []string          `json:"damageImmune"`
	SavingThrow        []string          `json:"savingThrow"`
	SpellAttack        []string          `json:"spellAttack"`
	AbilityCheck       []string          `json:"abilityCheck"`
}

type rawTime struct {
	Number    int    `json:"number"`
	Unit      string `json:"unit"`
	Condition string `json:"condition"`
}

type rawRange struct {
	Type     string       `json:"type"`
	Distance *rawDistance `json:"distance"`
}

type rawDistance struct {
	Type   string `json:"type"`
	Amount *int   `json:"amount"`
}

type rawComponents struct {
	V json.RawMessage `json:"v"`
	S json.RawMessage `json:"s"`
	R json.RawMessage `json:"r"`
	M json.RawMessage `json:"m"`
}

type rawDuration struct {
	Type          string           `json:"type"`
	Duration      *rawDurationTime `json:"duration"`
	Concentration json.RawMessage  `json:"concentration"`
	Ends          []string         `json:"ends"`
}

type rawDurationTime struct {
	Amount int             `json:"amount"`
	Type   string          `json:"type"`
	UpTo   json.RawMessage `json:"upTo"`
}

// Parse converts one element of a 5e.tools "spell" array into a Spell.
// Optional keys map to absent values, never errors; an unknown school or
// tag code is an error wrapping ErrUnknownCode.
func Parse(data json.RawMessage) (*Spell, error) {
	var raw rawSpell
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding spell record: %w", err)
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("spell record has no name")
	}
	if raw.Source == "" {
		return nil, fmt.Errorf("spell %q has no source", raw.Name)
	}

	school, err := SchoolName(raw.School)
	if err != nil {
		return nil, fmt.Errorf("spell %q: %w", raw.Name, err)
	}

	miscTags, err := mapTags(raw.MiscTags, MiscTagName)
	if err != nil {
		return nil, fmt.Errorf("spell %q: %w", raw.Name, err)
	}
	areaTags, err := mapTags(raw.AreaTags, AreaTagName)
	if err != nil {
		return nil, fmt.Errorf("spell %q: %w", raw.Name, err)
	}

	descriptions, err := ClassifyEntries(raw.Entries)
	if err != nil {
		return nil, fmt.Errorf("spell %q: %w", raw.Name, err)
	}

	scaling, err := parseScalingTables(raw.ScalingLevelDice)
	if err != nil {
		return nil, fmt.Errorf("spell %q: %w", raw.Name, err)
	}

	components, err := parseComponents(raw.Components)
	if err != nil {
		return nil, fmt.Errorf("spell %q: %w", raw.Name, err)
	}

	s := &Spell{
		Key:                 MakeKey(raw.Name, raw.Source),
		Name:                raw.Name,
		Source:              raw.Source,
		Page:                raw.Page,
		InSRD:               present(raw.SRD),
		Level:               raw.Level,
		School:              school,
		Ritual:              present(raw.Meta),
		CastingTimes:        parseCastingTimes(raw.Time),
		Range:               parseRange(raw.Range),
		Components:          components,
		Durations:           parseDurations(raw.Duration),
		Descriptions:        descriptions,
		HigherLevel:         parseHigherLevel(raw.EntriesHigherLevel),
		ScalingDice:         scaling,
		MiscTags:            miscTags,
		AreaTags:            areaTags,
		InflictedConditions: raw.ConditionInflict,
		DamageInflicted:     raw.DamageInflict,
		DamageResisted:      raw.DamageResist,
		DamageVulnerable:    raw.DamageVulnerable,
		DamageImmune:        raw.DamageImmune,
		SavingThrows:        raw.SavingThrow,
		AttackType:          parseAttackType(raw.SpellAttack),
		AbilityChecks:       raw.AbilityCheck,
	}
	return s, nil
}

// present reports whether a boolean-ish key was present in the source JSON.
func present(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && !bytes.Equal(trimmed, []byte("null"))
}

func mapTags(tags []string, lookup func(string) (string, error)) ([]string, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	mapped := make([]string, len(tags))
	for i, tag := range tags {
		name, err := lookup(tag)
		if err != nil {
			return nil, err
		}
		mapped[i] = name
	}
	return mapped, nil
}

func parseCastingTimes(times []rawTime) []CastingTime {
	out := make([]CastingTime, len(times))
	for i, t := range times {
		out[i] = CastingTime{Number: t.Number, Unit: t.Unit, Condition: t.Condition}
	}
	return out
}

func parseRange(r rawRange) Range {
	rng := Range{Type: r.Type}
	if r.Distance != nil {
		rng.Distance = &Distance{Type: r.Distance.Type, Amount: r.Distance.Amount}
	}
	return rng
}

// parseComponents handles the three shapes the "m" key takes in source
// data: a bare true, a plain string, or an object with text/cost/consume.
func parseComponents(raw rawComponents) (Components, error) {
	components := Components{
		Verbal:  present(raw.V),
		Somatic: present(raw.S),
		Royalty: present(raw.R),
	}

	m := bytes.TrimSpace(raw.M)
	if !present(m) {
		return components, nil
	}

	switch m[0] {
	case '{':
		var material struct {
			Text    string          `json:"text"`
			Cost    *int            `json:"cost"`
			Consume json.RawMessage `json:"consume"`
		}
		if err := json.Unmarshal(m, &material); err != nil {
			return Components{}, fmt.Errorf("decoding material component: %w", err)
		}
		components.Material = &MaterialComponent{
			Text:    material.Text,
			Cost:    material.Cost,
			Consume: present(material.Consume),
		}
	case '"':
		var text string
		if err := json.Unmarshal(m, &text); err != nil {
			return Components{}, fmt.Errorf("decoding material component: %w", err)
		}
		components.Material = &MaterialComponent{Text: text}
	default:
		// a bare true: material required but not described
		components.Material = &MaterialComponent{}
	}
	return components, nil
}

func parseDurations(durations []rawDuration) []Duration {
	out := make([]Duration, len(durations))
	for i, d := range durations {
		duration := Duration{
			Type:          d.Type,
			Concentration: present(d.Concentration),
			Ends:          d.Ends,
		}
		if d.Duration != nil {
			duration.Time = &DurationTime{
				Amount: d.Duration.Amount,
				Unit:   d.Duration.Type,
				UpTo:   present(d.Duration.UpTo),
			}
		}
		out[i] = duration
	}
	return out
}

// parseHigherLevel keeps only the first higher-level block; source data
// never carries more than one.
func parseHigherLevel(subs []Subsection) *Subsection {
	if len(subs) == 0 {
		return nil
	}
	first := subs[0]
	return &first
}

func parseAttackType(attack []string) AttackType {
	if len(attack) == 0 {
		return AttackNone
	}
	if attack[0] == "M" {
		return AttackMelee
	}
	return AttackRanged
}
