package spell

import (
	"errors"
	"fmt"
)

// ErrUnknownCode is returned when a coded field has no entry in its lookup
// table. An unknown code means the upstream data format changed, so lookups
// fail instead of defaulting.
var ErrUnknownCode = errors.New("unknown code")

var schoolNames = map[string]string{
	"A": "Abjuration",
	"C": "Conjuration",
	"D": "Divination",
	"E": "Enchantment",
	"I": "Illusion",
	"N": "Necromancy",
	"T": "Transmutation",
	"V": "Evocation",
}

var areaTagNames = map[string]string{
	"C":  "cube",
	"H":  "hemisphere",
	"L":  "line",
	"MT": "multiple targets",
	"N":  "cone",
	"Q":  "square",
	"R":  "circle",
	"S":  "sphere",
	"ST": "single target",
	"W":  "wall",
	"Y":  "cylinder",
}

var miscTagNames = map[string]string{
	"HL":  "healing",
	"MAC": "modifies AC",
	"PRM": "permanent effects",
	"SCL": "scaling effects",
	"SGT": "requires sight",
	"SMN": "summons creature",
	"THP": "grants temporary hit points",
	"TP":  "teleportation",
}

// SchoolName resolves a one-letter school code to its full name.
func SchoolName(code string) (string, error) {
	name, ok := schoolNames[code]
	if !ok {
		return "", fmt.Errorf("%w: school %q", ErrUnknownCode, code)
	}
	return name, nil
}

// AreaTagName resolves an area-of-effect tag to its display string.
func AreaTagName(tag string) (string, error) {
	name, ok := areaTagNames[tag]
	if !ok {
		return "", fmt.Errorf("%w: area tag %q", ErrUnknownCode, tag)
	}
	return name, nil
}

// MiscTagName resolves a misc tag to its display string.
func MiscTagName(tag string) (string, error) {
	name, ok := miscTagNames[tag]
	if !ok {
		return "", fmt.Errorf("%w: misc tag %q", ErrUnknownCode, tag)
	}
	return name, nil
}
