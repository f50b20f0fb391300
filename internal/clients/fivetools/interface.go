package fivetools

//go:generate mockgen -destination=mock/mock_client.go -package=mockfivetools . Client

import (
	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
)

// Client reads spell data files in the 5e.tools JSON layout.
type Client interface {
	// ListSpellFiles returns the spell data file names in the data
	// directory, sorted.
	ListSpellFiles() ([]string, error)

	// LoadSpellFile parses every spell record in one data file. Records
	// that fail to parse are skipped; a skipped record never aborts its
	// siblings.
	LoadSpellFile(name string) ([]*spell.Spell, error)

	// LoadAllSpells parses every spell record in every data file.
	LoadAllSpells() ([]*spell.Spell, error)
}
