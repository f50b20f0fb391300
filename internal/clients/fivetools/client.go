package fivetools

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
)

// spellFilePrefix filters spell data files from the rest of a 5e.tools data
// directory (index.json, sources.json and friends).
const spellFilePrefix = "spells-"

type client struct {
	dir    string
	logger zerolog.Logger
}

type Config struct {
	// Dir is the directory holding 5e.tools spell JSON files.
	Dir string

	Logger zerolog.Logger
}

// New creates a file-backed spell data client.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, dnderr.InvalidArgument("cfg is required")
	}
	if cfg.Dir == "" {
		return nil, dnderr.InvalidArgument("cfg.Dir is required")
	}

	return &client{
		dir:    cfg.Dir,
		logger: cfg.Logger.With().Str("component", "fivetools").Logger(),
	}, nil
}

// spellFile is the envelope each 5e.tools spell file wraps its records in.
type spellFile struct {
	Spell []json.RawMessage `json:"spell"`
}

func (c *client) ListSpellFiles() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, dnderr.Wrapf(err, "reading data directory %s", c.dir)
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, spellFilePrefix) || !strings.HasSuffix(name, ".json") {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

func (c *client) LoadSpellFile(name string) ([]*spell.Spell, error) {
	data, err := os.ReadFile(filepath.Join(c.dir, name))
	if err != nil {
		return nil, dnderr.Wrapf(err, "reading spell file %s", name)
	}

	var file spellFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
			fmt.Sprintf("decoding spell file %s", name))
	}

	spells := make([]*spell.Spell, 0, len(file.Spell))
	for i, raw := range file.Spell {
		parsed, err := spell.Parse(raw)
		if err != nil {
			c.logger.Warn().
				Err(err).
				Str("file", name).
				Int("index", i).
				Msg("skipping unparseable spell record")
			continue
		}
		spells = append(spells, parsed)
	}

	c.logger.Debug().
		Str("file", name).
		Int("parsed", len(spells)).
		Int("total", len(file.Spell)).
		Msg("loaded spell file")

	return spells, nil
}

func (c *client) LoadAllSpells() ([]*spell.Spell, error) {
	names, err := c.ListSpellFiles()
	if err != nil {
		return nil, err
	}

	var spells []*spell.Spell
	for _, name := range names {
		loaded, err := c.LoadSpellFile(name)
		if err != nil {
			return nil, err
		}
		spells = append(spells, loaded...)
	}
	return spells, nil
}
