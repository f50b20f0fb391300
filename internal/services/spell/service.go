package spell

//go:generate mockgen -destination=mock/mock_service.go -package=mockspell -source=service.go

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/KirkDiggler/spellbook-discord/internal/clients/fivetools"
	"github.com/KirkDiggler/spellbook-discord/internal/dice"
	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
	"github.com/KirkDiggler/spellbook-discord/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-discord/internal/uuid"
)

// Repository is an alias for the spell repository interface
type Repository = spells.Repository

// Service defines the spell service interface
type Service interface {
	// GetSpell retrieves a spell by key
	GetSpell(ctx context.Context, key string) (*spell.Spell, error)

	// FindSpell retrieves a spell by free-form name, preferring the PHB
	// printing when several source books carry the name
	FindSpell(ctx context.Context, input *FindSpellInput) (*spell.Spell, error)

	// ListSpells lists the spells matching the input filters, sorted by name
	ListSpells(ctx context.Context, input *ListSpellsInput) ([]*spell.Spell, error)

	// ImportAll loads every spell data file and stores the records
	ImportAll(ctx context.Context) (*spells.ImportInfo, error)

	// RollFormula parses dice notation and rolls it
	RollFormula(notation string) (*dice.RollResult, error)

	// RollScaling rolls the scaling dice a spell uses at a caster level
	RollScaling(ctx context.Context, input *RollScalingInput) ([]*ScalingRoll, error)
}

// FindSpellInput identifies a spell by name, optionally pinned to a source book
type FindSpellInput struct {
	Name   string
	Source string // Optional
}

// ListSpellsInput filters the spell listing; at least one filter is required
type ListSpellsInput struct {
	Level  *int
	School string
}

// RollScalingInput selects the scaling entry to roll
type RollScalingInput struct {
	Key         string
	CasterLevel int
}

// ScalingRoll is the outcome of rolling one scaling table at a caster level.
// Result is nil when the table entry is not dice notation; Raw then carries
// the text to show instead.
type ScalingRoll struct {
	Label  string
	Raw    string
	Result *dice.RollResult
}

// service implements the Service interface
type service struct {
	repository    Repository
	client        fivetools.Client
	roller        dice.Roller
	uuidGenerator uuid.Generator
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository    Repository       // Required
	Client        fivetools.Client // Required
	Roller        dice.Roller      // Optional, will use a random roller if nil
	UUIDGenerator uuid.Generator   // Optional, will use default if nil
}

// NewService creates a new spell service
func NewService(cfg *ServiceConfig) Service {
	if cfg.Repository == nil {
		panic("repository is required")
	}
	if cfg.Client == nil {
		panic("client is required")
	}

	svc := &service{
		repository: cfg.Repository,
		client:     cfg.Client,
	}

	if cfg.Roller != nil {
		svc.roller = cfg.Roller
	} else {
		svc.roller = dice.NewRandomRoller()
	}

	if cfg.UUIDGenerator != nil {
		svc.uuidGenerator = cfg.UUIDGenerator
	} else {
		svc.uuidGenerator = uuid.NewGoogleUUIDGenerator()
	}

	return svc
}

// GetSpell retrieves a spell by key
func (s *service) GetSpell(ctx context.Context, key string) (*spell.Spell, error) {
	if strings.TrimSpace(key) == "" {
		return nil, dnderr.InvalidArgument("spell key is required")
	}

	return s.repository.Get(ctx, key)
}

// FindSpell retrieves a spell by free-form name
func (s *service) FindSpell(ctx context.Context, input *FindSpellInput) (*spell.Spell, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, dnderr.InvalidArgument("spell name is required")
	}

	if input.Source != "" {
		return s.repository.Get(ctx, spell.MakeKey(input.Name, input.Source))
	}

	keys, err := s.repository.ListKeys(ctx)
	if err != nil {
		return nil, err
	}

	// A key is the name slug plus a source slug; source slugs carry no
	// dashes, so the remainder after the name must be a single token.
	slug := spell.Slugify(input.Name)
	var matches []string
	for _, key := range keys {
		if key == slug {
			matches = append(matches, key)
			continue
		}
		rest, found := strings.CutPrefix(key, slug+"-")
		if found && !strings.Contains(rest, "-") {
			matches = append(matches, key)
		}
	}
	if len(matches) == 0 {
		return nil, dnderr.NotFoundf("no spell matches '%s'", input.Name).
			WithMeta("spell_name", input.Name)
	}

	// Prefer the PHB printing when several sources carry the spell
	key := matches[0]
	for _, match := range matches {
		if strings.HasSuffix(match, "-phb") {
			key = match
			break
		}
	}

	return s.repository.Get(ctx, key)
}

// ListSpells lists the spells matching the input filters
func (s *service) ListSpells(ctx context.Context, input *ListSpellsInput) ([]*spell.Spell, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.Level == nil && input.School == "" {
		return nil, dnderr.InvalidArgument("a level or school filter is required")
	}

	var (
		records []*spell.Spell
		err     error
	)
	if input.Level != nil {
		records, err = s.repository.ListByLevel(ctx, *input.Level)
	} else {
		records, err = s.repository.ListBySchool(ctx, input.School)
	}
	if err != nil {
		return nil, err
	}

	if input.Level != nil && input.School != "" {
		records = lo.Filter(records, func(record *spell.Spell, _ int) bool {
			return strings.EqualFold(record.School, input.School)
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Name < records[j].Name
	})

	return records, nil
}

// ImportAll loads every spell data file and stores the records
func (s *service) ImportAll(ctx context.Context) (*spells.ImportInfo, error) {
	names, err := s.client.ListSpellFiles()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, dnderr.NotFound("no spell data files found")
	}

	total := 0
	for _, name := range names {
		records, err := s.client.LoadSpellFile(name)
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			if err := s.repository.Upsert(ctx, record); err != nil {
				return nil, dnderr.Wrapf(err, "storing spell '%s'", record.Key)
			}
		}
		total += len(records)
	}

	info := &spells.ImportInfo{
		RunID:      s.uuidGenerator.New(),
		Files:      len(names),
		Spells:     total,
		ImportedAt: time.Now().UTC(),
	}
	if err := s.repository.SetImportInfo(ctx, info); err != nil {
		return nil, err
	}

	return info, nil
}

// RollFormula parses dice notation and rolls it
func (s *service) RollFormula(notation string) (*dice.RollResult, error) {
	formula, err := dice.Parse(notation)
	if err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeInvalidArgument,
			"invalid dice notation")
	}

	return formula.Roll(s.roller)
}

// RollScaling rolls the scaling dice a spell uses at a caster level
func (s *service) RollScaling(ctx context.Context, input *RollScalingInput) ([]*ScalingRoll, error) {
	if input == nil {
		return nil, dnderr.InvalidArgument("input cannot be nil")
	}
	if input.CasterLevel < 1 || input.CasterLevel > 20 {
		return nil, dnderr.InvalidArgumentf("caster level %d is out of range", input.CasterLevel)
	}

	record, err := s.repository.Get(ctx, input.Key)
	if err != nil {
		return nil, err
	}
	if len(record.ScalingDice) == 0 {
		return nil, dnderr.InvalidArgumentf("spell '%s' has no scaling dice", record.Name).
			WithMeta("spell_key", record.Key)
	}

	var rolls []*ScalingRoll
	for i := range record.ScalingDice {
		table := &record.ScalingDice[i]
		entry, ok := table.AtLevel(input.CasterLevel)
		if !ok {
			continue
		}

		roll := &ScalingRoll{Label: table.Label, Raw: entry.Raw}
		if entry.Formula != nil {
			result, err := entry.Formula.Roll(s.roller)
			if err != nil {
				return nil, err
			}
			roll.Result = result
		}
		rolls = append(rolls, roll)
	}
	if len(rolls) == 0 {
		return nil, dnderr.NotFoundf("spell '%s' has no scaling entry at level %d",
			record.Name, input.CasterLevel)
	}

	return rolls, nil
}
