package spells

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
)

// EntryData wraps a description entry with type information for JSON marshaling
type EntryData struct {
	Type  spell.EntryType `json:"type"`
	Entry json.RawMessage `json:"entry"`
}

// SpellData represents the serialized form of a spell in Redis
type SpellData struct {
	Key                 string               `json:"key"`
	Name                string               `json:"name"`
	Source              string               `json:"source"`
	Page                int                  `json:"page"`
	InSRD               bool                 `json:"in_srd"`
	Level               int                  `json:"level"`
	School              string               `json:"school"`
	Ritual              bool                 `json:"ritual"`
	CastingTimes        []spell.CastingTime  `json:"casting_times"`
	Range               spell.Range          `json:"range"`
	Components          spell.Components     `json:"components"`
	Durations           []spell.Duration     `json:"durations"`
	Descriptions        []EntryData          `json:"descriptions"`
	HigherLevel         *spell.Subsection    `json:"higher_level,omitempty"`
	ScalingDice         []spell.ScalingTable `json:"scaling_dice,omitempty"`
	MiscTags            []string             `json:"misc_tags,omitempty"`
	AreaTags            []string             `json:"area_tags,omitempty"`
	InflictedConditions []string             `json:"inflicted_conditions,omitempty"`
	DamageInflicted     []string             `json:"damage_inflicted,omitempty"`
	DamageResisted      []string             `json:"damage_resisted,omitempty"`
	DamageVulnerable    []string             `json:"damage_vulnerable,omitempty"`
	DamageImmune        []string             `json:"damage_immune,omitempty"`
	SavingThrows        []string             `json:"saving_throws,omitempty"`
	AttackType          spell.AttackType     `json:"attack_type,omitempty"`
	AbilityChecks       []string             `json:"ability_checks,omitempty"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// descriptionToData converts a Description interface to EntryData for storage
func descriptionToData(desc spell.Description) (EntryData, error) {
	raw, err := json.Marshal(desc)
	if err != nil {
		return EntryData{}, fmt.Errorf("failed to marshal description: %w", err)
	}

	return EntryData{
		Type:  desc.EntryType(),
		Entry: raw,
	}, nil
}

// dataToDescription converts EntryData back to a Description interface
func dataToDescription(data EntryData) (spell.Description, error) {
	switch data.Type {
	case spell.EntryText:
		var text spell.PlainText
		if err := json.Unmarshal(data.Entry, &text); err != nil {
			return nil, fmt.Errorf("failed to unmarshal text entry: %w", err)
		}
		return text, nil
	case spell.EntryList:
		var list spell.BulletList
		if err := json.Unmarshal(data.Entry, &list); err != nil {
			return nil, fmt.Errorf("failed to unmarshal list entry: %w", err)
		}
		return list, nil
	case spell.EntryQuote:
		var quote spell.Quote
		if err := json.Unmarshal(data.Entry, &quote); err != nil {
			return nil, fmt.Errorf("failed to unmarshal quote entry: %w", err)
		}
		return quote, nil
	case spell.EntrySubsection:
		var sub spell.Subsection
		if err := json.Unmarshal(data.Entry, &sub); err != nil {
			return nil, fmt.Errorf("failed to unmarshal subsection entry: %w", err)
		}
		return sub, nil
	case spell.EntryTable:
		var table spell.Table
		if err := json.Unmarshal(data.Entry, &table); err != nil {
			return nil, fmt.Errorf("failed to unmarshal table entry: %w", err)
		}
		return table, nil
	default:
		return nil, fmt.Errorf("unknown description entry type '%s'", data.Type)
	}
}

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed spell repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}
	if cfg.TimeProvider == nil {
		cfg.TimeProvider = RealTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: cfg.TimeProvider,
	}
}

// key generates the Redis key for a spell
func (r *redisRepo) key(key string) string {
	return fmt.Sprintf("spell:%s", key)
}

// allSpellsKey generates the Redis key for the full spell index
func (r *redisRepo) allSpellsKey() string {
	return "spells:all"
}

// levelSpellsKey generates the Redis key for a level's spell index
func (r *redisRepo) levelSpellsKey(level int) string {
	return fmt.Sprintf("spells:level:%d", level)
}

// schoolSpellsKey generates the Redis key for a school's spell index
func (r *redisRepo) schoolSpellsKey(school string) string {
	return fmt.Sprintf("spells:school:%s", strings.ToLower(school))
}

// importInfoKey generates the Redis key for import run info
func (r *redisRepo) importInfoKey() string {
	return "spells:import"
}

// Create stores a new spell
func (r *redisRepo) Create(ctx context.Context, record *spell.Spell) error {
	if record == nil {
		return dnderr.InvalidArgument("spell cannot be nil")
	}
	if record.Key == "" {
		return dnderr.InvalidArgument("spell key is required")
	}

	exists, err := r.client.Exists(ctx, r.key(record.Key)).Result()
	if err != nil {
		return fmt.Errorf("failed to check spell existence: %w", err)
	}
	if exists > 0 {
		return dnderr.AlreadyExistsf("spell with key '%s' already exists", record.Key).
			WithMeta("spell_key", record.Key)
	}

	return r.set(ctx, record)
}

// Upsert stores a spell, replacing any existing record with the same key
func (r *redisRepo) Upsert(ctx context.Context, record *spell.Spell) error {
	if record == nil {
		return dnderr.InvalidArgument("spell cannot be nil")
	}
	if record.Key == "" {
		return dnderr.InvalidArgument("spell key is required")
	}

	return r.set(ctx, record)
}

func (r *redisRepo) set(ctx context.Context, record *spell.Spell) error {
	data, err := toSpellData(record)
	if err != nil {
		return fmt.Errorf("failed to convert spell data: %w", err)
	}
	data.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal spell: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(record.Key), string(jsonData), 0)
	pipe.SAdd(ctx, r.allSpellsKey(), record.Key)
	pipe.SAdd(ctx, r.levelSpellsKey(record.Level), record.Key)
	pipe.SAdd(ctx, r.schoolSpellsKey(record.School), record.Key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store spell in Redis: %w", err)
	}

	return nil
}

// Get retrieves a spell by key
func (r *redisRepo) Get(ctx context.Context, key string) (*spell.Spell, error) {
	if key == "" {
		return nil, dnderr.InvalidArgument("spell key is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(key)).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFoundf("spell with key '%s' not found", key).
			WithMeta("spell_key", key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get spell: %w", err)
	}

	var data SpellData
	if err := json.Unmarshal([]byte(jsonData), &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spell: %w", err)
	}

	return fromSpellData(&data)
}

// ListKeys returns every stored spell key, sorted
func (r *redisRepo) ListKeys(ctx context.Context) ([]string, error) {
	keys, err := r.client.SMembers(ctx, r.allSpellsKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list spell keys: %w", err)
	}

	sort.Strings(keys)
	return keys, nil
}

// ListByLevel retrieves all spells of a given level
func (r *redisRepo) ListByLevel(ctx context.Context, level int) ([]*spell.Spell, error) {
	if level < 0 {
		return nil, dnderr.InvalidArgument("spell level cannot be negative")
	}

	return r.listByIndex(ctx, r.levelSpellsKey(level))
}

// ListBySchool retrieves all spells of a given school
func (r *redisRepo) ListBySchool(ctx context.Context, school string) ([]*spell.Spell, error) {
	if school == "" {
		return nil, dnderr.InvalidArgument("school is required")
	}

	return r.listByIndex(ctx, r.schoolSpellsKey(school))
}

func (r *redisRepo) listByIndex(ctx context.Context, indexKey string) ([]*spell.Spell, error) {
	keys, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list spell keys: %w", err)
	}

	records := make([]*spell.Spell, len(keys))

	g, ctx := errgroup.WithContext(ctx)
	for i, key := range keys {
		i, key := i, key // per-iteration copies; module builds with go < 1.22
		g.Go(func() error {
			record, err := r.Get(ctx, key)
			if err != nil {
				return fmt.Errorf("failed to get spell %s: %w", key, err)
			}
			records[i] = record
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}

// Delete removes a spell
func (r *redisRepo) Delete(ctx context.Context, key string) error {
	if key == "" {
		return dnderr.InvalidArgument("spell key is required")
	}

	record, err := r.Get(ctx, key)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(key))
	pipe.SRem(ctx, r.allSpellsKey(), key)
	pipe.SRem(ctx, r.levelSpellsKey(record.Level), key)
	pipe.SRem(ctx, r.schoolSpellsKey(record.School), key)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete spell from Redis: %w", err)
	}

	return nil
}

// SetImportInfo records a completed import run
func (r *redisRepo) SetImportInfo(ctx context.Context, info *ImportInfo) error {
	if info == nil {
		return dnderr.InvalidArgument("import info cannot be nil")
	}

	jsonData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal import info: %w", err)
	}

	if err := r.client.Set(ctx, r.importInfoKey(), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to store import info: %w", err)
	}

	return nil
}

// GetImportInfo retrieves the most recent import run
func (r *redisRepo) GetImportInfo(ctx context.Context) (*ImportInfo, error) {
	jsonData, err := r.client.Get(ctx, r.importInfoKey()).Result()
	if err == redis.Nil {
		return nil, dnderr.NotFound("no import has been recorded")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get import info: %w", err)
	}

	var info ImportInfo
	if err := json.Unmarshal([]byte(jsonData), &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal import info: %w", err)
	}

	return &info, nil
}

// toSpellData converts a spell to its serialized form
func toSpellData(record *spell.Spell) (*SpellData, error) {
	descriptions := make([]EntryData, 0, len(record.Descriptions))
	for _, desc := range record.Descriptions {
		data, err := descriptionToData(desc)
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, data)
	}

	return &SpellData{
		Key:                 record.Key,
		Name:                record.Name,
		Source:              record.Source,
		Page:                record.Page,
		InSRD:               record.InSRD,
		Level:               record.Level,
		School:              record.School,
		Ritual:              record.Ritual,
		CastingTimes:        record.CastingTimes,
		Range:               record.Range,
		Components:          record.Components,
		Durations:           record.Durations,
		Descriptions:        descriptions,
		HigherLevel:         record.HigherLevel,
		ScalingDice:         record.ScalingDice,
		MiscTags:            record.MiscTags,
		AreaTags:            record.AreaTags,
		InflictedConditions: record.InflictedConditions,
		DamageInflicted:     record.DamageInflicted,
		DamageResisted:      record.DamageResisted,
		DamageVulnerable:    record.DamageVulnerable,
		DamageImmune:        record.DamageImmune,
		SavingThrows:        record.SavingThrows,
		AttackType:          record.AttackType,
		AbilityChecks:       record.AbilityChecks,
	}, nil
}

// fromSpellData converts serialized spell data back to a spell
func fromSpellData(data *SpellData) (*spell.Spell, error) {
	descriptions := make([]spell.Description, 0, len(data.Descriptions))
	for _, entry := range data.Descriptions {
		desc, err := dataToDescription(entry)
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, desc)
	}

	return &spell.Spell{
		Key:                 data.Key,
		Name:                data.Name,
		Source:              data.Source,
		Page:                data.Page,
		InSRD:               data.InSRD,
		Level:               data.Level,
		School:              data.School,
		Ritual:              data.Ritual,
		CastingTimes:        data.CastingTimes,
		Range:               data.Range,
		Components:          data.Components,
		Durations:           data.Durations,
		Descriptions:        descriptions,
		HigherLevel:         data.HigherLevel,
		ScalingDice:         data.ScalingDice,
		MiscTags:            data.MiscTags,
		AreaTags:            data.AreaTags,
		InflictedConditions: data.InflictedConditions,
		DamageInflicted:     data.DamageInflicted,
		DamageResisted:      data.DamageResisted,
		DamageVulnerable:    data.DamageVulnerable,
		DamageImmune:        data.DamageImmune,
		SavingThrows:        data.SavingThrows,
		AttackType:          data.AttackType,
		AbilityChecks:       data.AbilityChecks,
	}, nil
}
