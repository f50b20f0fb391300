package spells

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"go.uber.org/mock/gomock"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook-discord/internal/dice"
	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
	"github.com/KirkDiggler/spellbook-discord/internal/repositories/spells/mocks"
)

type RedisRepoTestSuite struct {
	suite.Suite
	mockClient   *redis.Client
	mock         redismock.ClientMock
	repo         Repository
	mockCtrl     *gomock.Controller
	timeProvider *mocks.MockTimeProvider
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.mockClient, s.mock = redismock.NewClientMock()
	s.mockCtrl = gomock.NewController(s.T())
	s.timeProvider = mocks.NewMockTimeProvider(s.mockCtrl)
	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:       s.mockClient,
		TimeProvider: s.timeProvider,
	})
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) createTestSpell() *spell.Spell {
	feet := 90
	return &spell.Spell{
		Key:          "acid-arrow-phb",
		Name:         "Acid Arrow",
		Source:       "PHB",
		Page:         259,
		InSRD:        true,
		Level:        2,
		School:       "Evocation",
		CastingTimes: []spell.CastingTime{{Number: 1, Unit: "action"}},
		Range:        spell.Range{Type: "point", Distance: &spell.Distance{Type: "feet", Amount: &feet}},
		Components:   spell.Components{Verbal: true, Somatic: true},
		Durations:    []spell.Duration{{Type: "instant"}},
		Descriptions: []spell.Description{
			spell.PlainText{Text: "A shimmering green arrow streaks toward a target and bursts in a spray of acid."},
		},
		DamageInflicted: []string{"acid"},
		AttackType:      spell.AttackRanged,
	}
}

// marshalSpellData renders the exact JSON the repository writes for a record
func (s *RedisRepoTestSuite) marshalSpellData(record *spell.Spell, updatedAt time.Time) string {
	data, err := toSpellData(record)
	s.Require().NoError(err)
	data.UpdatedAt = updatedAt

	jsonData, err := json.Marshal(data)
	s.Require().NoError(err)
	return string(jsonData)
}

func (s *RedisRepoTestSuite) TestCreate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now)

	record := s.createTestSpell()
	jsonData := s.marshalSpellData(record, now)

	s.mock.ExpectExists("spell:acid-arrow-phb").SetVal(0)
	s.mock.ExpectSet("spell:acid-arrow-phb", jsonData, 0).SetVal("OK")
	s.mock.ExpectSAdd("spells:all", "acid-arrow-phb").SetVal(1)
	s.mock.ExpectSAdd("spells:level:2", "acid-arrow-phb").SetVal(1)
	s.mock.ExpectSAdd("spells:school:evocation", "acid-arrow-phb").SetVal(1)

	err := s.repo.Create(ctx, record)
	s.NoError(err)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	ctx := context.Background()
	record := s.createTestSpell()

	s.mock.ExpectExists("spell:acid-arrow-phb").SetVal(1)

	err := s.repo.Create(ctx, record)
	s.Error(err)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *RedisRepoTestSuite) TestCreate_RedisError() {
	ctx := context.Background()
	record := s.createTestSpell()

	// Dependency error
	s.mock.ExpectExists("spell:acid-arrow-phb").SetErr(errors.New("redis error"))

	err := s.repo.Create(ctx, record)
	s.Error(err)

	// Input validation
	err = s.repo.Create(ctx, nil)
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestUpsert() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	s.timeProvider.EXPECT().Now().Return(now).Times(2)

	record := s.createTestSpell()
	jsonData := s.marshalSpellData(record, now)

	// Happy path
	s.mock.ExpectSet("spell:acid-arrow-phb", jsonData, 0).SetVal("OK")
	s.mock.ExpectSAdd("spells:all", "acid-arrow-phb").SetVal(1)
	s.mock.ExpectSAdd("spells:level:2", "acid-arrow-phb").SetVal(1)
	s.mock.ExpectSAdd("spells:school:evocation", "acid-arrow-phb").SetVal(1)

	err := s.repo.Upsert(ctx, record)
	s.NoError(err)

	// Dependency error
	s.mock.ExpectSet("spell:acid-arrow-phb", jsonData, 0).SetVal("OK")
	s.mock.ExpectSAdd("spells:all", "acid-arrow-phb").SetVal(1)
	s.mock.ExpectSAdd("spells:level:2", "acid-arrow-phb").SetVal(1)
	s.mock.ExpectSAdd("spells:school:evocation", "acid-arrow-phb").SetErr(errors.New("redis error"))

	err = s.repo.Upsert(ctx, record)
	s.Error(err)

	// Input validation
	err = s.repo.Upsert(ctx, nil)
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestGet() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	record := s.createTestSpell()
	jsonData := s.marshalSpellData(record, now)

	// Happy path
	s.mock.ExpectGet("spell:acid-arrow-phb").SetVal(jsonData)

	got, err := s.repo.Get(ctx, "acid-arrow-phb")
	s.NoError(err)
	s.Equal("Acid Arrow", got.Name)
	s.Equal(2, got.Level)
	s.Require().Len(got.Descriptions, 1)
	s.Equal(record.Descriptions[0], got.Descriptions[0])

	// Missing key
	s.mock.ExpectGet("spell:wish-phb").RedisNil()

	_, err = s.repo.Get(ctx, "wish-phb")
	s.Error(err)
	s.True(dnderr.IsNotFound(err))

	// Dependency error
	s.mock.ExpectGet("spell:acid-arrow-phb").SetErr(errors.New("redis error"))

	_, err = s.repo.Get(ctx, "acid-arrow-phb")
	s.Error(err)

	// Input validation
	_, err = s.repo.Get(ctx, "")
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestListKeys() {
	ctx := context.Background()

	// Happy path, members come back unsorted
	s.mock.ExpectSMembers("spells:all").SetVal([]string{"misty-step-phb", "acid-arrow-phb"})

	keys, err := s.repo.ListKeys(ctx)
	s.NoError(err)
	s.Equal([]string{"acid-arrow-phb", "misty-step-phb"}, keys)

	// Dependency error
	s.mock.ExpectSMembers("spells:all").SetErr(errors.New("redis error"))

	_, err = s.repo.ListKeys(ctx)
	s.Error(err)
}

func (s *RedisRepoTestSuite) TestListByLevel() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	acidArrow := s.createTestSpell()

	mistyStep := s.createTestSpell()
	mistyStep.Key = "misty-step-phb"
	mistyStep.Name = "Misty Step"
	mistyStep.School = "Conjuration"

	// The index fan-out fetches records concurrently
	s.mock.MatchExpectationsInOrder(false)

	s.mock.ExpectSMembers("spells:level:2").SetVal([]string{"acid-arrow-phb", "misty-step-phb"})
	s.mock.ExpectGet("spell:acid-arrow-phb").SetVal(s.marshalSpellData(acidArrow, now))
	s.mock.ExpectGet("spell:misty-step-phb").SetVal(s.marshalSpellData(mistyStep, now))

	records, err := s.repo.ListByLevel(ctx, 2)
	s.NoError(err)
	s.Len(records, 2)
	s.Equal("Acid Arrow", records[0].Name)
	s.Equal("Misty Step", records[1].Name)

	// Dependency error
	s.mock.ExpectSMembers("spells:level:2").SetErr(errors.New("redis error"))

	_, err = s.repo.ListByLevel(ctx, 2)
	s.Error(err)

	// Input validation
	_, err = s.repo.ListByLevel(ctx, -1)
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestListBySchool() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	record := s.createTestSpell()

	// Happy path, school is lowercased for the index key
	s.mock.ExpectSMembers("spells:school:evocation").SetVal([]string{"acid-arrow-phb"})
	s.mock.ExpectGet("spell:acid-arrow-phb").SetVal(s.marshalSpellData(record, now))

	records, err := s.repo.ListBySchool(ctx, "Evocation")
	s.NoError(err)
	s.Len(records, 1)
	s.Equal("Acid Arrow", records[0].Name)

	// Input validation
	_, err = s.repo.ListBySchool(ctx, "")
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestDelete() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)
	record := s.createTestSpell()
	jsonData := s.marshalSpellData(record, now)

	// Happy path, the stored record determines which indexes to clean
	s.mock.ExpectGet("spell:acid-arrow-phb").SetVal(jsonData)
	s.mock.ExpectDel("spell:acid-arrow-phb").SetVal(1)
	s.mock.ExpectSRem("spells:all", "acid-arrow-phb").SetVal(1)
	s.mock.ExpectSRem("spells:level:2", "acid-arrow-phb").SetVal(1)
	s.mock.ExpectSRem("spells:school:evocation", "acid-arrow-phb").SetVal(1)

	err := s.repo.Delete(ctx, "acid-arrow-phb")
	s.NoError(err)

	// Missing key
	s.mock.ExpectGet("spell:wish-phb").RedisNil()

	err = s.repo.Delete(ctx, "wish-phb")
	s.Error(err)
	s.True(dnderr.IsNotFound(err))

	// Input validation
	err = s.repo.Delete(ctx, "")
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestImportInfo() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	info := &ImportInfo{
		RunID:      "run-123",
		Files:      2,
		Spells:     319,
		ImportedAt: now,
	}
	jsonData, err := json.Marshal(info)
	s.Require().NoError(err)

	// Set happy path
	s.mock.ExpectSet("spells:import", string(jsonData), 0).SetVal("OK")

	err = s.repo.SetImportInfo(ctx, info)
	s.NoError(err)

	// Get happy path
	s.mock.ExpectGet("spells:import").SetVal(string(jsonData))

	got, err := s.repo.GetImportInfo(ctx)
	s.NoError(err)
	s.Equal("run-123", got.RunID)
	s.Equal(319, got.Spells)

	// No import recorded yet
	s.mock.ExpectGet("spells:import").RedisNil()

	_, err = s.repo.GetImportInfo(ctx)
	s.Error(err)
	s.True(dnderr.IsNotFound(err))

	// Input validation
	err = s.repo.SetImportInfo(ctx, nil)
	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *RedisRepoTestSuite) TestSpellDataRoundTrip() {
	formula, err := dice.Parse("3d8")
	s.Require().NoError(err)

	record := s.createTestSpell()
	record.Descriptions = []spell.Description{
		spell.PlainText{Text: "A shimmering green arrow streaks toward a target."},
		spell.BulletList{Items: []string{"first effect", "second effect"}},
		spell.Quote{Paragraphs: []string{"A wise warning."}, By: "Mordenkainen"},
		spell.Subsection{Name: "Acid Pools", Paragraphs: []string{"The acid lingers."}},
		spell.Table{Caption: "Targets", ColLabels: []string{"d8", "Target"}, Rows: [][]string{{"1", "nearest"}}},
	}
	record.HigherLevel = &spell.Subsection{
		Name:       "At Higher Levels",
		Paragraphs: []string{"The damage increases by 1d4 per slot level."},
	}
	record.ScalingDice = []spell.ScalingTable{
		{
			Label:   "acid damage",
			Entries: map[int]spell.ScalingEntry{2: {Formula: formula, Raw: "3d8"}},
		},
	}

	data, err := toSpellData(record)
	s.Require().NoError(err)

	jsonData, err := json.Marshal(data)
	s.Require().NoError(err)

	var decoded SpellData
	s.Require().NoError(json.Unmarshal(jsonData, &decoded))

	got, err := fromSpellData(&decoded)
	s.Require().NoError(err)
	s.Equal(record, got)
}

func (s *RedisRepoTestSuite) TestDataToDescription_UnknownType() {
	_, err := dataToDescription(EntryData{Type: "sidebar", Entry: json.RawMessage(`{}`)})
	s.Error(err)
}
