package spells_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/spellbook-discord/internal/domain/spell"
	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
	"github.com/KirkDiggler/spellbook-discord/internal/repositories/spells"
)

// InMemoryRepositoryTestSuite defines the test suite for the in-memory repository
type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo spells.Repository
	ctx  context.Context
}

// SetupTest runs before each test
func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = spells.NewInMemoryRepository()
	s.ctx = context.Background()
}

// Test suite runner
func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}

func (s *InMemoryRepositoryTestSuite) createTestSpell(name, source string, level int, school string) *spell.Spell {
	return &spell.Spell{
		Key:          spell.MakeKey(name, source),
		Name:         name,
		Source:       source,
		Level:        level,
		School:       school,
		CastingTimes: []spell.CastingTime{{Number: 1, Unit: "action"}},
		Range:        spell.Range{Type: "point", Distance: &spell.Distance{Type: "touch"}},
		Components:   spell.Components{Verbal: true, Somatic: true},
		Durations:    []spell.Duration{{Type: "instant"}},
		Descriptions: []spell.Description{spell.PlainText{Text: "You hurl a mote of arcane energy."}},
	}
}

// Create Tests

func (s *InMemoryRepositoryTestSuite) TestCreate_Success() {
	// Setup
	record := s.createTestSpell("Fireball", "PHB", 3, "Evocation")

	// Execute
	err := s.repo.Create(s.ctx, record)

	// Assert
	s.NoError(err)

	// Verify by getting the spell back
	got, err := s.repo.Get(s.ctx, "fireball-phb")
	s.NoError(err)
	s.Equal("Fireball", got.Name)
	s.Equal(3, got.Level)
	s.Equal("Evocation", got.School)
}

func (s *InMemoryRepositoryTestSuite) TestCreate_DuplicateKey() {
	// Setup
	record := s.createTestSpell("Fireball", "PHB", 3, "Evocation")

	// Create first time
	err := s.repo.Create(s.ctx, record)
	s.NoError(err)

	// Try to create again with the same key
	err = s.repo.Create(s.ctx, record)

	// Assert
	s.Error(err)
	s.True(dnderr.IsAlreadyExists(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_NilSpell() {
	err := s.repo.Create(s.ctx, nil)

	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_MissingKey() {
	record := s.createTestSpell("Fireball", "PHB", 3, "Evocation")
	record.Key = ""

	err := s.repo.Create(s.ctx, record)

	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestCreate_IsolatesData() {
	// Setup
	record := s.createTestSpell("Fireball", "PHB", 3, "Evocation")

	// Execute
	err := s.repo.Create(s.ctx, record)
	s.NoError(err)

	// Modify original
	record.Name = "Modified"

	// Get from repo
	got, err := s.repo.Get(s.ctx, "fireball-phb")

	// Assert - should not be affected by external modification
	s.NoError(err)
	s.Equal("Fireball", got.Name)
}

// Upsert Tests

func (s *InMemoryRepositoryTestSuite) TestUpsert_InsertsNewSpell() {
	record := s.createTestSpell("Misty Step", "PHB", 2, "Conjuration")

	err := s.repo.Upsert(s.ctx, record)
	s.NoError(err)

	got, err := s.repo.Get(s.ctx, "misty-step-phb")
	s.NoError(err)
	s.Equal("Misty Step", got.Name)
}

func (s *InMemoryRepositoryTestSuite) TestUpsert_ReplacesExistingSpell() {
	// Setup
	record := s.createTestSpell("Misty Step", "PHB", 2, "Conjuration")
	s.Require().NoError(s.repo.Create(s.ctx, record))

	// Execute - upsert a revised record under the same key
	revised := s.createTestSpell("Misty Step", "PHB", 2, "Conjuration")
	revised.Page = 260
	err := s.repo.Upsert(s.ctx, revised)

	// Assert
	s.NoError(err)

	got, err := s.repo.Get(s.ctx, "misty-step-phb")
	s.NoError(err)
	s.Equal(260, got.Page)
}

// Get Tests

func (s *InMemoryRepositoryTestSuite) TestGet_Success() {
	// Setup
	record := s.createTestSpell("Vicious Mockery", "PHB", 0, "Enchantment")
	s.Require().NoError(s.repo.Create(s.ctx, record))

	// Execute
	got, err := s.repo.Get(s.ctx, "vicious-mockery-phb")

	// Assert
	s.NoError(err)
	s.NotNil(got)
	s.Equal("Vicious Mockery", got.Name)
	s.Equal(0, got.Level)
	s.Len(got.Descriptions, 1)
}

func (s *InMemoryRepositoryTestSuite) TestGet_NotFound() {
	got, err := s.repo.Get(s.ctx, "nonexistent")

	s.Error(err)
	s.Nil(got)
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_MissingKey() {
	_, err := s.repo.Get(s.ctx, "")

	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

func (s *InMemoryRepositoryTestSuite) TestGet_ReturnsCopy() {
	// Setup
	record := s.createTestSpell("Fireball", "PHB", 3, "Evocation")
	s.Require().NoError(s.repo.Create(s.ctx, record))

	// Get the spell twice
	got1, err := s.repo.Get(s.ctx, "fireball-phb")
	s.NoError(err)

	got2, err := s.repo.Get(s.ctx, "fireball-phb")
	s.NoError(err)

	// Modify first copy
	got1.Name = "Modified"

	// Assert - second copy should not be affected
	s.Equal("Fireball", got2.Name)
}

// ListKeys Tests

func (s *InMemoryRepositoryTestSuite) TestListKeys_SortedAscending() {
	// Setup
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Misty Step", "PHB", 2, "Conjuration")))
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Fireball", "PHB", 3, "Evocation")))
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Acid Arrow", "PHB", 2, "Evocation")))

	// Execute
	keys, err := s.repo.ListKeys(s.ctx)

	// Assert
	s.NoError(err)
	s.Equal([]string{"acid-arrow-phb", "fireball-phb", "misty-step-phb"}, keys)
}

func (s *InMemoryRepositoryTestSuite) TestListKeys_Empty() {
	keys, err := s.repo.ListKeys(s.ctx)

	s.NoError(err)
	s.Empty(keys)
}

// ListByLevel Tests

func (s *InMemoryRepositoryTestSuite) TestListByLevel_Success() {
	// Setup
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Acid Arrow", "PHB", 2, "Evocation")))
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Misty Step", "PHB", 2, "Conjuration")))
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Fireball", "PHB", 3, "Evocation")))

	// Execute
	results, err := s.repo.ListByLevel(s.ctx, 2)

	// Assert
	s.NoError(err)
	s.Len(results, 2)

	names := []string{results[0].Name, results[1].Name}
	s.Contains(names, "Acid Arrow")
	s.Contains(names, "Misty Step")
}

func (s *InMemoryRepositoryTestSuite) TestListByLevel_Empty() {
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Fireball", "PHB", 3, "Evocation")))

	results, err := s.repo.ListByLevel(s.ctx, 9)

	s.NoError(err)
	s.Empty(results)
}

func (s *InMemoryRepositoryTestSuite) TestListByLevel_NegativeLevel() {
	_, err := s.repo.ListByLevel(s.ctx, -1)

	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

// ListBySchool Tests

func (s *InMemoryRepositoryTestSuite) TestListBySchool_Success() {
	// Setup
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Acid Arrow", "PHB", 2, "Evocation")))
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Fireball", "PHB", 3, "Evocation")))
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Misty Step", "PHB", 2, "Conjuration")))

	// Execute
	results, err := s.repo.ListBySchool(s.ctx, "evocation")

	// Assert
	s.NoError(err)
	s.Len(results, 2)

	names := []string{results[0].Name, results[1].Name}
	s.Contains(names, "Acid Arrow")
	s.Contains(names, "Fireball")
}

func (s *InMemoryRepositoryTestSuite) TestListBySchool_CaseInsensitive() {
	s.Require().NoError(s.repo.Create(s.ctx, s.createTestSpell("Fireball", "PHB", 3, "Evocation")))

	results, err := s.repo.ListBySchool(s.ctx, "EVOCATION")

	s.NoError(err)
	s.Len(results, 1)
}

func (s *InMemoryRepositoryTestSuite) TestListBySchool_MissingSchool() {
	_, err := s.repo.ListBySchool(s.ctx, "")

	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

// Delete Tests

func (s *InMemoryRepositoryTestSuite) TestDelete_Success() {
	// Setup
	record := s.createTestSpell("Fireball", "PHB", 3, "Evocation")
	s.Require().NoError(s.repo.Create(s.ctx, record))

	// Execute
	err := s.repo.Delete(s.ctx, "fireball-phb")

	// Assert
	s.NoError(err)

	// Verify deletion
	_, err = s.repo.Get(s.ctx, "fireball-phb")
	s.Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestDelete_NotFound() {
	err := s.repo.Delete(s.ctx, "nonexistent")

	s.Error(err)
	s.True(dnderr.IsNotFound(err))
}

// Import info Tests

func (s *InMemoryRepositoryTestSuite) TestImportInfo_RoundTrip() {
	// Setup
	info := &spells.ImportInfo{
		RunID:      "run-123",
		Files:      2,
		Spells:     319,
		ImportedAt: time.Now().UTC(),
	}

	// Execute
	err := s.repo.SetImportInfo(s.ctx, info)
	s.NoError(err)

	// Assert
	got, err := s.repo.GetImportInfo(s.ctx)
	s.NoError(err)
	s.Equal(info.RunID, got.RunID)
	s.Equal(info.Files, got.Files)
	s.Equal(info.Spells, got.Spells)
}

func (s *InMemoryRepositoryTestSuite) TestGetImportInfo_NotRecorded() {
	_, err := s.repo.GetImportInfo(s.ctx)

	s.Error(err)
	s.True(dnderr.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestSetImportInfo_NilInfo() {
	err := s.repo.SetImportInfo(s.ctx, nil)

	s.Error(err)
	s.True(dnderr.IsInvalidArgument(err))
}

// Concurrency Tests

func (s *InMemoryRepositoryTestSuite) TestConcurrentUpserts() {
	// Setup
	var wg sync.WaitGroup
	numGoroutines := 10

	// Execute - upsert spells concurrently
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			record := s.createTestSpell(fmt.Sprintf("Spell %d", id), "PHB", 1, "Evocation")
			err := s.repo.Upsert(s.ctx, record)
			s.NoError(err)
		}(i)
	}

	wg.Wait()

	// Assert - verify all spells were stored
	keys, err := s.repo.ListKeys(s.ctx)
	s.NoError(err)
	s.Len(keys, numGoroutines)
}
