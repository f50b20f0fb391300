//go:build integration
// +build integration

package spells_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/KirkDiggler/spellbook-discord/internal/errors"
	"github.com/KirkDiggler/spellbook-discord/internal/repositories/spells"
	"github.com/KirkDiggler/spellbook-discord/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	// This test requires Redis to be running
	client := testutils.CreateTestRedisClientOrSkip(t)

	repo := spells.NewRedisRepository(&spells.RedisRepoConfig{
		Client: client,
	})

	ctx := context.Background()

	t.Run("create and retrieve spell", func(t *testing.T) {
		record := testutils.CreateTestSpell("Fireball", "PHB", 3, "Evocation")

		err := repo.Create(ctx, record)
		require.NoError(t, err)

		retrieved, err := repo.Get(ctx, record.Key)
		require.NoError(t, err)
		assert.NotNil(t, retrieved)

		// Verify all fields are preserved
		assert.Equal(t, record.Key, retrieved.Key)
		assert.Equal(t, record.Name, retrieved.Name)
		assert.Equal(t, record.Source, retrieved.Source)
		assert.Equal(t, record.Level, retrieved.Level)
		assert.Equal(t, record.School, retrieved.School)
		assert.Equal(t, record.CastingTimes, retrieved.CastingTimes)
		assert.Equal(t, record.Range, retrieved.Range)
		assert.Equal(t, record.Components, retrieved.Components)
		assert.Equal(t, record.Durations, retrieved.Durations)
		assert.Equal(t, record.Descriptions, retrieved.Descriptions)
	})

	t.Run("create duplicate spell fails", func(t *testing.T) {
		record := testutils.CreateTestSpell("Misty Step", "PHB", 2, "Conjuration")

		err := repo.Create(ctx, record)
		require.NoError(t, err)

		err = repo.Create(ctx, record)
		assert.Error(t, err)
		assert.True(t, dnderr.IsAlreadyExists(err))
	})

	t.Run("upsert replaces existing spell", func(t *testing.T) {
		record := testutils.CreateTestSpell("Counterspell", "PHB", 3, "Abjuration")
		require.NoError(t, repo.Create(ctx, record))

		record.Page = 228
		require.NoError(t, repo.Upsert(ctx, record))

		retrieved, err := repo.Get(ctx, record.Key)
		require.NoError(t, err)
		assert.Equal(t, 228, retrieved.Page)
	})

	t.Run("list by level", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testutils.CreateTestSpell("Cone of Cold", "PHB", 5, "Evocation")))
		require.NoError(t, repo.Create(ctx, testutils.CreateTestSpell("Cloudkill", "PHB", 5, "Conjuration")))

		records, err := repo.ListByLevel(ctx, 5)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("list by school", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, testutils.CreateTestSpell("Animate Dead", "PHB", 3, "Necromancy")))
		require.NoError(t, repo.Create(ctx, testutils.CreateTestSpell("Blight", "PHB", 4, "Necromancy")))

		records, err := repo.ListBySchool(ctx, "necromancy")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("delete removes spell and index entries", func(t *testing.T) {
		record := testutils.CreateTestSpell("Grease", "PHB", 1, "Transmutation")
		require.NoError(t, repo.Create(ctx, record))

		require.NoError(t, repo.Delete(ctx, record.Key))

		_, err := repo.Get(ctx, record.Key)
		assert.True(t, dnderr.IsNotFound(err))

		records, err := repo.ListBySchool(ctx, "transmutation")
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("import info round trip", func(t *testing.T) {
		_, err := repo.GetImportInfo(ctx)
		assert.True(t, dnderr.IsNotFound(err))

		info := &spells.ImportInfo{RunID: "run-1", Files: 2, Spells: 319}
		require.NoError(t, repo.SetImportInfo(ctx, info))

		got, err := repo.GetImportInfo(ctx)
		require.NoError(t, err)
		assert.Equal(t, "run-1", got.RunID)
		assert.Equal(t, 319, got.Spells)
	})
}
