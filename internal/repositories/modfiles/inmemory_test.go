package modfiles_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/bg3-item-builder/internal/entities"
	"github.com/KirkDiggler/bg3-item-builder/internal/repositories/modfiles"
)

func TestInMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("starts empty", func(t *testing.T) {
		repo := modfiles.NewInMemory()

		out, err := repo.LoadRootTemplates(ctx, &modfiles.LoadInput{})
		require.NoError(t, err)
		assert.False(t, out.Found)
		assert.Nil(t, out.Data)
	})

	t.Run("save replaces and load copies", func(t *testing.T) {
		repo := modfiles.NewInMemory()

		_, err := repo.SaveLocalization(ctx, &modfiles.SaveInput{Data: []byte("one")})
		require.NoError(t, err)
		_, err = repo.SaveLocalization(ctx, &modfiles.SaveInput{Data: []byte("two")})
		require.NoError(t, err)

		out, err := repo.LoadLocalization(ctx, &modfiles.LoadInput{})
		require.NoError(t, err)
		assert.True(t, out.Found)
		assert.Equal(t, "two", string(out.Data))

		out.Data[0] = 'X'
		again, err := repo.LoadLocalization(ctx, &modfiles.LoadInput{})
		require.NoError(t, err)
		assert.Equal(t, "two", string(again.Data))
	})

	t.Run("stats append per kind", func(t *testing.T) {
		repo := modfiles.NewInMemory()

		_, err := repo.AppendStats(ctx, &modfiles.AppendStatsInput{Kind: entities.Weapon, Data: []byte("a")})
		require.NoError(t, err)
		out, err := repo.AppendStats(ctx, &modfiles.AppendStatsInput{Kind: entities.Weapon, Data: []byte("b")})
		require.NoError(t, err)
		assert.Equal(t, "memory://Weapon.txt", out.Destination)

		assert.Equal(t, "ab", string(repo.Stats("Weapon.txt")))
		assert.Empty(t, repo.Stats("Armor.txt"))
	})
}
