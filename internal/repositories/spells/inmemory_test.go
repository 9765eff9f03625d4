package spells_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	spelldef "github.com/KirkDiggler/emberfell/internal/domain/spells"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
	"github.com/KirkDiggler/emberfell/internal/repositories/spells"
)

func TestInMemory(t *testing.T) {
	ctx := context.Background()
	repo := spells.NewInMemory()

	require.NoError(t, repo.Save(ctx, &spelldef.Spell{ID: "fireball", Name: "Fireball"}))
	require.NoError(t, repo.Save(ctx, &spelldef.Spell{ID: "minor_heal", Name: "Minor Heal"}))

	t.Run("get", func(t *testing.T) {
		spell, err := repo.Get(ctx, "fireball")
		require.NoError(t, err)
		assert.Equal(t, "Fireball", spell.Name)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.Get(ctx, "meteor")
		assert.True(t, engErr.IsNotFound(err))
	})

	t.Run("list preserves insertion order", func(t *testing.T) {
		list, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "fireball", list[0].ID)
		assert.Equal(t, "minor_heal", list[1].ID)
	})

	t.Run("save overwrites without duplicating", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, &spelldef.Spell{ID: "fireball", Name: "Greater Fireball"}))
		list, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		spell, err := repo.Get(ctx, "fireball")
		require.NoError(t, err)
		assert.Equal(t, "Greater Fireball", spell.Name)
	})

	t.Run("validation", func(t *testing.T) {
		assert.Error(t, repo.Save(ctx, nil))
		assert.Error(t, repo.Save(ctx, &spelldef.Spell{}))
	})
}
