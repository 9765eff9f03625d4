package characters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
	"github.com/KirkDiggler/emberfell/internal/services/characters"
)

func TestService(t *testing.T) {
	ctx := context.Background()
	svc := characters.NewService(&characters.ServiceConfig{})

	svc.Register(character.New("ch-1", "Theron"))
	svc.Register(character.New("ch-2", "Mira"))

	t.Run("get", func(t *testing.T) {
		ch, err := svc.Get(ctx, "ch-1")
		require.NoError(t, err)
		assert.Equal(t, "Theron", ch.Name)
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := svc.Get(ctx, "ch-9")
		assert.True(t, engErr.IsNotFound(err))
	})

	t.Run("all preserves registration order", func(t *testing.T) {
		all := svc.All()
		require.Len(t, all, 2)
		assert.Equal(t, "ch-1", all[0].ID)
		assert.Equal(t, "ch-2", all[1].ID)
	})

	t.Run("re-register replaces without duplicating", func(t *testing.T) {
		svc.Register(character.New("ch-1", "Theron the Bold"))
		assert.Len(t, svc.All(), 2)
		ch, err := svc.Get(ctx, "ch-1")
		require.NoError(t, err)
		assert.Equal(t, "Theron the Bold", ch.Name)
	})

	t.Run("remove", func(t *testing.T) {
		svc.Remove("ch-1")
		_, err := svc.Get(ctx, "ch-1")
		assert.Error(t, err)
		assert.Len(t, svc.All(), 1)
	})
}
