package monsters_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/repositories/monsters"
)

func seedRepo(t *testing.T) monsters.Repository {
	t.Helper()
	ctx := context.Background()
	repo := monsters.NewInMemory()

	templates := []*mobs.Template{
		{ID: "cave_bat", Name: "Cave Bat", Level: 1, Type: "beast"},
		{ID: "dire_wolf", Name: "Dire Wolf", Level: 3, Type: "beast"},
		{ID: "reef_shark", Name: "Reef Shark", Level: 3, Type: "beast", SpecialTerrain: true},
		{ID: "bone_golem", Name: "Bone Golem", Level: 5, Type: "undead"},
	}
	for _, tpl := range templates {
		require.NoError(t, repo.Save(ctx, tpl))
	}
	return repo
}

func TestInMemory_FindSummonable(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t)

	t.Run("filters by level range", func(t *testing.T) {
		found, err := repo.FindSummonable(ctx, 1, 3, "", false)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, "cave_bat", found[0].ID)
		assert.Equal(t, "dire_wolf", found[1].ID)
	})

	t.Run("filters by type tag", func(t *testing.T) {
		found, err := repo.FindSummonable(ctx, 1, 10, "undead", false)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "bone_golem", found[0].ID)
	})

	t.Run("special terrain creatures need the flag", func(t *testing.T) {
		found, err := repo.FindSummonable(ctx, 3, 3, "beast", true)
		require.NoError(t, err)
		assert.Len(t, found, 2)

		found, err = repo.FindSummonable(ctx, 3, 3, "beast", false)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "dire_wolf", found[0].ID)
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		found, err := repo.FindSummonable(ctx, 8, 10, "", false)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestInMemory_GetAndList(t *testing.T) {
	ctx := context.Background()
	repo := seedRepo(t)

	tpl, err := repo.Get(ctx, "dire_wolf")
	require.NoError(t, err)
	assert.Equal(t, "Dire Wolf", tpl.Name)

	_, err = repo.Get(ctx, "dragon")
	assert.Error(t, err)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 4)
}
