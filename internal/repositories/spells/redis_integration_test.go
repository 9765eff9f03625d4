package spells_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/KirkDiggler/emberfell/internal/domain/spells"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
	repo "github.com/KirkDiggler/emberfell/internal/repositories/spells"
	"github.com/KirkDiggler/emberfell/internal/testutils"
)

func TestRedisRepository_Integration(t *testing.T) {
	client := testutils.CreateTestRedisClientOrSkip(t)
	r := repo.NewRedis(client)
	ctx := context.Background()

	fireball := &domain.Spell{
		ID:       "fireball",
		Name:     "Fireball",
		Family:   domain.FamilyDamage,
		Damage:   "2d6",
		ManaCost: 10,
		Level:    3,
	}
	mend := &domain.Spell{
		ID:         "mend",
		Name:       "Mend",
		Family:     domain.FamilyHeal,
		Effect:     domain.EffectHealHitPoints,
		HealAmount: "1d8",
		ManaCost:   5,
		Level:      1,
	}

	require.NoError(t, r.Save(ctx, fireball))
	require.NoError(t, r.Save(ctx, mend))

	got, err := r.Get(ctx, "fireball")
	require.NoError(t, err)
	assert.Equal(t, fireball, got)

	_, err = r.Get(ctx, "polymorph")
	assert.True(t, engErr.IsNotFound(err))

	all, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
