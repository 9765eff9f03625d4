package spellcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	"github.com/KirkDiggler/emberfell/internal/effects"
)

func fireballSpell() *spells.Spell {
	return &spells.Spell{
		ID:             "fireball",
		Name:           "Fireball",
		Family:         spells.FamilyDamage,
		ManaCost:       10,
		Level:          3,
		Damage:         "2d6",
		DamageType:     "fire",
		Cooldown:       2,
		RequiresTarget: true,
	}
}

func TestCast_SpellResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown spell is a soft rejection", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")

		err := f.svc.Cast(ctx, ch.ID, "meteor swarm")
		require.NoError(t, err)
		assert.Contains(t, f.messenger.sentTo(ch.ID), "You don't know that spell.")
		assert.Equal(t, 50, ch.CurrentMana)
	})

	t.Run("empty input asks what to cast", func(t *testing.T) {
		f := newFixture(t)
		ch := f.addCaster(t)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "   "))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "Cast what?")
	})

	t.Run("longest alias wins", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, &spells.Spell{
			ID: "heal", Name: "Heal", Family: spells.FamilyHeal,
			Effect: spells.EffectHealHitPoints, HealAmount: "1d8", ManaCost: 5, Level: 1,
		})
		f.addSpell(t, &spells.Spell{
			ID: "greater_heal", Name: "Greater Heal", Family: spells.FamilyHeal,
			Effect: spells.EffectHealHitPoints, HealAmount: "2d8", ManaCost: 15, Level: 3,
		})
		ch := f.addCaster(t, "heal", "greater_heal")
		ch.CurrentHP = 10
		f.roller.SetRolls([]int{8, 8})

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "greater heal self"))
		// 2d8 rolled, not 1d8: both queued dice were consumed
		assert.Equal(t, 26, ch.CurrentHP)
		assert.Equal(t, 35, ch.CurrentMana)
	})

	t.Run("underscored id resolves", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, &spells.Spell{
			ID: "minor_heal", Name: "Minor Heal", Family: spells.FamilyHeal,
			Effect: spells.EffectHealHitPoints, HealAmount: "1d8", ManaCost: 5, Level: 1,
		})
		ch := f.addCaster(t, "minor_heal")
		ch.CurrentHP = 10
		f.roller.SetNextRoll(4)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "minor_heal"))
		assert.Equal(t, 14, ch.CurrentHP)
	})
}

func TestCast_Gates(t *testing.T) {
	ctx := context.Background()

	t.Run("class restriction", func(t *testing.T) {
		f := newFixture(t)
		spell := fireballSpell()
		spell.ClassRestriction = "cleric"
		f.addSpell(t, spell)
		ch := f.addCaster(t, "fireball")
		f.addMob(t, "Dire Wolf", 20)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "Only a cleric can cast Fireball.")
		assert.Equal(t, 50, ch.CurrentMana)
	})

	t.Run("non-casting class", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")
		ch.Class = "warrior"
		f.addMob(t, "Dire Wolf", 20)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "You don't know how to channel magic.")
	})

	t.Run("class spell level cap", func(t *testing.T) {
		f := newFixture(t)
		spell := fireballSpell()
		spell.Level = 5
		f.addSpell(t, spell)
		ch := f.addCaster(t, "fireball")
		ch.Class = "ranger"
		f.addMob(t, "Dire Wolf", 20)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "A Ranger cannot cast level 5 spells.")
	})

	t.Run("paralyzed caster", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")
		ch.Ledger().Attach(&effects.StatusEffect{ID: "e1", Kind: effects.KindParalyze, Remaining: 2})
		f.addMob(t, "Dire Wolf", 20)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "You are paralyzed and cannot cast!")
	})

	t.Run("cooldown", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")
		ch.SetCooldown("fireball", 2)
		f.addMob(t, "Dire Wolf", 20)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "You cannot cast Fireball again yet (2 rounds).")
		assert.Equal(t, 50, ch.CurrentMana)
	})

	t.Run("fatigue reports remaining seconds", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")
		ch.FatigueUntil = f.now.Add(7 * time.Second)
		f.addMob(t, "Dire Wolf", 20)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "You are still fatigued from your last spell (7s).")
	})

	t.Run("missing target leaves resources untouched", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "Cast it on what?")
		assert.Equal(t, 50, ch.CurrentMana)
		assert.Zero(t, ch.CooldownRemaining("fireball"))

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball dragon"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "no 'dragon' here")
		assert.Equal(t, 50, ch.CurrentMana)
	})

	t.Run("insufficient mana", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")
		ch.CurrentMana = 5
		f.addMob(t, "Dire Wolf", 20)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))
		assert.Contains(t, f.messenger.sentTo(ch.ID), "You don't have enough mana.")
		assert.Equal(t, 5, ch.CurrentMana)
		assert.Zero(t, ch.CooldownRemaining("fireball"))
		assert.True(t, ch.FatigueUntil.IsZero())
	})
}

func TestCast_ResourceConsumption(t *testing.T) {
	ctx := context.Background()

	t.Run("successful cast consumes once", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")
		f.addMob(t, "Dire Wolf", 20)
		f.combatWillHit()
		f.roller.SetRolls([]int{3, 4})

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))

		assert.Equal(t, 40, ch.CurrentMana)
		assert.Equal(t, 2, ch.CooldownRemaining("fireball"))
		assert.Equal(t, f.now.Add(20*time.Second), ch.FatigueUntil)
	})

	t.Run("fizzle keeps resources spent", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, fireballSpell())
		ch := f.addCaster(t, "fireball")
		mob := f.addMob(t, "Dire Wolf", 20)
		f.castRNG.queue(0.01)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "fireball wolf"))

		assert.Contains(t, f.messenger.sentTo(ch.ID), "Your spell fizzles!")
		assert.Equal(t, 40, ch.CurrentMana)
		assert.Equal(t, 2, ch.CooldownRemaining("fireball"))
		assert.Equal(t, 20, mob.CurrentHP)
	})

	t.Run("spell without cooldown still fatigues one round", func(t *testing.T) {
		f := newFixture(t)
		f.addSpell(t, &spells.Spell{
			ID: "spark", Name: "Spark", Family: spells.FamilyDamage,
			ManaCost: 2, Level: 1, Damage: "1d4", RequiresTarget: true,
		})
		ch := f.addCaster(t, "spark")
		f.addMob(t, "Dire Wolf", 20)
		f.combatWillHit()
		f.roller.SetNextRoll(2)

		require.NoError(t, f.svc.Cast(ctx, ch.ID, "spark wolf"))
		assert.Equal(t, f.now.Add(10*time.Second), ch.FatigueUntil)
		assert.Zero(t, ch.CooldownRemaining("spark"))
	})
}
