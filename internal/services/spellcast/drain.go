package spellcast

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/shared"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	"github.com/KirkDiggler/emberfell/internal/effects"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
	"github.com/KirkDiggler/emberfell/internal/services/combat"
	"github.com/KirkDiggler/emberfell/internal/uuid"
)

// resolveDrain steals mana, health, or stats from a single mob. Drains
// must land like an attack before anything transfers.
func (s *service) resolveDrain(ctx context.Context, ch *character.Character, spell *spells.Spell, res *resolution) error {
	mob := res.mob

	outcome := s.combat.ResolveAttack(ch.CastingAttribute(), mob.Attribute(shared.AttributeDexterity), mob.Armor)
	if outcome != combat.ResultHit {
		s.announceMiss(ctx, ch, spell, mob, outcome)
		mob.RecordAggro(ch.ID, s.now())
		return nil
	}

	switch {
	case spell.Effect == spells.EffectDrainMana:
		amount, err := s.rollScaled(spell.EffectAmount, spell, ch.Level)
		if err != nil {
			log.Printf("%v", err)
			return err
		}
		taken := mob.DrainMana(amount)
		gained := ch.RestoreMana(taken)
		s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultDrainMessage, msgData{
			Caster: ch.Name,
			Target: mob.Name,
			Spell:  spell.Name,
			Damage: taken,
		}))
		s.messenger.SendToCharacter(ctx, ch.ID, fmt.Sprintf("You siphon %d mana from %s.", gained, mob.Name))

	case spell.Effect == spells.EffectDrainHealth:
		expr := spell.Damage
		if expr == "" {
			expr = spell.EffectAmount
		}
		amount, err := s.rollScaled(expr, spell, ch.Level)
		if err != nil {
			log.Printf("%v", err)
			return err
		}
		dealt := mob.ApplyDamage(amount)
		healed := ch.Heal(dealt)
		s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultDrainMessage, msgData{
			Caster:     ch.Name,
			Target:     mob.Name,
			Spell:      spell.Name,
			Damage:     dealt,
			DamageType: spell.DamageType,
		}))
		if healed > 0 {
			s.messenger.SendToCharacter(ctx, ch.ID, fmt.Sprintf("Stolen life knits %d of your wounds.", healed))
		}
		if mob.IsDead() {
			s.deaths.OnDeath(ctx, mob, ch.RoomID, ch)
			return nil
		}

	default:
		group, ok := spells.DrainGroup(spell.Effect)
		if !ok {
			err := engErr.Internalf("spell %s has unknown drain effect '%s'", spell.ID, spell.Effect)
			log.Printf("%v", err)
			return err
		}
		magnitude, err := s.rollScaled(spell.EffectAmount, spell, ch.Level)
		if err != nil {
			log.Printf("%v", err)
			return err
		}
		magnitude += spell.BonusAmount

		duration := spell.EffectDuration
		if duration <= 0 {
			duration = spell.Duration
		}

		mob.Ledger().Attach(&effects.StatusEffect{
			ID:        uuid.Prefixed(s.idGen, "eff"),
			Source:    spell.Name,
			Kind:      effects.KindStatDrain,
			Effect:    spell.Effect,
			Magnitude: magnitude,
			Remaining: duration,
			CasterID:  ch.ID,
		})
		for _, attr := range shared.GroupAttributes(shared.StatGroup(group)) {
			mob.AdjustAttribute(attr, -magnitude)
		}
		s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultDrainMessage, msgData{
			Caster: ch.Name,
			Target: mob.Name,
			Spell:  spell.Name,
		}))
	}

	mob.RecordAggro(ch.ID, s.now())
	return nil
}
