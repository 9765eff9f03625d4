package spellcast

import (
	"context"
	"log"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/domain/shared"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	"github.com/KirkDiggler/emberfell/internal/effects"
	"github.com/KirkDiggler/emberfell/internal/uuid"
)

// debuffKind maps a debuff spell's effect onto its ledger kind
func debuffKind(effect string) effects.Kind {
	switch effect {
	case spells.EffectParalyze:
		return effects.KindParalyze
	case spells.EffectCharm:
		return effects.KindCharm
	default:
		return effects.KindStatDrain
	}
}

// resolveDebuff applies the spell's optional damage component and its
// timed effect. Debuff damage never checks accuracy; the hex itself
// finds its mark.
func (s *service) resolveDebuff(ctx context.Context, ch *character.Character, spell *spells.Spell, res *resolution) error {
	targets := res.mobList
	if !spell.IsArea() {
		targets = []*mobs.Mob{res.mob}
	}

	damage, err := s.rollScaled(spell.Damage, spell, ch.Level)
	if err != nil {
		log.Printf("%v", err)
		return err
	}

	var dead []*mobs.Mob
	for _, mob := range targets {
		if spell.Damage != "" {
			dealt := mob.ApplyDamage(damage)
			s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultHitMessage, msgData{
				Caster:     ch.Name,
				Target:     mob.Name,
				Spell:      spell.Name,
				Damage:     dealt,
				DamageType: spell.DamageType,
			}))
		}

		if mob.IsDead() {
			dead = append(dead, mob)
			continue
		}

		if spell.Effect != "" {
			if err := s.afflictMob(ctx, ch, spell, mob); err != nil {
				return err
			}
		}
		mob.RecordAggro(ch.ID, s.now())
	}

	for _, mob := range dead {
		s.deaths.OnDeath(ctx, mob, ch.RoomID, ch)
	}
	return nil
}

func (s *service) afflictMob(ctx context.Context, ch *character.Character, spell *spells.Spell, mob *mobs.Mob) error {
	kind := debuffKind(spell.Effect)
	if mob.Ledger().HasMatching(spell.Name, spell.Effect) {
		return nil
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
		Kind:      kind,
		Effect:    spell.Effect,
		Magnitude: magnitude,
		Remaining: duration,
		CasterID:  ch.ID,
	})

	if kind == effects.KindStatDrain {
		if group, ok := spells.DrainGroup(spell.Effect); ok {
			for _, attr := range shared.GroupAttributes(shared.StatGroup(group)) {
				mob.AdjustAttribute(attr, -magnitude)
			}
		}
	}

	s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor("", defaultDebuffMessage, msgData{
		Caster: ch.Name,
		Target: mob.Name,
		Spell:  spell.Name,
	}))
	return nil
}
