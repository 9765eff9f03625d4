package spellcast

import (
	"context"
	"fmt"
	"log"

	"github.com/KirkDiggler/emberfell/internal/dice"
	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/domain/shared"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	"github.com/KirkDiggler/emberfell/internal/effects"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
	"github.com/KirkDiggler/emberfell/internal/services/combat"
	"github.com/KirkDiggler/emberfell/internal/uuid"
)

// rollScaled rolls a dice expression and applies level scaling
func (s *service) rollScaled(expr string, spell *spells.Spell, casterLevel int) (int, error) {
	if expr == "" {
		return 0, nil
	}
	v, err := dice.RollString(s.roller, expr)
	if err != nil {
		return 0, engErr.Wrapf(err, "bad dice expression '%s' on spell %s", expr, spell.ID)
	}
	return spell.Scale(v, casterLevel), nil
}

func (s *service) resolveDamage(ctx context.Context, ch *character.Character, spell *spells.Spell, res *resolution) error {
	if spell.IsArea() {
		return s.resolveAreaDamage(ctx, ch, spell, res.mobList)
	}

	mob := res.mob
	outcome := s.combat.ResolveAttack(ch.CastingAttribute(), mob.Attribute(shared.AttributeDexterity), mob.Armor)
	if outcome != combat.ResultHit {
		s.announceMiss(ctx, ch, spell, mob, outcome)
		mob.RecordAggro(ch.ID, s.now())
		return nil
	}

	amount, err := s.rollScaled(spell.Damage, spell, ch.Level)
	if err != nil {
		log.Printf("%v", err)
		return err
	}

	dealt := mob.ApplyDamage(amount)
	s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultHitMessage, msgData{
		Caster:     ch.Name,
		Target:     mob.Name,
		Spell:      spell.Name,
		Damage:     dealt,
		DamageType: spell.DamageType,
	}))

	s.maybePoison(ctx, ch, spell, mob)

	if mob.IsDead() {
		s.deaths.OnDeath(ctx, mob, ch.RoomID, ch)
		return nil
	}
	mob.RecordAggro(ch.ID, s.now())
	return nil
}

// resolveAreaDamage rolls once and applies the result to a snapshot of
// the room's mobs. Deaths are collected and finalized after the loop
// so the iteration never mutates the list underneath itself.
func (s *service) resolveAreaDamage(ctx context.Context, ch *character.Character, spell *spells.Spell, targets []*mobs.Mob) error {
	amount, err := s.rollScaled(spell.Damage, spell, ch.Level)
	if err != nil {
		log.Printf("%v", err)
		return err
	}

	var dead []*mobs.Mob
	for _, mob := range targets {
		dealt := mob.ApplyDamage(amount)
		s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultHitMessage, msgData{
			Caster:     ch.Name,
			Target:     mob.Name,
			Spell:      spell.Name,
			Damage:     dealt,
			DamageType: spell.DamageType,
		}))

		s.maybePoison(ctx, ch, spell, mob)

		if mob.IsDead() {
			dead = append(dead, mob)
			continue
		}
		mob.RecordAggro(ch.ID, s.now())
	}

	for _, mob := range dead {
		s.deaths.OnDeath(ctx, mob, ch.RoomID, ch)
	}
	return nil
}

// maybePoison attaches the spell's damage-over-time rider
func (s *service) maybePoison(ctx context.Context, ch *character.Character, spell *spells.Spell, mob *mobs.Mob) {
	if spell.DamageType != "poison" || spell.PoisonDamage == "" || mob.IsDead() {
		return
	}
	if mob.Ledger().Has(effects.KindPoison) {
		return
	}

	mob.Ledger().Attach(&effects.StatusEffect{
		ID:         uuid.Prefixed(s.idGen, "eff"),
		Source:     spell.Name,
		Kind:       effects.KindPoison,
		Remaining:  spell.PoisonDuration,
		CasterID:   ch.ID,
		DamageDice: spell.PoisonDamage,
	})
	s.messenger.BroadcastToRoom(ctx, ch.RoomID, fmt.Sprintf("%s is poisoned!", mob.Name))
}

// announceMiss reports a non-hit outcome to the caster and the room
func (s *service) announceMiss(ctx context.Context, ch *character.Character, spell *spells.Spell, mob *mobs.Mob, outcome combat.Result) {
	var personal, public string
	switch outcome {
	case combat.ResultDodge:
		personal = fmt.Sprintf("%s dodges your %s!", mob.Name, spell.Name)
		public = fmt.Sprintf("%s dodges %s's %s!", mob.Name, ch.Name, spell.Name)
	case combat.ResultDeflect:
		personal = fmt.Sprintf("Your %s glances off %s!", spell.Name, mob.Name)
		public = fmt.Sprintf("%s's %s glances off %s!", ch.Name, spell.Name, mob.Name)
	default:
		personal = fmt.Sprintf("Your %s misses %s.", spell.Name, mob.Name)
		public = fmt.Sprintf("%s's %s misses %s.", ch.Name, spell.Name, mob.Name)
	}

	s.messenger.SendToCharacter(ctx, ch.ID, personal)
	s.messenger.BroadcastToRoom(ctx, ch.RoomID, public, ch.ID)
}
