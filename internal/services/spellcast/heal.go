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
)

func (s *service) resolveHeal(ctx context.Context, ch *character.Character, spell *spells.Spell, res *resolution) error {
	targets := res.playerList
	if !spell.IsArea() {
		targets = []*character.Character{res.player}
	}

	for _, target := range targets {
		if err := s.healOne(ctx, ch, spell, target); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) healOne(ctx context.Context, ch *character.Character, spell *spells.Spell, target *character.Character) error {
	switch spell.Effect {
	case spells.EffectHealHitPoints:
		amount, err := s.rollScaled(spell.HealAmount, spell, ch.Level)
		if err != nil {
			log.Printf("%v", err)
			return err
		}
		healed := target.Heal(amount)
		if healed == 0 {
			s.messenger.SendToCharacter(ctx, ch.ID, alreadyWellMessage(ch, target, "at full health"))
			return nil
		}
		s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultHealMessage, msgData{
			Caster: ch.Name,
			Target: target.Name,
			Spell:  spell.Name,
			Damage: healed,
		}))
		return nil

	case spells.EffectCurePoison:
		removed := target.Ledger().Cure(effects.KindPoison)
		return s.announceCure(ctx, ch, target, len(removed), "free of poison", "The poison leaves %s's veins.")

	case spells.EffectCureParalysis:
		removed := target.Ledger().Cure(effects.KindParalyze)
		return s.announceCure(ctx, ch, target, len(removed), "able to move", "%s can move again.")

	case spells.EffectCureHunger:
		if target.Hunger == 0 {
			s.messenger.SendToCharacter(ctx, ch.ID, alreadyWellMessage(ch, target, "not hungry"))
			return nil
		}
		target.Hunger = 0
		s.messenger.BroadcastToRoom(ctx, ch.RoomID, fmt.Sprintf("%s looks well fed.", target.Name))
		return nil

	case spells.EffectCureThirst:
		if target.Thirst == 0 {
			s.messenger.SendToCharacter(ctx, ch.ID, alreadyWellMessage(ch, target, "not thirsty"))
			return nil
		}
		target.Thirst = 0
		s.messenger.BroadcastToRoom(ctx, ch.RoomID, fmt.Sprintf("%s looks refreshed.", target.Name))
		return nil

	case spells.EffectCureDrain:
		removed := s.cureDrains(target)
		return s.announceCure(ctx, ch, target, removed, "undrained", "Strength returns to %s's limbs.")

	default:
		err := engErr.Internalf("spell %s has unknown heal effect '%s'", spell.ID, spell.Effect)
		log.Printf("%v", err)
		return err
	}
}

// cureDrains removes stat_drain effects and reverses the stat deltas
// they applied, returning the number of effects removed.
func (s *service) cureDrains(target *character.Character) int {
	removed := target.Ledger().Cure(effects.KindStatDrain)
	for _, e := range removed {
		group, ok := spells.DrainGroup(e.Effect)
		if !ok {
			continue
		}
		for _, attr := range shared.GroupAttributes(shared.StatGroup(group)) {
			target.AdjustAttribute(attr, e.Magnitude)
		}
	}
	return len(removed)
}

func (s *service) announceCure(ctx context.Context, ch, target *character.Character, removed int, wellState, curedFormat string) error {
	if removed == 0 {
		s.messenger.SendToCharacter(ctx, ch.ID, alreadyWellMessage(ch, target, wellState))
		return nil
	}
	s.messenger.BroadcastToRoom(ctx, ch.RoomID, fmt.Sprintf(curedFormat, target.Name))
	return nil
}

func alreadyWellMessage(ch, target *character.Character, state string) string {
	if target.ID == ch.ID {
		return fmt.Sprintf("You are already %s.", state)
	}
	return fmt.Sprintf("%s is already %s.", target.Name, state)
}
