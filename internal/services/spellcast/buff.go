package spellcast

import (
	"context"
	"log"
	"strings"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/shared"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	"github.com/KirkDiggler/emberfell/internal/effects"
	"github.com/KirkDiggler/emberfell/internal/uuid"
)

// enhancePrefix marks enhancement effects that boost a stat group,
// e.g. "enhance_body"
const enhancePrefix = "enhance_"

// buffKind maps a spell's effect onto the ledger kind used for
// duplicate suppression.
func buffKind(spell *spells.Spell) effects.Kind {
	switch spell.Effect {
	case "ac_bonus":
		return effects.KindACBonus
	case "invisibility":
		return effects.KindInvisibility
	default:
		return effects.KindStatBuff
	}
}

func (s *service) resolveBuff(ctx context.Context, ch *character.Character, spell *spells.Spell, res *resolution) error {
	targets := res.playerList
	if !spell.IsArea() {
		targets = []*character.Character{res.player}
	}

	kind := buffKind(spell)
	for _, target := range targets {
		// Area buffs skip targets that already carry the effect;
		// single-target casts were rejected earlier.
		if spell.IsArea() && target.Ledger().HasMatching(spell.Name, spell.Effect) {
			continue
		}
		if err := s.buffOne(ctx, ch, spell, target, kind); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) buffOne(ctx context.Context, ch *character.Character, spell *spells.Spell, target *character.Character, kind effects.Kind) error {
	magnitude, err := s.rollScaled(spell.EffectAmount, spell, ch.Level)
	if err != nil {
		log.Printf("%v", err)
		return err
	}
	magnitude += spell.BonusAmount

	duration := spell.Duration
	if duration <= 0 {
		duration = spell.EffectDuration
	}

	target.Ledger().Attach(&effects.StatusEffect{
		ID:        uuid.Prefixed(s.idGen, "eff"),
		Source:    spell.Name,
		Kind:      kind,
		Effect:    spell.Effect,
		Magnitude: magnitude,
		Remaining: duration,
		CasterID:  ch.ID,
	})

	// Enhancements also move the stats right away. The delta is not
	// reversed when the timed effect expires.
	if spell.Family == spells.FamilyEnhancement {
		if group, ok := strings.CutPrefix(spell.Effect, enhancePrefix); ok {
			for _, attr := range shared.GroupAttributes(shared.StatGroup(group)) {
				target.AdjustAttribute(attr, magnitude)
			}
		}
	}

	s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultBuffMessage, msgData{
		Caster: ch.Name,
		Target: target.Name,
		Spell:  spell.Name,
	}))
	return nil
}
