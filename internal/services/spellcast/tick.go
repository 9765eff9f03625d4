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
)

func (s *service) TickCharacter(ctx context.Context, ch *character.Character) {
	if ch == nil {
		return
	}

	for _, e := range ch.Ledger().Snapshot() {
		if !e.IsDamageOverTime() || e.DamageDice == "" {
			continue
		}
		amount, err := dice.RollString(s.roller, e.DamageDice)
		if err != nil {
			log.Printf("Bad damage dice '%s' on effect %s: %v", e.DamageDice, e.ID, err)
			continue
		}
		dealt := ch.ApplyDamage(amount)
		s.messenger.SendToCharacter(ctx, ch.ID, fmt.Sprintf("You take %d %s damage.", dealt, e.Kind))
		if ch.IsDead() {
			s.messenger.BroadcastToRoom(ctx, ch.RoomID, fmt.Sprintf("%s collapses!", ch.Name), ch.ID)
		}
	}

	for _, e := range ch.Ledger().Tick() {
		s.reverseDrainOnCharacter(ch, e)
		s.messenger.SendToCharacter(ctx, ch.ID, removalText(e))
	}
}

func (s *service) TickMob(ctx context.Context, mob *mobs.Mob, roomID string) {
	if mob == nil {
		return
	}

	for _, e := range mob.Ledger().Snapshot() {
		if !e.IsDamageOverTime() || e.DamageDice == "" {
			continue
		}
		amount, err := dice.RollString(s.roller, e.DamageDice)
		if err != nil {
			log.Printf("Bad damage dice '%s' on effect %s: %v", e.DamageDice, e.ID, err)
			continue
		}
		dealt := mob.ApplyDamage(amount)

		if caster := s.colocatedCaster(roomID, e.CasterID); caster != nil {
			s.messenger.SendToCharacter(ctx, caster.ID,
				fmt.Sprintf("Your %s sears %s for %d damage.", e.Kind, mob.Name, dealt))
		}

		if mob.IsDead() {
			s.deaths.OnDeath(ctx, mob, roomID, s.colocatedCaster(roomID, e.CasterID))
			return
		}
	}

	for _, e := range mob.Ledger().Tick() {
		if e.Kind == effects.KindStatDrain {
			if group, ok := spells.DrainGroup(e.Effect); ok {
				for _, attr := range shared.GroupAttributes(shared.StatGroup(group)) {
					mob.AdjustAttribute(attr, e.Magnitude)
				}
			}
		}
	}
}

func (s *service) Cure(ctx context.Context, ch *character.Character, kinds ...effects.Kind) int {
	if ch == nil {
		return 0
	}

	removed := ch.Ledger().Cure(kinds...)
	for _, e := range removed {
		s.reverseDrainOnCharacter(ch, e)
		s.messenger.SendToCharacter(ctx, ch.ID, removalText(e))
	}
	return len(removed)
}

// reverseDrainOnCharacter gives back stats a stat_drain took. Buffs
// and enhancements are deliberately left alone.
func (s *service) reverseDrainOnCharacter(ch *character.Character, e *effects.StatusEffect) {
	if e.Kind != effects.KindStatDrain {
		return
	}
	group, ok := spells.DrainGroup(e.Effect)
	if !ok {
		return
	}
	for _, attr := range shared.GroupAttributes(shared.StatGroup(group)) {
		ch.AdjustAttribute(attr, e.Magnitude)
	}
}

// colocatedCaster returns the effect's caster if they are in the room
func (s *service) colocatedCaster(roomID, casterID string) *character.Character {
	if casterID == "" {
		return nil
	}
	for _, p := range s.rooms.Players(roomID) {
		if p.ID == casterID {
			return p
		}
	}
	return nil
}

func removalText(e *effects.StatusEffect) string {
	if e.RemovalText != "" {
		return e.RemovalText
	}

	switch e.Kind {
	case effects.KindPoison:
		return "The poison works its way out of your system."
	case effects.KindParalyze:
		return "You can move again."
	case effects.KindCharm:
		return "Your mind clears."
	case effects.KindStatDrain:
		return "Your strength returns."
	case effects.KindInvisibility:
		return "You fade back into view."
	default:
		return fmt.Sprintf("The effects of %s wear off.", e.Source)
	}
}
