package spellcast

import (
	"context"
	"log"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	"github.com/KirkDiggler/emberfell/internal/uuid"
)

// resolveSummon pulls a creature from the template catalog into the
// caster's room. Resources were already spent; an empty catalog or a
// full room fails the summon without a refund.
func (s *service) resolveSummon(ctx context.Context, ch *character.Character, spell *spells.Spell) error {
	minLevel := spell.MinSummonLevel
	if minLevel < 1 {
		minLevel = 1
	}
	maxLevel := spell.MaxSummonLevel
	if spell.ScalesSummonWithLevel {
		// Caster level drives the eligible range, not the spell data
		minLevel = 1
		maxLevel = (ch.Level + 1) / 2
		if maxLevel < 1 {
			maxLevel = 1
		}
	} else if maxLevel < minLevel {
		maxLevel = ch.Level
		if maxLevel < minLevel {
			maxLevel = minLevel
		}
	}

	candidates, err := s.monsters.FindSummonable(ctx, minLevel, maxLevel, spell.SummonType, spell.AllowSpecialTerrain)
	if err != nil {
		log.Printf("Summon lookup failed for spell %s: %v", spell.ID, err)
		return err
	}
	if len(candidates) == 0 {
		log.Printf("Spell %s found no summonable creatures (level %d-%d, type '%s')",
			spell.ID, minLevel, maxLevel, spell.SummonType)
		s.messenger.SendToCharacter(ctx, ch.ID, "Nothing answers your call.")
		return nil
	}

	if !s.rooms.HasCapacity(ch.RoomID) {
		s.messenger.SendToCharacter(ctx, ch.ID, "There is no room here for another creature.")
		return nil
	}

	idx := int(s.rng() * float64(len(candidates)))
	if idx >= len(candidates) {
		idx = len(candidates) - 1
	}
	tpl := candidates[idx]

	mob := mobs.NewFromTemplate(tpl, uuid.Prefixed(s.idGen, "mob"))
	mob.Hostile = false
	mob.Summoned = true
	mob.SummonerID = ch.ID

	if err := s.rooms.AddMob(ch.RoomID, mob); err != nil {
		log.Printf("Failed to place summon %s: %v", mob.InstanceID, err)
		return nil
	}
	s.parties.TrackSummon(s.parties.Leader(ch.ID), mob.InstanceID)

	s.messenger.BroadcastToRoom(ctx, ch.RoomID, hitMessageFor(spell.HitMessage, defaultSummonMessage, msgData{
		Caster: ch.Name,
		Target: mob.Name,
		Spell:  spell.Name,
	}))
	return nil
}
