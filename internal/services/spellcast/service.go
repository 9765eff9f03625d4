package spellcast

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

// resolution carries the targets picked out before resources are spent
type resolution struct {
	mob        *mobs.Mob
	mobList    []*mobs.Mob
	player     *character.Character
	playerList []*character.Character
}

func (s *service) Cast(ctx context.Context, casterID, input string) error {
	ch, err := s.characters.Get(ctx, casterID)
	if err != nil {
		return err
	}

	spell, targetText, err := s.resolveSpell(ctx, ch, input)
	if err != nil {
		return s.deliverRejection(ctx, ch, err)
	}

	if err := s.checkCanCast(ch, spell); err != nil {
		return s.deliverRejection(ctx, ch, err)
	}

	res, err := s.resolveTargets(ctx, ch, spell, targetText)
	if err != nil {
		return s.deliverRejection(ctx, ch, err)
	}

	if ch.CurrentMana < spell.ManaCost {
		return s.deliverRejection(ctx, ch, engErr.Validation("You don't have enough mana."))
	}

	// The point of no return: mana, fatigue and cooldown are spent
	// now and stay spent even if the cast fizzles.
	ch.SpendMana(spell.ManaCost)
	fatigueRounds := spell.Cooldown
	if fatigueRounds < 1 {
		fatigueRounds = 1
	}
	ch.FatigueUntil = s.now().Add(time.Duration(fatigueRounds) * s.fatiguePerRound)
	ch.SetCooldown(spell.ID, spell.Cooldown)

	if s.rng() < failureChance(spell.Level, ch.Level, ch.CastingAttribute()) {
		s.messenger.SendToCharacter(ctx, ch.ID, defaultFizzleSelf)
		s.messenger.BroadcastToRoom(ctx, ch.RoomID,
			render(defaultFizzleRoom, msgData{Caster: ch.Name}), ch.ID)
		return nil
	}

	s.messenger.BroadcastToRoom(ctx, ch.RoomID,
		castMessageFor(spell.CastMessage, msgData{Caster: ch.Name, Spell: spell.Name}))

	switch spell.Family {
	case spells.FamilyDamage:
		return s.resolveDamage(ctx, ch, spell, res)
	case spells.FamilyHeal:
		return s.resolveHeal(ctx, ch, spell, res)
	case spells.FamilyBuff, spells.FamilyEnhancement:
		return s.resolveBuff(ctx, ch, spell, res)
	case spells.FamilyDebuff:
		return s.resolveDebuff(ctx, ch, spell, res)
	case spells.FamilyDrain:
		return s.resolveDrain(ctx, ch, spell, res)
	case spells.FamilySummon:
		return s.resolveSummon(ctx, ch, spell)
	default:
		err := engErr.Internalf("spell %s has unknown family '%s'", spell.ID, spell.Family)
		log.Printf("%v", err)
		return err
	}
}

// checkCanCast runs the gate checks that precede target resolution
func (s *service) checkCanCast(ch *character.Character, spell *spells.Spell) error {
	if spell.ClassRestriction != "" && !strings.EqualFold(spell.ClassRestriction, ch.Class) {
		return engErr.Validationf("Only a %s can cast %s.", spell.ClassRestriction, spell.Name)
	}

	class := s.classes[strings.ToLower(ch.Class)]
	if class == nil || !class.CanCast {
		return engErr.Validation("You don't know how to channel magic.")
	}
	if spell.Level > class.MaxSpellLevel {
		return engErr.Validationf("A %s cannot cast level %d spells.", class.Name, spell.Level)
	}

	if ch.IsParalyzed() {
		return engErr.Validation("You are paralyzed and cannot cast!")
	}

	if rounds := ch.CooldownRemaining(spell.ID); rounds > 0 {
		return engErr.Validationf("You cannot cast %s again yet (%d rounds).", spell.Name, rounds)
	}

	if remaining := ch.FatigueRemaining(s.now()); remaining > 0 {
		seconds := int(remaining.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		return engErr.Validationf("You are still fatigued from your last spell (%ds).", seconds)
	}

	return nil
}

// resolveTargets picks the spell's targets before any resources are
// consumed, so every rejection here leaves the caster untouched.
func (s *service) resolveTargets(ctx context.Context, ch *character.Character, spell *spells.Spell, targetText string) (*resolution, error) {
	res := &resolution{}

	switch spell.Family {
	case spells.FamilyDamage, spells.FamilyDebuff:
		if spell.IsArea() {
			res.mobList = s.rooms.Mobs(ch.RoomID)
			if len(res.mobList) == 0 {
				return nil, engErr.Validation("There is nothing to cast that on.")
			}
			return res, nil
		}
		mob, err := s.findMobTarget(ch, targetText)
		if err != nil {
			return nil, err
		}
		res.mob = mob
		return res, nil

	case spells.FamilyDrain:
		// Drains are single-target regardless of spell data
		mob, err := s.findMobTarget(ch, targetText)
		if err != nil {
			return nil, err
		}
		res.mob = mob
		return res, nil

	case spells.FamilyHeal:
		if spell.IsArea() {
			res.playerList = s.rooms.Players(ch.RoomID)
			return res, nil
		}
		player, err := s.findPlayerTarget(ch, targetText)
		if err != nil {
			return nil, err
		}
		res.player = player
		return res, nil

	case spells.FamilyBuff, spells.FamilyEnhancement:
		if spell.IsArea() {
			res.playerList = s.rooms.Players(ch.RoomID)
			return res, nil
		}
		player, err := s.findPlayerTarget(ch, targetText)
		if err != nil {
			return nil, err
		}
		if player.Ledger().HasMatching(spell.Name, spell.Effect) {
			if player.ID == ch.ID {
				return nil, engErr.Validationf("You are already affected by %s.", spell.Name)
			}
			return nil, engErr.Validationf("%s is already affected by %s.", player.Name, spell.Name)
		}
		res.player = player
		return res, nil

	case spells.FamilySummon:
		if targetText != "" {
			return nil, engErr.Validation("You cannot target a summoning spell.")
		}
		r, err := s.rooms.GetRoom(ch.RoomID)
		if err != nil {
			return nil, err
		}
		if r.Safe {
			return nil, engErr.Validation("A calm presence here prevents summoning.")
		}
		return res, nil
	}

	return res, nil
}

func (s *service) findMobTarget(ch *character.Character, targetText string) (*mobs.Mob, error) {
	if strings.TrimSpace(targetText) == "" {
		return nil, engErr.Validation("Cast it on what?")
	}
	return s.rooms.FindMob(ch.RoomID, targetText)
}

// deliverRejection turns rule rejections into player messages. Only
// engine faults surface as errors.
func (s *service) deliverRejection(ctx context.Context, ch *character.Character, err error) error {
	if engErr.IsValidation(err) || engErr.IsNotFound(err) {
		s.messenger.SendToCharacter(ctx, ch.ID, err.Error())
		return nil
	}

	log.Printf("Cast failed for %s: %v", ch.ID, err)
	s.messenger.SendToCharacter(ctx, ch.ID, "Something disrupts your casting.")
	return err
}
