package spellcast

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

func (s *service) Spellbook(ctx context.Context, casterID string) (string, error) {
	ch, err := s.characters.Get(ctx, casterID)
	if err != nil {
		return "", err
	}

	if len(ch.Spellbook) == 0 {
		return "Your spellbook is empty.", nil
	}

	var b strings.Builder
	b.WriteString("Your spellbook:\n")
	for _, id := range ch.Spellbook {
		spell, err := s.spells.Get(ctx, id)
		if err != nil {
			log.Printf("Spellbook entry %s for %s missing from catalog: %v", id, ch.ID, err)
			continue
		}

		fmt.Fprintf(&b, "  %s (level %d, %d mana)%s", spell.Name, spell.Level, spell.ManaCost, spellDetail(spell))
		if rounds := ch.CooldownRemaining(id); rounds > 0 {
			fmt.Fprintf(&b, " [ready in %d rounds]", rounds)
		}
		b.WriteString("\n")
	}
	return b.String(), nil
}

// spellDetail is the one-line family summary shown in the spellbook
func spellDetail(spell *spells.Spell) string {
	switch spell.Family {
	case spells.FamilyDamage:
		if spell.DamageType != "" {
			return fmt.Sprintf(" - %s %s damage", spell.Damage, spell.DamageType)
		}
		return fmt.Sprintf(" - %s damage", spell.Damage)
	case spells.FamilyHeal:
		if spell.Effect == spells.EffectHealHitPoints {
			return fmt.Sprintf(" - heals %s", spell.HealAmount)
		}
		return fmt.Sprintf(" - %s", strings.ReplaceAll(spell.Effect, "_", " "))
	case spells.FamilyBuff, spells.FamilyEnhancement:
		return fmt.Sprintf(" - %s for %d rounds", strings.ReplaceAll(spell.Effect, "_", " "), spell.Duration)
	case spells.FamilyDebuff:
		return fmt.Sprintf(" - inflicts %s", strings.ReplaceAll(spell.Effect, "_", " "))
	case spells.FamilyDrain:
		return fmt.Sprintf(" - %s", strings.ReplaceAll(spell.Effect, "_", " "))
	case spells.FamilySummon:
		if spell.SummonType != "" {
			return fmt.Sprintf(" - summons %s allies", spell.SummonType)
		}
		return " - summons allies"
	default:
		return ""
	}
}

func (s *service) Unlearn(ctx context.Context, casterID, spellText string) error {
	ch, err := s.characters.Get(ctx, casterID)
	if err != nil {
		return err
	}

	text := strings.ToLower(strings.TrimSpace(spellText))
	if text == "" {
		return s.deliverRejection(ctx, ch, engErr.Validation("Unlearn what?"))
	}

	var exact *spells.Spell
	var partial []*spells.Spell
	for _, id := range ch.Spellbook {
		spell, err := s.spells.Get(ctx, id)
		if err != nil {
			log.Printf("Spellbook entry %s for %s missing from catalog: %v", id, ch.ID, err)
			continue
		}

		for _, alias := range spell.Aliases() {
			if alias == text {
				exact = spell
				break
			}
			if strings.HasPrefix(alias, text) {
				partial = append(partial, spell)
				break
			}
		}
		if exact != nil {
			break
		}
	}

	target := exact
	if target == nil {
		switch len(partial) {
		case 0:
			return s.deliverRejection(ctx, ch, engErr.Validation("You don't know that spell."))
		case 1:
			target = partial[0]
		default:
			names := make([]string, len(partial))
			for i, spell := range partial {
				names[i] = spell.Name
			}
			return s.deliverRejection(ctx, ch,
				engErr.Validationf("Which do you mean: %s?", strings.Join(names, ", ")))
		}
	}

	ch.Forget(target.ID)
	s.messenger.SendToCharacter(ctx, ch.ID,
		fmt.Sprintf("You tear the pages for %s from your spellbook.", target.Name))
	s.messenger.BroadcastToRoom(ctx, ch.RoomID,
		fmt.Sprintf("%s tears pages from their spellbook.", ch.Name), ch.ID)
	return nil
}
