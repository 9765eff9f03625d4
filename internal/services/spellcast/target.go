package spellcast

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

// resolveSpell matches the cast input against the caster's spellbook,
// longest alias first so "greater heal self" never resolves to "heal".
// Returns the spell and whatever text is left as the target.
func (s *service) resolveSpell(ctx context.Context, ch *character.Character, input string) (*spells.Spell, string, error) {
	text := strings.ToLower(strings.TrimSpace(input))
	if text == "" {
		return nil, "", engErr.Validation("Cast what?")
	}

	type candidate struct {
		alias string
		spell *spells.Spell
	}
	var candidates []candidate

	for _, id := range ch.Spellbook {
		spell, err := s.spells.Get(ctx, id)
		if err != nil {
			log.Printf("Spellbook entry %s for %s missing from catalog: %v", id, ch.ID, err)
			continue
		}
		for _, alias := range spell.Aliases() {
			candidates = append(candidates, candidate{alias: alias, spell: spell})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].alias) > len(candidates[j].alias)
	})

	for _, c := range candidates {
		if text == c.alias {
			return c.spell, "", nil
		}
		if strings.HasPrefix(text, c.alias+" ") {
			return c.spell, strings.TrimSpace(text[len(c.alias):]), nil
		}
	}

	return nil, "", engErr.Validation("You don't know that spell.")
}

// findPlayerTarget resolves a player in the caster's room by
// case-insensitive name substring. Empty text targets the caster.
func (s *service) findPlayerTarget(ch *character.Character, nameText string) (*character.Character, error) {
	text := strings.ToLower(strings.TrimSpace(nameText))
	if text == "" || text == "self" || text == "me" {
		return ch, nil
	}

	for _, p := range s.rooms.Players(ch.RoomID) {
		if strings.Contains(strings.ToLower(p.Name), text) {
			return p, nil
		}
	}
	return nil, engErr.Validationf("There is no '%s' here.", nameText)
}
