package character

import (
	"time"

	"github.com/KirkDiggler/emberfell/internal/domain/shared"
	"github.com/KirkDiggler/emberfell/internal/effects"
)

// Character is a connected player with casting resources. All resource
// mutators clamp to valid ranges instead of rejecting out-of-range
// inputs.
type Character struct {
	ID            string
	Name          string
	Class         string
	Level         int
	RoomID        string
	PartyLeaderID string

	Attributes map[shared.Attribute]int

	CurrentHP int
	MaxHP     int

	CurrentMana int
	MaxMana     int

	Hunger int
	Thirst int

	Gold       int
	Experience int

	Spellbook    []string
	Cooldowns    map[string]int
	FatigueUntil time.Time

	Effects *effects.Ledger
}

// New creates a character with initialized maps and an empty ledger
func New(id, name string) *Character {
	return &Character{
		ID:         id,
		Name:       name,
		Level:      1,
		Attributes: make(map[shared.Attribute]int),
		Cooldowns:  make(map[string]int),
		Effects:    effects.NewLedger(),
	}
}

// Attribute returns the character's score for an attribute, defaulting
// to 10 when unset.
func (c *Character) Attribute(attr shared.Attribute) int {
	if score, ok := c.Attributes[attr]; ok {
		return score
	}
	return 10
}

// AdjustAttribute applies a delta to an attribute, flooring at 1
func (c *Character) AdjustAttribute(attr shared.Attribute, delta int) {
	score := c.Attribute(attr) + delta
	if score < 1 {
		score = 1
	}
	if c.Attributes == nil {
		c.Attributes = make(map[shared.Attribute]int)
	}
	c.Attributes[attr] = score
}

// CastingAttribute returns the score spells key off
func (c *Character) CastingAttribute() int {
	return c.Attribute(shared.AttributeIntelligence)
}

// ApplyDamage reduces current HP, flooring at zero, and returns the
// damage actually dealt.
func (c *Character) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > c.CurrentHP {
		amount = c.CurrentHP
	}
	c.CurrentHP -= amount
	return amount
}

// Heal restores HP up to the maximum and returns the amount actually
// restored.
func (c *Character) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	missing := c.MaxHP - c.CurrentHP
	if amount > missing {
		amount = missing
	}
	c.CurrentHP += amount
	return amount
}

// IsDead reports whether the character is out of hit points
func (c *Character) IsDead() bool {
	return c.CurrentHP <= 0
}

// SpendMana deducts the cost if the character can afford it
func (c *Character) SpendMana(cost int) bool {
	if cost > c.CurrentMana {
		return false
	}
	c.CurrentMana -= cost
	return true
}

// RestoreMana adds mana up to the maximum and returns the amount
// actually gained.
func (c *Character) RestoreMana(amount int) int {
	if amount < 0 {
		amount = 0
	}
	missing := c.MaxMana - c.CurrentMana
	if amount > missing {
		amount = missing
	}
	c.CurrentMana += amount
	return amount
}

// Knows reports whether a spell id is in the spellbook
func (c *Character) Knows(spellID string) bool {
	for _, id := range c.Spellbook {
		if id == spellID {
			return true
		}
	}
	return false
}

// Learn adds a spell to the spellbook, ignoring duplicates
func (c *Character) Learn(spellID string) {
	if c.Knows(spellID) {
		return
	}
	c.Spellbook = append(c.Spellbook, spellID)
}

// Forget removes a spell from the spellbook and clears any pending
// cooldown. Returns false if the spell was not known.
func (c *Character) Forget(spellID string) bool {
	for i, id := range c.Spellbook {
		if id == spellID {
			c.Spellbook = append(c.Spellbook[:i], c.Spellbook[i+1:]...)
			delete(c.Cooldowns, spellID)
			return true
		}
	}
	return false
}

// SetCooldown starts a per-spell cooldown measured in rounds
func (c *Character) SetCooldown(spellID string, rounds int) {
	if rounds <= 0 {
		return
	}
	if c.Cooldowns == nil {
		c.Cooldowns = make(map[string]int)
	}
	c.Cooldowns[spellID] = rounds
}

// CooldownRemaining returns the rounds left on a spell's cooldown
func (c *Character) CooldownRemaining(spellID string) int {
	return c.Cooldowns[spellID]
}

// TickCooldowns decrements every cooldown by one round, removing the
// ones that reach zero.
func (c *Character) TickCooldowns() {
	for id, rounds := range c.Cooldowns {
		if rounds <= 1 {
			delete(c.Cooldowns, id)
			continue
		}
		c.Cooldowns[id] = rounds - 1
	}
}

// FatigueRemaining returns how long the caster must wait before the
// next cast, zero when rested.
func (c *Character) FatigueRemaining(now time.Time) time.Duration {
	if now.After(c.FatigueUntil) || now.Equal(c.FatigueUntil) {
		return 0
	}
	return c.FatigueUntil.Sub(now)
}

// IsParalyzed reports whether a paralyze effect is active
func (c *Character) IsParalyzed() bool {
	return c.Effects != nil && c.Effects.Has(effects.KindParalyze)
}

// Ledger returns the effect ledger, creating it on first use
func (c *Character) Ledger() *effects.Ledger {
	if c.Effects == nil {
		c.Effects = effects.NewLedger()
	}
	return c.Effects
}
