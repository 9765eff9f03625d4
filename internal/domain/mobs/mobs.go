package mobs

import (
	"time"

	"github.com/KirkDiggler/emberfell/internal/domain/shared"
	"github.com/KirkDiggler/emberfell/internal/effects"
)

// Template is an immutable creature definition used to spawn mobs
type Template struct {
	ID              string                   `json:"id"`
	Name            string                   `json:"name"`
	Level           int                      `json:"level"`
	MaxHP           int                      `json:"max_hp"`
	MaxMana         int                      `json:"max_mana,omitempty"`
	Armor           int                      `json:"armor,omitempty"`
	Type            string                   `json:"type,omitempty"`
	SpecialTerrain  bool                     `json:"special_terrain,omitempty"`
	Hostile         bool                     `json:"hostile,omitempty"`
	Attributes      map[shared.Attribute]int `json:"attributes,omitempty"`
	GoldReward      int                      `json:"gold_reward,omitempty"`
	ExperienceValue int                      `json:"experience_value,omitempty"`
}

// Mob is a live instance of a template placed in a room
type Mob struct {
	InstanceID string
	TemplateID string
	Name       string
	Level      int
	Type       string

	CurrentHP   int
	MaxHP       int
	CurrentMana int
	MaxMana     int
	Armor       int

	Hostile         bool
	AggroTargetID   string
	AggroLastAttack time.Time

	Summoned   bool
	SummonerID string

	GoldReward      int
	ExperienceValue int

	Attributes map[shared.Attribute]int
	Effects    *effects.Ledger
}

// NewFromTemplate spawns a mob with full HP and its own effect ledger
func NewFromTemplate(tpl *Template, instanceID string) *Mob {
	attrs := make(map[shared.Attribute]int, len(tpl.Attributes))
	for k, v := range tpl.Attributes {
		attrs[k] = v
	}

	return &Mob{
		InstanceID:      instanceID,
		TemplateID:      tpl.ID,
		Name:            tpl.Name,
		Level:           tpl.Level,
		Type:            tpl.Type,
		CurrentHP:       tpl.MaxHP,
		MaxHP:           tpl.MaxHP,
		CurrentMana:     tpl.MaxMana,
		MaxMana:         tpl.MaxMana,
		Armor:           tpl.Armor,
		Hostile:         tpl.Hostile,
		GoldReward:      tpl.GoldReward,
		ExperienceValue: tpl.ExperienceValue,
		Attributes:      attrs,
		Effects:         effects.NewLedger(),
	}
}

// Attribute returns the mob's score for an attribute, defaulting to 10
func (m *Mob) Attribute(attr shared.Attribute) int {
	if score, ok := m.Attributes[attr]; ok {
		return score
	}
	return 10
}

// AdjustAttribute applies a delta to an attribute, flooring at 1
func (m *Mob) AdjustAttribute(attr shared.Attribute, delta int) {
	score := m.Attribute(attr) + delta
	if score < 1 {
		score = 1
	}
	if m.Attributes == nil {
		m.Attributes = make(map[shared.Attribute]int)
	}
	m.Attributes[attr] = score
}

// ApplyDamage reduces current HP, flooring at zero, and returns the
// damage actually dealt.
func (m *Mob) ApplyDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > m.CurrentHP {
		amount = m.CurrentHP
	}
	m.CurrentHP -= amount
	return amount
}

// DrainMana removes mana bounded by what the mob actually has and
// returns the amount taken.
func (m *Mob) DrainMana(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > m.CurrentMana {
		amount = m.CurrentMana
	}
	m.CurrentMana -= amount
	return amount
}

// IsDead reports whether the mob is out of hit points
func (m *Mob) IsDead() bool {
	return m.CurrentHP <= 0
}

// RecordAggro points the mob at an attacker. An existing aggro target
// is kept; only the last-attacked timestamp refreshes.
func (m *Mob) RecordAggro(attackerID string, now time.Time) {
	if m.AggroTargetID == "" {
		m.AggroTargetID = attackerID
	}
	m.AggroLastAttack = now
}

// Ledger returns the effect ledger, creating it on first use
func (m *Mob) Ledger() *effects.Ledger {
	if m.Effects == nil {
		m.Effects = effects.NewLedger()
	}
	return m.Effects
}
