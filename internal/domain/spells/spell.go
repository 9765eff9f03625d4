package spells

import "strings"

// Family groups spells by how they resolve
type Family string

const (
	FamilyDamage      Family = "damage"
	FamilyHeal        Family = "heal"
	FamilyBuff        Family = "buff"
	FamilyEnhancement Family = "enhancement"
	FamilyDebuff      Family = "debuff"
	FamilyDrain       Family = "drain"
	FamilySummon      Family = "summon"
)

// Area describes the targeting shape of a spell
type Area string

const (
	AreaSingle Area = "single"
	AreaAll    Area = "area"
)

// Effect kinds used by heal, debuff and drain spells
const (
	EffectHealHitPoints = "heal_hit_points"
	EffectCurePoison    = "cure_poison"
	EffectCureHunger    = "cure_hunger"
	EffectCureThirst    = "cure_thirst"
	EffectCureParalysis = "cure_paralysis"
	EffectCureDrain     = "cure_drain"

	EffectParalyze = "paralyze"
	EffectCharm    = "charm"

	EffectDrainMana   = "drain_mana"
	EffectDrainHealth = "drain_health"
)

// DrainPrefix marks effect kinds that drain a stat group, e.g.
// "drain_agility"
const DrainPrefix = "drain_"

// Spell is an immutable spell definition loaded from the catalog.
// Dice fields hold expressions like "2d6+3"; a leading minus makes the
// rolled value a reduction.
type Spell struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Family           Family `json:"family"`
	Effect           string `json:"effect,omitempty"`
	ManaCost         int    `json:"mana_cost"`
	Cooldown         int    `json:"cooldown,omitempty"`
	Area             Area   `json:"area,omitempty"`
	RequiresTarget   bool   `json:"requires_target,omitempty"`
	ClassRestriction string `json:"class_restriction,omitempty"`
	Level            int    `json:"level"`
	ScalesWithLevel  bool   `json:"scales_with_level,omitempty"`

	Damage     string `json:"damage,omitempty"`
	DamageType string `json:"damage_type,omitempty"`

	HealAmount string `json:"heal_amount,omitempty"`

	EffectAmount   string `json:"effect_amount,omitempty"`
	BonusAmount    int    `json:"bonus_amount,omitempty"`
	Duration       int    `json:"duration,omitempty"`
	EffectDuration int    `json:"effect_duration,omitempty"`

	PoisonDamage   string `json:"poison_damage,omitempty"`
	PoisonDuration int    `json:"poison_duration,omitempty"`

	MinSummonLevel        int    `json:"min_summon_level,omitempty"`
	MaxSummonLevel        int    `json:"max_summon_level,omitempty"`
	SummonType            string `json:"summon_type,omitempty"`
	AllowSpecialTerrain   bool   `json:"allow_special_terrain,omitempty"`
	ScalesSummonWithLevel bool   `json:"scales_summon_with_level,omitempty"`

	CastMessage string `json:"cast_message,omitempty"`
	HitMessage  string `json:"hit_message,omitempty"`
}

// Aliases returns the lowercased names the spell can be invoked by:
// display name, id, and id with underscores stripped.
func (s *Spell) Aliases() []string {
	name := strings.ToLower(s.Name)
	id := strings.ToLower(s.ID)
	aliases := []string{name}
	if id != name {
		aliases = append(aliases, id)
	}
	if spaced := strings.ReplaceAll(id, "_", " "); spaced != id && spaced != name {
		aliases = append(aliases, spaced)
	}
	return aliases
}

// IsArea reports whether the spell hits every valid target in the room
func (s *Spell) IsArea() bool {
	return s.Area == AreaAll
}

// Scale multiplies a rolled base amount by caster level when the spell
// scales, and returns it unchanged otherwise.
func (s *Spell) Scale(base, casterLevel int) int {
	if !s.ScalesWithLevel {
		return base
	}
	if casterLevel < 1 {
		casterLevel = 1
	}
	return base * casterLevel
}

// DrainGroup extracts the stat group from a drain effect kind like
// "drain_agility". Returns false for drain_mana, drain_health, and
// non-drain kinds.
func DrainGroup(effect string) (string, bool) {
	if effect == EffectDrainMana || effect == EffectDrainHealth {
		return "", false
	}
	if !strings.HasPrefix(effect, DrainPrefix) {
		return "", false
	}
	return strings.TrimPrefix(effect, DrainPrefix), true
}
