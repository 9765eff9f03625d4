package effects

// Kind classifies a status effect by what it does each tick
type Kind string

const (
	KindPoison       Kind = "poison"
	KindBurning      Kind = "burning"
	KindBleeding     Kind = "bleeding"
	KindAcid         Kind = "acid"
	KindParalyze     Kind = "paralyze"
	KindCharm        Kind = "charm"
	KindStatDrain    Kind = "stat_drain"
	KindStatBuff     Kind = "stat_buff"
	KindACBonus      Kind = "ac_bonus"
	KindInvisibility Kind = "invisibility"
)

// damageOverTime holds the kinds that roll damage every tick
var damageOverTime = map[Kind]bool{
	KindPoison:   true,
	KindBurning:  true,
	KindBleeding: true,
	KindAcid:     true,
}

// StatusEffect is a timed effect attached to a character or mob.
// Remaining counts scheduler ticks; the effect is removed when it
// reaches zero.
type StatusEffect struct {
	ID          string
	Source      string // display name of the spell that applied it
	Kind        Kind
	Effect      string // sub-kind for drains and buffs, e.g. "drain_agility"
	Magnitude   int
	Remaining   int
	CasterID    string
	DamageDice  string // rolled each tick for damage-over-time kinds
	RemovalText string
}

// IsDamageOverTime reports whether the effect deals damage each tick
func (e *StatusEffect) IsDamageOverTime() bool {
	return damageOverTime[e.Kind]
}
