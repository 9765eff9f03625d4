package shared

// StatGroup names a cluster of attributes that drain and enhancement
// spells operate on together.
type StatGroup string

const (
	GroupAgility  StatGroup = "agility"
	GroupPhysique StatGroup = "physique"
	GroupMental   StatGroup = "mental"
	GroupBody     StatGroup = "body"
)

var statGroups = map[StatGroup][]Attribute{
	GroupAgility:  {AttributeDexterity},
	GroupPhysique: {AttributeConstitution},
	GroupMental:   {AttributeIntelligence, AttributeWisdom, AttributeCharisma},
	GroupBody:     {AttributeStrength, AttributeDexterity, AttributeConstitution},
}

// GroupAttributes returns the attributes a stat group covers, or nil
// for an unknown group.
func GroupAttributes(group StatGroup) []Attribute {
	return statGroups[group]
}
