package character

// Class describes what a character class can cast
type Class struct {
	ID            string
	Name          string
	CanCast       bool
	MaxSpellLevel int
}

// DefaultClasses is the built-in class table. MaxSpellLevel caps the
// spell level a member can cast regardless of their own level.
var DefaultClasses = map[string]*Class{
	"mage": {
		ID:            "mage",
		Name:          "Mage",
		CanCast:       true,
		MaxSpellLevel: 9,
	},
	"cleric": {
		ID:            "cleric",
		Name:          "Cleric",
		CanCast:       true,
		MaxSpellLevel: 7,
	},
	"ranger": {
		ID:            "ranger",
		Name:          "Ranger",
		CanCast:       true,
		MaxSpellLevel: 4,
	},
	"warrior": {
		ID:            "warrior",
		Name:          "Warrior",
		CanCast:       false,
		MaxSpellLevel: 0,
	},
	"rogue": {
		ID:            "rogue",
		Name:          "Rogue",
		CanCast:       false,
		MaxSpellLevel: 0,
	},
}
