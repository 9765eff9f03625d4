package spellcast

import (
	"github.com/KirkDiggler/emberfell/internal/domain/shared"
)

const (
	baseFailureChance   = 0.05
	failurePerOverLevel = 0.10
	failurePerStatMod   = 0.01
	maxFailureChance    = 0.50
)

// failureChance is the probability a cast fizzles after resources are
// spent. Casting above your level is risky; a strong casting stat
// buys some of that back.
func failureChance(spellLevel, casterLevel, castingStat int) float64 {
	chance := baseFailureChance
	if spellLevel > casterLevel {
		chance += failurePerOverLevel * float64(spellLevel-casterLevel)
	}
	chance -= failurePerStatMod * float64(shared.Modifier(castingStat))

	if chance < 0 {
		return 0
	}
	if chance > maxFailureChance {
		return maxFailureChance
	}
	return chance
}
