package combat

//go:generate mockgen -destination=mock/mock_service.go -package=mockcombat -source=service.go

import (
	"math/rand"
)

// Result is the outcome of an attack resolution
type Result string

const (
	ResultHit     Result = "hit"
	ResultMiss    Result = "miss"
	ResultDodge   Result = "dodge"
	ResultDeflect Result = "deflect"
)

const (
	baseHitChance  = 0.75
	minHitChance   = 0.05
	maxHitChance   = 0.95
	baseDodge      = 0.05
	maxDodge       = 0.25
	deflectPerAC   = 0.03
	maxDeflect     = 0.30
	hitPerStatGap  = 0.02
	dodgePerDexPnt = 0.01
)

// Service resolves whether an attack lands. Spells pass the caster's
// casting score as the attacker score; the same model serves weapon
// swings with strength or dexterity.
type Service interface {
	// ResolveAttack rolls hit, dodge, and deflect checks in order
	ResolveAttack(attackerScore, targetDexterity, targetArmor int) Result
}

type service struct {
	rng func() float64
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	RNG func() float64 // Optional - defaults to math/rand
}

// NewService creates a new combat service
func NewService(cfg *ServiceConfig) Service {
	svc := &service{
		rng: rand.Float64,
	}
	if cfg != nil && cfg.RNG != nil {
		svc.rng = cfg.RNG
	}
	return svc
}

func (s *service) ResolveAttack(attackerScore, targetDexterity, targetArmor int) Result {
	hitChance := baseHitChance + float64(attackerScore-targetDexterity)*hitPerStatGap
	hitChance = clamp(hitChance, minHitChance, maxHitChance)
	if s.rng() > hitChance {
		return ResultMiss
	}

	dodgeChance := baseDodge
	if targetDexterity > 10 {
		dodgeChance += float64(targetDexterity-10) * dodgePerDexPnt
	}
	if dodgeChance > maxDodge {
		dodgeChance = maxDodge
	}
	if s.rng() < dodgeChance {
		return ResultDodge
	}

	deflectChance := float64(targetArmor) * deflectPerAC
	if deflectChance > maxDeflect {
		deflectChance = maxDeflect
	}
	if s.rng() < deflectChance {
		return ResultDeflect
	}

	return ResultHit
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
