package spellcast

//go:generate mockgen -destination=mock/mock_service.go -package=mockspellcast -source=types.go

import (
	"context"
	"math/rand"
	"time"

	"github.com/KirkDiggler/emberfell/internal/dice"
	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/effects"
	monsterrepo "github.com/KirkDiggler/emberfell/internal/repositories/monsters"
	spellrepo "github.com/KirkDiggler/emberfell/internal/repositories/spells"
	"github.com/KirkDiggler/emberfell/internal/services/characters"
	"github.com/KirkDiggler/emberfell/internal/services/combat"
	"github.com/KirkDiggler/emberfell/internal/services/loot"
	"github.com/KirkDiggler/emberfell/internal/services/party"
	"github.com/KirkDiggler/emberfell/internal/services/room"
	"github.com/KirkDiggler/emberfell/internal/uuid"
)

// Messenger delivers narrative text to players
type Messenger interface {
	SendToCharacter(ctx context.Context, characterID, text string)
	BroadcastToRoom(ctx context.Context, roomID, text string, excludeIDs ...string)
}

// Service resolves spell casts into state changes
type Service interface {
	// Cast parses "spellname [target]" input and runs the full cast
	// pipeline for the character. Rule rejections are delivered as
	// messages and return nil; only engine faults return an error.
	Cast(ctx context.Context, casterID, input string) error

	// TickCharacter advances the character's timed effects by one tick
	TickCharacter(ctx context.Context, ch *character.Character)

	// TickMob advances a mob's timed effects by one tick, rolling
	// damage-over-time and routing deaths
	TickMob(ctx context.Context, mob *mobs.Mob, roomID string)

	// Cure removes effects of the given kinds from a character,
	// reversing stat drains, and returns how many were removed
	Cure(ctx context.Context, ch *character.Character, kinds ...effects.Kind) int

	// Spellbook renders the character's known spells
	Spellbook(ctx context.Context, casterID string) (string, error)

	// Unlearn removes a spell from the character's spellbook
	Unlearn(ctx context.Context, casterID, spellText string) error
}

type service struct {
	characters      characters.Service
	spells          spellrepo.Repository
	monsters        monsterrepo.Repository
	rooms           room.Service
	parties         party.Service
	combat          combat.Service
	deaths          loot.Service
	messenger       Messenger
	roller          dice.Roller
	idGen           uuid.Generator
	classes         map[string]*character.Class
	rng             func() float64
	now             func() time.Time
	fatiguePerRound time.Duration
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Characters characters.Service     // Required
	Spells     spellrepo.Repository   // Required
	Monsters   monsterrepo.Repository // Required
	Rooms      room.Service           // Required
	Parties    party.Service          // Required
	Combat     combat.Service         // Required
	Deaths     loot.Service           // Required
	Messenger  Messenger              // Required

	Roller          dice.Roller                 // Optional - defaults to the random roller
	IDGenerator     uuid.Generator              // Optional - defaults to google uuids
	Classes         map[string]*character.Class // Optional - defaults to the built-in table
	RNG             func() float64              // Optional - defaults to math/rand
	Now             func() time.Time            // Optional - defaults to time.Now
	FatiguePerRound time.Duration               // Optional - defaults to 10s
}

const defaultFatiguePerRound = 10 * time.Second

// NewService creates a new spellcast service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("spellcast.NewService requires a config")
	}
	if cfg.Characters == nil {
		panic("spellcast.NewService requires a character service")
	}
	if cfg.Spells == nil {
		panic("spellcast.NewService requires a spell repository")
	}
	if cfg.Monsters == nil {
		panic("spellcast.NewService requires a monster repository")
	}
	if cfg.Rooms == nil {
		panic("spellcast.NewService requires a room service")
	}
	if cfg.Parties == nil {
		panic("spellcast.NewService requires a party service")
	}
	if cfg.Combat == nil {
		panic("spellcast.NewService requires a combat service")
	}
	if cfg.Deaths == nil {
		panic("spellcast.NewService requires a loot service")
	}
	if cfg.Messenger == nil {
		panic("spellcast.NewService requires a messenger")
	}

	svc := &service{
		characters:      cfg.Characters,
		spells:          cfg.Spells,
		monsters:        cfg.Monsters,
		rooms:           cfg.Rooms,
		parties:         cfg.Parties,
		combat:          cfg.Combat,
		deaths:          cfg.Deaths,
		messenger:       cfg.Messenger,
		roller:          cfg.Roller,
		idGen:           cfg.IDGenerator,
		classes:         cfg.Classes,
		rng:             cfg.RNG,
		now:             cfg.Now,
		fatiguePerRound: cfg.FatiguePerRound,
	}

	if svc.roller == nil {
		svc.roller = dice.NewRandomRoller()
	}
	if svc.idGen == nil {
		svc.idGen = uuid.NewGoogleUUIDGenerator()
	}
	if svc.classes == nil {
		svc.classes = character.DefaultClasses
	}
	if svc.rng == nil {
		svc.rng = rand.Float64
	}
	if svc.now == nil {
		svc.now = time.Now
	}
	if svc.fatiguePerRound <= 0 {
		svc.fatiguePerRound = defaultFatiguePerRound
	}

	return svc
}
