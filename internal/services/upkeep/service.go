package upkeep

//go:generate mockgen -destination=mock/mock_service.go -package=mockupkeep -source=service.go

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/services/characters"
	"github.com/KirkDiggler/emberfell/internal/services/room"
)

const defaultRoundInterval = 10 * time.Second

// Ticker advances an entity's timed effects by one round
type Ticker interface {
	TickCharacter(ctx context.Context, ch *character.Character)
	TickMob(ctx context.Context, mob *mobs.Mob, roomID string)
}

// Service drives the world clock. Every round it counts down spell
// cooldowns for connected characters and ticks timed effects on every
// character and mob.
type Service interface {
	// Start runs rounds on the configured interval until the context
	// is canceled
	Start(ctx context.Context)

	// Round advances the world by exactly one round
	Round(ctx context.Context)
}

type service struct {
	characters characters.Service
	rooms      room.Service
	effects    Ticker
	interval   time.Duration
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Characters characters.Service // Required
	Rooms      room.Service       // Required
	Effects    Ticker             // Required

	RoundInterval time.Duration // Optional - defaults to 10s
}

// NewService creates a new upkeep service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("upkeep.NewService requires a config")
	}
	if cfg.Characters == nil {
		panic("upkeep.NewService requires a character service")
	}
	if cfg.Rooms == nil {
		panic("upkeep.NewService requires a room service")
	}
	if cfg.Effects == nil {
		panic("upkeep.NewService requires an effect ticker")
	}

	svc := &service{
		characters: cfg.Characters,
		rooms:      cfg.Rooms,
		effects:    cfg.Effects,
		interval:   cfg.RoundInterval,
	}
	if svc.interval <= 0 {
		svc.interval = defaultRoundInterval
	}
	return svc
}

func (s *service) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		log.Printf("Upkeep started, round every %s", s.interval)
		for {
			select {
			case <-ctx.Done():
				log.Printf("Upkeep stopped: %v", ctx.Err())
				return
			case <-ticker.C:
				s.Round(ctx)
			}
		}
	}()
}

func (s *service) Round(ctx context.Context) {
	for _, ch := range s.characters.All() {
		ch.TickCooldowns()
		s.effects.TickCharacter(ctx, ch)
	}

	// Mobs tick from a snapshot so deaths during the round cannot
	// disturb the iteration.
	for _, r := range s.rooms.Rooms() {
		for _, mob := range s.rooms.Mobs(r.ID) {
			s.effects.TickMob(ctx, mob, r.ID)
		}
	}
}
