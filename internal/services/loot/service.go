package loot

//go:generate mockgen -destination=mock/mock_service.go -package=mockloot -source=service.go

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	"github.com/KirkDiggler/emberfell/internal/services/party"
	"github.com/KirkDiggler/emberfell/internal/services/room"
)

// Messenger delivers text to players
type Messenger interface {
	SendToCharacter(ctx context.Context, characterID, text string)
	BroadcastToRoom(ctx context.Context, roomID, text string, excludeIDs ...string)
}

// Service handles everything that happens when a mob dies: reward the
// killer, announce the death, pull the corpse out of the room, and
// release any summon tracking.
type Service interface {
	// OnDeath finalizes a mob death. Killer may be nil when the death
	// had no attributable cause.
	OnDeath(ctx context.Context, mob *mobs.Mob, roomID string, killer *character.Character)
}

type service struct {
	rooms     room.Service
	parties   party.Service
	messenger Messenger
	random    *rand.Rand
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Rooms     room.Service  // Required
	Parties   party.Service // Required
	Messenger Messenger     // Optional - rewards still apply silently
}

// NewService creates a new loot service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("loot.NewService requires a config")
	}
	if cfg.Rooms == nil {
		panic("loot.NewService requires a room service")
	}
	if cfg.Parties == nil {
		panic("loot.NewService requires a party service")
	}

	return &service{
		rooms:     cfg.Rooms,
		parties:   cfg.Parties,
		messenger: cfg.Messenger,
		random:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *service) OnDeath(ctx context.Context, mob *mobs.Mob, roomID string, killer *character.Character) {
	if mob == nil {
		return
	}

	if killer != nil && !mob.Summoned {
		gold := mob.GoldReward
		if gold == 0 {
			gold = s.rollGold(mob.Level)
		}
		xp := mob.ExperienceValue
		if xp == 0 {
			xp = mob.Level * 10
		}
		killer.Gold += gold
		killer.Experience += xp

		if s.messenger != nil {
			s.messenger.SendToCharacter(ctx, killer.ID,
				fmt.Sprintf("You gain %d gold and %d experience.", gold, xp))
		}
	}

	if s.messenger != nil {
		s.messenger.BroadcastToRoom(ctx, roomID, fmt.Sprintf("%s dies!", mob.Name))
	}

	s.rooms.RemoveMob(roomID, mob.InstanceID)
	if mob.Summoned {
		s.parties.UntrackSummon(mob.InstanceID)
	}

	log.Printf("Mob %s (%s) died in room %s", mob.Name, mob.InstanceID, roomID)
}

// rollGold derives a reward range from the mob's level
func (s *service) rollGold(level int) int {
	if level < 1 {
		level = 1
	}
	minGold := level * 2
	maxGold := level * 5
	return minGold + s.random.Intn(maxGold-minGold+1)
}
