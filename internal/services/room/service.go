package room

//go:generate mockgen -destination=mock/mock_service.go -package=mockroom -source=service.go

import (
	"strings"
	"sync"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

const defaultMobCapacity = 10

// Room is a location that holds players and mobs
type Room struct {
	ID          string
	Name        string
	Safe        bool
	MobCapacity int
}

// Service tracks room occupancy. It is the single boundary mutating a
// room's mob and player lists, so callers see consistent snapshots.
type Service interface {
	// CreateRoom registers a room
	CreateRoom(room *Room)

	// GetRoom fetches a room by ID
	GetRoom(roomID string) (*Room, error)

	// AddPlayer places a character in a room, moving them out of any
	// previous room
	AddPlayer(roomID string, ch *character.Character) error

	// RemovePlayer takes a character out of a room
	RemovePlayer(roomID, characterID string)

	// Players returns a snapshot of the characters in a room
	Players(roomID string) []*character.Character

	// AddMob places a mob in a room, failing when the room is at
	// capacity
	AddMob(roomID string, mob *mobs.Mob) error

	// RemoveMob takes a mob out of a room
	RemoveMob(roomID, instanceID string)

	// Mobs returns a snapshot of the mobs in a room
	Mobs(roomID string) []*mobs.Mob

	// FindMob matches a mob in a room by name substring
	FindMob(roomID, nameText string) (*mobs.Mob, error)

	// HasCapacity reports whether a room can take another mob
	HasCapacity(roomID string) bool

	// Rooms returns a snapshot of every registered room
	Rooms() []*Room
}

type occupancy struct {
	room    *Room
	players []*character.Character
	mobs    []*mobs.Mob
}

type service struct {
	mu    sync.RWMutex
	rooms map[string]*occupancy
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct{}

// NewService creates a new room service
func NewService(cfg *ServiceConfig) Service {
	return &service{
		rooms: make(map[string]*occupancy),
	}
}

func (s *service) CreateRoom(room *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if room.MobCapacity <= 0 {
		room.MobCapacity = defaultMobCapacity
	}
	s.rooms[room.ID] = &occupancy{room: room}
}

func (s *service) GetRoom(roomID string) (*Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	occ, ok := s.rooms[roomID]
	if !ok {
		return nil, engErr.NotFoundf("room '%s' not found", roomID)
	}
	return occ.room, nil
}

func (s *service) AddPlayer(roomID string, ch *character.Character) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	occ, ok := s.rooms[roomID]
	if !ok {
		return engErr.NotFoundf("room '%s' not found", roomID)
	}

	if ch.RoomID != "" && ch.RoomID != roomID {
		if prev, ok := s.rooms[ch.RoomID]; ok {
			prev.players = removePlayer(prev.players, ch.ID)
		}
	}

	for _, p := range occ.players {
		if p.ID == ch.ID {
			return nil
		}
	}
	occ.players = append(occ.players, ch)
	ch.RoomID = roomID
	return nil
}

func (s *service) RemovePlayer(roomID, characterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if occ, ok := s.rooms[roomID]; ok {
		occ.players = removePlayer(occ.players, characterID)
	}
}

func (s *service) Players(roomID string) []*character.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	occ, ok := s.rooms[roomID]
	if !ok {
		return nil
	}
	out := make([]*character.Character, len(occ.players))
	copy(out, occ.players)
	return out
}

func (s *service) AddMob(roomID string, mob *mobs.Mob) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	occ, ok := s.rooms[roomID]
	if !ok {
		return engErr.NotFoundf("room '%s' not found", roomID)
	}
	if len(occ.mobs) >= occ.room.MobCapacity {
		return engErr.Validationf("room '%s' is full", roomID)
	}
	occ.mobs = append(occ.mobs, mob)
	return nil
}

func (s *service) RemoveMob(roomID, instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	occ, ok := s.rooms[roomID]
	if !ok {
		return
	}
	kept := occ.mobs[:0]
	for _, m := range occ.mobs {
		if m.InstanceID == instanceID {
			continue
		}
		kept = append(kept, m)
	}
	occ.mobs = kept
}

func (s *service) Mobs(roomID string) []*mobs.Mob {
	s.mu.RLock()
	defer s.mu.RUnlock()

	occ, ok := s.rooms[roomID]
	if !ok {
		return nil
	}
	out := make([]*mobs.Mob, len(occ.mobs))
	copy(out, occ.mobs)
	return out
}

func (s *service) FindMob(roomID, nameText string) (*mobs.Mob, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	occ, ok := s.rooms[roomID]
	if !ok {
		return nil, engErr.NotFoundf("room '%s' not found", roomID)
	}

	text := strings.ToLower(strings.TrimSpace(nameText))
	if text == "" {
		return nil, engErr.InvalidArgument("target name is required")
	}
	for _, m := range occ.mobs {
		if strings.Contains(strings.ToLower(m.Name), text) {
			return m, nil
		}
	}
	return nil, engErr.NotFoundf("no '%s' here", nameText)
}

func (s *service) HasCapacity(roomID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	occ, ok := s.rooms[roomID]
	if !ok {
		return false
	}
	return len(occ.mobs) < occ.room.MobCapacity
}

func (s *service) Rooms() []*Room {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Room, 0, len(s.rooms))
	for _, occ := range s.rooms {
		out = append(out, occ.room)
	}
	return out
}

func removePlayer(players []*character.Character, id string) []*character.Character {
	kept := players[:0]
	for _, p := range players {
		if p.ID == id {
			continue
		}
		kept = append(kept, p)
	}
	return kept
}
