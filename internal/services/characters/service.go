package characters

//go:generate mockgen -destination=mock/mock_service.go -package=mockcharacters -source=service.go

import (
	"context"
	"sync"

	"github.com/KirkDiggler/emberfell/internal/domain/character"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

// Service is the registry of connected characters
type Service interface {
	// Register adds a character to the registry, replacing any
	// previous entry with the same ID
	Register(ch *character.Character)

	// Get fetches a connected character by ID
	Get(ctx context.Context, id string) (*character.Character, error)

	// Remove drops a character from the registry
	Remove(id string)

	// All returns a snapshot of every connected character
	All() []*character.Character
}

type service struct {
	mu    sync.RWMutex
	chars map[string]*character.Character
	order []string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct{}

// NewService creates a new character registry
func NewService(cfg *ServiceConfig) Service {
	return &service{
		chars: make(map[string]*character.Character),
	}
}

func (s *service) Register(ch *character.Character) {
	if ch == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.chars[ch.ID]; !exists {
		s.order = append(s.order, ch.ID)
	}
	s.chars[ch.ID] = ch
}

func (s *service) Get(_ context.Context, id string) (*character.Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ch, ok := s.chars[id]
	if !ok {
		return nil, engErr.NotFoundf("character '%s' not found", id)
	}
	return ch, nil
}

func (s *service) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.chars[id]; !exists {
		return
	}
	delete(s.chars, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

func (s *service) All() []*character.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*character.Character, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.chars[id])
	}
	return out
}
