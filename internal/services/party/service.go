package party

//go:generate mockgen -destination=mock/mock_service.go -package=mockparty -source=service.go

import (
	"sync"
)

// Service tracks party membership and the summons each party controls.
// Summons are accounted against the party leader so a party shares one
// pool of controlled creatures.
type Service interface {
	// SetLeader assigns a character to a party leader. A character
	// with no assignment leads their own party of one.
	SetLeader(characterID, leaderID string)

	// Leader resolves the party leader for a character
	Leader(characterID string) string

	// TrackSummon records a summoned mob against a leader's party
	TrackSummon(leaderID, instanceID string)

	// UntrackSummon drops a summon from whichever party holds it
	UntrackSummon(instanceID string)

	// Summons returns the summon instance ids a party controls
	Summons(leaderID string) []string
}

type service struct {
	mu      sync.RWMutex
	leaders map[string]string
	summons map[string][]string
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct{}

// NewService creates a new party service
func NewService(cfg *ServiceConfig) Service {
	return &service{
		leaders: make(map[string]string),
		summons: make(map[string][]string),
	}
}

func (s *service) SetLeader(characterID, leaderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leaders[characterID] = leaderID
}

func (s *service) Leader(characterID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if leader, ok := s.leaders[characterID]; ok && leader != "" {
		return leader
	}
	return characterID
}

func (s *service) TrackSummon(leaderID, instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.summons[leaderID] = append(s.summons[leaderID], instanceID)
}

func (s *service) UntrackSummon(instanceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for leader, ids := range s.summons {
		kept := ids[:0]
		for _, id := range ids {
			if id == instanceID {
				continue
			}
			kept = append(kept, id)
		}
		s.summons[leader] = kept
	}
}

func (s *service) Summons(leaderID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.summons[leaderID]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
