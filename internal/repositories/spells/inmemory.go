package spells

import (
	"context"
	"sync"

	"github.com/KirkDiggler/emberfell/internal/domain/spells"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

type inMemoryRepo struct {
	mu     sync.RWMutex
	spells map[string]*spells.Spell
	order  []string
}

// NewInMemory creates an in-memory spell repository, used when Redis
// is not configured and in tests.
func NewInMemory() Repository {
	return &inMemoryRepo{
		spells: make(map[string]*spells.Spell),
	}
}

func (r *inMemoryRepo) Save(_ context.Context, spell *spells.Spell) error {
	if spell == nil {
		return engErr.InvalidArgument("spell cannot be nil")
	}
	if spell.ID == "" {
		return engErr.InvalidArgument("spell ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.spells[spell.ID]; !exists {
		r.order = append(r.order, spell.ID)
	}
	r.spells[spell.ID] = spell
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, id string) (*spells.Spell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	spell, ok := r.spells[id]
	if !ok {
		return nil, engErr.NotFoundf("spell '%s' not found", id)
	}
	return spell, nil
}

func (r *inMemoryRepo) List(_ context.Context) ([]*spells.Spell, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*spells.Spell, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.spells[id])
	}
	return out, nil
}
