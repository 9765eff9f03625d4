package monsters

import (
	"context"
	"sync"

	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
	engErr "github.com/KirkDiggler/emberfell/internal/errors"
)

type inMemoryRepo struct {
	mu        sync.RWMutex
	templates map[string]*mobs.Template
	order     []string
}

// NewInMemory creates an in-memory creature template repository
func NewInMemory() Repository {
	return &inMemoryRepo{
		templates: make(map[string]*mobs.Template),
	}
}

func (r *inMemoryRepo) Save(_ context.Context, tpl *mobs.Template) error {
	if tpl == nil {
		return engErr.InvalidArgument("template cannot be nil")
	}
	if tpl.ID == "" {
		return engErr.InvalidArgument("template ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.templates[tpl.ID]; !exists {
		r.order = append(r.order, tpl.ID)
	}
	r.templates[tpl.ID] = tpl
	return nil
}

func (r *inMemoryRepo) Get(_ context.Context, id string) (*mobs.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tpl, ok := r.templates[id]
	if !ok {
		return nil, engErr.NotFoundf("creature template '%s' not found", id)
	}
	return tpl, nil
}

func (r *inMemoryRepo) List(_ context.Context) ([]*mobs.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*mobs.Template, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.templates[id])
	}
	return out, nil
}

func (r *inMemoryRepo) FindSummonable(_ context.Context, minLevel, maxLevel int, typeTag string, allowSpecialTerrain bool) ([]*mobs.Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*mobs.Template
	for _, id := range r.order {
		tpl := r.templates[id]
		if tpl.Level < minLevel || tpl.Level > maxLevel {
			continue
		}
		if typeTag != "" && tpl.Type != typeTag {
			continue
		}
		if tpl.SpecialTerrain && !allowSpecialTerrain {
			continue
		}
		out = append(out, tpl)
	}
	return out, nil
}
