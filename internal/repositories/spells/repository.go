package spells

//go:generate mockgen -destination=mock/mock_repository.go -package=mockspells -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/emberfell/internal/domain/spells"
)

// Repository provides access to the spell catalog
type Repository interface {
	// Save stores a spell definition
	Save(ctx context.Context, spell *spells.Spell) error

	// Get fetches a spell definition by ID
	Get(ctx context.Context, id string) (*spells.Spell, error)

	// List returns every spell in the catalog
	List(ctx context.Context) ([]*spells.Spell, error)
}
