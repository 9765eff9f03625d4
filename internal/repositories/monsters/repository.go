package monsters

//go:generate mockgen -destination=mock/mock_repository.go -package=mockmonsters -source=repository.go

import (
	"context"

	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
)

// Repository provides access to creature templates
type Repository interface {
	// Save stores a creature template
	Save(ctx context.Context, tpl *mobs.Template) error

	// Get fetches a template by ID
	Get(ctx context.Context, id string) (*mobs.Template, error)

	// List returns every template
	List(ctx context.Context) ([]*mobs.Template, error)

	// FindSummonable returns templates matching a summon spell's
	// constraints. Templates bound to special terrain are excluded
	// unless allowSpecialTerrain is set.
	FindSummonable(ctx context.Context, minLevel, maxLevel int, typeTag string, allowSpecialTerrain bool) ([]*mobs.Template, error)
}
