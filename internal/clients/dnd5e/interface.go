package dnd5e

//go:generate mockgen -destination=mock/mock_client.go -package=mockdnd5e . Client

import (
	"github.com/KirkDiggler/emberfell/internal/domain/mobs"
)

// Client imports creature templates from the D&D 5e API
type Client interface {
	// GetMonster fetches a single monster and converts it to a
	// summonable template
	GetMonster(key string) (*mobs.Template, error)

	// ListMonstersByCR returns templates for monsters within a
	// challenge rating range
	ListMonstersByCR(minCR, maxCR float32) ([]*mobs.Template, error)
}
