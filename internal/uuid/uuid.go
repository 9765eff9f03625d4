// uuid is a simple id generator that allows mocking
package uuid

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator is an interface for generating unique ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements the Generator interface using Google's UUID package
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// Prefixed returns a generated id with a readable prefix, used for
// room-scoped identities like summon instances
func Prefixed(g Generator, prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.New())
}
