// Package uuid wraps id generation so callers can swap in fixed ids under test
package uuid

import (
	"github.com/google/uuid"
)

// Generator produces unique string ids
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 UUIDs
type GoogleUUIDGenerator struct{}

func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// ShortID returns the first block of a generated UUID. Discord custom ids are
// capped at 100 characters, so component ids carry this instead of the full id.
func ShortID(g Generator) string {
	id := g.New()
	if i := len(id); i > 8 {
		return id[:8]
	}
	return id
}
