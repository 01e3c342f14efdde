// Package idgen provides ID generation utilities
package idgen

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mock/mock.go -package=idgenmock github.com/KirkDiggler/bg3-item-builder/internal/pkg/idgen Generator

const (
	// HandlePrefix starts every localization handle
	HandlePrefix = "h"

	// HandleFiller replaces hyphens inside localization handles. Handles
	// consumed by the game's localization tables may not contain '-', map
	// keys may.
	HandleFiller = "g"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// UUIDGenerator generates standard hyphenated UUIDs, used for map keys
type UUIDGenerator struct{}

// NewUUID creates a new UUID generator
func NewUUID() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate creates a new random UUID. uuid.New reads from crypto/rand and
// panics if the system random source fails.
func (g *UUIDGenerator) Generate() string {
	return uuid.New().String()
}

// HandleGenerator generates localization handles: HandlePrefix followed by
// a random UUID with every hyphen replaced by HandleFiller.
type HandleGenerator struct{}

// NewHandle creates a new handle generator
func NewHandle() *HandleGenerator {
	return &HandleGenerator{}
}

// Generate creates a new handle such as h1f0c2a3bg9d4eg4c1ag8b2eg0123456789ab
func (g *HandleGenerator) Generate() string {
	return HandlePrefix + strings.ReplaceAll(uuid.New().String(), "-", HandleFiller)
}

// SequentialGenerator generates sequential IDs for testing
type SequentialGenerator struct {
	prefix  string
	counter uint64
}

// NewSequential creates a new sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate creates a new sequential ID
func (g *SequentialGenerator) Generate() string {
	n := atomic.AddUint64(&g.counter, 1)
	if g.prefix != "" {
		return fmt.Sprintf("%s_%d", g.prefix, n)
	}
	return fmt.Sprintf("%d", n)
}
