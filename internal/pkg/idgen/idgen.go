package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator issues reservation identifiers. Injected so tests can supply
// deterministic values.
type Generator interface {
	NewID() uuid.UUID
}

type UUIDGenerator struct{}

func NewUUIDGenerator() Generator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() uuid.UUID {
	return uuid.New()
}

// SequentialGenerator yields a predictable sequence for tests.
type SequentialGenerator struct {
	mu   sync.Mutex
	next int
}

func NewSequentialGenerator() *SequentialGenerator {
	return &SequentialGenerator{}
}

func (g *SequentialGenerator) NewID() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return uuid.MustParse(fmt.Sprintf("00000000-0000-0000-0000-%012d", g.next))
}
