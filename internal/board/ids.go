package board

import (
	"fmt"

	"github.com/google/uuid"

	"kanban/internal/domain"
)

// DefaultIDPrefix is prepended to every generated task id.
const DefaultIDPrefix = "task-"

// maxIDAttempts bounds the retries when a generated id collides.
const maxIDAttempts = 16

// IDGenerator produces candidate task ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates ids of the form <prefix><uuid>.
type UUIDGenerator struct {
	Prefix string
}

// NewUUIDGenerator creates a UUIDGenerator. An empty prefix uses DefaultIDPrefix.
func NewUUIDGenerator(prefix string) *UUIDGenerator {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return &UUIDGenerator{Prefix: prefix}
}

// NewID returns a fresh random id.
func (g *UUIDGenerator) NewID() string {
	return g.Prefix + uuid.NewString()
}

// SequentialGenerator generates <prefix>1, <prefix>2, ... for
// deterministic runs.
type SequentialGenerator struct {
	Prefix string
	next   int
}

// NewSequentialGenerator creates a generator whose first id uses start.
func NewSequentialGenerator(prefix string, start int) *SequentialGenerator {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return &SequentialGenerator{Prefix: prefix, next: start}
}

// NewID returns the next id in the sequence.
func (g *SequentialGenerator) NewID() string {
	id := fmt.Sprintf("%s%d", g.Prefix, g.next)
	g.next++
	return id
}

// uniqueID asks gen for ids until one is not already on the board.
func uniqueID(gen IDGenerator, b domain.Board) (string, bool) {
	for i := 0; i < maxIDAttempts; i++ {
		id := gen.NewID()
		if id != "" && !b.HasTask(id) {
			return id, true
		}
	}
	return "", false
}
