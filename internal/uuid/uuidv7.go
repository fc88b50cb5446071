// Package uuid generates the time-ordered identifiers used for every entity.
package uuid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"

	googleuuid "github.com/google/uuid"
)

// Generator produces UUIDv7 strings. Ids from one Generator are strictly
// increasing, even for several ids minted in the same millisecond.
//
// Format (RFC 9562):
// - 48 bits: Unix timestamp in milliseconds
// - 4 bits: version (0111 = 7)
// - 12 bits: per-millisecond sequence
// - 2 bits: variant (10)
// - 62 bits: random data
type Generator struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy io.Reader
	lastMS  uint64
	seq     uint16
}

// NewGenerator creates a Generator reading the wall clock and crypto/rand.
func NewGenerator() *Generator {
	return &Generator{now: time.Now, entropy: rand.Reader}
}

// NewGeneratorWithClock creates a Generator with a custom clock, for tests.
func NewGeneratorWithClock(now func() time.Time) *Generator {
	return &Generator{now: now, entropy: rand.Reader}
}

var defaultGenerator = NewGenerator()

// New generates a new UUIDv7 from the package-level generator.
func New() string {
	return defaultGenerator.New()
}

// New generates a new UUIDv7 based on the generator's clock.
func (g *Generator) New() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := uint64(g.now().UnixMilli())
	if ms <= g.lastMS {
		// Same (or rewound) millisecond: stay on the last timestamp and bump the sequence.
		ms = g.lastMS
		g.seq++
		if g.seq > 0x0fff {
			ms++
			g.seq = 0
		}
	} else {
		g.seq = 0
	}
	g.lastMS = ms

	var id [16]byte
	binary.BigEndian.PutUint64(id[0:8], ms<<16)

	if _, err := io.ReadFull(g.entropy, id[8:]); err != nil {
		// Fallback to standard UUIDv4 if random generation fails
		return googleuuid.New().String()
	}

	// Version 7 plus the 12-bit sequence
	id[6] = 0x70 | byte(g.seq>>8)
	id[7] = byte(g.seq)

	// Set variant (2 bits) to 10
	id[8] = (id[8] & 0x3f) | 0x80

	return formatUUID(id)
}

// formatUUID formats a 16-byte array as a UUID string
func formatUUID(id [16]byte) string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint16(id[4:6]),
		binary.BigEndian.Uint16(id[6:8]),
		binary.BigEndian.Uint16(id[8:10]),
		id[10:16],
	)
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
