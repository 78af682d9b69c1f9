package hwpx

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// Structural element IDs live in a fixed 9-digit range.
const (
	structuralIDMin = 100000000
	structuralIDMax = 999999999
)

// IDGenerator issues structural element IDs (tables, cell sublists,
// header and footer sublists, field markers) that are unique among all
// IDs issued by this instance. A generator belongs to exactly one
// document build: it is not safe for concurrent use, and concurrent
// builds must each own their own instance.
//
// A seeded generator issues a reproducible sequence: two generators with
// the same seed produce identical IDs when invoked the same number of
// times. An unseeded generator draws from crypto/rand.
type IDGenerator struct {
	rng    *rand.Rand // nil in nondeterministic mode
	issued map[int]struct{}
}

// NewIDGenerator creates a deterministic generator from a seed.
func NewIDGenerator(seed int64) *IDGenerator {
	return &IDGenerator{
		rng:    rand.New(rand.NewSource(seed)),
		issued: make(map[int]struct{}),
	}
}

// NewRandomIDGenerator creates a nondeterministic generator backed by
// the operating system's randomness source.
func NewRandomIDGenerator() *IDGenerator {
	return &IDGenerator{issued: make(map[int]struct{})}
}

// NextID returns a structural ID not previously issued by this
// generator. The 9-digit space is never exhausted by a realistic
// document.
func (g *IDGenerator) NextID() int {
	for {
		id := structuralIDMin + g.intn(structuralIDMax-structuralIDMin+1)
		if _, dup := g.issued[id]; dup {
			continue
		}
		g.issued[id] = struct{}{}
		return id
	}
}

func (g *IDGenerator) intn(n int) int {
	if g.rng != nil {
		return g.rng.Intn(n)
	}
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		// crypto/rand failure means the platform randomness source is
		// broken; there is no sensible fallback for ID generation.
		panic(err)
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}
