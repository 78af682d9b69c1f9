package hwpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGeneratorSeededSequence(t *testing.T) {
	a := NewIDGenerator(42)
	b := NewIDGenerator(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.NextID(), b.NextID())
	}
}

func TestIDGeneratorDifferentSeeds(t *testing.T) {
	a := NewIDGenerator(1)
	b := NewIDGenerator(2)
	same := true
	for i := 0; i < 10; i++ {
		if a.NextID() != b.NextID() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestIDGeneratorRange(t *testing.T) {
	g := NewIDGenerator(7)
	for i := 0; i < 1000; i++ {
		id := g.NextID()
		require.GreaterOrEqual(t, id, structuralIDMin)
		require.LessOrEqual(t, id, structuralIDMax)
	}
}

func TestIDGeneratorUnique(t *testing.T) {
	g := NewIDGenerator(3)
	seen := make(map[int]struct{})
	for i := 0; i < 10000; i++ {
		id := g.NextID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %d", id)
		seen[id] = struct{}{}
	}
}

func TestIDGeneratorRandomMode(t *testing.T) {
	g := NewRandomIDGenerator()
	id := g.NextID()
	assert.GreaterOrEqual(t, id, structuralIDMin)
	assert.LessOrEqual(t, id, structuralIDMax)
}
