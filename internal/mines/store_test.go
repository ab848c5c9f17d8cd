package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClumpStoreDedup(t *testing.T) {
	cs := newClumpStore(DepthFirst)
	a, b := Clump{0, 0, 3}, Clump{1, 1, 1}

	assert.True(t, cs.add(a))
	assert.False(t, cs.add(a))
	assert.True(t, cs.add(b))
	assert.Equal(t, 2, cs.pending())

	c, ok := cs.next()
	assert.True(t, ok)
	assert.Equal(t, b, c)
	assert.False(t, cs.add(b), "done clumps must not be queued again")

	c, ok = cs.next()
	assert.True(t, ok)
	assert.Equal(t, a, c)

	_, ok = cs.next()
	assert.False(t, ok)
	assert.Equal(t, 4, cs.area)
	assert.Equal(t, []Clump{a, b}, cs.discovered())
}

func TestClumpStoreBreadthFirst(t *testing.T) {
	cs := newClumpStore(BreadthFirst)
	clumps := []Clump{{0, 2, 1}, {0, 1, 1}, {0, 0, 1}}
	for _, c := range clumps {
		cs.add(c)
	}
	for _, want := range clumps {
		c, ok := cs.next()
		assert.True(t, ok)
		assert.Equal(t, want, c)
	}
	assert.Equal(t, []Clump{{0, 0, 1}, {0, 1, 1}, {0, 2, 1}}, cs.discovered())
}

func TestClumpStoreDiscoveredSkipsQueued(t *testing.T) {
	cs := newClumpStore(DepthFirst)
	cs.add(Clump{0, 0, 1})
	cs.add(Clump{5, 0, 1})
	cs.next()

	assert.Equal(t, []Clump{{5, 0, 1}}, cs.discovered())
	assert.Equal(t, 1, cs.pending())
}
