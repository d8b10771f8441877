package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchCollectsChanges(t *testing.T) {
	b := NewBatch()
	assert.True(t, b.Empty())

	b.Created("b.tmx")
	b.Modified("a.tmx")
	b.Modified("a.tmx")

	assert.False(t, b.Empty())
	assert.Equal(t, []MapID{"a.tmx", "b.tmx"}, b.Changed())
	assert.Empty(t, b.Removals())
}

func TestBatchRemovalCancelsChange(t *testing.T) {
	b := NewBatch()
	b.Modified("a.tmx")
	b.Removed("a.tmx")

	assert.Empty(t, b.Changed())
	assert.Equal(t, []MapID{"a.tmx"}, b.Removals())
}

func TestBatchChangeCancelsRemoval(t *testing.T) {
	b := NewBatch()
	b.Removed("a.tmx")
	b.Created("a.tmx")

	assert.Equal(t, []MapID{"a.tmx"}, b.Changed())
	assert.Empty(t, b.Removals())
}

func TestBatchReset(t *testing.T) {
	b := NewBatch()
	b.Created("a.tmx")
	b.Removed("b.tmx")

	b.Reset()
	assert.True(t, b.Empty())
}
