package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/tilemesh/compiler"
)

// fakeRealizer hands out sequential int handles and records every
// retirement.
type fakeRealizer struct {
	next           int
	chunkRealized  []ChunkKey
	objectRealized []uint32
	retired        []int
}

func (f *fakeRealizer) RealizeChunk(key ChunkKey, mesh *compiler.Mesh) []int {
	f.chunkRealized = append(f.chunkRealized, key)
	f.next++
	return []int{f.next}
}

func (f *fakeRealizer) RealizeObject(group *compiler.ObjectGroup, obj *compiler.Object) []int {
	f.objectRealized = append(f.objectRealized, obj.ID)
	f.next++
	return []int{f.next}
}

func (f *fakeRealizer) Retire(handles []int) {
	f.retired = append(f.retired, handles...)
}

func (f *fakeRealizer) reset() {
	f.chunkRealized = nil
	f.objectRealized = nil
	f.retired = nil
}

func artifact(meshes []compiler.LayerMesh, groups []compiler.ObjectGroup) *compiler.Map {
	return &compiler.Map{Meshes: meshes, Groups: groups}
}

func chunkArtifact(keys ...ChunkKey) *compiler.Map {
	meshes := make([]compiler.LayerMesh, len(keys))
	for i, key := range keys {
		meshes[i] = compiler.LayerMesh{
			LayerIndex: key.Layer,
			TilesetGID: key.TilesetGID,
			Mesh:       &compiler.Mesh{},
		}
	}
	return artifact(meshes, nil)
}

func TestReconcileRealizesChunks(t *testing.T) {
	reg := NewRegistry[int](ObjectKeyGID)
	realizer := &fakeRealizer{}

	keyA := ChunkKey{Layer: 0, TilesetGID: 1}
	keyB := ChunkKey{Layer: 1, TilesetGID: 1}
	Reconcile(reg, chunkArtifact(keyA, keyB), realizer)

	assert.ElementsMatch(t, []ChunkKey{keyA, keyB}, realizer.chunkRealized)
	assert.Empty(t, realizer.retired)
	assert.ElementsMatch(t, []ChunkKey{keyA, keyB}, reg.ChunkKeys())
	assert.Len(t, reg.ChunkHandles(keyA), 1)
}

func TestReconcileSameArtifactIsNoOp(t *testing.T) {
	reg := NewRegistry[int](ObjectKeyGID)
	realizer := &fakeRealizer{}

	m := chunkArtifact(ChunkKey{Layer: 0, TilesetGID: 1})
	Reconcile(reg, m, realizer)
	realizer.reset()

	Reconcile(reg, m, realizer)
	assert.Empty(t, realizer.chunkRealized)
	assert.Empty(t, realizer.retired)
}

func TestReconcileReplacesChunksPerKey(t *testing.T) {
	reg := NewRegistry[int](ObjectKeyGID)
	realizer := &fakeRealizer{}

	key := ChunkKey{Layer: 0, TilesetGID: 1}
	Reconcile(reg, chunkArtifact(key), realizer)
	stale := reg.ChunkHandles(key)
	realizer.reset()

	// A recompiled artifact under the same key retires the stale
	// handles before realizing the replacement.
	Reconcile(reg, chunkArtifact(key), realizer)
	assert.Equal(t, stale, realizer.retired)
	assert.Equal(t, []ChunkKey{key}, realizer.chunkRealized)
	assert.NotEqual(t, stale, reg.ChunkHandles(key))
}

func TestReconcileRetiresDroppedKeys(t *testing.T) {
	reg := NewRegistry[int](ObjectKeyGID)
	realizer := &fakeRealizer{}

	keyA := ChunkKey{Layer: 0, TilesetGID: 1}
	keyB := ChunkKey{Layer: 1, TilesetGID: 1}
	Reconcile(reg, chunkArtifact(keyA, keyB), realizer)
	droppedHandles := reg.ChunkHandles(keyB)
	realizer.reset()

	// Layer 1 disappears from the recompiled artifact.
	Reconcile(reg, chunkArtifact(keyA), realizer)
	for _, h := range droppedHandles {
		assert.Contains(t, realizer.retired, h)
	}
	assert.ElementsMatch(t, []ChunkKey{keyA}, reg.ChunkKeys())
}

func objectArtifact(visible bool, objects ...compiler.Object) *compiler.Map {
	return artifact(nil, []compiler.ObjectGroup{{
		Name:    "props",
		Visible: visible,
		Objects: objects,
	}})
}

func TestReconcileRealizesObjects(t *testing.T) {
	reg := NewRegistry[int](ObjectKeyID)
	realizer := &fakeRealizer{}

	Reconcile(reg, objectArtifact(true,
		compiler.Object{ID: 1, Visible: true},
		compiler.Object{ID: 2, Visible: true},
	), realizer)

	assert.ElementsMatch(t, []uint32{1, 2}, realizer.objectRealized)
	assert.ElementsMatch(t, []uint32{1, 2}, reg.ObjectKeys())
}

func TestReconcileInvisibleGroupRetiresWithoutRealizing(t *testing.T) {
	reg := NewRegistry[int](ObjectKeyID)
	realizer := &fakeRealizer{}

	Reconcile(reg, objectArtifact(true, compiler.Object{ID: 1, Visible: true}), realizer)
	realizer.reset()

	// The group turns invisible: its stale entities retire and nothing
	// replaces them.
	Reconcile(reg, objectArtifact(false, compiler.Object{ID: 1, Visible: true}), realizer)
	assert.Len(t, realizer.retired, 1)
	assert.Empty(t, realizer.objectRealized)
	assert.Empty(t, reg.ObjectKeys())
}

func TestReconcileObjectKeyModes(t *testing.T) {
	// Two gid-less shapes collide under gid keying and share one
	// registry entry; id keying keeps them apart.
	shapes := []compiler.Object{
		{ID: 1, GID: 0, Visible: true},
		{ID: 2, GID: 0, Visible: true},
	}

	byGid := NewRegistry[int](ObjectKeyGID)
	Reconcile(byGid, objectArtifact(true, shapes...), &fakeRealizer{})
	assert.Len(t, byGid.ObjectKeys(), 1)

	byID := NewRegistry[int](ObjectKeyID)
	Reconcile(byID, objectArtifact(true, shapes...), &fakeRealizer{})
	assert.Len(t, byID.ObjectKeys(), 2)
}

func TestClearRetiresEverything(t *testing.T) {
	reg := NewRegistry[int](ObjectKeyID)
	realizer := &fakeRealizer{}

	m := artifact(
		[]compiler.LayerMesh{{LayerIndex: 0, TilesetGID: 1, Mesh: &compiler.Mesh{}}},
		[]compiler.ObjectGroup{{Name: "props", Visible: true, Objects: []compiler.Object{{ID: 1, Visible: true}}}},
	)
	Reconcile(reg, m, realizer)
	realizer.reset()

	reg.Clear(realizer)
	assert.Len(t, realizer.retired, 2)
	assert.Empty(t, reg.ChunkKeys())
	assert.Empty(t, reg.ObjectKeys())

	// After a clear the same artifact pointer realizes again.
	Reconcile(reg, m, realizer)
	require.Len(t, reg.ChunkKeys(), 1)
	require.Len(t, reg.ObjectKeys(), 1)
}
