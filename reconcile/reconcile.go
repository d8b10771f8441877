// Package reconcile keeps previously realized scene entities in step
// with recompiled map artifacts. It computes the minimal add/remove
// delta so stale geometry is retired and new geometry is realized
// exactly once, and never initiates recompilation itself: the host
// hands it artifacts when the source asset changes.
//
// The package is generic over the host's entity handle type; it stores
// and returns handles without ever inspecting them.
package reconcile

import (
	"github.com/automoto/tilemesh/compiler"
)

// ChunkKey identifies the chunk geometry of one (layer, tileset) pair.
type ChunkKey struct {
	Layer      int
	TilesetGID uint32
}

// ObjectKeyMode selects how objects are keyed in the registry.
type ObjectKeyMode int

const (
	// ObjectKeyGID keys objects by their raw gid. Two distinct objects
	// sharing a gid (all pure shapes have gid 0) collide under one
	// entry and are retired together. Kept for compatibility with the
	// original protocol.
	ObjectKeyGID ObjectKeyMode = iota
	// ObjectKeyID keys objects by their unique Tiled object id.
	ObjectKeyID
)

// Realizer is the host-side half of the protocol. RealizeChunk and
// RealizeObject turn compiled data into live scene entities and return
// their handles; Retire releases handles the reconciler no longer
// tracks. The reconciler stores handles opaquely.
type Realizer[H comparable] interface {
	RealizeChunk(key ChunkKey, mesh *compiler.Mesh) []H
	RealizeObject(group *compiler.ObjectGroup, obj *compiler.Object) []H
	Retire(handles []H)
}

// Registry tracks the live handles for one scene attachment point,
// keyed by (layer, tileset) for chunk geometry and by object key for
// objects. It is single-writer: concurrent reconciliation passes
// against the same registry must be serialized by the host, because
// retire/realize pairs are not idempotent if interleaved.
type Registry[H comparable] struct {
	chunks  map[ChunkKey][]H
	objects map[uint32][]H
	keyMode ObjectKeyMode

	// current remembers the artifact last reconciled so handing the
	// same artifact in again is a no-op rather than a wholesale
	// retire/realize churn.
	current *compiler.Map
}

// NewRegistry returns an empty registry using the given object keying.
func NewRegistry[H comparable](mode ObjectKeyMode) *Registry[H] {
	return &Registry[H]{
		chunks:  make(map[ChunkKey][]H),
		objects: make(map[uint32][]H),
		keyMode: mode,
	}
}

func (r *Registry[H]) objectKey(o *compiler.Object) uint32 {
	if r.keyMode == ObjectKeyID {
		return o.ID
	}
	return o.GID
}

// ChunkKeys returns the currently registered chunk keys.
func (r *Registry[H]) ChunkKeys() []ChunkKey {
	keys := make([]ChunkKey, 0, len(r.chunks))
	for k := range r.chunks {
		keys = append(keys, k)
	}
	return keys
}

// ObjectKeys returns the currently registered object keys.
func (r *Registry[H]) ObjectKeys() []uint32 {
	keys := make([]uint32, 0, len(r.objects))
	for k := range r.objects {
		keys = append(keys, k)
	}
	return keys
}

// ChunkHandles returns the live handles registered under key.
func (r *Registry[H]) ChunkHandles(key ChunkKey) []H {
	return r.chunks[key]
}

// Clear retires every registered handle. Called when the owning
// attachment point is destroyed or the source map asset is removed.
func (r *Registry[H]) Clear(realizer Realizer[H]) {
	for key, handles := range r.chunks {
		realizer.Retire(handles)
		delete(r.chunks, key)
	}
	for key, handles := range r.objects {
		realizer.Retire(handles)
		delete(r.objects, key)
	}
	r.current = nil
}

// Reconcile brings the registry in line with a compiled artifact.
//
// Chunk geometry is replaced wholesale per (layer, tileset) key: stale
// handles under a key are retired before the key's new meshes are
// realized, and keys the artifact no longer produces are retired and
// dropped. Objects follow the same retire-then-realize protocol under
// their object key; invisible groups retire stale entities but realize
// nothing.
//
// Reconciling the same artifact twice is a no-op.
func Reconcile[H comparable](reg *Registry[H], m *compiler.Map, realizer Realizer[H]) {
	if reg.current == m {
		return
	}

	newMeshes := make(map[ChunkKey][]*compiler.Mesh)
	for _, lm := range m.Meshes {
		key := ChunkKey{Layer: lm.LayerIndex, TilesetGID: lm.TilesetGID}
		newMeshes[key] = append(newMeshes[key], lm.Mesh)
	}

	for key, handles := range reg.chunks {
		if _, stillProduced := newMeshes[key]; !stillProduced {
			realizer.Retire(handles)
			delete(reg.chunks, key)
		}
	}

	for key, meshes := range newMeshes {
		if stale, ok := reg.chunks[key]; ok {
			realizer.Retire(stale)
			delete(reg.chunks, key)
		}
		var handles []H
		for _, mesh := range meshes {
			handles = append(handles, realizer.RealizeChunk(key, mesh)...)
		}
		reg.chunks[key] = handles
	}

	for key, handles := range reg.objects {
		realizer.Retire(handles)
		delete(reg.objects, key)
	}
	for gi := range m.Groups {
		group := &m.Groups[gi]
		if !group.Visible {
			continue
		}
		for oi := range group.Objects {
			obj := &group.Objects[oi]
			key := reg.objectKey(obj)
			handles := realizer.RealizeObject(group, obj)
			// Colliding keys share one entry; their handles retire
			// together on the next pass.
			reg.objects[key] = append(reg.objects[key], handles...)
		}
	}

	reg.current = m
}
