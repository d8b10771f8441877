package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/tilemesh/archetypes"
	"github.com/automoto/tilemesh/compiler"
	"github.com/automoto/tilemesh/components"
	"github.com/automoto/tilemesh/gamemath"
	"github.com/automoto/tilemesh/reconcile"
	"github.com/automoto/tilemesh/render"
	"github.com/automoto/tilemesh/tags"
)

// MapRealizer implements reconcile.Realizer on the donburi world:
// chunks become mesh entities, objects become sprite or debug-box
// entities, and retired handles are removed from the world (and their
// colliders from the space).
type MapRealizer struct {
	ecs       *ecs.ECS
	tm        *components.TileMapData
	transform gamemath.Transform
	space     *resolv.Space
}

// NewMapRealizer builds the realizer for one reconciliation pass. The
// parent transform is the map origin, centered on it if requested.
func NewMapRealizer(e *ecs.ECS, tm *components.TileMapData) *MapRealizer {
	transform := tm.Origin
	if tm.Centered {
		transform = tm.Compiled.Center(tm.Origin)
	}
	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space = components.Space.Get(spaceEntry)
	}
	return &MapRealizer{ecs: e, tm: tm, transform: transform, space: space}
}

// RealizeChunk spawns one mesh entity for a chunk of a tileset-layer.
func (r *MapRealizer) RealizeChunk(key reconcile.ChunkKey, mesh *compiler.Mesh) []donburi.Entity {
	material, ok := r.tm.Materials[key.TilesetGID]
	if !ok || material.Texture == nil {
		return nil
	}
	bounds := material.Texture.Bounds()
	vertices, indices := render.MeshVertices(mesh, bounds.Dx(), bounds.Dy())

	entry := archetypes.Chunk.Spawn(r.ecs)
	components.Chunk.Set(entry, &components.ChunkData{
		LayerIndex: key.Layer,
		TilesetGID: key.TilesetGID,
		Vertices:   vertices,
		Indices:    indices,
		Texture:    material.Texture,
		Transform:  r.transform,
	})
	return []donburi.Entity{entry.Entity()}
}

// RealizeObject spawns a sprite entity for tile objects with an atlas,
// or a debug box (plus collider for rect/ellipse shapes) otherwise.
func (r *MapRealizer) RealizeObject(group *compiler.ObjectGroup, obj *compiler.Object) []donburi.Entity {
	data := &components.ObjectData{
		Object:    obj,
		GroupName: group.Name,
	}

	atlas := r.objectAtlas(obj)
	if atlas != nil {
		index, _ := obj.SpriteIndex()
		sprite := atlas.Frame(index)
		if sprite == nil {
			return nil
		}
		tileScale := r.tileScale(obj)
		transform, err := r.tm.Compiled.ObjectTransform(obj, r.transform, tileScale)
		if err != nil {
			// Compile already validated shape/orientation support.
			return nil
		}
		data.Sprite = sprite
		data.Transform = transform
		data.Size = obj.Dimensions()
		data.Visible = obj.Visible
	} else {
		transform, err := r.tm.Compiled.ObjectTransform(obj, r.transform, nil)
		if err != nil {
			return nil
		}
		data.Transform = transform
		data.Size = obj.Dimensions()
		data.DebugBox = true
		data.Visible = obj.Visible
		data.Collider = r.shapeCollider(obj)
	}

	entry := archetypes.Object.Spawn(r.ecs)
	components.Object.Set(entry, data)

	entity := entry.Entity()
	if r.tm.OnObjectReady != nil {
		r.tm.OnObjectReady(entity, r.tm.ID)
	}
	return []donburi.Entity{entity}
}

// Retire removes realized entities from the world, pulling their
// colliders out of the space first.
func (r *MapRealizer) Retire(handles []donburi.Entity) {
	for _, entity := range handles {
		if !r.ecs.World.Valid(entity) {
			continue
		}
		entry := r.ecs.World.Entry(entity)
		if entry.HasComponent(components.Object) {
			if collider := components.Object.Get(entry).Collider; collider != nil && r.space != nil {
				r.space.Remove(collider)
			}
		}
		r.ecs.World.Remove(entity)
	}
}

func (r *MapRealizer) objectAtlas(obj *compiler.Object) *render.Atlas {
	firstGID, ok := obj.TilesetGID()
	if !ok {
		return nil
	}
	return r.tm.Atlases[firstGID]
}

// tileScale is the extra scale applied to tile objects whose placed
// extent differs from the source tile extent.
func (r *MapRealizer) tileScale(obj *compiler.Object) *gamemath.Vec3 {
	firstGID, ok := obj.TilesetGID()
	if !ok {
		return nil
	}
	ts, ok := r.tm.Compiled.Tileset(firstGID)
	if !ok {
		return nil
	}
	dims := obj.Dimensions()
	scale := gamemath.Vec3{
		X: dims.X / float64(ts.TileWidth),
		Y: dims.Y / float64(ts.TileHeight),
		Z: 1,
	}
	return &scale
}

// shapeCollider registers a collider for rect and ellipse shapes.
// Tiled object coordinates are already top-left/Y-down, which is
// resolv's convention.
func (r *MapRealizer) shapeCollider(obj *compiler.Object) *resolv.Object {
	if r.space == nil {
		return nil
	}
	var collider *resolv.Object
	switch obj.Shape.Kind {
	case compiler.ShapeRect:
		collider = resolv.NewObject(obj.Position.X, obj.Position.Y, obj.Shape.Width, obj.Shape.Height, tags.ResolvShape)
	case compiler.ShapeEllipse:
		// Approximated by its bounding box.
		collider = resolv.NewObject(obj.Position.X, obj.Position.Y, obj.Shape.Width, obj.Shape.Height, tags.ResolvShape, tags.ResolvEllipse)
	default:
		return nil
	}
	r.space.Add(collider)
	return collider
}
