package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/tilemesh/components"
	cfg "github.com/automoto/tilemesh/config"
	"github.com/automoto/tilemesh/tags"
)

var (
	TileMap = newArchetype(
		tags.MapRoot,
		components.TileMap,
	)
	Chunk = newArchetype(
		tags.Chunk,
		components.Chunk,
	)
	Object = newArchetype(
		tags.Object,
		components.Object,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.LayerDefault,
		append(a.components, cs...)...,
	))
	return e
}
