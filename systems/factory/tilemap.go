package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/tilemesh/archetypes"
	"github.com/automoto/tilemesh/compiler"
	"github.com/automoto/tilemesh/components"
	"github.com/automoto/tilemesh/config"
	"github.com/automoto/tilemesh/gamemath"
	"github.com/automoto/tilemesh/reconcile"
	"github.com/automoto/tilemesh/render"
)

// CreateTileMap spawns the root entity for one compiled map attachment
// point. Chunk and object entities are realized later, when the change
// batch first names the map id.
func CreateTileMap(ecs *ecs.ECS, id reconcile.MapID, compiled *compiler.Map, keyMode reconcile.ObjectKeyMode, debug config.DebugConfig, centered bool) *donburi.Entry {
	entry := archetypes.TileMap.Spawn(ecs)
	components.TileMap.Set(entry, &components.TileMapData{
		ID:        id,
		Compiled:  compiled,
		Registry:  reconcile.NewRegistry[donburi.Entity](keyMode),
		Materials: make(map[uint32]*render.Material),
		Atlases:   make(map[uint32]*render.Atlas),
		Origin:    gamemath.NewTransform(),
		Centered:  centered,
		Debug:     debug,
	})
	return entry
}

// CreateCamera spawns the camera at the given position with zoom 1.
func CreateCamera(ecs *ecs.ECS, position math2.Vec2) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(entry, &components.CameraData{
		Position: position,
		Zoom:     1.0,
	})
	return entry
}

// CreateSpace spawns the resolv collision space shape objects register
// into.
func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	entry := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(entry, spaceData)
	return entry
}
