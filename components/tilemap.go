package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/tilemesh/compiler"
	"github.com/automoto/tilemesh/config"
	"github.com/automoto/tilemesh/gamemath"
	"github.com/automoto/tilemesh/reconcile"
	"github.com/automoto/tilemesh/render"
)

// TileMapData is the root component of one map attachment point. It
// owns the realized-entity registry and the per-tileset materials and
// atlases; chunk and object entities hang off it via the registry.
type TileMapData struct {
	ID       reconcile.MapID
	Compiled *compiler.Map
	Registry *reconcile.Registry[donburi.Entity]

	// Materials holds one quad material per tileset key; Atlases only
	// exist for tilesets referenced by at least one object.
	Materials map[uint32]*render.Material
	Atlases   map[uint32]*render.Atlas

	Origin   gamemath.Transform
	Centered bool
	Debug    config.DebugConfig

	// Optional notifications fired after realization.
	OnObjectReady func(entity donburi.Entity, id reconcile.MapID)
	OnMapReady    func(id reconcile.MapID)
}

var TileMap = donburi.NewComponentType[TileMapData]()
