package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"

	"github.com/automoto/tilemesh/components"
	"github.com/automoto/tilemesh/reconcile"
	"github.com/automoto/tilemesh/render"
	"github.com/automoto/tilemesh/systems/factory"
)

// ProcessChangedMaps drains one tick's change batch: map entities whose
// artifact changed get their materials/atlases ensured and their
// registry reconciled; removed maps retire everything they realized.
// The host calls this once per tick before the ECS update and resets
// the batch afterwards.
func ProcessChangedMaps(e *ecs.ECS, batch *reconcile.Batch, textures *render.TextureLoader, log *zap.Logger) {
	if batch.Empty() {
		return
	}

	changed := make(map[reconcile.MapID]struct{})
	for _, id := range batch.Changed() {
		changed[id] = struct{}{}
	}
	removed := make(map[reconcile.MapID]struct{})
	for _, id := range batch.Removals() {
		removed[id] = struct{}{}
	}

	components.TileMap.Each(e.World, func(entry *donburi.Entry) {
		tm := components.TileMap.Get(entry)

		if _, gone := removed[tm.ID]; gone {
			tm.Registry.Clear(factory.NewMapRealizer(e, tm))
			return
		}
		if _, ok := changed[tm.ID]; !ok {
			return
		}

		if err := ensureMaterials(tm, textures); err != nil {
			log.Error("loading tileset textures", zap.String("map", string(tm.ID)), zap.Error(err))
			return
		}

		reconcile.Reconcile(tm.Registry, tm.Compiled, factory.NewMapRealizer(e, tm))

		if tm.OnMapReady != nil {
			tm.OnMapReady(tm.ID)
		}
	})
}

// ensureMaterials loads one quad material per tileset, and a sprite
// atlas for each tileset referenced by at least one object.
func ensureMaterials(tm *components.TileMapData, textures *render.TextureLoader) error {
	for firstGID, imagePath := range tm.Compiled.TilesetImages {
		if _, ok := tm.Materials[firstGID]; ok {
			continue
		}
		texture, err := textures.LoadImage(imagePath)
		if err != nil {
			return err
		}
		tm.Materials[firstGID] = &render.Material{Texture: texture}

		if _, needsAtlas := tm.Compiled.ObjectTilesets[firstGID]; needsAtlas {
			if ts, ok := tm.Compiled.Tileset(firstGID); ok {
				tm.Atlases[firstGID] = render.NewAtlas(texture, ts.TileWidth, ts.TileHeight)
			}
		}
	}
	return nil
}
