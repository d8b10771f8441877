package compiler

import (
	"math"

	"github.com/lafriks/go-tiled"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/tilemesh/gamemath"
)

// Rect is an axis-aligned rectangle given by its min and max corners.
// Used both for world-space vertex rects and normalized UV rects.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Tile is one cell of a chunk, fully resolved for mesh assembly.
// GID 0 marks an empty cell (out of map bounds, or a cell this
// tileset-layer does not cover).
type Tile struct {
	GID    uint32
	Pos    math2.Vec2 // chunk-local cell
	Vertex Rect       // world-space corners
	UV     Rect       // normalized texture corners
	FlipD  bool
	FlipH  bool
	FlipV  bool
}

// Chunk is a fixed-size block of tiles. Tiles is indexed [x][y] and is
// always exactly chunkWidth x chunkHeight, regardless of map edge
// truncation; cells beyond the map boundary are empty tiles.
type Chunk struct {
	Position math2.Vec2
	Tiles    [][]Tile
}

// TilesetLayer holds the chunks of one (layer, tileset) pair. Chunks is
// indexed [x][y].
type TilesetLayer struct {
	TileSize   math2.Vec2
	Chunks     [][]Chunk
	TilesetGID uint32
}

// Layer is one visible tile layer, split per contributing tileset. The
// index in the compiled map's layer list is the layer's identity key.
type Layer struct {
	TilesetLayers []TilesetLayer
}

// chunkGridSize returns the chunk grid dimensions for a map, never less
// than 1x1 even for degenerate maps.
func chunkGridSize(mapWidth, mapHeight, chunkWidth, chunkHeight int) (int, int) {
	chunksX := int(math.Max(math.Ceil(float64(mapWidth)/float64(chunkWidth)), 1))
	chunksY := int(math.Max(math.Ceil(float64(mapHeight)/float64(chunkHeight)), 1))
	return chunksX, chunksY
}

// buildTilesetLayer partitions one layer's grid into chunks for one
// tileset. Orientation has been validated by Compile, so projection
// cannot fail here.
func buildTilesetLayer(m *tiled.Map, layer *tiled.Layer, ts *tiled.Tileset, chunkWidth, chunkHeight int) TilesetLayer {
	tileWidth := float64(ts.TileWidth)
	tileHeight := float64(ts.TileHeight)
	spacing := float64(ts.Spacing)
	textureWidth := float64(ts.Image.Width)
	textureHeight := float64(ts.Image.Height)
	// Account for there being no trailing spacing column in the sheet.
	columns := math.Floor((textureWidth + spacing) / (tileWidth + spacing))

	chunksX, chunksY := chunkGridSize(m.Width, m.Height, chunkWidth, chunkHeight)

	chunks := make([][]Chunk, chunksX)
	for chunkX := 0; chunkX < chunksX; chunkX++ {
		chunks[chunkX] = make([]Chunk, chunksY)
		for chunkY := 0; chunkY < chunksY; chunkY++ {
			tiles := make([][]Tile, chunkWidth)
			for tileX := 0; tileX < chunkWidth; tileX++ {
				tiles[tileX] = make([]Tile, chunkHeight)
				for tileY := 0; tileY < chunkHeight; tileY++ {
					lookupX := chunkX*chunkWidth + tileX
					lookupY := chunkY*chunkHeight + tileY

					cell := Tile{Pos: math2.Vec2{X: float64(tileX), Y: float64(tileY)}}
					if lookupX < m.Width && lookupY < m.Height {
						mapTile := layer.Tiles[lookupY*m.Width+lookupX]
						if !mapTile.IsNil() && mapTile.Tileset == ts {
							cell = buildTile(m, mapTile, ts,
								lookupX, lookupY, tileX, tileY,
								tileWidth, tileHeight, spacing,
								textureWidth, textureHeight, columns)
						}
					}
					tiles[tileX][tileY] = cell
				}
			}
			chunks[chunkX][chunkY] = Chunk{
				Position: math2.Vec2{X: float64(chunkX), Y: float64(chunkY)},
				Tiles:    tiles,
			}
		}
	}

	return TilesetLayer{
		TileSize:   math2.Vec2{X: tileWidth, Y: tileHeight},
		Chunks:     chunks,
		TilesetGID: ts.FirstGID,
	}
}

func buildTile(m *tiled.Map, mapTile *tiled.LayerTile, ts *tiled.Tileset,
	lookupX, lookupY, tileX, tileY int,
	tileWidth, tileHeight, spacing, textureWidth, textureHeight, columns float64) Tile {

	// go-tiled has already stripped the flip bits: ID is the
	// tileset-local index and the flips arrive as booleans.
	index := float64(mapTile.ID)

	sheetX := math.Floor(math.Mod(index, columns)*(tileWidth+spacing) - spacing)
	sheetY := math.Floor(index/columns)*(tileHeight+spacing) - spacing

	gridPos := math2.Vec2{X: float64(lookupX), Y: float64(lookupY)}
	var vertex Rect
	switch m.Orientation {
	case gamemath.OrientationOrthogonal:
		center := gamemath.ProjectOrtho(gridPos, tileWidth, tileHeight)
		vertex = Rect{
			MinX: center.X,
			MinY: center.Y - tileHeight - spacing,
			MaxX: center.X + tileWidth + spacing,
			MaxY: center.Y,
		}
	case gamemath.OrientationIsometric:
		center := gamemath.ProjectIso(gridPos, tileWidth, tileHeight)
		vertex = Rect{
			MinX: center.X - tileWidth/2,
			MinY: center.Y - tileHeight,
			MaxX: center.X + tileWidth/2,
			MaxY: center.Y,
		}
	}

	return Tile{
		GID: ts.FirstGID + mapTile.ID,
		Pos: math2.Vec2{X: float64(tileX), Y: float64(tileY)},
		Vertex: vertex,
		UV: Rect{
			MinX: sheetX / textureWidth,
			MinY: sheetY / textureHeight,
			MaxX: (sheetX + tileWidth) / textureWidth,
			MaxY: (sheetY + tileHeight) / textureHeight,
		},
		FlipD: mapTile.DiagonalFlip,
		FlipH: mapTile.HorizontalFlip,
		FlipV: mapTile.VerticalFlip,
	}
}
