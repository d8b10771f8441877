package compiler

import (
	"testing"

	"github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkGridSize(t *testing.T) {
	cases := []struct {
		name                    string
		mapW, mapH              int
		chunkW, chunkH          int
		wantChunksX, wantChunksY int
	}{
		{"exact fit", 32, 32, 32, 32, 1, 1},
		{"one over", 33, 32, 32, 32, 2, 1},
		{"two by two", 64, 64, 32, 32, 2, 2},
		{"smaller than chunk", 2, 2, 32, 32, 1, 1},
		{"degenerate map", 0, 0, 32, 32, 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotX, gotY := chunkGridSize(tc.mapW, tc.mapH, tc.chunkW, tc.chunkH)
			assert.Equal(t, tc.wantChunksX, gotX)
			assert.Equal(t, tc.wantChunksY, gotY)
		})
	}
}

// gridMap builds an in-memory orthogonal map with a single tileset and
// one layer. cells maps grid index (y*width+x) to a tileset-local tile
// id; every other cell is empty.
func gridMap(width, height int, cells map[int]uint32) (*tiled.Map, *tiled.Tileset) {
	ts := &tiled.Tileset{
		Name:       "terrain",
		FirstGID:   1,
		TileWidth:  16,
		TileHeight: 16,
		TileCount:  4,
		Image:      &tiled.Image{Source: "terrain.png", Width: 32, Height: 32},
	}
	tiles := make([]*tiled.LayerTile, width*height)
	for i := range tiles {
		if id, ok := cells[i]; ok {
			tiles[i] = &tiled.LayerTile{ID: id, Tileset: ts}
		} else {
			tiles[i] = &tiled.LayerTile{Nil: true}
		}
	}
	m := &tiled.Map{
		Orientation: "orthogonal",
		Width:       width,
		Height:      height,
		TileWidth:   16,
		TileHeight:  16,
		Tilesets:    []*tiled.Tileset{ts},
		Layers: []*tiled.Layer{
			{Name: "ground", Visible: true, Tiles: tiles},
		},
	}
	return m, ts
}

func TestBuildTilesetLayerChunksAreFixedSize(t *testing.T) {
	m, ts := gridMap(2, 2, map[int]uint32{0: 0})

	tl := buildTilesetLayer(m, m.Layers[0], ts, 32, 32)

	require.Len(t, tl.Chunks, 1)
	require.Len(t, tl.Chunks[0], 1)

	chunk := tl.Chunks[0][0]
	require.Len(t, chunk.Tiles, 32)
	for x := range chunk.Tiles {
		require.Len(t, chunk.Tiles[x], 32)
	}

	// The map only covers the top-left 2x2 corner; everything beyond it
	// is padded with empty tiles.
	assert.Equal(t, uint32(1), chunk.Tiles[0][0].GID)
	assert.Equal(t, uint32(0), chunk.Tiles[1][1].GID)
	assert.Equal(t, uint32(0), chunk.Tiles[2][0].GID)
	assert.Equal(t, uint32(0), chunk.Tiles[31][31].GID)
}

func TestBuildTilesetLayerSkipsOtherTilesets(t *testing.T) {
	m, _ := gridMap(2, 2, map[int]uint32{0: 0})
	other := &tiled.Tileset{
		Name:       "props",
		FirstGID:   5,
		TileWidth:  16,
		TileHeight: 16,
		TileCount:  4,
		Image:      &tiled.Image{Source: "props.png", Width: 32, Height: 32},
	}
	m.Tilesets = append(m.Tilesets, other)

	tl := buildTilesetLayer(m, m.Layers[0], other, 32, 32)

	// The layer's only tile belongs to the terrain tileset, so the props
	// tileset-layer is all empty cells.
	chunk := tl.Chunks[0][0]
	for x := range chunk.Tiles {
		for y := range chunk.Tiles[x] {
			assert.Equal(t, uint32(0), chunk.Tiles[x][y].GID)
		}
	}
	assert.Equal(t, uint32(5), tl.TilesetGID)
}

func TestBuildTileVertexAndUV(t *testing.T) {
	m, ts := gridMap(2, 2, map[int]uint32{1: 3})

	tl := buildTilesetLayer(m, m.Layers[0], ts, 32, 32)
	tile := tl.Chunks[0][0].Tiles[1][0]

	assert.Equal(t, uint32(4), tile.GID)

	// Grid cell (1, 0) of a 16x16 ortho map spans x 16..32, y -16..0 in
	// world space (rows grow downward into negative y).
	assert.Equal(t, Rect{MinX: 16, MinY: -16, MaxX: 32, MaxY: 0}, tile.Vertex)

	// Tile id 3 is the bottom-right cell of the 2x2 sheet.
	assert.Equal(t, Rect{MinX: 0.5, MinY: 0.5, MaxX: 1, MaxY: 1}, tile.UV)
}

func TestBuildTileSheetSpacing(t *testing.T) {
	// 2x2 sheet of 16x16 tiles separated by 2px spacing: 34x34 texture.
	ts := &tiled.Tileset{
		Name:       "spaced",
		FirstGID:   1,
		TileWidth:  16,
		TileHeight: 16,
		TileCount:  4,
		Spacing:    2,
		Image:      &tiled.Image{Source: "spaced.png", Width: 34, Height: 34},
	}
	tiles := []*tiled.LayerTile{
		{ID: 1, Tileset: ts}, {Nil: true},
		{Nil: true}, {Nil: true},
	}
	m := &tiled.Map{
		Orientation: "orthogonal",
		Width:       2, Height: 2,
		TileWidth: 16, TileHeight: 16,
		Tilesets: []*tiled.Tileset{ts},
		Layers:   []*tiled.Layer{{Name: "ground", Visible: true, Tiles: tiles}},
	}

	tl := buildTilesetLayer(m, m.Layers[0], ts, 32, 32)
	tile := tl.Chunks[0][0].Tiles[0][0]

	// Column 1 starts at x = 1*(16+2) - 2 = 16 in the sheet.
	assert.InDelta(t, 16.0/34.0, tile.UV.MinX, 1e-9)
	assert.InDelta(t, 32.0/34.0, tile.UV.MaxX, 1e-9)
	assert.InDelta(t, -2.0/34.0, tile.UV.MinY, 1e-9)
	assert.InDelta(t, 14.0/34.0, tile.UV.MaxY, 1e-9)
}

func TestBuildTileCarriesFlipFlags(t *testing.T) {
	m, ts := gridMap(1, 1, map[int]uint32{0: 0})
	m.Layers[0].Tiles[0].HorizontalFlip = true
	m.Layers[0].Tiles[0].DiagonalFlip = true

	tl := buildTilesetLayer(m, m.Layers[0], ts, 32, 32)
	tile := tl.Chunks[0][0].Tiles[0][0]

	assert.True(t, tile.FlipH)
	assert.True(t, tile.FlipD)
	assert.False(t, tile.FlipV)
}

func TestBuildTilesetLayerIsometricVertex(t *testing.T) {
	m, ts := gridMap(2, 2, map[int]uint32{3: 0})
	m.Orientation = "isometric"

	tl := buildTilesetLayer(m, m.Layers[0], ts, 32, 32)
	tile := tl.Chunks[0][0].Tiles[1][1]

	// Grid cell (1, 1) projects to the diamond centered at (0, -16).
	assert.Equal(t, Rect{MinX: -8, MinY: -32, MaxX: 8, MaxY: -16}, tile.Vertex)
}
