package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	math2 "github.com/yohamta/donburi/features/math"
)

// Corner labels for the unit UV rect: A bottom-left, B top-left,
// C top-right, D bottom-right.
var (
	cornerA = [2]float32{0, 1}
	cornerB = [2]float32{0, 0}
	cornerC = [2]float32{1, 0}
	cornerD = [2]float32{1, 1}
)

func TestFlipUVsAllCombinations(t *testing.T) {
	cases := []struct {
		name          string
		flipD, flipH, flipV bool
		want          [][2]float32
	}{
		{"none", false, false, false, [][2]float32{cornerA, cornerB, cornerC, cornerD}},
		{"diagonal", true, false, false, [][2]float32{cornerC, cornerB, cornerA, cornerD}},
		{"horizontal", false, true, false, [][2]float32{cornerD, cornerC, cornerB, cornerA}},
		{"vertical", false, false, true, [][2]float32{cornerB, cornerA, cornerD, cornerC}},
		{"diagonal+horizontal", true, true, false, [][2]float32{cornerD, cornerA, cornerB, cornerC}},
		{"diagonal+vertical", true, false, true, [][2]float32{cornerB, cornerC, cornerD, cornerA}},
		{"horizontal+vertical", false, true, true, [][2]float32{cornerC, cornerD, cornerA, cornerB}},
		{"all", true, true, true, [][2]float32{cornerA, cornerD, cornerC, cornerB}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tile := &Tile{
				UV:    Rect{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1},
				FlipD: tc.flipD,
				FlipH: tc.flipH,
				FlipV: tc.flipV,
			}
			assert.Equal(t, tc.want, flipUVs(tile))
		})
	}
}

func TestAssembleChunkEmptyYieldsNil(t *testing.T) {
	tl := &TilesetLayer{TilesetGID: 1}
	chunk := &Chunk{Tiles: [][]Tile{
		{{GID: 0}, {GID: 0}},
		{{GID: 0}, {GID: 0}},
	}}

	assert.Nil(t, assembleChunk(chunk, tl))
}

func TestAssembleChunkQuads(t *testing.T) {
	tl := &TilesetLayer{TilesetGID: 1, TileSize: math2.Vec2{X: 16, Y: 16}}
	chunk := &Chunk{Tiles: [][]Tile{
		{
			{GID: 1, Vertex: Rect{MinX: 0, MinY: -16, MaxX: 16, MaxY: 0}, UV: Rect{MaxX: 0.5, MaxY: 0.5}},
			{GID: 0},
		},
		{
			{GID: 0},
			{GID: 2, Vertex: Rect{MinX: 16, MinY: -32, MaxX: 32, MaxY: -16}, UV: Rect{MinX: 0.5, MaxX: 1, MaxY: 0.5}},
		},
	}}

	mesh := assembleChunk(chunk, tl)
	require.NotNil(t, mesh)
	assert.Equal(t, 2, mesh.QuadCount())
	require.Len(t, mesh.Positions, 8)
	require.Len(t, mesh.UVs, 8)
	require.Len(t, mesh.Indices, 12)

	// Quad corners run bottom-left, top-left, top-right, bottom-right.
	assert.Equal(t, [3]float32{0, -16, 0}, mesh.Positions[0])
	assert.Equal(t, [3]float32{0, 0, 0}, mesh.Positions[1])
	assert.Equal(t, [3]float32{16, 0, 0}, mesh.Positions[2])
	assert.Equal(t, [3]float32{16, -16, 0}, mesh.Positions[3])

	// Both triangles of each quad share the same winding.
	assert.Equal(t, []uint32{0, 2, 1, 0, 3, 2, 4, 6, 5, 4, 7, 6}, mesh.Indices)
}

func TestAssembleChunkSkipsForeignGids(t *testing.T) {
	// A tile below the tileset's gid range belongs to another tileset
	// (or is empty) and emits no quad.
	tl := &TilesetLayer{TilesetGID: 10}
	chunk := &Chunk{Tiles: [][]Tile{
		{
			{GID: 3, Vertex: Rect{MaxX: 16, MinY: -16}},
			{GID: 10, Vertex: Rect{MaxX: 16, MinY: -16}},
		},
	}}

	mesh := assembleChunk(chunk, tl)
	require.NotNil(t, mesh)
	assert.Equal(t, 1, mesh.QuadCount())
}
