package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/tilemesh/compiler"
)

func TestMeshVertices(t *testing.T) {
	mesh := &compiler.Mesh{
		Positions: [][3]float32{
			{16, -16, 0},
			{16, 0, 0},
			{32, 0, 0},
			{32, -16, 0},
		},
		UVs: [][2]float32{
			{0, 0.5},
			{0, 0},
			{0.5, 0},
			{0.5, 0.5},
		},
		Indices: []uint32{0, 2, 1, 0, 3, 2},
	}

	vertices, indices := MeshVertices(mesh, 32, 32)
	require.Len(t, vertices, 4)
	require.Len(t, indices, 6)

	// World y flips into screen y.
	assert.Equal(t, float32(16), vertices[0].DstX)
	assert.Equal(t, float32(16), vertices[0].DstY)
	assert.Equal(t, float32(0), vertices[1].DstY)

	// Normalized UVs become texel coordinates.
	assert.Equal(t, float32(0), vertices[0].SrcX)
	assert.Equal(t, float32(16), vertices[0].SrcY)
	assert.Equal(t, float32(16), vertices[3].SrcX)

	for _, v := range vertices {
		assert.Equal(t, float32(1), v.ColorR)
		assert.Equal(t, float32(1), v.ColorA)
	}

	assert.Equal(t, []uint16{0, 2, 1, 0, 3, 2}, indices)
}
