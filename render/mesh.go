package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/tilemesh/compiler"
)

// MeshVertices converts a compiled chunk mesh into ebiten vertices and
// indices. World Y points up while screen Y points down, so Y is
// negated here; normalized UVs become texel coordinates against the
// given texture size.
//
// A chunk at the default 32x32 extent emits at most 4096 vertices, well
// inside ebiten's uint16 index space.
func MeshVertices(mesh *compiler.Mesh, textureWidth, textureHeight int) ([]ebiten.Vertex, []uint16) {
	vertices := make([]ebiten.Vertex, len(mesh.Positions))
	for i, pos := range mesh.Positions {
		uv := mesh.UVs[i]
		vertices[i] = ebiten.Vertex{
			DstX:   pos[0],
			DstY:   -pos[1],
			SrcX:   uv[0] * float32(textureWidth),
			SrcY:   uv[1] * float32(textureHeight),
			ColorR: 1,
			ColorG: 1,
			ColorB: 1,
			ColorA: 1,
		}
	}
	indices := make([]uint16, len(mesh.Indices))
	for i, idx := range mesh.Indices {
		indices[i] = uint16(idx)
	}
	return vertices, indices
}
