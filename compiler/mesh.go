package compiler

// Mesh is a vertex/UV/index buffer for one chunk of one tileset-layer,
// ready for upload. Two triangles per quad, consistent winding.
type Mesh struct {
	Positions [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// QuadCount returns the number of emitted quads.
func (m *Mesh) QuadCount() int {
	return len(m.Positions) / 4
}

// assembleChunk emits one quad per tile that belongs to the
// tileset-layer's tileset. A chunk producing zero quads yields nil, not
// an empty mesh: absence signals "nothing to render here".
func assembleChunk(chunk *Chunk, tl *TilesetLayer) *Mesh {
	var (
		positions [][3]float32
		uvs       [][2]float32
		indices   []uint32
	)

	i := uint32(0)
	for x := range chunk.Tiles {
		for y := range chunk.Tiles[x] {
			tile := &chunk.Tiles[x][y]
			if tile.GID < tl.TilesetGID {
				continue
			}

			positions = append(positions,
				[3]float32{float32(tile.Vertex.MinX), float32(tile.Vertex.MinY), 0},
				[3]float32{float32(tile.Vertex.MinX), float32(tile.Vertex.MaxY), 0},
				[3]float32{float32(tile.Vertex.MaxX), float32(tile.Vertex.MaxY), 0},
				[3]float32{float32(tile.Vertex.MaxX), float32(tile.Vertex.MinY), 0},
			)

			uvs = append(uvs, flipUVs(tile)...)

			indices = append(indices, i+0, i+2, i+1, i+0, i+3, i+2)
			i += 4
		}
	}

	if len(positions) == 0 {
		return nil
	}
	return &Mesh{Positions: positions, UVs: uvs, Indices: indices}
}

// flipUVs returns the tile's four UV corners in texture space, starting
// from [bottom-left, top-left, top-right, bottom-right] and reordered by
// the flip flags. The flags compose in this exact sequence (diagonal,
// horizontal, vertical) to match Tiled's semantics.
func flipUVs(tile *Tile) [][2]float32 {
	uv := tile.UV
	corners := [][2]float32{
		{float32(uv.MinX), float32(uv.MaxY)},
		{float32(uv.MinX), float32(uv.MinY)},
		{float32(uv.MaxX), float32(uv.MinY)},
		{float32(uv.MaxX), float32(uv.MaxY)},
	}
	if tile.FlipD {
		corners[0], corners[2] = corners[2], corners[0]
	}
	if tile.FlipH {
		corners[0], corners[3] = corners[3], corners[0]
		corners[1], corners[2] = corners[2], corners[1]
	}
	if tile.FlipV {
		corners[0], corners[3] = corners[3], corners[0]
		corners[1], corners[2] = corners[2], corners[1]
		corners[0], corners[2] = corners[2], corners[0]
		corners[1], corners[3] = corners[3], corners[1]
	}
	return corners
}
