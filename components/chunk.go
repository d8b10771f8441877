package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/automoto/tilemesh/gamemath"
)

// ChunkData is one realized chunk mesh: screen-space-baked vertices
// plus the tileset texture to draw them with. Scratch is reused each
// frame for the camera-transformed copy.
type ChunkData struct {
	LayerIndex int
	TilesetGID uint32

	Vertices []ebiten.Vertex
	Indices  []uint16
	Texture  *ebiten.Image

	Transform gamemath.Transform
	Scratch   []ebiten.Vertex
}

var Chunk = donburi.NewComponentType[ChunkData]()
