// Package render bridges compiled map artifacts to ebiten: tileset
// materials, sprite atlases, and mesh-to-vertex conversion.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Material is the single-texture material for a tileset's chunk meshes.
type Material struct {
	Texture *ebiten.Image
}

// Atlas slices a tileset texture into a grid of sprite frames, indexed
// by tileset-local sprite index. Only tilesets referenced by objects
// need one. Frames are cached sub-images, never copies.
type Atlas struct {
	Texture    *ebiten.Image
	TileWidth  int
	TileHeight int
	Columns    int
	Rows       int

	frames map[uint32]*ebiten.Image
}

// NewAtlas builds an atlas over a tileset texture. The grid ignores
// spacing, matching the sprite-atlas convention for object tilesets.
func NewAtlas(texture *ebiten.Image, tileWidth, tileHeight int) *Atlas {
	bounds := texture.Bounds()
	return &Atlas{
		Texture:    texture,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Columns:    bounds.Dx() / tileWidth,
		Rows:       bounds.Dy() / tileHeight,
		frames:     make(map[uint32]*ebiten.Image),
	}
}

// Frame returns the sprite at the given tileset-local index, or nil if
// the index falls outside the grid.
func (a *Atlas) Frame(index uint32) *ebiten.Image {
	if img, ok := a.frames[index]; ok {
		return img
	}
	col := int(index) % a.Columns
	row := int(index) / a.Columns
	if row >= a.Rows {
		return nil
	}
	min := a.Texture.Bounds().Min
	rect := image.Rect(
		min.X+col*a.TileWidth,
		min.Y+row*a.TileHeight,
		min.X+(col+1)*a.TileWidth,
		min.Y+(row+1)*a.TileHeight,
	)
	img := a.Texture.SubImage(rect).(*ebiten.Image)
	a.frames[index] = img
	return img
}
