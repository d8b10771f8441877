package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // tileset images are overwhelmingly PNG

	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
)

// TextureLoader loads and caches tileset images from a filesystem,
// typically rooted at the map's folder so the compiled artifact's
// relative image paths resolve directly.
type TextureLoader struct {
	fsys  fs.FS
	cache map[string]*ebiten.Image
}

// NewTextureLoader returns a loader reading from fsys.
func NewTextureLoader(fsys fs.FS) *TextureLoader {
	return &TextureLoader{
		fsys:  fsys,
		cache: make(map[string]*ebiten.Image),
	}
}

// LoadImage loads one image, caching by path.
func (l *TextureLoader) LoadImage(path string) (*ebiten.Image, error) {
	if img, ok := l.cache[path]; ok {
		return img, nil
	}
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read texture %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode texture %s: %w", path, err)
	}
	ebitenImg := ebiten.NewImageFromImage(img)
	l.cache[path] = ebitenImg
	return ebitenImg, nil
}
