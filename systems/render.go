package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/tilemesh/components"
)

// DrawChunks renders every realized chunk mesh, back layers first. The
// baked vertices are world-anchored; the camera transform is applied
// into each chunk's scratch buffer per frame.
func DrawChunks(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	halfW, halfH := float32(width)/2, float32(height)/2

	var chunks []*components.ChunkData
	components.Chunk.Each(e.World, func(entry *donburi.Entry) {
		chunks = append(chunks, components.Chunk.Get(entry))
	})
	sort.SliceStable(chunks, func(i, j int) bool {
		return chunks[i].LayerIndex < chunks[j].LayerIndex
	})

	opts := &ebiten.DrawTrianglesOptions{}
	for _, chunk := range chunks {
		if len(chunk.Scratch) != len(chunk.Vertices) {
			chunk.Scratch = make([]ebiten.Vertex, len(chunk.Vertices))
		}
		offsetX := float32(chunk.Transform.Translation.X - camera.Position.X)
		offsetY := float32(-chunk.Transform.Translation.Y - camera.Position.Y)
		for i, v := range chunk.Vertices {
			v.DstX = (v.DstX+offsetX)*float32(zoom) + halfW
			v.DstY = (v.DstY+offsetY)*float32(zoom) + halfH
			chunk.Scratch[i] = v
		}
		screen.DrawTriangles(chunk.Scratch, chunk.Indices, chunk.Texture, opts)
	}
}

// DrawObjects renders realized objects above the tile layers, ordered
// by their Z bias so objects lower on screen paint in front.
func DrawObjects(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	zoom := camera.Zoom
	if zoom == 0 {
		zoom = 1.0
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	var objects []*components.ObjectData
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		objects = append(objects, components.Object.Get(entry))
	})
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].Transform.Translation.Z < objects[j].Transform.Translation.Z
	})

	boxColor, debugEnabled := debugBoxStyle(e)

	for _, obj := range objects {
		if !obj.Visible {
			continue
		}
		screenX := (obj.Transform.Translation.X-camera.Position.X)*zoom + float64(width)/2
		screenY := (-obj.Transform.Translation.Y-camera.Position.Y)*zoom + float64(height)/2

		if obj.Sprite != nil {
			frameW := float64(obj.Sprite.Bounds().Dx())
			frameH := float64(obj.Sprite.Bounds().Dy())
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-frameW/2, -frameH/2)
			op.GeoM.Scale(obj.Transform.Scale.X*zoom, obj.Transform.Scale.Y*zoom)
			op.GeoM.Translate(screenX, screenY)
			screen.DrawImage(obj.Sprite, op)
			continue
		}
		if obj.DebugBox && debugEnabled {
			w := float32(obj.Size.X * zoom)
			h := float32(obj.Size.Y * zoom)
			vector.DrawFilledRect(screen,
				float32(screenX)-w/2, float32(screenY)-h/2, w, h,
				boxColor, false)
		}
	}
}

// debugBoxStyle reads the box color and enable flag from the first map
// entity, so toggling debug at runtime takes effect without
// re-realizing objects.
func debugBoxStyle(e *ecs.ECS) (color.Color, bool) {
	if entry, ok := components.TileMap.First(e.World); ok {
		d := components.TileMap.Get(entry).Debug
		return color.RGBA{
			R: uint8(d.BoxRed * 255),
			G: uint8(d.BoxGreen * 255),
			B: uint8(d.BoxBlue * 255),
			A: uint8(d.BoxAlpha * 255),
		}, d.Enabled
	}
	return color.RGBA{R: 102, G: 102, B: 229, A: 128}, false
}
