package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/tilemesh/components"
)

const (
	minZoom = 0.25
	maxZoom = 8.0
)

// UpdateCamera pans with the arrow keys and eases zoom changes from the
// mouse wheel through a short tween.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	speed := 4.0 / camera.Zoom
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		camera.Position.X -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		camera.Position.X += speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyUp) {
		camera.Position.Y -= speed
	}
	if ebiten.IsKeyPressed(ebiten.KeyDown) {
		camera.Position.Y += speed
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		target := camera.Zoom
		if wheelY > 0 {
			target *= 1.5
		} else {
			target /= 1.5
		}
		if target < minZoom {
			target = minZoom
		}
		if target > maxZoom {
			target = maxZoom
		}
		camera.ZoomTween = gween.New(float32(camera.Zoom), float32(target), 0.2, ease.OutQuad)
	}

	if camera.ZoomTween != nil {
		current, finished := camera.ZoomTween.Update(1.0 / 60.0)
		camera.Zoom = float64(current)
		if finished {
			camera.ZoomTween = nil
		}
	}
}
