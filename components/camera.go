package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math2.Vec2
	Zoom     float64

	// ZoomTween eases zoom changes; nil when idle.
	ZoomTween *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
