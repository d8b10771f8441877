// Package gamemath provides pure coordinate math shared by the map
// compiler and its hosts. It has no dependency on ebiten or the ECS.
package gamemath

import (
	"errors"
	"math"

	math2 "github.com/yohamta/donburi/features/math"
)

// Tiled orientation values as they appear in TMX files.
const (
	OrientationOrthogonal = "orthogonal"
	OrientationIsometric  = "isometric"
)

// ErrUnsupportedOrientation is returned for any orientation other than
// orthogonal or isometric. Hexagonal and staggered maps are not supported.
var ErrUnsupportedOrientation = errors.New("gamemath: unsupported orientation")

// ProjectOrtho maps a grid position to world space for orthogonal maps.
// World Y points up, so rows grow downward into negative Y.
func ProjectOrtho(pos math2.Vec2, tileWidth, tileHeight float64) math2.Vec2 {
	return math2.Vec2{X: tileWidth * pos.X, Y: -(tileHeight * pos.Y)}
}

// UnprojectOrtho is the exact inverse of ProjectOrtho.
func UnprojectOrtho(pos math2.Vec2, tileWidth, tileHeight float64) math2.Vec2 {
	return math2.Vec2{X: pos.X / tileWidth, Y: -pos.Y / tileHeight}
}

// ProjectIso maps a grid position to world space for isometric maps.
func ProjectIso(pos math2.Vec2, tileWidth, tileHeight float64) math2.Vec2 {
	x := (pos.X - pos.Y) * tileWidth / 2
	y := (pos.X + pos.Y) * tileHeight / 2
	return math2.Vec2{X: x, Y: -y}
}

// UnprojectIso inverts ProjectIso, rounding both components to the
// nearest integer. The isometric inverse is only used for coarse
// grid-cell lookups, not sub-tile precision.
func UnprojectIso(pos math2.Vec2, tileWidth, tileHeight float64) math2.Vec2 {
	halfWidth := tileWidth / 2
	halfHeight := tileHeight / 2
	x := ((pos.X / halfWidth) + (-pos.Y / halfHeight)) / 2
	y := ((-pos.Y / halfHeight) - (pos.X / halfWidth)) / 2
	return math2.Vec2{X: math.Round(x), Y: math.Round(y)}
}

// Project dispatches on the map orientation.
func Project(orientation string, pos math2.Vec2, tileWidth, tileHeight float64) (math2.Vec2, error) {
	switch orientation {
	case OrientationOrthogonal:
		return ProjectOrtho(pos, tileWidth, tileHeight), nil
	case OrientationIsometric:
		return ProjectIso(pos, tileWidth, tileHeight), nil
	default:
		return math2.Vec2{}, ErrUnsupportedOrientation
	}
}

// Unproject dispatches on the map orientation.
func Unproject(orientation string, pos math2.Vec2, tileWidth, tileHeight float64) (math2.Vec2, error) {
	switch orientation {
	case OrientationOrthogonal:
		return UnprojectOrtho(pos, tileWidth, tileHeight), nil
	case OrientationIsometric:
		return UnprojectIso(pos, tileWidth, tileHeight), nil
	default:
		return math2.Vec2{}, ErrUnsupportedOrientation
	}
}
