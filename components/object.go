package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	math2 "github.com/yohamta/donburi/features/math"

	"github.com/automoto/tilemesh/compiler"
	"github.com/automoto/tilemesh/gamemath"
)

// ObjectData is one realized map object: either a tile sprite cut from
// an atlas, or a gid-less shape realized as a debug box plus an
// optional resolv collider.
type ObjectData struct {
	Object    *compiler.Object
	GroupName string

	Sprite    *ebiten.Image // nil for pure shapes
	Transform gamemath.Transform
	Size      math2.Vec2
	Visible   bool

	DebugBox bool
	Collider *resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()
