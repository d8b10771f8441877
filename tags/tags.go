package tags

import "github.com/yohamta/donburi"

var (
	MapRoot = donburi.NewTag().SetName("MapRoot")
	Chunk   = donburi.NewTag().SetName("Chunk")
	Object  = donburi.NewTag().SetName("Object")
)

// Resolv tags for colliders spawned from shape objects.
const (
	ResolvShape   = "shape"
	ResolvEllipse = "ellipse"
)
