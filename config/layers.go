package config

import "github.com/yohamta/donburi/ecs"

// ECS renderer layers, back to front.
const (
	LayerDefault ecs.LayerID = iota
	LayerMap
	LayerObjects
	LayerHUD
)
