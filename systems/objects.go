package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/tilemesh/components"
)

// UpdateObjects refreshes the collision state of realized shape
// colliders.
func UpdateObjects(e *ecs.ECS) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Collider != nil {
			obj.Collider.Update()
		}
	})
}
