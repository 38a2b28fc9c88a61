package systems

import (
	"github.com/automoto/pixelfall/components"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBodies publishes the dynamic bodies to the active screen so the
// next raster includes them. Must run after everything that moves bodies
// and before UpdatePlayer.
func UpdateBodies(ecs *ecs.ECS) {
	publishBodies(ecs)
}

func publishBodies(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	screen := components.Level.Get(levelEntry).World.Active()

	var bodies []collision.Body
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		if body.CollisionFlag == collision.FlagNone {
			return
		}
		bodies = append(bodies, body)
	})
	screen.SetBodies(bodies)
}

// markBodiesMoved republishes after a screen change spawned a new set of
// bodies mid-tick.
func markBodiesMoved(ecs *ecs.ECS) {
	publishBodies(ecs)
}
