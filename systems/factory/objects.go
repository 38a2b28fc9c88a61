package factory

import (
	"github.com/automoto/pixelfall/components"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnScreenObjects creates an entity for every object placed in s.
func SpawnScreenObjects(ecs *ecs.ECS, s *world.Screen) {
	for _, spawn := range s.Objects {
		switch spawn.Category {
		case world.CategoryMovingPlatform:
			CreateMovingPlatform(ecs, spawn)
		case world.CategoryEnemy:
			CreateEnemy(ecs, spawn)
		default:
			CreateInteractable(ecs, spawn)
		}
	}
}

// DespawnScreenObjects removes every body entity and its broad-phase proxy.
func DespawnScreenObjects(ecs *ecs.ECS) {
	var doomed []*donburi.Entry
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		doomed = append(doomed, e)
	})

	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range doomed {
		if hasSpace && e.HasComponent(components.Object) {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
}
