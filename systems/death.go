package systems

import (
	"fmt"

	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/systems/factory"
	"github.com/automoto/pixelfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func startDeath(e *donburi.Entry) {
	// Early return if already in death sequence
	if e.HasComponent(components.Death) {
		return
	}
	components.Progress.Get(e).Deaths++
	e.AddComponent(components.Death)
	components.Death.Set(e, &components.DeathData{
		Timer: cfg.Player.RespawnDelayFrames,
	})
}

// UpdateDeaths counts down dead players and respawns them at their last
// save point.
func UpdateDeaths(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	var respawn []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Death) {
			return
		}
		death := components.Death.Get(e)
		death.Timer--
		if death.Timer <= 0 {
			respawn = append(respawn, e)
		}
	})

	for _, e := range respawn {
		progress := components.Progress.Get(e)
		if level.World.Active().ID != progress.ScreenID {
			if err := level.World.Enter(progress.ScreenID); err != nil {
				panic(fmt.Sprintf("respawn: %v", err))
			}
			factory.DespawnScreenObjects(ecs)
			factory.SpawnScreenObjects(ecs, level.World.Active())
			markBodiesMoved(ecs)
		}

		player := components.Player.Get(e)
		player.Place(progress.SpawnX, progress.SpawnY)
		player.DoubleJumps = cfg.Physics.DoubleJumpCharges
		syncObject(e, player.X, player.Y)
		e.RemoveComponent(components.Death)
	}
}
