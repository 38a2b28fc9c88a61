package factory

import (
	"github.com/automoto/pixelfall/archetypes"
	"github.com/automoto/pixelfall/components"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, w *world.World) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{World: w})
	return level
}
