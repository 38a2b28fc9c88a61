package factory

import (
	"github.com/automoto/pixelfall/archetypes"
	"github.com/automoto/pixelfall/components"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the broad-phase space covering one screen.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(collision.ScreenWidth, collision.ScreenHeight, collision.TileSize, collision.TileSize)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace links obj to its entry and registers it with the space, if
// one exists.
func addToSpace(ecs *ecs.ECS, e *donburi.Entry, obj *resolv.Object) {
	obj.Data = e
	components.Object.SetValue(e, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
