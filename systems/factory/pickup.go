package factory

import (
	"github.com/automoto/pixelfall/archetypes"
	"github.com/automoto/pixelfall/components"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/automoto/pixelfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateInteractable spawns a pickup, lens, boss part or trigger pad. They
// are resolved through the broad phase and never painted as blocking.
func CreateInteractable(ecs *ecs.ECS, spawn world.ObjectSpawn) *donburi.Entry {
	var e *donburi.Entry
	flag := spawn.Flag
	switch spawn.Category {
	case world.CategoryPickup:
		e = archetypes.Pickup.Spawn(ecs)
		if flag == collision.FlagNone {
			flag = collision.FlagInteractable
		}
	case world.CategoryLens:
		e = archetypes.Lens.Spawn(ecs)
		if flag == collision.FlagNone {
			flag = collision.FlagLens
		}
	case world.CategoryBossPart:
		e = archetypes.BossPart.Spawn(ecs)
		if flag == collision.FlagNone {
			flag = collision.FlagBoss
		}
	default:
		e = archetypes.Trigger.Spawn(ecs)
		if flag == collision.FlagNone {
			flag = collision.FlagTrigger
		}
	}

	components.Body.SetValue(e, components.BodyData{
		Category:      spawn.Category,
		CollisionFlag: flag,
		Mask:          spawn.Mask,
		X:             spawn.X,
		Y:             spawn.Y,
	})

	w, h := float64(spawn.Mask.W), float64(spawn.Mask.H)
	obj := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvInteractable)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, e, obj)

	return e
}
