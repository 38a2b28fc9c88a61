package factory

import (
	"github.com/automoto/pixelfall/archetypes"
	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/automoto/pixelfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a patrolling hazard. Enemies are deadly on the raster
// unless the level gives them another flag.
func CreateEnemy(ecs *ecs.ECS, spawn world.ObjectSpawn) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(ecs)

	flag := spawn.Flag
	if flag == collision.FlagNone {
		flag = collision.FlagDeadly
	}
	components.Body.SetValue(enemy, components.BodyData{
		Category:      world.CategoryEnemy,
		CollisionFlag: flag,
		Mask:          spawn.Mask,
		X:             spawn.X,
		Y:             spawn.Y,
	})

	direction := 1.0
	if spawn.TravelX < 0 {
		direction = -1
	}
	components.Enemy.SetValue(enemy, components.EnemyData{
		Direction: direction,
		Speed:     cfg.Objects.PatrolSpeed,
	})

	w, h := float64(spawn.Mask.W), float64(spawn.Mask.H)
	obj := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, enemy, obj)

	return enemy
}
