package factory

import (
	"github.com/automoto/pixelfall/archetypes"
	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/automoto/pixelfall/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateMovingPlatform(ecs *ecs.ECS, spawn world.ObjectSpawn) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	flag := spawn.Flag
	if flag == collision.FlagNone {
		flag = collision.FlagSolid
	}
	components.Body.SetValue(platform, components.BodyData{
		Category:      world.CategoryMovingPlatform,
		CollisionFlag: flag,
		Mask:          spawn.Mask,
		X:             spawn.X,
		Y:             spawn.Y,
	})
	components.Platform.SetValue(platform, components.PlatformData{
		OriginX: spawn.X,
		OriginY: spawn.Y,
		TravelX: spawn.TravelX,
		TravelY: spawn.TravelY,
	})

	// The platform moves using a *gween.Sequence of tweens, moving it back and forth.
	leg := cfg.Objects.PlatformTravelSeconds
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, 1, leg, ease.InOutSine),
		gween.New(1, 0, leg, ease.InOutSine),
	)
	components.Tween.Set(platform, tw)

	w, h := float64(spawn.Mask.W), float64(spawn.Mask.H)
	obj := resolv.NewObject(spawn.X, spawn.Y, w, h, tags.ResolvPlatform)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, platform, obj)

	return platform
}
