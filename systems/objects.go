package systems

import (
	"math"

	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlatforms advances every moving platform along its tween.
func UpdatePlatforms(ecs *ecs.ECS) {
	components.Platform.Each(ecs.World, func(e *donburi.Entry) {
		platform := components.Platform.Get(e)
		tw := components.Tween.Get(e)

		progress, _, done := tw.Update(cfg.Objects.PlatformTickSeconds)
		if done {
			tw.Reset()
		}

		body := components.Body.Get(e)
		body.X = math.Round(platform.OriginX + platform.TravelX*float64(progress))
		body.Y = math.Round(platform.OriginY + platform.TravelY*float64(progress))
	})
}

// UpdateObjects keeps each broad-phase proxy at its body position.
func UpdateObjects(ecs *ecs.ECS) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		syncObject(e, body.X, body.Y)
	})
}

func syncObject(e *donburi.Entry, x, y float64) {
	if !e.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(e)
	if obj.Object == nil || (obj.X == x && obj.Y == y) {
		return
	}
	obj.X = x
	obj.Y = y
	obj.Update()
}
