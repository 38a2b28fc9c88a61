package factory

import (
	"github.com/automoto/pixelfall/archetypes"
	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/motion"
	"github.com/automoto/pixelfall/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, screenID int, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	mask := collision.MustParseMask(cfg.Player.Mask...)
	actor := motion.NewActor(x, y, mask)
	actor.DoubleJumps = cfg.Physics.DoubleJumpCharges
	components.Player.SetValue(player, components.PlayerData{Actor: actor})
	components.Progress.SetValue(player, components.ProgressData{
		ScreenID:  screenID,
		SpawnX:    x,
		SpawnY:    y,
		SaveArmed: true,
	})

	obj := resolv.NewObject(x, y, float64(mask.W), float64(mask.H), tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, float64(mask.W), float64(mask.H)))
	addToSpace(ecs, player, obj)

	return player
}
