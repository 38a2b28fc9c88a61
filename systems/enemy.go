package systems

import (
	"fmt"
	"math"

	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies walks patrolling enemies along the tile geometry. An enemy
// turns around at walls, screen edges and ledges, and falls when nothing
// is below it.
func UpdateEnemies(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	screen := components.Level.Get(levelEntry).World.Active()
	tiles, err := screen.TileRaster()
	if err != nil {
		panic(fmt.Sprintf("enemy patrol: %v", err))
	}

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		patrol(tiles, components.Body.Get(e), components.Enemy.Get(e))
	})
}

func patrol(tiles *collision.Raster, body *components.BodyData, enemy *components.EnemyData) {
	x, y := body.Position()
	res := collision.Query(tiles, x, y, body.Mask)

	if !res[collision.South].Blocks() {
		enemy.FallSpeed = math.Min(enemy.FallSpeed+cfg.Objects.PatrolGravity, cfg.Physics.TerminalVelocity)
		// Fall a pixel at a time so the enemy lands flush.
		for i := 0; i < int(math.Ceil(enemy.FallSpeed)); i++ {
			if collision.Query(tiles, x, y, body.Mask)[collision.South].Blocks() {
				enemy.FallSpeed = 0
				break
			}
			y++
		}
		body.Y = float64(y)
		return
	}
	enemy.FallSpeed = 0

	dir := collision.East
	if enemy.Direction < 0 {
		dir = collision.West
	}
	ahead := res[dir]
	if ahead.Blocks() || ahead.Flags.Has(dir.TransitionFlag()) || ledgeAhead(tiles, x, y, body.Mask, dir) {
		enemy.Direction = -enemy.Direction
		return
	}
	body.X += enemy.Direction * enemy.Speed
}

// ledgeAhead reports whether the ground ends one mask width ahead.
func ledgeAhead(tiles *collision.Raster, x, y int, m *collision.Mask, dir collision.Direction) bool {
	dx, _ := dir.Delta()
	ahead := collision.Query(tiles, x+dx*m.W, y, m)
	return !ahead[collision.South].Blocks()
}
