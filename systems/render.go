package systems

import (
	"image/color"

	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var categoryColors = map[world.Category]color.RGBA{
	world.CategoryEnemy:          cfg.Red,
	world.CategoryPickup:         cfg.Yellow,
	world.CategoryMovingPlatform: cfg.Blue,
	world.CategoryLens:           cfg.LightGreen,
	world.CategoryBossPart:       cfg.Purple,
	world.CategoryTrigger:        cfg.White,
}

// DrawScreen renders the active screen's decorative layers as flat tiles.
func DrawScreen(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Background)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	s := components.Level.Get(levelEntry).World.Active()

	const size = float32(collision.TileSize)
	for layer := range cfg.LayerColors {
		c := cfg.LayerColors[layer]
		for ty := 0; ty < collision.GridHeight; ty++ {
			for tx := 0; tx < collision.GridWidth; tx++ {
				if !s.Grid.Tiles[ty][tx].Layers[layer].Set {
					continue
				}
				vector.FillRect(screen, float32(tx)*size, float32(ty)*size, size, size, c, false)
			}
		}
	}
}

// DrawBodies renders dynamic objects and the player as boxes.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		drawMask(screen, body.Mask, body.X, body.Y, categoryColors[body.Category])
	})

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		player := components.Player.Get(e)
		drawMask(screen, player.Mask, player.X, player.Y, cfg.White)
	})
}

// drawMask fills one rect per horizontal run of on pixels.
func drawMask(screen *ebiten.Image, m *collision.Mask, x, y float64, c color.Color) {
	for j := 0; j < m.H; j++ {
		start := -1
		for i := 0; i <= m.W; i++ {
			on := i < m.W && m.On(i, j)
			if on && start < 0 {
				start = i
			}
			if !on && start >= 0 {
				vector.FillRect(screen, float32(x)+float32(start), float32(y)+float32(j), float32(i-start), 1, c, false)
				start = -1
			}
		}
	}
}
