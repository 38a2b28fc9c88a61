package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/pixelfall/assets"
	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/systems"
	"github.com/automoto/pixelfall/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type WorldScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Bodies move first, are published, then the player steps against
	// the resulting raster.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlatforms)
	ecs.AddSystem(systems.UpdateEnemies)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateBodies)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdateInteractables)
	ecs.AddSystem(systems.UpdateDeaths)

	ecs.AddRenderer(cfg.Default, systems.DrawScreen)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)

	ws.ecs = ecs

	w, err := assets.LoadWorld(cfg.Debug.StartScreen)
	if err != nil {
		panic(fmt.Sprintf("failed to load world: %v", err))
	}
	factory.CreateLevel(ws.ecs, w)
	factory.CreateSpace(ws.ecs)

	start := w.Active()
	player := factory.CreatePlayer(ws.ecs, start.ID, start.SpawnX, start.SpawnY)

	// Resume from the last save tile if the save still names a real screen.
	if saved, err := systems.LoadProgress(); err == nil && saved != nil {
		if _, ok := w.Screen(saved.ScreenID); ok {
			progress := components.Progress.Get(player)
			systems.ApplyProgress(progress, saved)
			if err := w.Enter(saved.ScreenID); err != nil {
				panic(err)
			}
			components.Player.Get(player).Place(saved.SpawnX, saved.SpawnY)
			components.Object.Get(player).X = saved.SpawnX
			components.Object.Get(player).Y = saved.SpawnY
			components.Object.Get(player).Update()
		}
	}

	factory.SpawnScreenObjects(ws.ecs, w.Active())
	systems.UpdateBodies(ws.ecs)
}
