package systems

import (
	"fmt"

	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/fonts"
	"github.com/automoto/pixelfall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// DrawHUD renders the screen id, progress counters and boss fight state in
// the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	progress := components.Progress.Get(playerEntry)

	face := fonts.HUD.Get()
	for i, line := range hudLines(level, progress) {
		text.Draw(screen, line, face, hudMargin, hudMargin+hudLineHeight*(i+1), cfg.White)
	}

	if level.BossFight {
		banner := "BOSS"
		large := fonts.HUDLarge.Get()
		w := text.BoundString(large, banner).Dx()
		text.Draw(screen, banner, large, (cfg.C.Width-w)/2, hudMargin+24, cfg.Purple)
	}
}

func hudLines(level *components.LevelData, progress *components.ProgressData) []string {
	lines := []string{
		fmt.Sprintf("Screen %d", level.World.Active().ID),
		fmt.Sprintf("Pickups %d  Lenses %d", progress.Collected, progress.Lenses),
		fmt.Sprintf("Deaths %d", progress.Deaths),
	}
	switch {
	case level.BossFight:
		lines = append(lines, fmt.Sprintf("Boss hits %d", level.BossHits))
	case level.BossDefeated:
		lines = append(lines, "Boss defeated")
	}
	return lines
}
