package components

import (
	"github.com/automoto/pixelfall/shared/world"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	World *world.World
	// BossFight is set by a bossfight trigger tile or pad and cleared once
	// every boss part on the screen is destroyed.
	BossFight    bool
	BossDefeated bool
	BossHits     int
}

var Level = donburi.NewComponentType[LevelData]()
