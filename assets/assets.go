package assets

import (
	"embed"
	"fmt"

	cfg "github.com/automoto/pixelfall/config"
	"github.com/automoto/pixelfall/shared/leveldata"
	"github.com/automoto/pixelfall/shared/world"
)

var (
	//go:embed all:levels
	assetFS embed.FS
)

// LevelDir is the directory of screen files inside the embedded FS.
const LevelDir = "levels"

// LoadWorld loads every embedded screen and activates start.
func LoadWorld(start int) (*world.World, error) {
	screens, err := leveldata.LoadAllScreens(assetFS, LevelDir, leveldata.Defaults{
		GravityX:   cfg.Physics.GravityX,
		GravityY:   cfg.Physics.GravityY,
		JumpFrames: cfg.Physics.JumpFrames,
	})
	if err != nil {
		return nil, fmt.Errorf("load screens: %w", err)
	}
	return world.New(start, screens...)
}
