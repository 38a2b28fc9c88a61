package systems

import (
	"errors"
	"testing"

	"github.com/automoto/pixelfall/components"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/automoto/pixelfall/tags"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestActivatePickup(t *testing.T) {
	w := donburi.NewWorld()
	var progress components.ProgressData
	var level components.LevelData

	pickup := w.Entry(w.Create(tags.Pickup, components.Body, components.Pickup))
	components.Body.SetValue(pickup, components.BodyData{Category: world.CategoryPickup})
	require.True(t, activate(pickup, &progress, &level))
	require.Equal(t, 1, progress.Collected)
	require.False(t, activate(pickup, &progress, &level))
	require.Equal(t, 1, progress.Collected)
}

func TestActivateLens(t *testing.T) {
	w := donburi.NewWorld()
	var progress components.ProgressData
	var level components.LevelData

	lens := w.Entry(w.Create(tags.Lens, components.Body, components.Trigger))
	components.Body.SetValue(lens, components.BodyData{Category: world.CategoryLens})
	require.False(t, activate(lens, &progress, &level))
	require.Equal(t, 1, progress.Lenses)
	require.True(t, components.Trigger.Get(lens).Fired)
	require.False(t, level.BossFight)

	// One shot.
	require.False(t, activate(lens, &progress, &level))
	require.Equal(t, 1, progress.Lenses)
}

func TestActivateBossFight(t *testing.T) {
	w := donburi.NewWorld()
	var progress components.ProgressData
	var level components.LevelData

	part := w.Entry(w.Create(tags.BossPart, components.Body, components.Trigger))
	components.Body.SetValue(part, components.BodyData{Category: world.CategoryBossPart})
	pad := w.Entry(w.Create(tags.Trigger, components.Body, components.Trigger))
	components.Body.SetValue(pad, components.BodyData{Category: world.CategoryTrigger})

	// Boss parts ignore contact before the fight.
	require.False(t, activate(part, &progress, &level))
	require.Zero(t, level.BossHits)

	require.False(t, activate(pad, &progress, &level))
	require.True(t, components.Trigger.Get(pad).Fired)
	require.True(t, level.BossFight)

	require.True(t, activate(part, &progress, &level))
	require.Equal(t, 1, level.BossHits)
}

func TestStartBossFightOnce(t *testing.T) {
	level := components.LevelData{BossDefeated: true}
	startBossFight(&level)
	require.False(t, level.BossFight)
}

func TestVisitSaveTile(t *testing.T) {
	var progress components.ProgressData
	saves := 0
	save := func(*components.ProgressData) error {
		saves++
		return nil
	}

	require.NoError(t, visitSaveTile(&progress, false, 1, 0, 0, save))
	require.True(t, progress.SaveArmed)

	require.NoError(t, visitSaveTile(&progress, true, 2, 48, 96, save))
	require.Equal(t, 1, saves)
	require.Equal(t, components.ProgressData{ScreenID: 2, SpawnX: 48, SpawnY: 96}, progress)

	// Standing on the tile does not save again.
	require.NoError(t, visitSaveTile(&progress, true, 2, 50, 96, save))
	require.Equal(t, 1, saves)

	require.NoError(t, visitSaveTile(&progress, false, 2, 80, 96, save))
	require.NoError(t, visitSaveTile(&progress, true, 2, 52, 96, save))
	require.Equal(t, 2, saves)
	require.Equal(t, 52.0, progress.SpawnX)
}

func TestVisitSaveTileReportsWriteError(t *testing.T) {
	progress := components.ProgressData{SaveArmed: true}
	errDisk := errors.New("disk full")
	err := visitSaveTile(&progress, true, 3, 10, 20, func(*components.ProgressData) error {
		return errDisk
	})
	require.ErrorIs(t, err, errDisk)
	require.Equal(t, 3, progress.ScreenID)
	require.False(t, progress.SaveArmed)
}
