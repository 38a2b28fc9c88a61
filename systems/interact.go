package systems

import (
	"fmt"
	"log"

	"github.com/automoto/pixelfall/components"
	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// tileTriggers are the tile categories that act on contact without
// blocking.
var tileTriggers = collision.NewTable(collision.FlagSaveTile, collision.FlagBossfightTrigger)

// UpdateInteractables resolves contact between the player and pickups,
// lenses, boss parts and trigger pads, then checks save and boss fight
// tiles under the player.
func UpdateInteractables(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok || playerEntry.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(playerEntry)
	progress := components.Progress.Get(playerEntry)
	px, py := player.Pixel()

	var collected []*donburi.Entry
	obj := components.Object.Get(playerEntry)
	if check := obj.Check(0, 0, tags.ResolvInteractable); check != nil {
		for _, o := range check.Objects {
			e, ok := o.Data.(*donburi.Entry)
			if !ok || !e.Valid() {
				continue
			}
			body := components.Body.Get(e)
			bx, by := body.Position()
			// Broad phase only compares boxes.
			if !collision.MasksOverlap(player.Mask, px, py, body.Mask, bx, by) {
				continue
			}
			if activate(e, progress, level) {
				collected = append(collected, e)
			}
		}
	}

	bossHit := false
	spaceEntry, hasSpace := components.Space.First(ecs.World)
	for _, e := range collected {
		bossHit = bossHit || e.HasComponent(tags.BossPart)
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}
		ecs.World.Remove(e.Entity())
	}
	if len(collected) > 0 {
		publishBodies(ecs)
	}
	if bossHit && bossPartsLeft(ecs) == 0 {
		level.BossFight = false
		level.BossDefeated = true
		log.Printf("Boss defeated on screen %d", level.World.Active().ID)
	}

	tiles, err := level.World.Active().TileRaster()
	if err != nil {
		panic(fmt.Sprintf("interactables: %v", err))
	}
	touching := collision.Overlap(tiles, px, py, player.Mask, tileTriggers)

	if touching.Has(collision.FlagBossfightTrigger) {
		startBossFight(level)
	}

	active := level.World.Active().ID
	if err := visitSaveTile(progress, touching.Has(collision.FlagSaveTile), active, player.X, player.Y, SaveProgress); err != nil {
		// The respawn point is kept in memory; the next visit retries the write.
		log.Printf("Warning: save tile on screen %d: %v", active, err)
	}
}

// visitSaveTile records the respawn point once per visit to a save tile and
// writes it with save.
func visitSaveTile(progress *components.ProgressData, onTile bool, screenID int, x, y float64, save func(*components.ProgressData) error) error {
	if !onTile {
		progress.SaveArmed = true
		return nil
	}
	if !progress.SaveArmed {
		return nil
	}
	progress.SaveArmed = false
	progress.ScreenID = screenID
	progress.SpawnX = x
	progress.SpawnY = y
	return save(progress)
}

func bossPartsLeft(ecs *ecs.ECS) int {
	n := 0
	tags.BossPart.Each(ecs.World, func(*donburi.Entry) {
		n++
	})
	return n
}

func startBossFight(level *components.LevelData) {
	if level.BossFight || level.BossDefeated {
		return
	}
	level.BossFight = true
	log.Printf("Boss fight started on screen %d", level.World.Active().ID)
}

// activate applies the effect of touching e. It reports whether e should
// be removed from the world.
func activate(e *donburi.Entry, progress *components.ProgressData, level *components.LevelData) bool {
	switch {
	case e.HasComponent(components.Pickup):
		pickup := components.Pickup.Get(e)
		if pickup.Collected {
			return false
		}
		pickup.Collected = true
		progress.Collected++
		return true
	case e.HasComponent(tags.BossPart):
		// Boss parts only take hits once the fight is on.
		if !level.BossFight {
			return false
		}
		components.Trigger.Get(e).Fired = true
		level.BossHits++
		return true
	case e.HasComponent(components.Trigger):
		trigger := components.Trigger.Get(e)
		if trigger.Fired {
			return false
		}
		trigger.Fired = true
		body := components.Body.Get(e)
		log.Printf("%s activated at (%.0f, %.0f)", body.Category, body.X, body.Y)
		if e.HasComponent(tags.Lens) {
			progress.Lenses++
			return false
		}
		startBossFight(level)
	}
	return false
}
