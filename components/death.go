package components

import "github.com/yohamta/donburi"

// DeathData marks a player waiting to respawn.
// Timer counts down each frame; at 0 the player is placed on the last
// checkpoint.
type DeathData struct {
	Timer int
}

var Death = donburi.NewComponentType[DeathData]()
