package components

import (
	"github.com/automoto/pixelfall/shared/motion"
	"github.com/yohamta/donburi"
)

// PlayerData wraps the kinematic state the motion integrator mutates.
type PlayerData struct {
	*motion.Actor
	LastOutcome motion.Outcome
}

var Player = donburi.NewComponentType[PlayerData]()
