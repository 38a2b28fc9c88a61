package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Enemy          = donburi.NewTag().SetName("Enemy")
	Pickup         = donburi.NewTag().SetName("Pickup")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Lens           = donburi.NewTag().SetName("Lens")
	BossPart       = donburi.NewTag().SetName("BossPart")
	Trigger        = donburi.NewTag().SetName("Trigger")
)

// Resolv tags for the broad phase
const (
	ResolvPlayer       = "player"
	ResolvInteractable = "interactable"
	ResolvHazard       = "hazard"
	ResolvPlatform     = "platform"
)
