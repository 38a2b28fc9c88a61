package components

import "github.com/yohamta/donburi"

type PickupData struct {
	Collected bool
}

var Pickup = donburi.NewComponentType[PickupData]()

// TriggerData is a one-shot pad, lens or boss part activated on contact.
type TriggerData struct {
	Fired bool
}

var Trigger = donburi.NewComponentType[TriggerData]()
