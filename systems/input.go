package systems

import (
	"github.com/automoto/pixelfall/components"
	cfg "github.com/automoto/pixelfall/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the player's InputData.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	components.Input.Each(ecs.World, func(e *donburi.Entry) {
		input := components.Input.Get(e)

		// Swap buffers: current becomes previous, then zero out current
		input.Previous = input.Current
		input.Current = [cfg.ActionCount]bool{}

		for actionID, binding := range cfg.Input.Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[actionID] = true
				}
			}
			for _, gpID := range gamepadIDs {
				if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				for _, btn := range binding.StandardGamepadButtons {
					if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
						input.Current[actionID] = true
					}
				}
			}
		}
	})
}
