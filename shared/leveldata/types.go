// Package leveldata loads screens from Tiled TMX files. It fills
// world.Screen values and has no dependencies on ebitengine or donburi.
package leveldata

import "errors"

// Layer names read from a screen file.
const (
	LayerCollision = "collision"
	GroupObjects   = "Objects"
	GroupSpawn     = "PlayerSpawn"
)

// GraphicLayers are the decorative tile layers, back to front.
var GraphicLayers = [3]string{"bg", "mid", "fg"}

var ErrScreenSize = errors.New("screen size mismatch")

// Defaults fills screen properties a file leaves out.
type Defaults struct {
	GravityX   float64
	GravityY   float64
	JumpFrames int
}
