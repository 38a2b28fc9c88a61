// Package motion advances the player through one simulation tick against a
// collision raster. It is pure: the caller supplies the level, the input
// snapshot and the tuning parameters.
package motion

import (
	"math"

	"github.com/automoto/pixelfall/shared/collision"
)

// Pose is the animation state derived from movement.
type Pose int

const (
	PoseIdle Pose = iota
	PoseRunning
	PoseJumping
	PoseFalling
)

func (p Pose) String() string {
	switch p {
	case PoseRunning:
		return "running"
	case PoseJumping:
		return "jumping"
	case PoseFalling:
		return "falling"
	}
	return "idle"
}

// Direction constants for facing
const (
	FacingLeft  = -1
	FacingRight = 1
)

// Actor is the kinematic state of the player.
type Actor struct {
	// X and Y are the top-left of the hitbox. The fraction carries across
	// ticks; collision is evaluated on the floored pixel.
	X, Y float64
	Mask *collision.Mask

	MoveVX, MoveVY float64 // input driven, replaced each tick
	GravVX, GravVY float64 // accumulated gravity and jump impulse
	ConvVX, ConvVY float64 // conveyor drift of the current tick

	JumpHeld      bool
	Jumping       bool
	JumpAvailable bool
	DoubleJumps   int

	Facing int
	Pose   Pose
	Dead   bool

	// Collision memoizes the query at the current position. Anything that
	// moves the actor or changes the raster must clear it.
	Collision *collision.Results
}

// NewActor places an actor with the given hitbox at x,y.
func NewActor(x, y float64, mask *collision.Mask) *Actor {
	return &Actor{X: x, Y: y, Mask: mask, Facing: FacingRight}
}

// Pixel is the integer position used for collision.
func (a *Actor) Pixel() (int, int) {
	return int(math.Floor(a.X)), int(math.Floor(a.Y))
}

// Invalidate drops the memoized collision result.
func (a *Actor) Invalidate() {
	a.Collision = nil
}

// Place teleports the actor and clears transient motion.
func (a *Actor) Place(x, y float64) {
	a.X, a.Y = x, y
	a.GravVX, a.GravVY = 0, 0
	a.MoveVX, a.MoveVY = 0, 0
	a.ConvVX, a.ConvVY = 0, 0
	a.Jumping = false
	a.Dead = false
	a.Invalidate()
}

// Query samples the raster at the actor's current pixel.
func (a *Actor) Query(r *collision.Raster) collision.Results {
	x, y := a.Pixel()
	return collision.Query(r, x, y, a.Mask)
}

// Contact returns the memoized collision at the current position, querying
// once if needed.
func (a *Actor) Contact(r *collision.Raster) collision.Results {
	if a.Collision == nil {
		res := a.Query(r)
		a.Collision = &res
	}
	return *a.Collision
}
