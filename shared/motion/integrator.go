package motion

import (
	"log"
	"math"
	"os"

	"github.com/automoto/pixelfall/shared/collision"
)

// Level is the screen the actor currently occupies.
type Level interface {
	// Raster returns the up to date collision raster of the active screen.
	Raster() (*collision.Raster, error)
	Gravity() (gx, gy float64)
	// Enter makes the screen with the given id active.
	Enter(id int) error
}

var debugCollision = os.Getenv("DEBUG_COLLISION") != ""

// Step advances a by one tick. Death, screen transitions and the anti-stuck
// nudge are reported through Outcome; an error means the level itself is
// broken.
func Step(lv Level, a *Actor, in Input, p Params) (Outcome, error) {
	if a.Dead {
		return Died, nil
	}

	r, err := lv.Raster()
	if err != nil {
		return Moved, err
	}

	res := a.Contact(r)
	gx, gy := lv.Gravity()
	down := gravityDirection(gx, gy)

	same := res[collision.Same].Flags
	if same.Has(collision.FlagDeadly) {
		a.Dead = true
		return Died, nil
	}
	if same.Blocks() {
		nudge(a, down)
		return Nudged, nil
	}
	for _, d := range collision.Directions {
		if same.Has(d.TransitionFlag()) && r.Transitions[d] != 0 {
			if err := transition(lv, a, r, d); err != nil {
				return Moved, err
			}
			return Transitioned, nil
		}
	}

	applyGravity(a, &res, gx, gy, down, p)
	applyInput(a, in, down, p)
	applyConveyors(a, &res, p)

	return advance(r, a, &res, down)
}

// gravityDirection is the slot gravity pulls toward. A zero vector falls
// back to South so jumping stays meaningful.
func gravityDirection(gx, gy float64) collision.Direction {
	if math.Abs(gx) > math.Abs(gy) {
		if gx > 0 {
			return collision.East
		}
		return collision.West
	}
	if gy < 0 {
		return collision.North
	}
	return collision.South
}

func nudge(a *Actor, down collision.Direction) {
	dx, dy := down.Opposite().Delta()
	a.X += float64(dx)
	a.Y += float64(dy)
	a.Invalidate()
	if debugCollision {
		log.Printf("collision: actor inside solid, nudged to %.1f,%.1f", a.X, a.Y)
	}
}

// transition swaps the active screen and places the actor on the entry edge
// of the new one.
func transition(lv Level, a *Actor, r *collision.Raster, d collision.Direction) error {
	target := r.Transitions[d]
	if err := lv.Enter(target); err != nil {
		return err
	}
	switch d {
	case collision.East:
		a.X = 0
	case collision.West:
		a.X = float64(r.Width - a.Mask.W)
	case collision.North:
		a.Y = float64(r.Height - a.Mask.H)
	case collision.South:
		a.Y = 0
	}
	a.Invalidate()
	if debugCollision {
		log.Printf("collision: %s transition to screen %d at %.1f,%.1f", d, target, a.X, a.Y)
	}
	return nil
}

func clamp(v, limit float64) float64 {
	return math.Max(math.Min(v, limit), -limit)
}

func applyGravity(a *Actor, res *collision.Results, gx, gy float64, down collision.Direction, p Params) {
	// Pressed against the wall a sideways gravity pulls toward.
	if gx != 0 && res[horizontal(gx)].Blocks() && (down == collision.East || down == collision.West) {
		a.GravVX, a.GravVY = 0, 0
		a.Jumping = false
	} else {
		a.GravVX = clamp(a.GravVX+gx, p.TerminalVelocity)
		a.GravVY = clamp(a.GravVY+gy, p.TerminalVelocity)
	}

	if a.GravVX != 0 && res[horizontal(a.GravVX)].Blocks() {
		a.GravVX = 0
	}
	if a.GravVY != 0 && res[vertical(a.GravVY)].Blocks() {
		a.GravVY = 0
	}

	a.JumpAvailable = res[down].Blocks()
	if a.JumpAvailable {
		a.Jumping = false
		charges := max(p.DoubleJumpCharges, 1)
		if a.DoubleJumps < charges {
			a.DoubleJumps = charges
		}
	}
}

// upVelocity returns a pointer to the gravity velocity component on the
// gravity axis and the sign of "up" along it.
func upVelocity(a *Actor, down collision.Direction) (*float64, float64) {
	dx, dy := down.Opposite().Delta()
	if dx != 0 {
		return &a.GravVX, float64(dx)
	}
	return &a.GravVY, float64(dy)
}

func applyInput(a *Actor, in Input, down collision.Direction, p Params) {
	a.MoveVX, a.MoveVY = 0, 0
	switch {
	case in.Left && !in.Right:
		a.MoveVX = -p.MoveSpeed
		a.Facing = FacingLeft
	case in.Right && !in.Left:
		a.MoveVX = p.MoveSpeed
		a.Facing = FacingRight
	}

	v, up := upVelocity(a, down)
	switch {
	case in.Jump && !a.JumpHeld:
		if a.JumpAvailable {
			*v = up * p.JumpVelocity
			a.Jumping = true
			a.JumpAvailable = false
		} else if a.DoubleJumps > 0 {
			if *v*up < 0 {
				*v = 0
			}
			*v += up * p.JumpVelocity * p.DoubleJumpStrength
			a.DoubleJumps--
			a.Jumping = true
		}
	case !in.Jump && a.JumpHeld:
		if a.Jumping && *v*up > 0 {
			*v = 0
		}
		a.Jumping = false
	}
	a.JumpHeld = in.Jump

	switch {
	case !a.JumpAvailable && *v*up > 0:
		a.Pose = PoseJumping
	case !a.JumpAvailable && *v != 0:
		a.Pose = PoseFalling
	case a.MoveVX != 0:
		a.Pose = PoseRunning
	default:
		a.Pose = PoseIdle
	}
}

// applyConveyors recomputes this tick's conveyor drift from every conveyor
// touching the hitbox's sides.
func applyConveyors(a *Actor, res *collision.Results, p Params) {
	a.ConvVX, a.ConvVY = 0, 0
	touching := res[collision.South].Flags | res[collision.East].Flags |
		res[collision.North].Flags | res[collision.West].Flags
	for _, d := range collision.Directions {
		if !touching.Has(d.ConveyorFlag()) {
			continue
		}
		dx, dy := d.Delta()
		a.ConvVX += float64(dx) * p.ConveyorSpeed
		a.ConvVY += float64(dy) * p.ConveyorSpeed
	}
}

func horizontal(v float64) collision.Direction {
	if v > 0 {
		return collision.East
	}
	return collision.West
}

func vertical(v float64) collision.Direction {
	if v > 0 {
		return collision.South
	}
	return collision.North
}

// HorizontalBlock decides whether the dir slot stops horizontal motion. A
// blocking run one pixel tall on the mask's bottom row is a step up when the
// ceiling is clear; on the top row it is a step down when the floor is
// clear. slope is the Y offset to apply with the next horizontal pixel.
func HorizontalBlock(res *collision.Results, dir collision.Direction, m *collision.Mask) (blocked bool, slope int) {
	r := res[dir]
	if !r.Blocks() {
		return false, 0
	}
	if r.SingleRow() {
		if r.Min == m.Bottom() && !res[collision.North].Blocks() {
			return false, -1
		}
		if r.Min == m.Top() && !res[collision.South].Blocks() {
			return false, 1
		}
	}
	return true, 0
}

// boundary returns the normalized time until pos first crosses into the
// next pixel moving by d, and the time between later crossings.
func boundary(pos, d float64) (next, delta float64) {
	if d == 0 {
		return math.Inf(1), math.Inf(1)
	}
	delta = 1 / math.Abs(d)
	if d > 0 {
		return (math.Floor(pos) + 1 - pos) * delta, delta
	}
	return (pos - math.Floor(pos)) * delta, delta
}

// reachable reports whether a crossing at time t happens within this tick.
// Moving toward negative coordinates, landing exactly on the boundary at
// t == 1 does not enter the next pixel.
func reachable(t float64, s int) bool {
	return t < 1 || (t == 1 && s > 0)
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// advance walks the actor pixel by pixel toward its target, re-querying at
// each pixel and freezing an axis as soon as the next pixel along it would
// collide. A grounded actor under vertical gravity follows ground that
// drops by one pixel per horizontal step.
func advance(r *collision.Raster, a *Actor, res *collision.Results, down collision.Direction) (Outcome, error) {
	dx := a.GravVX + a.MoveVX + a.ConvVX
	dy := a.GravVY + a.MoveVY + a.ConvVY
	hdir, vdir := horizontal(dx), vertical(dy)

	frozenY := dy == 0 || res[vdir].Blocks()
	frozenX := dx == 0
	slope := 0
	if !frozenX {
		frozenX, slope = HorizontalBlock(res, hdir, a.Mask)
	}

	grounded := frozenY && res[down].Blocks() &&
		(down == collision.South || down == collision.North)
	_, downY := down.Delta()

	x0, y0 := a.X, a.Y
	startX, startY := a.Pixel()
	ix, iy := startX, startY
	sx, sy := sign(dx), sign(dy)
	tMaxX, tDeltaX := boundary(x0, dx)
	tMaxY, tDeltaY := boundary(y0, dy)
	shift := 0

	for !(frozenX && frozenY) {
		stepX := !frozenX && reachable(tMaxX, sx)
		stepY := !frozenY && reachable(tMaxY, sy)
		if !stepX && !stepY {
			break
		}
		movedX := stepX && (!stepY || tMaxX <= tMaxY)
		if movedX {
			ix += sx
			tMaxX += tDeltaX
			if slope != 0 {
				iy += slope
				shift += slope
				slope = 0
			}
		} else {
			iy += sy
			tMaxY += tDeltaY
		}

		step := collision.Query(r, ix, iy, a.Mask)
		if movedX && grounded && !step[down].Blocks() {
			if below := collision.Query(r, ix, iy+downY, a.Mask); below[down].Blocks() {
				iy += downY
				step = below
			}
		}
		if step[collision.Same].Flags.Has(collision.FlagDeadly) {
			a.X, a.Y = float64(ix), float64(iy)
			a.Dead = true
			a.Invalidate()
			return Died, nil
		}
		if !frozenY && step[vdir].Blocks() {
			frozenY = true
		}
		if !frozenX {
			frozenX, slope = HorizontalBlock(&step, hdir, a.Mask)
		}
	}

	if !frozenX {
		a.X = x0 + dx
	} else if ix != startX {
		a.X = float64(ix)
	}
	if !frozenY {
		a.Y = y0 + dy + float64(shift)
	} else if iy != startY {
		a.Y = float64(iy)
	}
	a.Invalidate()
	return Moved, nil
}
