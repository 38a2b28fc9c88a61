package motion

// Params tunes the integrator. Velocities are in pixels per tick.
type Params struct {
	MoveSpeed          float64
	JumpVelocity       float64
	DoubleJumpStrength float64 // fraction of JumpVelocity for a mid-air jump
	TerminalVelocity   float64 // per axis cap on gravity velocity
	ConveyorSpeed      float64
	DoubleJumpCharges  int // charges restored on landing, at least 1
}

// Input is the held state of the player's controls for one tick.
type Input struct {
	Left  bool
	Right bool
	Jump  bool
}

// Outcome reports how a tick ended.
type Outcome int

const (
	Moved Outcome = iota
	Died
	Nudged
	Transitioned
)

func (o Outcome) String() string {
	switch o {
	case Died:
		return "died"
	case Nudged:
		return "nudged"
	case Transitioned:
		return "transitioned"
	}
	return "moved"
}
