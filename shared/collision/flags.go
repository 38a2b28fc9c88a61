// Package collision builds per-screen collision rasters and answers
// directional queries against them. It has no dependencies on ebitengine,
// donburi or resolv.
package collision

// Flag is a semantic collision category. Several flags may be combined into
// a bitmask.
type Flag uint32

const (
	FlagSolid Flag = 1 << iota
	FlagDeadly
	FlagTransitionE
	FlagTransitionN
	FlagTransitionW
	FlagTransitionS
	FlagConveyorE
	FlagConveyorN
	FlagConveyorW
	FlagConveyorS
	FlagInteractable
	FlagBoss
	FlagBossfightTrigger
	FlagSaveTile
	FlagLens
	FlagTrigger
)

const (
	FlagNone Flag = 0

	// FlagConveyor is any of the four conveyor directions.
	FlagConveyor = FlagConveyorE | FlagConveyorN | FlagConveyorW | FlagConveyorS

	// FlagTransition is any of the four screen edge transitions.
	FlagTransition = FlagTransitionE | FlagTransitionN | FlagTransitionW | FlagTransitionS

	// PreventsMovement blocks an actor. Conveyors are ground too.
	PreventsMovement = FlagSolid | FlagConveyor
)

// Has reports whether any bit of other is set in f.
func (f Flag) Has(other Flag) bool {
	return f&other != 0
}

// Blocks reports whether f physically stops an actor.
func (f Flag) Blocks() bool {
	return f&PreventsMovement != 0
}

var flagNames = map[Flag]string{
	FlagSolid:            "solid",
	FlagDeadly:           "deadly",
	FlagTransitionE:      "transition_e",
	FlagTransitionN:      "transition_n",
	FlagTransitionW:      "transition_w",
	FlagTransitionS:      "transition_s",
	FlagConveyorE:        "conveyor_e",
	FlagConveyorN:        "conveyor_n",
	FlagConveyorW:        "conveyor_w",
	FlagConveyorS:        "conveyor_s",
	FlagInteractable:     "interactable",
	FlagBoss:             "boss",
	FlagBossfightTrigger: "bossfight_trigger",
	FlagSaveTile:         "save_tile",
	FlagLens:             "lens",
	FlagTrigger:          "trigger",
}

// ParseFlag resolves a single flag by its name, as used in level files.
func ParseFlag(name string) (Flag, bool) {
	for f, n := range flagNames {
		if n == name {
			return f, true
		}
	}
	return FlagNone, false
}

func (f Flag) String() string {
	if f == FlagNone {
		return "none"
	}
	s := ""
	for bit := FlagSolid; bit <= FlagTrigger; bit <<= 1 {
		if f&bit == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += flagNames[bit]
	}
	return s
}
