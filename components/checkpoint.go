package components

import "github.com/yohamta/donburi"

// ProgressData tracks the respawn point and collected items.
type ProgressData struct {
	ScreenID  int
	SpawnX    float64
	SpawnY    float64
	Collected int
	Lenses    int
	Deaths    int
	// SaveArmed is cleared while the player stands on a save tile so the
	// save is written once per visit.
	SaveArmed bool
}

var Progress = donburi.NewComponentType[ProgressData]()
