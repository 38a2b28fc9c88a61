package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PlatformData anchors a moving platform's path. The tween yields the
// progress along TravelX/TravelY in [0,1].
type PlatformData struct {
	OriginX, OriginY float64
	TravelX, TravelY float64
}

var Platform = donburi.NewComponentType[PlatformData]()

var Tween = donburi.NewComponentType[gween.Sequence]()
