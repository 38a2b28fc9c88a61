package components

import (
	"math"

	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/yohamta/donburi"
)

// BodyData is a dynamic object that can appear on the collision raster.
type BodyData struct {
	Category      world.Category
	CollisionFlag collision.Flag // FlagNone keeps the body off the raster
	Mask          *collision.Mask
	X, Y          float64
}

func (b *BodyData) Hitbox() *collision.Mask { return b.Mask }

func (b *BodyData) Position() (int, int) {
	return int(math.Floor(b.X)), int(math.Floor(b.Y))
}

func (b *BodyData) Flag() collision.Flag { return b.CollisionFlag }

var Body = donburi.NewComponentType[BodyData]()
