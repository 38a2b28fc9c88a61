package motion

import (
	"testing"

	"github.com/automoto/pixelfall/shared/collision"
	"github.com/stretchr/testify/require"
)

func TestActorPixelFloors(t *testing.T) {
	a := newActor(10.7, -0.5)
	x, y := a.Pixel()
	require.Equal(t, 10, x)
	require.Equal(t, -1, y)
}

func TestContactIsMemoized(t *testing.T) {
	var empty collision.Grid
	open, err := collision.Build(&empty, collision.Transitions{}, nil)
	require.NoError(t, err)
	walled, err := collision.Build(floorGrid(t), collision.Transitions{}, nil)
	require.NoError(t, err)

	a := newActor(100, floorY)
	require.False(t, a.Contact(open)[collision.South].Blocks())
	// Still the cached answer for the old raster.
	require.False(t, a.Contact(walled)[collision.South].Blocks())

	a.Invalidate()
	require.True(t, a.Contact(walled)[collision.South].Blocks())
}

func TestPlaceResetsMotion(t *testing.T) {
	a := newActor(0, 0)
	a.GravVY = 5
	a.MoveVX = 2
	a.ConvVX = 1
	a.Jumping = true
	a.Dead = true
	a.Collision = &collision.Results{}

	a.Place(40, 50)
	require.Equal(t, 40.0, a.X)
	require.Equal(t, 50.0, a.Y)
	require.Zero(t, a.GravVY)
	require.Zero(t, a.MoveVX)
	require.Zero(t, a.ConvVX)
	require.False(t, a.Jumping)
	require.False(t, a.Dead)
	require.Nil(t, a.Collision)
}

func TestOutcomeAndPoseNames(t *testing.T) {
	require.Equal(t, "transitioned", Transitioned.String())
	require.Equal(t, "moved", Moved.String())
	require.Equal(t, "falling", PoseFalling.String())
}
