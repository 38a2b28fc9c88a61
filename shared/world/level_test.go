package world_test

import (
	"testing"

	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/motion"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/stretchr/testify/require"
)

var _ motion.Level = (*world.World)(nil)

func floorScreen(t *testing.T, id int) *world.Screen {
	t.Helper()
	s := world.NewScreen(id)
	s.GravityY = 0.4
	for x := 0; x < collision.GridWidth; x++ {
		require.NoError(t, s.SetCode(x, 31, collision.CodeSolid))
	}
	return s
}

func TestWalkAcrossScreens(t *testing.T) {
	left, right := floorScreen(t, 1), floorScreen(t, 7)
	left.SetTransition(collision.East, 7)
	right.SetTransition(collision.West, 1)

	w, err := world.New(1, left, right)
	require.NoError(t, err)

	params := motion.Params{MoveSpeed: 3, JumpVelocity: 7, TerminalVelocity: 8, DoubleJumpCharges: 1}
	a := motion.NewActor(float64(collision.ScreenWidth-40), float64(31*collision.TileSize-16), collision.RectMask(8, 16))

	transitioned := false
	for i := 0; i < 30 && !transitioned; i++ {
		out, err := motion.Step(w, a, motion.Input{Right: true}, params)
		require.NoError(t, err)
		transitioned = out == motion.Transitioned
	}
	require.True(t, transitioned)
	require.Equal(t, 7, w.Active().ID)
	require.Equal(t, 0.0, a.X)

	// And back again.
	transitioned = false
	for i := 0; i < 30 && !transitioned; i++ {
		out, err := motion.Step(w, a, motion.Input{Left: true}, params)
		require.NoError(t, err)
		transitioned = out == motion.Transitioned
	}
	require.True(t, transitioned)
	require.Equal(t, 1, w.Active().ID)
	require.Equal(t, float64(collision.ScreenWidth-8), a.X)
}

func TestDeadlyBodyKills(t *testing.T) {
	s := floorScreen(t, 1)
	w, err := world.New(1, s)
	require.NoError(t, err)

	y := 31*collision.TileSize - 16
	a := motion.NewActor(100, float64(y), collision.RectMask(8, 16))
	params := motion.Params{MoveSpeed: 2, TerminalVelocity: 8}

	out, err := motion.Step(w, a, motion.Input{}, params)
	require.NoError(t, err)
	require.Equal(t, motion.Moved, out)

	s.SetBodies([]collision.Body{enemy{x: 104, y: y}})
	a.Invalidate()
	out, err = motion.Step(w, a, motion.Input{}, params)
	require.NoError(t, err)
	require.Equal(t, motion.Died, out)
}

type enemy struct{ x, y int }

func (e enemy) Hitbox() *collision.Mask { return collision.RectMask(8, 8) }
func (e enemy) Position() (int, int)    { return e.x, e.y }
func (e enemy) Flag() collision.Flag    { return collision.FlagDeadly }
