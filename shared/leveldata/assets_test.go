package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/stretchr/testify/require"
)

// The shipped screens must load and link to each other.
func TestShippedScreens(t *testing.T) {
	screens, err := LoadAllScreens(os.DirFS("../../assets"), "levels", testDefaults)
	require.NoError(t, err)

	w, err := world.New(1, screens...)
	require.NoError(t, err)
	for _, id := range w.IDs() {
		s, _ := w.Screen(id)
		for _, d := range collision.Directions {
			if next := s.Transitions()[d]; next != 0 {
				_, ok := w.Screen(next)
				require.Truef(t, ok, "screen %d %s leads to missing screen %d", id, d, next)
			}
		}

		r, err := s.TileRaster()
		require.NoError(t, err)
		res := collision.Query(r, int(s.SpawnX), int(s.SpawnY), collision.RectMask(8, 16))
		require.Falsef(t, res[collision.Same].Blocks(), "screen %d spawns inside a wall", id)
		require.Truef(t, res[collision.South].Blocks(), "screen %d spawns in mid-air", id)
	}
}
