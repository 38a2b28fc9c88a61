package systems

import (
	"testing"

	"github.com/automoto/pixelfall/components"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestHUDLines(t *testing.T) {
	w, err := world.New(2, world.NewScreen(2))
	require.NoError(t, err)
	level := &components.LevelData{World: w}
	progress := &components.ProgressData{Collected: 3, Lenses: 1, Deaths: 4}

	tests := []struct {
		name  string
		setup func()
		want  []string
	}{
		{
			name:  "exploring",
			setup: func() {},
			want:  []string{"Screen 2", "Pickups 3  Lenses 1", "Deaths 4"},
		},
		{
			name: "fighting",
			setup: func() {
				level.BossFight = true
				level.BossHits = 2
			},
			want: []string{"Screen 2", "Pickups 3  Lenses 1", "Deaths 4", "Boss hits 2"},
		},
		{
			name: "defeated",
			setup: func() {
				level.BossFight = false
				level.BossDefeated = true
			},
			want: []string{"Screen 2", "Pickups 3  Lenses 1", "Deaths 4", "Boss defeated"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			if diff := cmp.Diff(tt.want, hudLines(level, progress)); diff != "" {
				t.Fatalf("hud lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
