package leveldata

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/stretchr/testify/require"
)

// tmxScreen describes a synthetic screen file. Cells maps "x,y" to a
// collision code; gids are code+1 in the first tileset.
type tmxScreen struct {
	width, height int
	props         string
	cells         map[[2]int]collision.Code
	decor         map[[2]int]int
	objects       string
}

func (s tmxScreen) layer(id int, name string, gid func(x, y int) int) string {
	var b strings.Builder
	fmt.Fprintf(&b, ` <layer id="%d" name="%s" width="%d" height="%d">`+"\n", id, name, s.width, s.height)
	b.WriteString("  <data encoding=\"csv\">\n")
	for y := 0; y < s.height; y++ {
		row := make([]string, s.width)
		for x := range row {
			row[x] = fmt.Sprint(gid(x, y))
		}
		b.WriteString(strings.Join(row, ","))
		if y < s.height-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("</data>\n </layer>\n")
	return b.String()
}

func (s tmxScreen) String() string {
	if s.width == 0 {
		s.width, s.height = collision.GridWidth, collision.GridHeight
	}
	var b strings.Builder
	fmt.Fprintf(&b, `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="%d" height="%d" tilewidth="24" tileheight="24" infinite="0">
 <properties>
%s </properties>
 <tileset firstgid="1" name="collision" tilewidth="24" tileheight="24" tilecount="30" columns="30">
  <tile id="2">
   <properties>
    <property name="code" type="int" value="10"/>
   </properties>
  </tile>
 </tileset>
 <tileset firstgid="31" name="graphics" tilewidth="24" tileheight="24" tilecount="16" columns="8">
 </tileset>
`, s.width, s.height, s.props)
	b.WriteString(s.layer(1, "mid", func(x, y int) int {
		if id, ok := s.decor[[2]int{x, y}]; ok {
			return 31 + id
		}
		return 0
	}))
	b.WriteString(s.layer(2, "collision", func(x, y int) int {
		if c, ok := s.cells[[2]int{x, y}]; ok {
			return int(c) + 1
		}
		return 0
	}))
	b.WriteString(` <objectgroup id="3" name="PlayerSpawn">
  <object id="1" x="48" y="100">
   <properties>
    <property name="spawnIndex" type="int" value="0"/>
   </properties>
  </object>
 </objectgroup>
`)
	fmt.Fprintf(&b, " <objectgroup id=\"4\" name=\"Objects\">\n%s </objectgroup>\n</map>\n", s.objects)
	return b.String()
}

func prop(name, typ, value string) string {
	return fmt.Sprintf("  <property name=%q type=%q value=%q/>\n", name, typ, value)
}

var testDefaults = Defaults{GravityY: 0.4, JumpFrames: 12}

func loadOne(t *testing.T, s tmxScreen) (*world.Screen, error) {
	t.Helper()
	fsys := fstest.MapFS{"levels/a.tmx": {Data: []byte(s.String())}}
	return LoadScreen(fsys, "levels/a.tmx", testDefaults)
}

func TestLoadScreen(t *testing.T) {
	s, err := loadOne(t, tmxScreen{
		props: prop("id", "int", "5") + prop("east", "int", "6") + prop("west", "int", "4") + prop("gravityX", "float", "0.25"),
		cells: map[[2]int]collision.Code{
			{0, 31}: collision.CodeSolid,
			{3, 30}: collision.CodeSlopeBL,
			{41, 0}: collision.CodeConveyorN,
			{2, 2}:  collision.CodeHalfTop, // tile id 2 carries code 10
		},
		decor: map[[2]int]int{{1, 1}: 9},
		objects: `  <object id="2" class="platform" x="240" y="480" width="72" height="12">
   <properties>
    <property name="travelY" type="float" value="-96"/>
   </properties>
  </object>
  <object id="3" class="lens" x="300" y="200" width="4" height="4">
   <properties>
    <property name="mask" type="string" value=".##./####/####/.##."/>
    <property name="flag" type="string" value="lens"/>
   </properties>
  </object>
`,
	})
	require.NoError(t, err)

	require.Equal(t, 5, s.ID)
	require.Equal(t, collision.Transitions{collision.East: 6, collision.West: 4}, s.Transitions())
	require.Equal(t, 0.25, s.GravityX)
	require.Equal(t, 0.4, s.GravityY)
	require.Equal(t, 12, s.JumpFrames)
	require.Equal(t, 48.0, s.SpawnX)
	require.Equal(t, 100.0, s.SpawnY)

	require.Equal(t, collision.CodeSolid, s.Grid.Tiles[31][0].Code)
	require.Equal(t, collision.CodeSlopeBL, s.Grid.Tiles[30][3].Code)
	require.Equal(t, collision.CodeConveyorN, s.Grid.Tiles[0][41].Code)
	require.Equal(t, collision.CodeDeadly, s.Grid.Tiles[2][2].Code)
	require.Equal(t, collision.CodeEmpty, s.Grid.Tiles[5][5].Code)

	require.Equal(t, collision.GraphicRef{Tileset: 1, Col: 1, Row: 1, Set: true}, s.Grid.Tiles[1][1].Layers[1])
	require.False(t, s.Grid.Tiles[1][1].Layers[0].Set)

	require.Len(t, s.Objects, 2)
	platform := s.Objects[0]
	require.Equal(t, world.CategoryMovingPlatform, platform.Category)
	require.Equal(t, -96.0, platform.TravelY)
	require.Equal(t, 72, platform.Mask.W)
	require.Equal(t, 12, platform.Mask.H)

	lens := s.Objects[1]
	require.Equal(t, world.CategoryLens, lens.Category)
	require.Equal(t, collision.FlagLens, lens.Flag)
	require.Equal(t, 4, lens.Mask.W)
	require.False(t, lens.Mask.On(0, 0))
	require.True(t, lens.Mask.On(1, 0))

	r, err := s.Raster()
	require.NoError(t, err)
	require.Equal(t, collision.MarkerSolid, r.At(0, 31*collision.TileSize))
}

func TestLoadScreenErrors(t *testing.T) {
	_, err := loadOne(t, tmxScreen{width: 10, height: 10, props: prop("id", "int", "1")})
	require.Truef(t, errors.Is(err, ErrScreenSize), "%v", err)

	_, err = loadOne(t, tmxScreen{
		props: prop("id", "int", "1"),
		cells: map[[2]int]collision.Code{{4, 4}: 27},
	})
	require.Truef(t, errors.Is(err, collision.ErrUnknownCode), "%v", err)

	_, err = loadOne(t, tmxScreen{
		props: prop("id", "int", "1"),
		objects: `  <object id="2" class="door" x="0" y="0" width="4" height="4">
   <properties>
    <property name="flag" type="string" value="solid"/>
   </properties>
  </object>
`,
	})
	require.Error(t, err)

	_, err = loadOne(t, tmxScreen{
		props: prop("id", "int", "1"),
		objects: `  <object id="2" class="pickup" x="0" y="0" width="4" height="4">
   <properties>
    <property name="mask" type="string" value="#/##"/>
   </properties>
  </object>
`,
	})
	require.Truef(t, errors.Is(err, collision.ErrMalformedMask), "%v", err)
}

func TestLoadAllScreens(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":   {Data: []byte(tmxScreen{props: prop("id", "int", "2")}.String())},
		"levels/a.tmx":   {Data: []byte(tmxScreen{props: prop("id", "int", "9")}.String())},
		"levels/c.tmx":   {Data: []byte(tmxScreen{props: prop("id", "int", "1")}.String())},
		"levels/readme":  {Data: []byte("not a screen")},
		"other/skip.tmx": {Data: []byte("<map/>")},
	}
	screens, err := LoadAllScreens(fsys, "levels", testDefaults)
	require.NoError(t, err)
	require.Len(t, screens, 3)
	require.Equal(t, 1, screens[0].ID)
	require.Equal(t, 2, screens[1].ID)
	require.Equal(t, 9, screens[2].ID)

	fsys["levels/d.tmx"] = &fstest.MapFile{Data: []byte(tmxScreen{props: prop("id", "int", "2")}.String())}
	_, err = LoadAllScreens(fsys, "levels", testDefaults)
	require.ErrorContains(t, err, "screen id 2")

	_, err = LoadAllScreens(fsys, "missing", testDefaults)
	require.Error(t, err)
}
