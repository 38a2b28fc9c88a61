package leveldata

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/automoto/pixelfall/shared/collision"
	"github.com/automoto/pixelfall/shared/world"
	"github.com/lafriks/go-tiled"
)

// LoadScreen parses a TMX file into a screen. It takes an fs.FS so callers
// can pass embed.FS or os.DirFS.
func LoadScreen(fsys fs.FS, tmxPath string, def Defaults) (*world.Screen, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.Width != collision.GridWidth || levelMap.Height != collision.GridHeight {
		return nil, fmt.Errorf("%s is %dx%d, want %dx%d: %w", tmxPath,
			levelMap.Width, levelMap.Height, collision.GridWidth, collision.GridHeight, ErrScreenSize)
	}

	props := levelMap.Properties
	s := world.NewScreen(props.GetInt("id"))
	s.GravityX = floatProp(props, "gravityX", def.GravityX)
	s.GravityY = floatProp(props, "gravityY", def.GravityY)
	s.JumpFrames = intProp(props, "jumpFrames", def.JumpFrames)
	for _, d := range collision.Directions {
		if id := props.GetInt(d.String()); id != 0 {
			s.SetTransition(d, id)
		}
	}

	tilesetIndex := make(map[*tiled.Tileset]int, len(levelMap.Tilesets))
	for i, ts := range levelMap.Tilesets {
		tilesetIndex[ts] = i
	}

	for _, layer := range levelMap.Layers {
		slot := graphicSlot(layer.Name)
		if slot < 0 && layer.Name != LayerCollision {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				cell := s.Grid.Tiles[y][x]
				if slot >= 0 {
					cols := max(tile.Tileset.Columns, 1)
					cell.Layers[slot] = collision.GraphicRef{
						Tileset: tilesetIndex[tile.Tileset],
						Col:     int(tile.ID) % cols,
						Row:     int(tile.ID) / cols,
						Set:     true,
					}
				} else {
					cell.Code = tileCode(tile)
				}
				s.Grid.Tiles[y][x] = cell
			}
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupSpawn:
			if len(og.Objects) > 0 {
				s.SpawnX, s.SpawnY = og.Objects[0].X, og.Objects[0].Y
			}
		case GroupObjects:
			for _, o := range og.Objects {
				spawn, err := objectSpawn(o)
				if err != nil {
					return nil, fmt.Errorf("%s object %d: %w", tmxPath, o.ID, err)
				}
				s.Objects = append(s.Objects, spawn)
			}
		}
	}

	// Codes are validated here so a bad file fails at load time rather than
	// on the first tick.
	if _, err := s.TileRaster(); err != nil {
		return nil, fmt.Errorf("%s: %w", tmxPath, err)
	}
	return s, nil
}

func graphicSlot(name string) int {
	for i, n := range GraphicLayers {
		if n == name {
			return i
		}
	}
	return -1
}

// tileCode reads the "code" property of the tileset tile, falling back to
// the tile id for tilesets laid out in code order.
func tileCode(tile *tiled.LayerTile) collision.Code {
	if tt, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && len(tt.Properties.Get("code")) > 0 {
		return collision.Code(tt.Properties.GetInt("code"))
	}
	return collision.Code(tile.ID)
}

func objectSpawn(o *tiled.Object) (world.ObjectSpawn, error) {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // older TMX uses type=
	}
	category, ok := world.ParseCategory(class)
	if !ok {
		return world.ObjectSpawn{}, fmt.Errorf("unknown object class %q", class)
	}

	spawn := world.ObjectSpawn{
		Category: category,
		X:        o.X,
		Y:        o.Y,
		TravelX:  o.Properties.GetFloat("travelX"),
		TravelY:  o.Properties.GetFloat("travelY"),
	}
	if name := o.Properties.GetString("flag"); name != "" {
		f, ok := collision.ParseFlag(name)
		if !ok {
			return world.ObjectSpawn{}, fmt.Errorf("unknown flag %q", name)
		}
		spawn.Flag = f
	}

	if rows := o.Properties.GetString("mask"); rows != "" {
		m, err := collision.ParseMask(strings.Split(rows, "/")...)
		if err != nil {
			return world.ObjectSpawn{}, err
		}
		spawn.Mask = m
	} else {
		w, h := int(o.Width), int(o.Height)
		if w <= 0 || h <= 0 {
			return world.ObjectSpawn{}, fmt.Errorf("object has no size: %w", collision.ErrMalformedMask)
		}
		spawn.Mask = collision.RectMask(w, h)
	}
	return spawn, nil
}

// properties is the lookup subset of tiled.Properties.
type properties interface {
	Get(name string) []string
	GetInt(name string) int
	GetFloat(name string) float64
}

func floatProp(p properties, name string, def float64) float64 {
	if len(p.Get(name)) == 0 {
		return def
	}
	return p.GetFloat(name)
}

func intProp(p properties, name string, def int) int {
	if len(p.Get(name)) == 0 {
		return def
	}
	return p.GetInt(name)
}

// LoadAllScreens loads every .tmx file in dir within fsys, sorted by
// screen id.
func LoadAllScreens(fsys fs.FS, dir string, def Defaults) ([]*world.Screen, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	screens := make([]*world.Screen, 0, len(matches))
	seen := make(map[int]string, len(matches))
	for _, path := range matches {
		s, err := LoadScreen(fsys, path, def)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("screen id %d used by %s and %s", s.ID, prev, path)
		}
		seen[s.ID] = path
		screens = append(screens, s)
	}

	sort.Slice(screens, func(i, j int) bool {
		return screens[i].ID < screens[j].ID
	})
	return screens, nil
}
