// Package world holds the screens of a game and tracks which one is active.
package world

import (
	"errors"
	"fmt"

	"github.com/automoto/pixelfall/shared/collision"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Category is the closed set of dynamic object kinds.
type Category int

const (
	CategoryEnemy Category = iota
	CategoryPickup
	CategoryMovingPlatform
	CategoryLens
	CategoryBossPart
	CategoryTrigger
)

var categoryNames = map[string]Category{
	"enemy":    CategoryEnemy,
	"pickup":   CategoryPickup,
	"platform": CategoryMovingPlatform,
	"lens":     CategoryLens,
	"boss":     CategoryBossPart,
	"trigger":  CategoryTrigger,
}

// ParseCategory resolves the category name used in level files.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryNames[name]
	return c, ok
}

func (c Category) String() string {
	for n, v := range categoryNames {
		if v == c {
			return n
		}
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ObjectSpawn describes a dynamic object placed in a screen.
type ObjectSpawn struct {
	Category Category
	Flag     collision.Flag
	X, Y     float64
	Mask     *collision.Mask
	// Travel is the platform travel offset, or the enemy patrol direction.
	TravelX, TravelY float64
}

// Screen is one room of the world.
type Screen struct {
	ID int
	// Grid is written directly only while loading. Later edits go through
	// SetCode so the cached rasters are rebuilt.
	Grid     collision.Grid
	GravityX float64
	GravityY float64
	// JumpFrames is exposed for tuning; the integrator does not read it.
	JumpFrames int
	SpawnX     float64
	SpawnY     float64
	Objects    []ObjectSpawn

	transitions collision.Transitions
	cache       *collision.Cache
	bodies      []collision.Body
}

// NewScreen returns an empty screen with walls on every edge.
func NewScreen(id int) *Screen {
	s := &Screen{ID: id}
	s.cache = collision.NewCache(&s.Grid, s.transitions)
	return s
}

// SetCode is the editor mutation for a tile's collision code.
func (s *Screen) SetCode(x, y int, code collision.Code) error {
	if err := s.Grid.SetCode(x, y, code); err != nil {
		return err
	}
	s.cache.MarkDirty()
	return nil
}

// SetTransition links the edge d to screen id, or walls it off with 0.
func (s *Screen) SetTransition(d collision.Direction, id int) {
	s.transitions[d] = id
	s.cache.SetTransitions(s.transitions)
}

// Transitions returns the screen id linked to each edge.
func (s *Screen) Transitions() collision.Transitions {
	return s.transitions
}

// SetBodies replaces the dynamic bodies painted on the raster.
func (s *Screen) SetBodies(bodies []collision.Body) {
	s.bodies = bodies
	s.cache.MarkObjectsDirty()
}

// Bodies returns the bodies last published with SetBodies.
func (s *Screen) Bodies() []collision.Body {
	return s.bodies
}

// Raster returns the collision raster including bodies.
func (s *Screen) Raster() (*collision.Raster, error) {
	r, err := s.cache.Raster(s.bodies)
	if err != nil {
		return nil, fmt.Errorf("screen %d: %w", s.ID, err)
	}
	return r, nil
}

// TileRaster returns the raster of tile geometry only.
func (s *Screen) TileRaster() (*collision.Raster, error) {
	r, err := s.cache.TileRaster()
	if err != nil {
		return nil, fmt.Errorf("screen %d: %w", s.ID, err)
	}
	return r, nil
}

func (s *Screen) Gravity() (float64, float64) {
	return s.GravityX, s.GravityY
}
