package collision

import (
	"errors"
	"fmt"
)

// Screen geometry shared by every screen.
const (
	TileSize    = 24
	GridWidth   = 42
	GridHeight  = 32
	ScreenWidth = GridWidth * TileSize
	// ScreenHeight is the raster height in pixels.
	ScreenHeight = GridHeight * TileSize
)

// Code selects the collision shape of a tile.
type Code int

const (
	CodeEmpty Code = iota
	CodeSolid
	CodeHalfTop
	CodeHalfBottom
	CodeHalfLeft
	CodeHalfRight
	// Slopes are right triangles named by the corner holding the right angle.
	CodeSlopeBL
	CodeSlopeBR
	CodeSlopeTL
	CodeSlopeTR
	CodeDeadly
	CodeDeadlyHalfTop
	CodeDeadlyHalfBottom
	CodeDeadlyHalfLeft
	CodeDeadlyHalfRight
	CodeSpikeBL
	CodeSpikeBR
	CodeSpikeTL
	CodeSpikeTR
	CodeConveyorE
	CodeConveyorN
	CodeConveyorW
	CodeConveyorS
	CodeBeam
	CodeBossTrigger
	CodeSaveTile
	codeCount
)

var (
	ErrUnknownCode = errors.New("unknown collision code")
	ErrGridSize    = errors.New("grid coordinate out of range")
)

// GraphicRef points at a cell of a tileset image. It is decorative only.
type GraphicRef struct {
	Tileset int
	Col     int
	Row     int
	Set     bool
}

// Tile is one grid cell.
type Tile struct {
	Layers [3]GraphicRef
	Code   Code
}

// Grid is the fixed tile array of a screen.
type Grid struct {
	Tiles [GridHeight][GridWidth]Tile
}

func (g *Grid) At(x, y int) (Tile, error) {
	if x < 0 || y < 0 || x >= GridWidth || y >= GridHeight {
		return Tile{}, fmt.Errorf("tile %d,%d: %w", x, y, ErrGridSize)
	}
	return g.Tiles[y][x], nil
}

func (g *Grid) Set(x, y int, t Tile) error {
	if x < 0 || y < 0 || x >= GridWidth || y >= GridHeight {
		return fmt.Errorf("tile %d,%d: %w", x, y, ErrGridSize)
	}
	g.Tiles[y][x] = t
	return nil
}

// SetCode changes only the collision code of a cell.
func (g *Grid) SetCode(x, y int, c Code) error {
	t, err := g.At(x, y)
	if err != nil {
		return err
	}
	t.Code = c
	return g.Set(x, y, t)
}
