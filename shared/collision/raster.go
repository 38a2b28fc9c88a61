package collision

import "fmt"

// Transitions holds the neighbouring screen id per edge, indexed by
// East, North, West and South. Zero means the edge is a wall.
type Transitions [4]int

// Raster is a per-pixel marker buffer for one screen.
type Raster struct {
	Width       int
	Height      int
	Transitions Transitions
	// Pix holds one marker per pixel, row major.
	Pix []Marker
	// Glyph is a cosmetic overlay (conveyor arrows). Queries never read it.
	Glyph []bool
}

func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pix:    make([]Marker, width*height),
		Glyph:  make([]bool, width*height),
	}
}

// In reports whether x,y lies on the raster.
func (r *Raster) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < r.Width && y < r.Height
}

// At returns the marker at x,y, or MarkerNone off the raster.
func (r *Raster) At(x, y int) Marker {
	if !r.In(x, y) {
		return MarkerNone
	}
	return r.Pix[y*r.Width+x]
}

func (r *Raster) Set(x, y int, m Marker) {
	if !r.In(x, y) {
		return
	}
	r.Pix[y*r.Width+x] = m
}

func (r *Raster) setGlyph(x, y int) {
	if !r.In(x, y) {
		return
	}
	r.Glyph[y*r.Width+x] = true
}

// Clear resets every pixel to MarkerNone.
func (r *Raster) Clear() {
	clear(r.Pix)
	clear(r.Glyph)
}

// CopyFrom overwrites r with src. Both must share dimensions.
func (r *Raster) CopyFrom(src *Raster) {
	r.Transitions = src.Transitions
	copy(r.Pix, src.Pix)
	copy(r.Glyph, src.Glyph)
}

// Equal reports whether both rasters hold the same markers, glyphs and
// transitions.
func (r *Raster) Equal(o *Raster) bool {
	if r.Width != o.Width || r.Height != o.Height || r.Transitions != o.Transitions {
		return false
	}
	for i := range r.Pix {
		if r.Pix[i] != o.Pix[i] || r.Glyph[i] != o.Glyph[i] {
			return false
		}
	}
	return true
}

// painter rasterizes one tile whose top-left pixel is x0,y0.
type painter func(r *Raster, x0, y0 int)

var painters = [codeCount]painter{
	CodeEmpty:            func(*Raster, int, int) {},
	CodeSolid:            rect(MarkerSolid, 0, 0, TileSize, TileSize),
	CodeHalfTop:          rect(MarkerSolid, 0, 0, TileSize, TileSize/2),
	CodeHalfBottom:       rect(MarkerSolid, 0, TileSize/2, TileSize, TileSize/2),
	CodeHalfLeft:         rect(MarkerSolid, 0, 0, TileSize/2, TileSize),
	CodeHalfRight:        rect(MarkerSolid, TileSize/2, 0, TileSize/2, TileSize),
	CodeSlopeBL:          triangle(MarkerSolid, cornerBL),
	CodeSlopeBR:          triangle(MarkerSolid, cornerBR),
	CodeSlopeTL:          triangle(MarkerSolid, cornerTL),
	CodeSlopeTR:          triangle(MarkerSolid, cornerTR),
	CodeDeadly:           rect(MarkerDeadly, 0, 0, TileSize, TileSize),
	CodeDeadlyHalfTop:    rect(MarkerDeadly, 0, 0, TileSize, TileSize/2),
	CodeDeadlyHalfBottom: rect(MarkerDeadly, 0, TileSize/2, TileSize, TileSize/2),
	CodeDeadlyHalfLeft:   rect(MarkerDeadly, 0, 0, TileSize/2, TileSize),
	CodeDeadlyHalfRight:  rect(MarkerDeadly, TileSize/2, 0, TileSize/2, TileSize),
	CodeSpikeBL:          triangle(MarkerDeadly, cornerBL),
	CodeSpikeBR:          triangle(MarkerDeadly, cornerBR),
	CodeSpikeTL:          triangle(MarkerDeadly, cornerTL),
	CodeSpikeTR:          triangle(MarkerDeadly, cornerTR),
	CodeConveyorE:        conveyor(MarkerConveyorE, East),
	CodeConveyorN:        conveyor(MarkerConveyorN, North),
	CodeConveyorW:        conveyor(MarkerConveyorW, West),
	CodeConveyorS:        conveyor(MarkerConveyorS, South),
	CodeBeam:             beam(MarkerSolid),
	CodeBossTrigger:      rect(MarkerBossfightTrigger, 0, 0, TileSize, TileSize),
	CodeSaveTile:         rect(MarkerSaveTile, 0, 0, TileSize, TileSize),
}

func rect(m Marker, x, y, w, h int) painter {
	return func(r *Raster, x0, y0 int) {
		for j := y; j < y+h; j++ {
			for i := x; i < x+w; i++ {
				r.Set(x0+i, y0+j, m)
			}
		}
	}
}

type corner int

const (
	cornerBL corner = iota
	cornerBR
	cornerTL
	cornerTR
)

// inTriangle reports whether tile-local pixel i,j lies in the right triangle
// whose right angle sits at c. The hypotenuse pixels are included, so each
// column differs from its neighbour by exactly one pixel.
func inTriangle(c corner, i, j int) bool {
	last := TileSize - 1
	switch c {
	case cornerBL:
		return i <= j
	case cornerBR:
		return i >= last-j
	case cornerTL:
		return i+j <= last
	default:
		return i >= j
	}
}

func triangle(m Marker, c corner) painter {
	return func(r *Raster, x0, y0 int) {
		for j := 0; j < TileSize; j++ {
			for i := 0; i < TileSize; i++ {
				if inTriangle(c, i, j) {
					r.Set(x0+i, y0+j, m)
				}
			}
		}
	}
}

// beam paints a diagonal band from the bottom-left to the top-right corner.
func beam(m Marker) painter {
	const halfWidth = TileSize / 8
	return func(r *Raster, x0, y0 int) {
		last := TileSize - 1
		for j := 0; j < TileSize; j++ {
			for i := 0; i < TileSize; i++ {
				d := i - (last - j)
				if d > -halfWidth && d < halfWidth {
					r.Set(x0+i, y0+j, m)
				}
			}
		}
	}
}

// conveyor fills the tile with the conveyor marker and draws an arrow glyph
// pointing along dir on the cosmetic layer.
func conveyor(m Marker, dir Direction) painter {
	fill := rect(m, 0, 0, TileSize, TileSize)
	const (
		start = TileSize / 4
		end   = TileSize * 3 / 4
		mid   = TileSize / 2
	)
	return func(r *Raster, x0, y0 int) {
		fill(r, x0, y0)
		last := TileSize - 1
		for j := 0; j < TileSize; j++ {
			for i := 0; i < TileSize; i++ {
				u, v := i, j
				switch dir {
				case West:
					u = last - i
				case South:
					u, v = j, i
				case North:
					u, v = last-j, i
				}
				if u < start || u >= end {
					continue
				}
				half := (end - u) / 2
				if v >= mid-half && v <= mid+half {
					r.setGlyph(x0+i, y0+j)
				}
			}
		}
	}
}

// BuildTiles paints every tile of grid into dst, replacing its contents. An
// unknown collision code is a configuration error.
func BuildTiles(grid *Grid, transitions Transitions, dst *Raster) error {
	dst.Clear()
	dst.Transitions = transitions
	for ty := 0; ty < GridHeight; ty++ {
		for tx := 0; tx < GridWidth; tx++ {
			code := grid.Tiles[ty][tx].Code
			if code < 0 || code >= codeCount {
				return fmt.Errorf("tile %d,%d code %d: %w", tx, ty, code, ErrUnknownCode)
			}
			painters[code](dst, tx*TileSize, ty*TileSize)
		}
	}
	return nil
}

// Body is a dynamic object as seen by the raster builder.
type Body interface {
	Hitbox() *Mask
	Position() (x, y int)
	Flag() Flag
}

// PaintBodies outlines every body's hitbox in the marker of its flag. Bodies
// whose flag has no palette marker stay invisible to queries.
func PaintBodies(dst *Raster, bodies []Body) {
	for _, b := range bodies {
		m, ok := MarkerFor(b.Flag())
		if !ok {
			continue
		}
		mask := b.Hitbox()
		if mask == nil {
			continue
		}
		bx, by := b.Position()
		for y := 0; y < mask.H; y++ {
			for x := 0; x < mask.W; x++ {
				if mask.edge(x, y) {
					dst.Set(bx+x, by+y, m)
				}
			}
		}
	}
}

// Build returns a fresh raster for the given tiles and bodies.
func Build(grid *Grid, transitions Transitions, bodies []Body) (*Raster, error) {
	r := NewRaster(ScreenWidth, ScreenHeight)
	if err := BuildTiles(grid, transitions, r); err != nil {
		return nil, err
	}
	PaintBodies(r, bodies)
	return r, nil
}
