package collision

import (
	"errors"
	"fmt"
)

var ErrMalformedMask = errors.New("malformed hitbox mask")

// Mask is an axis-aligned hitbox silhouette. Pix is row major; true pixels
// belong to the owner.
type Mask struct {
	W, H int
	Pix  []bool

	top, bottom int
	pts         []Point
}

// NewMask builds a mask from rows of equal length.
func NewMask(rows [][]bool) (*Mask, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("empty mask: %w", ErrMalformedMask)
	}
	m := &Mask{W: len(rows[0]), H: len(rows)}
	m.Pix = make([]bool, 0, m.W*m.H)
	for y, row := range rows {
		if len(row) != m.W {
			return nil, fmt.Errorf("row %d has width %d, want %d: %w", y, len(row), m.W, ErrMalformedMask)
		}
		m.Pix = append(m.Pix, row...)
	}
	if err := m.index(); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseMask reads rows where '#' is an on pixel and anything else is off.
func ParseMask(rows ...string) (*Mask, error) {
	bools := make([][]bool, len(rows))
	for y, row := range rows {
		bools[y] = make([]bool, len(row))
		for x, c := range row {
			bools[y][x] = c == '#'
		}
	}
	return NewMask(bools)
}

// MustParseMask is ParseMask for fixed literals.
func MustParseMask(rows ...string) *Mask {
	m, err := ParseMask(rows...)
	if err != nil {
		panic(err)
	}
	return m
}

// RectMask is a fully filled w by h mask.
func RectMask(w, h int) *Mask {
	rows := make([][]bool, h)
	for y := range rows {
		rows[y] = make([]bool, w)
		for x := range rows[y] {
			rows[y][x] = true
		}
	}
	m, err := NewMask(rows)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Mask) index() error {
	m.top, m.bottom = -1, -1
	m.pts = m.pts[:0]
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.Pix[y*m.W+x] {
				continue
			}
			if m.top < 0 {
				m.top = y
			}
			m.bottom = y
			m.pts = append(m.pts, Point{X: x, Y: y})
		}
	}
	if m.top < 0 {
		return fmt.Errorf("mask has no on pixels: %w", ErrMalformedMask)
	}
	return nil
}

// On reports whether mask pixel x,y is set.
func (m *Mask) On(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Pix[y*m.W+x]
}

// Top is the first row holding an on pixel.
func (m *Mask) Top() int { return m.top }

// Bottom is the last row holding an on pixel.
func (m *Mask) Bottom() int { return m.bottom }

// edge reports whether x,y is on and touches the outside of the silhouette.
func (m *Mask) edge(x, y int) bool {
	if !m.On(x, y) {
		return false
	}
	return !m.On(x+1, y) || !m.On(x-1, y) || !m.On(x, y+1) || !m.On(x, y-1)
}

// Points lists the on pixels in row-major order. Callers must not modify
// the returned slice.
func (m *Mask) Points() []Point {
	return m.pts
}

// Point is a mask-relative pixel.
type Point struct {
	X, Y int
}
