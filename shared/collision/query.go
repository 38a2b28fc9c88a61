package collision

// Direction names one of the five query slots.
type Direction int

const (
	East Direction = iota
	North
	West
	South
	// Same samples the pixels under the hitbox itself.
	Same
)

// Directions lists the four edge directions in transition priority order.
var Directions = [4]Direction{East, North, West, South}

var offsets = [5][2]int{
	East:  {1, 0},
	North: {0, -1},
	West:  {-1, 0},
	South: {0, 1},
	Same:  {0, 0},
}

// Delta is the pixel offset sampled for d.
func (d Direction) Delta() (dx, dy int) {
	return offsets[d][0], offsets[d][1]
}

// Opposite returns the direction facing away from d. Same is its own
// opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case East:
		return West
	case West:
		return East
	case North:
		return South
	case South:
		return North
	}
	return Same
}

// TransitionFlag is the edge flag synthesized past d.
func (d Direction) TransitionFlag() Flag {
	switch d {
	case East:
		return FlagTransitionE
	case North:
		return FlagTransitionN
	case West:
		return FlagTransitionW
	case South:
		return FlagTransitionS
	}
	return FlagNone
}

// ConveyorFlag is the conveyor flag that drifts along d.
func (d Direction) ConveyorFlag() Flag {
	switch d {
	case East:
		return FlagConveyorE
	case North:
		return FlagConveyorN
	case West:
		return FlagConveyorW
	case South:
		return FlagConveyorS
	}
	return FlagNone
}

func (d Direction) String() string {
	switch d {
	case East:
		return "east"
	case North:
		return "north"
	case West:
		return "west"
	case South:
		return "south"
	}
	return "same"
}

// Result aggregates one slot of a query. Min and Max are mask row indices of
// the blocking pixels and are only meaningful when Count > 0.
type Result struct {
	Flags Flag
	Count int
	Min   int
	Max   int
}

// Blocks reports whether any sampled pixel prevents movement.
func (r Result) Blocks() bool {
	return r.Count > 0
}

// SingleRow reports whether all blocking pixels share one mask row.
func (r Result) SingleRow() bool {
	return r.Count > 0 && r.Min == r.Max
}

// Results holds one Result per Direction.
type Results [5]Result

// Query samples the raster around every on pixel of m placed with its
// top-left corner at x,y. Extra tables add marker mappings on top of
// DefaultTable.
func Query(r *Raster, x, y int, m *Mask, extra ...*Table) Results {
	return query(r, x, y, m.Points(), extra)
}

func query(r *Raster, x, y int, pts []Point, extra []*Table) Results {
	var res Results
	sat := saturation(r, extra)
	for _, p := range pts {
		for d := East; d <= Same; d++ {
			dx, dy := d.Delta()
			f := sample(r, x+p.X+dx, y+p.Y+dy, extra)
			if f == FlagNone {
				continue
			}
			slot := &res[d]
			slot.Flags |= f
			if !f.Blocks() {
				continue
			}
			if slot.Count == 0 || p.Y < slot.Min {
				slot.Min = p.Y
			}
			if slot.Count == 0 || p.Y > slot.Max {
				slot.Max = p.Y
			}
			slot.Count++
		}
		if saturated(&res, sat) {
			break
		}
	}
	return res
}

// sample resolves the flag at x,y. Off the raster, an edge with a
// transition reads as that transition and any other edge as a wall.
func sample(r *Raster, x, y int, extra []*Table) Flag {
	if !r.In(x, y) {
		edge := South
		switch {
		case x < 0:
			edge = West
		case x >= r.Width:
			edge = East
		case y < 0:
			edge = North
		}
		if r.Transitions[edge] != 0 {
			return edge.TransitionFlag()
		}
		return FlagSolid
	}
	m := r.At(x, y)
	if m == MarkerNone {
		return FlagNone
	}
	f := DefaultTable.Flag(m)
	for _, t := range extra {
		f |= t.Flag(m)
	}
	return f
}

// saturation is every flag a query against r can report.
func saturation(r *Raster, extra []*Table) Flag {
	sat := DefaultTable.Flags() | FlagSolid
	for _, t := range extra {
		sat |= t.Flags()
	}
	for _, d := range Directions {
		if r.Transitions[d] != 0 {
			sat |= d.TransitionFlag()
		}
	}
	return sat
}

func saturated(res *Results, sat Flag) bool {
	for i := range res {
		if res[i].Flags&sat != sat {
			return false
		}
	}
	return true
}

// Overlap returns the flags of table found directly under m. It is the
// lightweight check used for pickups, pads and other non-physical triggers;
// pixels off the raster are ignored.
func Overlap(r *Raster, x, y int, m *Mask, table *Table) Flag {
	var f Flag
	for _, p := range m.Points() {
		px, py := x+p.X, y+p.Y
		if !r.In(px, py) {
			continue
		}
		f |= table.Flag(r.At(px, py))
	}
	return f
}

// MasksOverlap reports whether any on pixel of a at ax,ay coincides with an
// on pixel of b at bx,by.
func MasksOverlap(a *Mask, ax, ay int, b *Mask, bx, by int) bool {
	if ax+a.W <= bx || bx+b.W <= ax || ay+a.H <= by || by+b.H <= ay {
		return false
	}
	for _, p := range a.Points() {
		if b.On(ax+p.X-bx, ay+p.Y-by) {
			return true
		}
	}
	return false
}
