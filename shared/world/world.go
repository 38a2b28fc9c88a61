package world

import (
	"fmt"
	"sort"

	"github.com/automoto/pixelfall/shared/collision"
)

// World is the set of screens plus the active one. It satisfies
// motion.Level by delegating to the active screen.
type World struct {
	screens map[int]*Screen
	active  *Screen
	// OnEnter runs after the active screen changes.
	OnEnter func(prev, next *Screen)
}

// New builds a world and activates the screen with id start.
func New(start int, screens ...*Screen) (*World, error) {
	w := &World{screens: make(map[int]*Screen, len(screens))}
	for _, s := range screens {
		w.screens[s.ID] = s
	}
	active, ok := w.screens[start]
	if !ok {
		return nil, fmt.Errorf("start screen %d: %w", start, ErrUnknownScreen)
	}
	w.active = active
	return w, nil
}

func (w *World) Active() *Screen {
	return w.active
}

func (w *World) Screen(id int) (*Screen, bool) {
	s, ok := w.screens[id]
	return s, ok
}

// IDs lists the screen ids in ascending order.
func (w *World) IDs() []int {
	ids := make([]int, 0, len(w.screens))
	for id := range w.screens {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (w *World) Enter(id int) error {
	next, ok := w.screens[id]
	if !ok {
		return fmt.Errorf("enter screen %d: %w", id, ErrUnknownScreen)
	}
	prev := w.active
	w.active = next
	if w.OnEnter != nil {
		w.OnEnter(prev, next)
	}
	return nil
}

func (w *World) Raster() (*collision.Raster, error) {
	return w.active.Raster()
}

func (w *World) Gravity() (float64, float64) {
	return w.active.Gravity()
}
