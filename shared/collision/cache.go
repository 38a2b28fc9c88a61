package collision

// Cache keeps the tile raster and the tile+bodies raster of one screen and
// rebuilds each only when invalidated. Tile edits invalidate both; moving
// bodies only invalidates the second, so tile geometry is reused across
// ticks.
type Cache struct {
	grid        *Grid
	transitions Transitions

	tiles   *Raster
	objects *Raster

	dirty        bool
	objectsDirty bool
}

func NewCache(grid *Grid, transitions Transitions) *Cache {
	return &Cache{
		grid:         grid,
		transitions:  transitions,
		dirty:        true,
		objectsDirty: true,
	}
}

// MarkDirty records a tile edit.
func (c *Cache) MarkDirty() {
	c.dirty = true
	c.objectsDirty = true
}

// MarkObjectsDirty records a change to dynamic body hitboxes.
func (c *Cache) MarkObjectsDirty() {
	c.objectsDirty = true
}

// SetTransitions replaces the edge transitions and invalidates both rasters.
func (c *Cache) SetTransitions(t Transitions) {
	c.transitions = t
	c.MarkDirty()
}

// Dirty reports the two invalidation flags.
func (c *Cache) Dirty() (tiles, objects bool) {
	return c.dirty, c.objectsDirty
}

// TileRaster returns the raster of tile geometry alone.
func (c *Cache) TileRaster() (*Raster, error) {
	if c.tiles == nil {
		c.tiles = NewRaster(ScreenWidth, ScreenHeight)
		c.dirty = true
	}
	if c.dirty {
		if err := BuildTiles(c.grid, c.transitions, c.tiles); err != nil {
			return nil, err
		}
		c.dirty = false
		c.objectsDirty = true
	}
	return c.tiles, nil
}

// Raster returns the tile raster with bodies painted on top.
func (c *Cache) Raster(bodies []Body) (*Raster, error) {
	tiles, err := c.TileRaster()
	if err != nil {
		return nil, err
	}
	if c.objects == nil {
		c.objects = NewRaster(ScreenWidth, ScreenHeight)
		c.objectsDirty = true
	}
	if c.objectsDirty {
		c.objects.CopyFrom(tiles)
		PaintBodies(c.objects, bodies)
		c.objectsDirty = false
	}
	return c.objects, nil
}
