package terrain

import "tileworld/internal/bitmath"

// TileSlope returns the slope of a tile inside the map. When h is
// non-nil the tile's minimum corner height is stored there. Tiles in
// the last row or column have no readable far corners and report
// SlopeFlat at their own height. Panics if tile is invalid.
func (m *Map) TileSlope(tile TileIndex, h *int) Slope {
	m.assertValid(tile)

	if !m.IsInnerTile(tile) {
		if h != nil {
			*h = m.TileHeight(tile)
		}
		return SlopeFlat
	}

	hnorth := m.TileHeight(tile)
	hwest := m.TileHeight(tile.Add(m.TileDiffXY(1, 0)))
	heast := m.TileHeight(tile.Add(m.TileDiffXY(0, 1)))
	hsouth := m.TileHeight(tile.Add(m.TileDiffXY(1, 1)))

	return slopeFromCorners(hnorth, hwest, heast, hsouth, h)
}

// IsTileFlat reports whether all four corners of the tile are level.
// When h is non-nil and the tile is flat, the common height is stored
// there; h is untouched for sloped tiles. Boundary tiles are always
// flat. Panics if tile is invalid.
//
// This short-circuits on the first unequal corner rather than going
// through TileSlope; the two paths agree for every valid tile.
func (m *Map) IsTileFlat(tile TileIndex, h *int) bool {
	m.assertValid(tile)

	if !m.IsInnerTile(tile) {
		if h != nil {
			*h = m.TileHeight(tile)
		}
		return true
	}

	z := m.TileHeight(tile)
	if m.TileHeight(tile.Add(m.TileDiffXY(1, 0))) != z {
		return false
	}
	if m.TileHeight(tile.Add(m.TileDiffXY(0, 1))) != z {
		return false
	}
	if m.TileHeight(tile.Add(m.TileDiffXY(1, 1))) != z {
		return false
	}

	if h != nil {
		*h = z
	}
	return true
}

// TileZ returns the minimum corner height of the tile. Tiles on the
// map's far edge return 0: the outer edge has no interior height.
//
// Note the asymmetry with TileMaxZ, which consults the extrapolated
// height for the same edge tiles. Both behaviors are relied on by
// their respective consumers and are kept as-is.
func (m *Map) TileZ(tile TileIndex) int {
	if m.TileX(tile) == m.MaxX() || m.TileY(tile) == m.MaxY() {
		return 0
	}

	h := m.TileHeight(tile)
	h = bitmath.Min(h, m.TileHeight(tile.Add(m.TileDiffXY(1, 0))))
	h = bitmath.Min(h, m.TileHeight(tile.Add(m.TileDiffXY(0, 1))))
	h = bitmath.Min(h, m.TileHeight(tile.Add(m.TileDiffXY(1, 1))))

	return h
}

// TileMaxZ returns the maximum corner height of the tile. Tiles on the
// map's far edge return the extrapolated height at their own
// coordinate. See the asymmetry note on TileZ.
func (m *Map) TileMaxZ(tile TileIndex) int {
	if m.TileX(tile) == m.MaxX() || m.TileY(tile) == m.MaxY() {
		return m.TileHeightOutsideMap(m.TileX(tile), m.TileY(tile))
	}

	h := m.TileHeight(tile)
	h = bitmath.Max(h, m.TileHeight(tile.Add(m.TileDiffXY(1, 0))))
	h = bitmath.Max(h, m.TileHeight(tile.Add(m.TileDiffXY(0, 1))))
	h = bitmath.Max(h, m.TileHeight(tile.Add(m.TileDiffXY(1, 1))))

	return h
}

// PixelSlopeOutsideMap returns the slope of the tile at (x, y) in
// extrapolated-coordinate space, for rendering the void around the
// map. When h is non-nil the minimum corner height is stored there in
// world pixel units. The height grid itself is never consulted beyond
// the border samples the extrapolation continues.
func (m *Map) PixelSlopeOutsideMap(x, y int, h *int) Slope {
	hnorth := m.TileHeightOutsideMap(x, y)
	hwest := m.TileHeightOutsideMap(x+1, y)
	heast := m.TileHeightOutsideMap(x, y+1)
	hsouth := m.TileHeightOutsideMap(x+1, y+1)

	s := slopeFromCorners(hnorth, hwest, heast, hsouth, h)
	if h != nil {
		*h *= PixelsPerHeightUnit
	}
	return s
}

// PixelZOutsideMap returns the minimum corner height of the tile at
// (x, y) in extrapolated-coordinate space, in world pixel units.
func (m *Map) PixelZOutsideMap(x, y int) int {
	h := m.TileHeightOutsideMap(x, y)
	h = bitmath.Min(h, m.TileHeightOutsideMap(x+1, y))
	h = bitmath.Min(h, m.TileHeightOutsideMap(x, y+1))
	h = bitmath.Min(h, m.TileHeightOutsideMap(x+1, y+1))

	return h * PixelsPerHeightUnit
}

// MaxPixelZOutsideMap returns the maximum corner height of the tile at
// (x, y) in extrapolated-coordinate space, in world pixel units.
func (m *Map) MaxPixelZOutsideMap(x, y int) int {
	h := m.TileHeightOutsideMap(x, y)
	h = bitmath.Max(h, m.TileHeightOutsideMap(x+1, y))
	h = bitmath.Max(h, m.TileHeightOutsideMap(x, y+1))
	h = bitmath.Max(h, m.TileHeightOutsideMap(x+1, y+1))

	return h * PixelsPerHeightUnit
}
