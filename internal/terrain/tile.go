package terrain

import "fmt"

// TileIndex identifies one tile of the map. Valid indexes lie in
// [0, Map.Size()); arithmetic with TileIndexDiff moves between tiles.
type TileIndex uint32

// TileIndexDiff is the difference between two tile indexes, produced
// by Map.TileDiffXY and added to a TileIndex to step across the grid.
type TileIndexDiff int32

// Add offsets the tile by d.
func (t TileIndex) Add(d TileIndexDiff) TileIndex {
	return TileIndex(int64(t) + int64(d))
}

// Size returns the total number of tiles on the map.
func (m *Map) Size() uint {
	return uint(m.sizeX * m.sizeY)
}

// SizeX returns the width of the map in tiles.
func (m *Map) SizeX() int { return m.sizeX }

// SizeY returns the height of the map in tiles.
func (m *Map) SizeY() int { return m.sizeY }

// MaxX returns the largest valid X coordinate.
func (m *Map) MaxX() int { return m.sizeX - 1 }

// MaxY returns the largest valid Y coordinate.
func (m *Map) MaxY() int { return m.sizeY - 1 }

// TileXY builds the tile index for coordinates (x, y).
func (m *Map) TileXY(x, y int) TileIndex {
	return TileIndex(y*m.sizeX + x)
}

// TileX returns the X coordinate of the tile.
func (m *Map) TileX(tile TileIndex) int {
	return int(tile) % m.sizeX
}

// TileY returns the Y coordinate of the tile.
func (m *Map) TileY(tile TileIndex) int {
	return int(tile) / m.sizeX
}

// TileDiffXY returns the index offset that moves a tile by (dx, dy).
func (m *Map) TileDiffXY(dx, dy int) TileIndexDiff {
	return TileIndexDiff(dy*m.sizeX + dx)
}

// IsValidTile reports whether tile lies on the map.
func (m *Map) IsValidTile(tile TileIndex) bool {
	return uint(tile) < m.Size()
}

// IsInnerTile reports whether all four corner heights of the tile are
// addressable inside the grid. Tiles in the last row or column share
// their far corners with points beyond the map and are not inner.
func (m *Map) IsInnerTile(tile TileIndex) bool {
	return m.TileX(tile) < m.MaxX() && m.TileY(tile) < m.MaxY()
}

// assertValid panics when tile is outside the map. Passing an invalid
// index is a caller bug, not a runtime condition.
func (m *Map) assertValid(tile TileIndex) {
	if !m.IsValidTile(tile) {
		panic(fmt.Sprintf("terrain: tile index %d out of range [0, %d)", tile, m.Size()))
	}
}
