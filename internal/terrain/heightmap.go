// Package terrain implements the height field of a tile world and the
// slope and height queries everything above it (rendering, pathfinding,
// construction checks) depends on.
//
// Heights are sampled at grid points one step coarser than the tile
// grid: the sample stored at a tile index is the height of that tile's
// north corner, so the last row and column of tiles act as the far
// corners of their inner neighbors. Writers must keep adjacent samples
// within one unit of each other; every query here assumes that rule
// and is a pure read.
package terrain

import (
	"fmt"

	"tileworld/internal/bitmath"
)

// MaxTileHeight is the highest legal corner height sample.
const MaxTileHeight = 15

// PixelsPerHeightUnit converts corner heights to world pixel units.
const PixelsPerHeightUnit = 8

// Map owns the corner-height samples of one world. All query methods
// are read-only and safe for concurrent use as long as no SetTileHeight
// call runs at the same time; serializing edits against queries is the
// caller's job.
type Map struct {
	sizeX, sizeY int
	heights      []uint8
}

// NewMap returns a sizeX by sizeY map with every height sample zero.
// Both dimensions must be at least 2 so that at least one inner tile
// exists.
func NewMap(sizeX, sizeY int) (*Map, error) {
	if sizeX < 2 || sizeY < 2 {
		return nil, fmt.Errorf("terrain: map size %dx%d too small, need at least 2x2", sizeX, sizeY)
	}
	return &Map{
		sizeX:   sizeX,
		sizeY:   sizeY,
		heights: make([]uint8, sizeX*sizeY),
	}, nil
}

// TileHeight returns the height sample at the tile's north corner.
func (m *Map) TileHeight(tile TileIndex) int {
	m.assertValid(tile)
	return int(m.heights[tile])
}

// SetTileHeight stores h as the tile's north-corner sample. h must be
// in [0, MaxTileHeight]. The caller is responsible for keeping the
// one-unit step rule between adjacent samples.
func (m *Map) SetTileHeight(tile TileIndex, h int) {
	m.assertValid(tile)
	if h < 0 || h > MaxTileHeight {
		panic(fmt.Sprintf("terrain: height %d out of range [0, %d]", h, MaxTileHeight))
	}
	m.heights[tile] = uint8(h)
}

// TileHeightOutsideMap extrapolates a corner height for any (x, y),
// including points beyond the grid: the nearest border sample is
// continued outward, so the void around the map extends the edge
// terrain instead of dropping to zero.
func (m *Map) TileHeightOutsideMap(x, y int) int {
	cx := bitmath.Clamp(x, 0, m.MaxX())
	cy := bitmath.Clamp(y, 0, m.MaxY())
	return int(m.heights[m.TileXY(cx, cy)])
}
