// Package demo builds deterministic height fields for the viewer.
package demo

import (
	"math/rand"

	"tileworld/internal/bitmath"
	"tileworld/internal/terrain"
)

// peak is one hill: heights fall off by one unit per step of chebyshev
// distance from (x, y), which keeps adjacent samples within one unit
// of each other by construction.
type peak struct {
	x, y, h int
}

// NewField returns a sizeX by sizeY map seeded with a handful of
// hills. The same seed always produces the same terrain.
func NewField(sizeX, sizeY int, seed int64) (*terrain.Map, error) {
	m, err := terrain.NewMap(sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	n := 3 + rng.Intn(4)
	peaks := make([]peak, n)
	for i := range peaks {
		peaks[i] = peak{
			x: rng.Intn(sizeX),
			y: rng.Intn(sizeY),
			h: 2 + rng.Intn(terrain.MaxTileHeight-3),
		}
	}

	for y := 0; y < sizeY; y++ {
		for x := 0; x < sizeX; x++ {
			h := 0
			for _, p := range peaks {
				d := bitmath.Max(abs(x-p.x), abs(y-p.y))
				h = bitmath.Max(h, p.h-d)
			}
			m.SetTileHeight(m.TileXY(x, y), bitmath.Min(h, terrain.MaxTileHeight))
		}
	}
	return m, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
