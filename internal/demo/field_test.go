package demo

import (
	"testing"

	"tileworld/internal/terrain"
)

func TestNewFieldDeterministic(t *testing.T) {
	a, err := NewField(24, 24, 7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewField(24, 24, 7)
	if err != nil {
		t.Fatal(err)
	}
	for tile := terrain.TileIndex(0); a.IsValidTile(tile); tile++ {
		if a.TileHeight(tile) != b.TileHeight(tile) {
			t.Fatalf("tile %d differs between identical seeds", tile)
		}
	}
}

// Every adjacent pair of samples stays within one unit, so every tile
// has a well-defined slope with spread at most two.
func TestNewFieldObeysStepRule(t *testing.T) {
	m, err := NewField(32, 32, 42)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < m.SizeY(); y++ {
		for x := 0; x < m.SizeX(); x++ {
			h := m.TileHeight(m.TileXY(x, y))
			if x+1 < m.SizeX() {
				if d := h - m.TileHeight(m.TileXY(x+1, y)); d > 1 || d < -1 {
					t.Fatalf("step of %d at (%d,%d)->(%d,%d)", d, x, y, x+1, y)
				}
			}
			if y+1 < m.SizeY() {
				if d := h - m.TileHeight(m.TileXY(x, y+1)); d > 1 || d < -1 {
					t.Fatalf("step of %d at (%d,%d)->(%d,%d)", d, x, y, x, y+1)
				}
			}
		}
	}
}

func TestNewFieldSlopesInDomain(t *testing.T) {
	m, err := NewField(32, 32, 3)
	if err != nil {
		t.Fatal(err)
	}
	for tile := terrain.TileIndex(0); m.IsValidTile(tile); tile++ {
		lo, hi := m.TileZ(tile), m.TileMaxZ(tile)
		if m.IsInnerTile(tile) && hi-lo > 2 {
			t.Fatalf("tile %d spread %d exceeds 2", tile, hi-lo)
		}
	}
}
