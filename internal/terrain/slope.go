package terrain

import (
	"strings"

	"tileworld/internal/bitmath"
)

// Slope classifies the corner-height pattern of one tile. The four
// corner bits mark corners raised above the tile's own minimum corner;
// the steep bit marks a two-unit spread between lowest and highest
// corner. The zero value is the only flat slope, and flatness must be
// tested by comparing against SlopeFlat.
//
// The bit layout is a contract with renderers and construction checks:
// W=bit0, S=bit1, E=bit2, N=bit3, steep=bit4.
type Slope uint8

const (
	SlopeFlat  Slope = 0
	SlopeW     Slope = 1 << 0
	SlopeS     Slope = 1 << 1
	SlopeE     Slope = 1 << 2
	SlopeN     Slope = 1 << 3
	SlopeSteep Slope = 1 << 4

	// Two-corner combinations, named for the raised edge.
	SlopeNW = SlopeN | SlopeW
	SlopeSW = SlopeS | SlopeW
	SlopeSE = SlopeS | SlopeE
	SlopeNE = SlopeN | SlopeE

	// SlopeElevated masks the four corner bits. The classifier never
	// raises all four together (the minimum is always attained by some
	// corner), so it serves purely as a mask.
	SlopeElevated = SlopeN | SlopeW | SlopeE | SlopeS
)

const steepBit = 4

// IsSteep reports whether the tile spans two height units.
func (s Slope) IsSteep() bool {
	return bitmath.HasBit(uint8(s), steepBit)
}

// HasFlag reports whether every flag of f is set in s.
func (s Slope) HasFlag(f Slope) bool {
	return s&f == f
}

// CornerCount returns how many corners are raised above the minimum.
func (s Slope) CornerCount() int {
	return bitmath.CountBits(bitmath.GB(uint8(s), 0, 4))
}

var slopeFlagNames = []struct {
	flag Slope
	name string
}{
	{SlopeN, "N"},
	{SlopeW, "W"},
	{SlopeE, "E"},
	{SlopeS, "S"},
	{SlopeSteep, "STEEP"},
}

func (s Slope) String() string {
	if s == SlopeFlat {
		return "FLAT"
	}
	var parts []string
	for _, f := range slopeFlagNames {
		if s.HasFlag(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}

// slopeFromCorners classifies a tile from its four corner heights,
// given in north, west, east, south order. When h is non-nil the
// minimum corner height is stored there.
//
// Because adjacent corners of a valid height field never differ by
// more than one unit, the spread between any corner and the minimum is
// 0, 1, or 2, and at most one corner sits two units up. The two
// reduction trees below mirror that argument: each pairs one corner of
// the north-west diagonal with one of the east-south diagonal.
func slopeFromCorners(hnorth, hwest, heast, hsouth int, h *int) Slope {
	hminnw := bitmath.Min(hnorth, hwest)
	hmines := bitmath.Min(heast, hsouth)
	hmin := bitmath.Min(hminnw, hmines)

	hmaxnw := bitmath.Max(hnorth, hwest)
	hmaxes := bitmath.Max(heast, hsouth)
	hmax := bitmath.Max(hmaxnw, hmaxes)

	r := SlopeFlat
	if hnorth != hmin {
		r += SlopeN
	}
	if hwest != hmin {
		r += SlopeW
	}
	if heast != hmin {
		r += SlopeE
	}
	if hsouth != hmin {
		r += SlopeS
	}
	if hmax-hmin == 2 {
		r += SlopeSteep
	}

	if h != nil {
		*h = hmin
	}
	return r
}
