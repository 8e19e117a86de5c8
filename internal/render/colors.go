package render

import (
	"github.com/gdamore/tcell/v2"

	"tileworld/internal/terrain"
)

// heightRamp maps a minimum corner height to a background color, low
// ground in dark green through brown toward snow at the cap. One entry
// per legal height sample.
var heightRamp = [terrain.MaxTileHeight + 1]tcell.Color{
	tcell.NewRGBColor(24, 84, 36),
	tcell.NewRGBColor(34, 100, 42),
	tcell.NewRGBColor(46, 116, 48),
	tcell.NewRGBColor(62, 130, 52),
	tcell.NewRGBColor(82, 142, 56),
	tcell.NewRGBColor(106, 150, 60),
	tcell.NewRGBColor(128, 144, 62),
	tcell.NewRGBColor(142, 128, 64),
	tcell.NewRGBColor(148, 110, 66),
	tcell.NewRGBColor(150, 96, 70),
	tcell.NewRGBColor(152, 104, 92),
	tcell.NewRGBColor(160, 124, 118),
	tcell.NewRGBColor(176, 150, 146),
	tcell.NewRGBColor(198, 180, 178),
	tcell.NewRGBColor(222, 212, 210),
	tcell.NewRGBColor(245, 245, 245),
}

// HeightColor returns the terrain color for height h, clamping out of
// range values to the ramp ends.
func HeightColor(h int) tcell.Color {
	if h < 0 {
		h = 0
	}
	if h > terrain.MaxTileHeight {
		h = terrain.MaxTileHeight
	}
	return heightRamp[h]
}

// slopeGlyphs maps the four corner-raised bits of a slope to a glyph
// suggesting which corners sit above the minimum. On screen the N
// corner draws top-left, W top-right, E bottom-left, S bottom-right;
// triangles point at a single raised corner, half-filled squares mark
// a raised edge, and for three raised corners the quadrant marks the
// one lowered corner. Steepness is shown through style, not a glyph.
var slopeGlyphs = [16]string{
	"·", // flat
	"◹", // W
	"◿", // S
	"◨", // W|S
	"◺", // E
	"▥", // W|E saddle
	"⬓", // S|E
	"◰", // W|S|E, N lowered
	"◸", // N
	"⬒", // N|W
	"▤", // N|S saddle
	"◱", // N|W|S, E lowered
	"◧", // N|E
	"◲", // N|W|E, S lowered
	"◳", // N|E|S, W lowered
	"▣", // all raised (steep only)
}

// SlopeGlyph returns the terrain glyph for s.
func SlopeGlyph(s terrain.Slope) string {
	return slopeGlyphs[s&terrain.SlopeElevated]
}
