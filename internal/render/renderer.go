package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"tileworld/internal/terrain"
)

// hudRows is the number of rows reserved at the bottom of the screen.
const hudRows = 3

// Renderer draws a terrain height field onto a tcell screen. In-map
// tiles come from the slope queries; tiles beyond the map edge come
// from the extrapolated pixel queries, so the surrounding void is
// drawn as continued terrain rather than blackness.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(0, 0, w, h-hudRows),
	}
}

// CenterOn recenters the camera on tile (x, y).
func (r *Renderer) CenterOn(x, y int) { r.camera.Center(x, y) }

// Resize re-reads the screen size after a terminal resize event.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, h-hudRows)
}

// DrawFrame renders the terrain and the HUD, with the inspection
// cursor at tile (cursorX, cursorY).
func (r *Renderer) DrawFrame(m *terrain.Map, cursorX, cursorY int) {
	r.screen.Clear()
	r.drawTerrain(m, cursorX, cursorY)
	r.drawHUD(m, cursorX, cursorY)
	r.screen.Show()
}

// drawTerrain renders every tile in the viewport.
func (r *Renderer) drawTerrain(m *terrain.Map, cursorX, cursorY int) {
	for sy := 0; sy < r.camera.ViewHeight; sy++ {
		for sx := 0; sx < r.camera.ViewWidth; sx += 2 {
			tx, ty := r.camera.ScreenToTile(sx, sy)

			var (
				slope  terrain.Slope
				height int
			)
			in := inMap(m, tx, ty)
			if in {
				slope = m.TileSlope(m.TileXY(tx, ty), &height)
			} else {
				slope = m.PixelSlopeOutsideMap(tx, ty, &height)
				height /= terrain.PixelsPerHeightUnit
			}

			style := tcell.StyleDefault.
				Foreground(tcell.ColorBlack).
				Background(HeightColor(height))
			if !in {
				style = style.Dim(true)
			}
			if slope.IsSteep() {
				style = style.Foreground(tcell.ColorRed).Bold(true)
			}
			if tx == cursorX && ty == cursorY {
				style = style.Reverse(true)
			}

			r.putGlyph(sx, sy, SlopeGlyph(slope), style)
		}
	}
}

// drawHUD renders the status rows describing the tile under the cursor.
func (r *Renderer) drawHUD(m *terrain.Map, cursorX, cursorY int) {
	hudY := r.camera.ViewHeight
	r.drawHLine(hudY, tcell.ColorGray)

	var status string
	if inMap(m, cursorX, cursorY) {
		tile := m.TileXY(cursorX, cursorY)
		slope := m.TileSlope(tile, nil)
		status = fmt.Sprintf("tile (%d,%d)  slope %v  min %d  max %d",
			cursorX, cursorY, slope, m.TileZ(tile), m.TileMaxZ(tile))
		if m.IsTileFlat(tile, nil) {
			status += "  flat"
		}
	} else {
		slope := m.PixelSlopeOutsideMap(cursorX, cursorY, nil)
		status = fmt.Sprintf("void (%d,%d)  slope %v  min %dpx  max %dpx",
			cursorX, cursorY, slope,
			m.PixelZOutsideMap(cursorX, cursorY),
			m.MaxPixelZOutsideMap(cursorX, cursorY))
	}
	r.drawText(0, hudY+1, status, tcell.StyleDefault.Foreground(tcell.ColorWhite))
	r.drawText(0, hudY+2, "arrows/hjkl move · q quit",
		tcell.StyleDefault.Foreground(tcell.ColorGray))
}

// inMap reports whether tile coordinates (x, y) address a stored tile.
func inMap(m *terrain.Map, x, y int) bool {
	return x >= 0 && x <= m.MaxX() && y >= 0 && y <= m.MaxY()
}

// drawHLine draws a horizontal separator across the screen at row y.
func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes a plain string starting at screen position (x, y).
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

// putGlyph draws a single glyph at screen position (x, y), filling the
// second column of the 2-column cell.
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
