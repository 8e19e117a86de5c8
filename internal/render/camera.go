package render

// Camera translates between tile coordinates and screen coordinates.
// Tile X is multiplied by 2 because each tile occupies 2 terminal
// columns. Tile coordinates may be negative: the void around the map
// is drawn from extrapolated heights and pans like normal terrain.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera centered on tile (cx, cy).
func NewCamera(cx, cy, viewW, viewH int) *Camera {
	c := &Camera{ViewWidth: viewW, ViewHeight: viewH}
	c.Center(cx, cy)
	return c
}

// Center repositions the camera so tile (cx, cy) is in the middle.
func (c *Camera) Center(cx, cy int) {
	// ViewWidth is in columns; each tile is 2 columns wide.
	c.OffsetX = cx - (c.ViewWidth/2)/2
	c.OffsetY = cy - c.ViewHeight/2
}

// Resize updates the viewport dimensions, keeping the current center.
func (c *Camera) Resize(viewW, viewH int) {
	cx, cy := c.OffsetX+(c.ViewWidth/2)/2, c.OffsetY+c.ViewHeight/2
	c.ViewWidth = viewW
	c.ViewHeight = viewH
	c.Center(cx, cy)
}

// TileToScreen converts tile (tx, ty) to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) TileToScreen(tx, ty int) (sx, sy int, visible bool) {
	sx = (tx - c.OffsetX) * 2
	sy = ty - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToTile converts screen (sx, sy) to tile coordinates.
func (c *Camera) ScreenToTile(sx, sy int) (int, int) {
	return sx/2 + c.OffsetX, sy + c.OffsetY
}
