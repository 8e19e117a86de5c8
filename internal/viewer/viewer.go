// Package viewer is the interactive terrain inspector: a tcell event
// loop that pans a cursor over the height field and shows the slope
// and height queries for the tile under it.
package viewer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"tileworld/internal/render"
	"tileworld/internal/terrain"
)

// Viewer drives one inspection session over a terrain map.
type Viewer struct {
	screen   tcell.Screen
	renderer *render.Renderer
	m        *terrain.Map
	cursorX  int
	cursorY  int
}

// New creates a Viewer with its own terminal screen.
func New(m *terrain.Map) (*Viewer, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(m, screen), nil
}

// NewWithScreen creates a Viewer on an already-initialized screen,
// used by the SSH server and by tests with a simulation screen.
func NewWithScreen(m *terrain.Map, screen tcell.Screen) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		m:        m,
		cursorX:  m.SizeX() / 2,
		cursorY:  m.SizeY() / 2,
	}
}

// Run blocks until the user quits, finalizing the screen on exit.
func (v *Viewer) Run() {
	defer v.screen.Fini()

	for {
		v.renderer.CenterOn(v.cursorX, v.cursorY)
		v.renderer.DrawFrame(v.m, v.cursorX, v.cursorY)

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.renderer.Resize()
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey applies one key event; the return value is false when the
// session should end.
func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	dx, dy := 0, 0
	switch ev.Key() {
	case tcell.KeyEscape:
		return false
	case tcell.KeyUp:
		dy = -1
	case tcell.KeyDown:
		dy = 1
	case tcell.KeyLeft:
		dx = -1
	case tcell.KeyRight:
		dx = 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case 'h':
			dx = -1
		case 'l':
			dx = 1
		case 'k':
			dy = -1
		case 'j':
			dy = 1
		}
	}
	v.moveCursor(dx, dy)
	return true
}

// moveCursor pans the inspection cursor, allowing it a short reach into
// the void beyond the map so the outside-map queries are visible too.
func (v *Viewer) moveCursor(dx, dy int) {
	const voidReach = 8
	nx, ny := v.cursorX+dx, v.cursorY+dy
	if nx < -voidReach || nx > v.m.MaxX()+voidReach {
		return
	}
	if ny < -voidReach || ny > v.m.MaxY()+voidReach {
		return
	}
	v.cursorX, v.cursorY = nx, ny
}

// Cursor returns the current cursor tile, for tests.
func (v *Viewer) Cursor() (int, int) { return v.cursorX, v.cursorY }
