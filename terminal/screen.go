package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/geom"
	"github.com/lixenwraith/ghost-chase/input"
	"github.com/lixenwraith/ghost-chase/maze"
	"github.com/lixenwraith/ghost-chase/world"
)

// Board geometry on screen
const (
	cellWidth = 2 // Terminal cells are roughly twice as tall as wide
	boardTop  = 1 // Row 0 holds the status line
	flashRate = 3 // Shows per flash phase
)

// Screen adapts a tcell screen to world.Renderer and input.Source
type Screen struct {
	screen tcell.Screen
	keys   *input.KeyTable
	styles Styles

	rows, cols int
	shows      int
}

// New initialises the controlling terminal
func New(mono bool) (*Screen, error) {
	ts, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := ts.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	styles := ColorStyles()
	if mono {
		styles = MonoStyles()
	}
	return NewWithScreen(ts, input.DefaultKeyTable(), styles), nil
}

// NewWithScreen wraps an already initialised tcell screen
func NewWithScreen(ts tcell.Screen, keys *input.KeyTable, styles Styles) *Screen {
	ts.SetStyle(styles.Base)
	ts.HideCursor()
	ts.Clear()
	return &Screen{screen: ts, keys: keys, styles: styles}
}

// Fini restores the terminal; a blocked Next returns ok=false afterwards
func (s *Screen) Fini() {
	s.screen.Fini()
}

// --- world.Renderer ---

func (s *Screen) Reset(rows, cols int) {
	s.rows, s.cols = rows, cols
	s.screen.Clear()
}

func (s *Screen) DrawCell(pos geom.Position, cell maze.Cell) {
	g := cellGlyphs[cell]
	style := s.styles.cell(cell)
	x, y := s.origin(pos)
	s.screen.SetContent(x, y, g[0], nil, style)
	s.screen.SetContent(x+1, y, g[1], nil, style)
}

func (s *Screen) DrawSeeker(pos geom.Position, face rune, state agent.PowerState) {
	x, y := s.origin(pos)
	style := s.styles.Seeker[state]
	s.screen.SetContent(x, y, face, nil, style)
	s.screen.SetContent(x+1, y, ' ', nil, style)
}

func (s *Screen) DrawHunter(pos geom.Position, index int, look world.HunterLook) {
	glyph, style := 'M', s.styles.hunter(index)
	switch look {
	case world.LookWeak:
		glyph, style = 'w', s.styles.Weak
	case world.LookFlashing:
		glyph, style = 'w', s.styles.Weak
		if (s.shows/flashRate)%2 == 1 {
			style = s.styles.WeakFlash
		}
	}
	x, y := s.origin(pos)
	s.screen.SetContent(x, y, glyph, nil, style)
	s.screen.SetContent(x+1, y, ' ', nil, style)
}

func (s *Screen) DrawStatus(text string) {
	s.drawLine(0, text, s.styles.Status)
}

func (s *Screen) DrawBanner(title, hint string) {
	bottom := boardTop + s.rows
	s.drawLine(bottom+1, title, s.styles.Banner)
	s.drawLine(bottom+2, hint, s.styles.Base)
}

func (s *Screen) Show() {
	s.shows++
	s.screen.Show()
}

func (s *Screen) origin(pos geom.Position) (x, y int) {
	return pos.Col * cellWidth, boardTop + pos.Row
}

// drawLine clears row y across the board width and writes text from the left edge
func (s *Screen) drawLine(y int, text string, style tcell.Style) {
	width := s.cols * cellWidth
	runes := []rune(text)
	if len(runes) > width {
		width = len(runes)
	}
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		s.screen.SetContent(x, y, r, nil, style)
	}
}

// --- input.Source ---

// Next blocks for the next bound key; resize events repaint and are swallowed
func (s *Screen) Next() (input.Intent, bool) {
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return input.Intent{}, false
		case *tcell.EventInterrupt:
			return input.Intent{Type: input.IntentInterrupt}, true
		case *tcell.EventResize:
			s.screen.Sync()
		case *tcell.EventKey:
			if in := s.keys.Lookup(ev); in.Type != input.IntentNone {
				return in, true
			}
		}
	}
}

func (s *Screen) Interrupt() {
	// A full event queue already guarantees a wakeup
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}
