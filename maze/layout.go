package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/geom"
)

// Cell is the static content of a board square
type Cell uint8

const (
	Wall Cell = iota
	Empty
	Pellet
	PowerPellet
)

// Layout glyphs
const (
	glyphWall        = '#'
	glyphEmpty       = ' '
	glyphPellet      = '.'
	glyphPowerPellet = 'o'
	glyphSeeker      = 'P'
)

// MaxHunters is the number of hunter slots a layout can describe ('0'-'9')
const MaxHunters = 10

var (
	ErrEmptyLayout       = errors.New("layout is empty")
	ErrRaggedLayout      = errors.New("layout rows differ in width")
	ErrNoSeeker          = errors.New("layout has no seeker start")
	ErrMultipleSeekers   = errors.New("layout has more than one seeker start")
	ErrNoHunters         = errors.New("layout has no hunter starts")
	ErrHunterGap         = errors.New("hunter indices must be contiguous from 0")
	ErrDuplicateHunter   = errors.New("hunter index appears twice")
	ErrOrphanWaypoint    = errors.New("first destination without a matching hunter")
	ErrDuplicateWaypoint = errors.New("first destination appears twice")
	ErrUnknownGlyph      = errors.New("unknown layout glyph")
	ErrUnreachableStart  = errors.New("start cell is not connected to the seeker")
)

// Layout is a parsed board: static cells plus the spawn tables
// Read-only after construction
type Layout struct {
	rows, cols int
	cells      [][]Cell

	SeekerStart geom.Position
	Hunters     []agent.Spawn
}

// Load reads a layout from a file path
func Load(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout: %w", err)
	}
	defer f.Close()

	l, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse layout %s: %w", path, err)
	}
	return l, nil
}

// Parse reads an ASCII layout
// '#' wall, '.' pellet, 'o' power pellet, ' ' empty, 'P' seeker,
// '0'-'9' hunter starts, 'a'-'j' first destination of the hunter with the same ordinal
func Parse(r io.Reader) (*Layout, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	// Trailing blank lines carry no board data
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyLayout
	}

	cols := len([]rune(lines[0]))
	l := &Layout{
		rows:  len(lines),
		cols:  cols,
		cells: make([][]Cell, len(lines)),
	}

	var (
		seekers      int
		starts       [MaxHunters]*geom.Position
		destinations [MaxHunters]*geom.Position
	)

	for row, line := range lines {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedLayout, row, len(runes), cols)
		}
		l.cells[row] = make([]Cell, cols)

		for col, ch := range runes {
			pos := geom.Position{Row: row, Col: col}
			switch {
			case ch == glyphWall:
				l.cells[row][col] = Wall
			case ch == glyphEmpty:
				l.cells[row][col] = Empty
			case ch == glyphPellet:
				l.cells[row][col] = Pellet
			case ch == glyphPowerPellet:
				l.cells[row][col] = PowerPellet
			case ch == glyphSeeker:
				l.cells[row][col] = Empty
				l.SeekerStart = pos
				seekers++
			case ch >= '0' && ch <= '9':
				idx := int(ch - '0')
				if starts[idx] != nil {
					return nil, fmt.Errorf("%w: %d", ErrDuplicateHunter, idx)
				}
				l.cells[row][col] = Empty
				starts[idx] = &pos
			case ch >= 'a' && ch < 'a'+MaxHunters:
				if destinations[ch-'a'] != nil {
					return nil, fmt.Errorf("%w: %c", ErrDuplicateWaypoint, ch)
				}
				l.cells[row][col] = Empty
				destinations[ch-'a'] = &pos
			default:
				return nil, fmt.Errorf("%w %q at %v", ErrUnknownGlyph, ch, pos)
			}
		}
	}

	switch {
	case seekers == 0:
		return nil, ErrNoSeeker
	case seekers > 1:
		return nil, ErrMultipleSeekers
	}

	for i := 0; i < MaxHunters; i++ {
		if starts[i] == nil {
			for j := i + 1; j < MaxHunters; j++ {
				if starts[j] != nil {
					return nil, fmt.Errorf("%w: %d missing", ErrHunterGap, i)
				}
			}
			break
		}
		l.Hunters = append(l.Hunters, agent.Spawn{Start: *starts[i], FirstDestination: destinations[i]})
	}
	if len(l.Hunters) == 0 {
		return nil, ErrNoHunters
	}
	for i := len(l.Hunters); i < MaxHunters; i++ {
		if destinations[i] != nil {
			return nil, fmt.Errorf("%w: %c", ErrOrphanWaypoint, 'a'+i)
		}
	}

	if err := l.checkConnected(); err != nil {
		return nil, err
	}
	return l, nil
}

// Rows returns the board height
func (l *Layout) Rows() int { return l.rows }

// Cols returns the board width
func (l *Layout) Cols() int { return l.cols }

// InBounds reports whether p lies on the board
func (l *Layout) InBounds(p geom.Position) bool {
	return p.Row >= 0 && p.Row < l.rows && p.Col >= 0 && p.Col < l.cols
}

// Cell returns the static content at p; out of bounds reads as Wall
func (l *Layout) Cell(p geom.Position) Cell {
	if !l.InBounds(p) {
		return Wall
	}
	return l.cells[p.Row][p.Col]
}

// Walkable reports whether p is a non-wall cell on the board
func (l *Layout) Walkable(p geom.Position) bool {
	return l.Cell(p) != Wall
}

// Cells returns a mutable copy of the cell grid
func (l *Layout) Cells() [][]Cell {
	out := make([][]Cell, l.rows)
	for r := range l.cells {
		out[r] = append([]Cell(nil), l.cells[r]...)
	}
	return out
}

// Edges enumerates every legal one-step move, row-major, in geom.Directions order
func (l *Layout) Edges() []geom.Edge {
	var edges []geom.Edge
	for r := 0; r < l.rows; r++ {
		for c := 0; c < l.cols; c++ {
			from := geom.Position{Row: r, Col: c}
			if !l.Walkable(from) {
				continue
			}
			for _, d := range geom.Directions {
				if to := from.Add(d); l.Walkable(to) {
					edges = append(edges, geom.Edge{From: from, To: to})
				}
			}
		}
	}
	return edges
}

// checkConnected verifies every spawn and waypoint shares a component with the seeker start
func (l *Layout) checkConnected() error {
	reach := map[geom.Position]bool{l.SeekerStart: true}
	stack := []geom.Position{l.SeekerStart}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, d := range geom.Directions {
			if n := p.Add(d); l.Walkable(n) && !reach[n] {
				reach[n] = true
				stack = append(stack, n)
			}
		}
	}

	for i, h := range l.Hunters {
		if !reach[h.Start] {
			return fmt.Errorf("%w: hunter %d at %v", ErrUnreachableStart, i, h.Start)
		}
		if h.FirstDestination != nil && !reach[*h.FirstDestination] {
			return fmt.Errorf("%w: waypoint %c at %v", ErrUnreachableStart, 'a'+i, *h.FirstDestination)
		}
	}
	return nil
}
