package maze

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/geom"
)

// ErrBoardTooSmall is returned when a generated board cannot hold its agents
var ErrBoardTooSmall = errors.New("board too small for requested hunters")

// GenConfig drives procedural board generation
type GenConfig struct {
	Rows, Cols int

	// Braiding: 0.0 (Perfect Maze/Tree) to 1.0 (No dead ends/Graph).
	// Chase boards need cycles or hunters trap the seeker in every dead end.
	Braiding float64

	Hunters int
	Seed    int64 // Optional (0 = Random)
}

// Generate builds a random braided maze and populates it with pellets and spawns
func Generate(cfg GenConfig) (*Layout, error) {
	// Round DOWN to the nearest odd number to stay within requested bounds
	rows := ensureOdd(cfg.Rows)
	cols := ensureOdd(cfg.Cols)

	open := make([][]bool, rows)
	for i := range open {
		open[i] = make([]bool, cols)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	recursiveBacktracker(open, geom.Position{Row: 1, Col: 1}, rng)
	if cfg.Braiding > 0 {
		applySmartBraiding(open, cfg.Braiding, rng)
	}

	return populate(open, cfg.Hunters)
}

// populate converts a carved grid into a Layout
// Hunters spawn around the center, the seeker at the passage farthest from them
func populate(open [][]bool, hunters int) (*Layout, error) {
	rows, cols := len(open), len(open[0])
	l := &Layout{rows: rows, cols: cols, cells: make([][]Cell, rows)}
	for r := range open {
		l.cells[r] = make([]Cell, cols)
		for c := range open[r] {
			if open[r][c] {
				l.cells[r][c] = Pellet
			}
		}
	}

	center := nearestPassage(l, geom.Position{Row: rows / 2, Col: cols / 2})
	order := floodOrder(l, center)
	if hunters < 1 {
		hunters = 1
	}
	if hunters > MaxHunters {
		hunters = MaxHunters
	}
	if len(order) < hunters+1 {
		return nil, fmt.Errorf("%w: %d passages for %d hunters", ErrBoardTooSmall, len(order), hunters)
	}

	for i := 0; i < hunters; i++ {
		p := order[i]
		l.cells[p.Row][p.Col] = Empty
		l.Hunters = append(l.Hunters, agent.Spawn{Start: p})
	}

	l.SeekerStart = order[len(order)-1]
	l.cells[l.SeekerStart.Row][l.SeekerStart.Col] = Empty

	corners := []geom.Position{
		{Row: 1, Col: 1},
		{Row: 1, Col: cols - 2},
		{Row: rows - 2, Col: 1},
		{Row: rows - 2, Col: cols - 2},
	}
	for _, corner := range corners {
		p := nearestPassage(l, corner)
		if l.cells[p.Row][p.Col] == Pellet {
			l.cells[p.Row][p.Col] = PowerPellet
		}
	}

	return l, nil
}

// floodOrder lists reachable passages by breadth-first distance from start
func floodOrder(l *Layout, start geom.Position) []geom.Position {
	order := []geom.Position{start}
	seen := map[geom.Position]bool{start: true}
	for i := 0; i < len(order); i++ {
		for _, d := range geom.Directions {
			n := order[i].Add(d)
			if l.Walkable(n) && !seen[n] {
				seen[n] = true
				order = append(order, n)
			}
		}
	}
	return order
}

// nearestPassage scans rings of growing radius around p for an open cell
func nearestPassage(l *Layout, p geom.Position) geom.Position {
	limit := l.rows + l.cols
	for radius := 0; radius < limit; radius++ {
		for dr := -radius; dr <= radius; dr++ {
			for dc := -radius; dc <= radius; dc++ {
				q := geom.Position{Row: p.Row + dr, Col: p.Col + dc}
				if l.Walkable(q) {
					return q
				}
			}
		}
	}
	return geom.Position{Row: 1, Col: 1}
}

// --- Core Algorithms ---

func recursiveBacktracker(open [][]bool, start geom.Position, rng *rand.Rand) {
	rows, cols := len(open), len(open[0])

	stack := []geom.Position{start}
	open[start.Row][start.Col] = true

	jumps := []geom.Position{{Row: -2}, {Row: 2}, {Col: -2}, {Col: 2}}

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates := make([]geom.Position, 0, 4)

		for _, j := range jumps {
			nr, nc := curr.Row+j.Row, curr.Col+j.Col
			// Leave 1 cell border for walls
			if nr > 0 && nr < rows-1 && nc > 0 && nc < cols-1 && !open[nr][nc] {
				candidates = append(candidates, j)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		j := candidates[rng.Intn(len(candidates))]
		open[curr.Row+j.Row/2][curr.Col+j.Col/2] = true
		next := geom.Position{Row: curr.Row + j.Row, Col: curr.Col + j.Col}
		open[next.Row][next.Col] = true
		stack = append(stack, next)
	}
}

func applySmartBraiding(open [][]bool, probability float64, rng *rand.Rand) {
	rows, cols := len(open), len(open[0])

	// Iterate over odd nodes (rooms)
	for r := 1; r < rows-1; r += 2 {
		for c := 1; c < cols-1; c += 2 {
			if !open[r][c] {
				continue
			}

			// A node is a dead end if it has exactly 1 open neighbour
			exits := 0
			for _, d := range geom.Directions {
				dr, dc := geom.Delta(d)
				if open[r+dr][c+dc] {
					exits++
				}
			}
			if exits != 1 || rng.Float64() >= probability {
				continue
			}

			candidates := make([]geom.Position, 0, 4)
			for _, d := range geom.Directions {
				dr, dc := geom.Delta(d)
				nr, nc := r+2*dr, c+2*dc // Target neighbour
				wr, wc := r+dr, c+dc     // The intervening wall
				if nr < 0 || nr >= rows || nc < 0 || nc >= cols {
					continue
				}
				if open[nr][nc] && !open[wr][wc] && canSafelyRemoveWall(open, wr, wc) {
					candidates = append(candidates, geom.Position{Row: wr, Col: wc})
				}
			}

			if len(candidates) > 0 {
				w := candidates[rng.Intn(len(candidates))]
				open[w.Row][w.Col] = true
			}
		}
	}
}

// canSafelyRemoveWall checks if opening (r,c) creates prohibited topology:
// 1. Plazas (2x2 passages).
// 2. Pillars (isolated walls).
func canSafelyRemoveWall(open [][]bool, r, c int) bool {
	rows, cols := len(open), len(open[0])

	// Out of bounds reads as wall
	isP := func(tr, tc int) bool {
		if tr < 0 || tr >= rows || tc < 0 || tc >= cols {
			return false
		}
		return open[tr][tc]
	}

	// No plazas: check the 4 quadrants around (r,c)
	if isP(r-1, c-1) && isP(r-1, c) && isP(r, c-1) {
		return false
	}
	if isP(r-1, c) && isP(r-1, c+1) && isP(r, c+1) {
		return false
	}
	if isP(r, c-1) && isP(r+1, c-1) && isP(r+1, c) {
		return false
	}
	if isP(r, c+1) && isP(r+1, c) && isP(r+1, c+1) {
		return false
	}

	// No pillars: every adjacent wall keeps at least one other wall connection
	for _, d := range geom.Directions {
		dr, dc := geom.Delta(d)
		nr, nc := r+dr, c+dc
		if nr < 0 || nr >= rows || nc < 0 || nc >= cols || open[nr][nc] {
			continue
		}

		wallConnections := 0
		for _, d2 := range geom.Directions {
			dr2, dc2 := geom.Delta(d2)
			nnr, nnc := nr+dr2, nc+dc2
			// (r,c) is about to open
			if nnr == r && nnc == c {
				continue
			}
			if nnr >= 0 && nnr < rows && nnc >= 0 && nnc < cols && !open[nnr][nnc] {
				wallConnections++
			}
		}
		if wallConnections == 0 {
			return false
		}
	}

	return true
}

func ensureOdd(n int) int {
	if n < 5 {
		return 5
	}
	if n%2 == 0 {
		return n - 1
	}
	return n
}
