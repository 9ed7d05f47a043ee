// Package pathfind computes shortest hops over a maze edge set
package pathfind

import "github.com/lixenwraith/ghost-chase/geom"

// Finder runs breadth-first searches over a fixed directed edge set
// Searches hold no state between calls; a Finder is safe for concurrent use after New
type Finder struct {
	adjacency map[geom.Position][]geom.Position
}

// New indexes edges by source cell, preserving enumeration order for deterministic tie-breaks
func New(edges []geom.Edge) *Finder {
	adj := make(map[geom.Position][]geom.Position)
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
	}
	return &Finder{adjacency: adj}
}

// Search returns a shortest path from start to end inclusive, or nil when end is unreachable
func (f *Finder) Search(start, end geom.Position) []geom.Position {
	queue := []geom.Position{start}
	visited := map[geom.Position]bool{start: true}
	cameFrom := make(map[geom.Position]geom.Position)

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		// Terminate on dequeue, not on discovery
		if curr == end {
			return reconstruct(cameFrom, start, end)
		}

		for _, next := range f.adjacency[curr] {
			if visited[next] {
				continue
			}
			visited[next] = true
			cameFrom[next] = curr
			queue = append(queue, next)
		}
	}
	return nil
}

// NextStep returns the first hop from start toward end
// start itself is returned when there is no path or nothing to walk
func (f *Finder) NextStep(start, end geom.Position) geom.Position {
	path := f.Search(start, end)
	if len(path) > 1 {
		return path[1]
	}
	return start
}

func reconstruct(cameFrom map[geom.Position]geom.Position, start, end geom.Position) []geom.Position {
	path := []geom.Position{end}
	for curr := end; curr != start; {
		curr = cameFrom[curr]
		path = append(path, curr)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
