package agent

import "github.com/lixenwraith/ghost-chase/geom"

// Mover answers movement legality over the maze
type Mover interface {
	// IsMovable reports whether a single step in dir from pos stays on the maze graph
	IsMovable(pos geom.Position, dir geom.Direction) bool
	// GetPosition returns the destination of a step; only valid after IsMovable or for None
	GetPosition(pos geom.Position, dir geom.Direction) geom.Position
}

// SeekerWorld is the world surface consumed by the seeker
type SeekerWorld interface {
	Mover
	ClearSeeker(pos geom.Position)
	DrawSeeker(s *Seeker, pos geom.Position, dir geom.Direction)
}

// HunterWorld is the world surface consumed by the hunter fleet
type HunterWorld interface {
	Mover
	ClearHunter(h *Hunter)
	DrawHunter(h *Hunter)
}
