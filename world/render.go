package world

import (
	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/geom"
	"github.com/lixenwraith/ghost-chase/maze"
)

// HunterLook selects how a hunter is painted
type HunterLook uint8

const (
	LookChasing HunterLook = iota
	LookWeak
	// LookFlashing warns that the seeker's power is about to run out
	LookFlashing
)

// Renderer is the drawing surface behind the world
// Calls are fire-and-forget; nothing is visible until Show
type Renderer interface {
	// Reset clears the surface and sizes it for a rows x cols board
	Reset(rows, cols int)
	DrawCell(pos geom.Position, cell maze.Cell)
	DrawSeeker(pos geom.Position, face rune, state agent.PowerState)
	DrawHunter(pos geom.Position, index int, look HunterLook)
	// DrawStatus writes the line above the board
	DrawStatus(text string)
	// DrawBanner writes two lines below the board; empty strings clear them
	DrawBanner(title, hint string)
	Show()
}

// NopRenderer discards all drawing
type NopRenderer struct{}

func (NopRenderer) Reset(int, int)                                   {}
func (NopRenderer) DrawCell(geom.Position, maze.Cell)                {}
func (NopRenderer) DrawSeeker(geom.Position, rune, agent.PowerState) {}
func (NopRenderer) DrawHunter(geom.Position, int, HunterLook)        {}
func (NopRenderer) DrawStatus(string)                                {}
func (NopRenderer) DrawBanner(string, string)                        {}
func (NopRenderer) Show()                                            {}
