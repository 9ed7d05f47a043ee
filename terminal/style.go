package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ghost-chase/agent"
	"github.com/lixenwraith/ghost-chase/maze"
)

// hunterColors cycles for boards with more hunters than colors
var hunterColors = []tcell.Color{
	tcell.ColorRed,
	tcell.ColorGreen,
	tcell.ColorBlue,
	tcell.ColorDarkCyan,
	tcell.ColorFuchsia,
	tcell.ColorOrange,
}

// Styles is the palette of one screen
type Styles struct {
	Base        tcell.Style
	Wall        tcell.Style
	Pellet      tcell.Style
	PowerPellet tcell.Style
	Seeker      [3]tcell.Style // Indexed by agent.PowerState
	Hunters     []tcell.Style
	Weak        tcell.Style
	WeakFlash   tcell.Style
	Status      tcell.Style
	Banner      tcell.Style
}

// ColorStyles is the default palette
func ColorStyles() Styles {
	base := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	s := Styles{
		Base:        base,
		Wall:        base.Foreground(tcell.ColorNavy),
		Pellet:      base.Foreground(tcell.ColorSilver),
		PowerPellet: base.Foreground(tcell.ColorWhite).Bold(true),
		Weak:        base.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue),
		WeakFlash:   base.Foreground(tcell.ColorBlue).Background(tcell.ColorWhite),
		Status:      base.Foreground(tcell.ColorYellow).Bold(true),
		Banner:      base.Foreground(tcell.ColorRed).Bold(true),
	}
	s.Seeker[agent.PowerNormal] = base.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	s.Seeker[agent.PowerFading] = base.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
	s.Seeker[agent.PowerCharged] = base.Foreground(tcell.ColorBlack).Background(tcell.ColorRed)
	for _, c := range hunterColors {
		s.Hunters = append(s.Hunters, base.Foreground(tcell.ColorBlack).Background(c))
	}
	return s
}

// MonoStyles renders with attributes only, for terminals without color
func MonoStyles() Styles {
	base := tcell.StyleDefault
	s := Styles{
		Base:        base,
		Wall:        base,
		Pellet:      base,
		PowerPellet: base.Bold(true),
		Weak:        base.Dim(true),
		WeakFlash:   base.Reverse(true),
		Status:      base.Bold(true),
		Banner:      base.Bold(true),
		Hunters:     []tcell.Style{base.Reverse(true)},
	}
	s.Seeker[agent.PowerNormal] = base.Bold(true)
	s.Seeker[agent.PowerFading] = base.Bold(true).Underline(true)
	s.Seeker[agent.PowerCharged] = base.Bold(true).Reverse(true)
	return s
}

// cellGlyphs holds the two-column rendering of each static cell
var cellGlyphs = map[maze.Cell][2]rune{
	maze.Wall:        {'█', '█'},
	maze.Empty:       {' ', ' '},
	maze.Pellet:      {'·', ' '},
	maze.PowerPellet: {'●', ' '},
}

func (s *Styles) cell(c maze.Cell) tcell.Style {
	switch c {
	case maze.Wall:
		return s.Wall
	case maze.Pellet:
		return s.Pellet
	case maze.PowerPellet:
		return s.PowerPellet
	default:
		return s.Base
	}
}

func (s *Styles) hunter(index int) tcell.Style {
	return s.Hunters[index%len(s.Hunters)]
}
