package agent

import "github.com/lixenwraith/ghost-chase/geom"

const (
	// SeekerPeriod lets the seeker decide every tick
	SeekerPeriod = 1
	// MaxPower is the power duration granted by a power pellet, in ticks
	MaxPower = 100
	// TailPower is the remaining duration below which power is reported as fading
	TailPower = 30
)

// PowerState classifies the remaining power duration
type PowerState uint8

const (
	PowerNormal PowerState = iota
	PowerFading
	PowerCharged
)

// faces holds the chomp animation per direction; None reuses the Up row
var faces = [...][]rune{
	geom.None:  []rune(`"' '"`),
	geom.Up:    []rune(`"' '"`),
	geom.Down:  []rune("n. .n"),
	geom.Left:  []rune(")>- ->"),
	geom.Right: []rune("(<- -<"),
}

// Seeker is the player agent
type Seeker struct {
	world    SeekerWorld
	commands *CommandQueue

	position  geom.Position
	direction geom.Direction

	stepFrame int
	power     int
	frame     int
}

// NewSeeker places a seeker at start, idle, reading commands from queue
func NewSeeker(world SeekerWorld, commands *CommandQueue, start geom.Position) *Seeker {
	return &Seeker{
		world:     world,
		commands:  commands,
		position:  start,
		direction: geom.None,
	}
}

func (s *Seeker) Position() geom.Position   { return s.position }
func (s *Seeker) Direction() geom.Direction { return s.direction }
func (s *Seeker) StepFrame() int            { return s.stepFrame }
func (s *Seeker) Power() int                { return s.power }
func (s *Seeker) Commands() *CommandQueue   { return s.commands }

// Empower starts or refreshes power mode
func (s *Seeker) Empower() {
	s.power = MaxPower
}

// PowerState reports the display/behaviour state derived from remaining power
func (s *Seeker) PowerState() PowerState {
	switch {
	case s.power <= 0:
		return PowerNormal
	case s.power < TailPower:
		return PowerFading
	default:
		return PowerCharged
	}
}

// Face returns the current animation glyph
func (s *Seeker) Face() rune {
	row := faces[geom.None]
	if int(s.direction) < len(faces) {
		row = faces[s.direction]
	}
	return row[s.frame%len(row)]
}

// Advance runs one tick of the seeker: power decay, then at most one step
func (s *Seeker) Advance() {
	if s.power > 0 {
		s.power--
	}

	s.stepFrame = (s.stepFrame + 1) % SeekerPeriod
	if s.stepFrame != 0 {
		return
	}

	dir := s.takeDirection()
	if !s.world.IsMovable(s.position, dir) {
		// Blocked: hold position, no fallback to the previous heading
		return
	}

	s.animate(dir)
	s.direction = dir
	s.stepTo(dir)
}

func (s *Seeker) takeDirection() geom.Direction {
	if d, ok := s.commands.Pop(); ok {
		return d
	}
	return s.direction
}

func (s *Seeker) animate(dir geom.Direction) {
	if dir != s.direction {
		s.frame = 0
		return
	}
	row := faces[geom.None]
	if int(dir) < len(faces) {
		row = faces[dir]
	}
	s.frame = (s.frame + 1) % len(row)
}

func (s *Seeker) stepTo(dir geom.Direction) {
	s.world.ClearSeeker(s.position)
	next := s.world.GetPosition(s.position, dir)
	s.world.DrawSeeker(s, next, dir)
	s.position = next
}
