package input

import "github.com/lixenwraith/ghost-chase/geom"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentMove      // Arrows, h/j/k/l, w/a/s/d
	IntentConfirm   // Enter, y
	IntentQuit      // Esc, q, n, Ctrl+C
	IntentInterrupt // Synthetic wakeup of a blocked read
)

// Intent is one translated key press
type Intent struct {
	Type      IntentType
	Direction geom.Direction // Set for IntentMove only
}

// Source is a blocking stream of intents
type Source interface {
	// Next blocks for the next intent; ok is false once the stream is closed
	Next() (intent Intent, ok bool)
	// Interrupt makes a blocked or upcoming Next return IntentInterrupt
	Interrupt()
}
