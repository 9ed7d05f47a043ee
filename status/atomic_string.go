package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen caps stored strings so status lines stay on one row
const MaxStringLen = 20

// AtomicString provides atomic string access; the zero value holds ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringLen runes
func (s *AtomicString) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringLen {
		runes := []rune(val)
		val = string(runes[:MaxStringLen])
	}
	s.ptr.Store(&val)
}

// Load returns the current value
func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
