// Package core holds process-wide plumbing shared by the game loop and the binary
package core

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	cleanupMu sync.Mutex
	cleanup   func()
)

// SetCleanup registers the function that restores the terminal before a crash report
func SetCleanup(fn func()) {
	cleanupMu.Lock()
	cleanup = fn
	cleanupMu.Unlock()
}

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}
	stack := debug.Stack()

	cleanupMu.Lock()
	fn := cleanup
	cleanup = nil
	cleanupMu.Unlock()
	if fn != nil {
		fn()
	}

	logrus.WithField("panic", r).Error("crash")
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", stack)
	os.Stderr.Sync()

	os.Exit(1)
}

// Guard wraps an errgroup function so a panic restores the terminal before the process exits
func Guard(fn func() error) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		return fn()
	}
}
