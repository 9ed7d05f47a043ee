// Package terminal draws the board on a tcell screen and turns its key events into intents.
//
// A Screen is both the world.Renderer used by the tick goroutine and the
// input.Source read by the input goroutine. tcell serialises the two sides
// internally: drawing touches the cell buffer, reading touches the event queue.
package terminal
