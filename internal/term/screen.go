// Package term owns the terminal session: it adapts a tcell screen to the
// scene's Display contract and maps key events to camera movement.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen drives the real terminal through tcell. Creating one switches the
// terminal into cell mode; Close must run before the process exits so the
// terminal is restored.
type Screen struct {
	tc    tcell.Screen
	style tcell.Style
}

// NewScreen initializes the terminal.
func NewScreen() (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating terminal screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("initializing terminal screen: %w", err)
	}
	tc.HideCursor()
	return &Screen{tc: tc, style: tcell.StyleDefault}, nil
}

// Size returns the terminal extent as (rows, cols).
func (s *Screen) Size() (rows, cols int) {
	w, h := s.tc.Size()
	return h, w
}

// Set paints ch at (row, col). tcell drops out-of-bounds writes.
func (s *Screen) Set(row, col int, ch rune) {
	s.tc.SetContent(col, row, ch, nil, s.style)
}

// Clear empties the back buffer at frame start.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Commit flushes the finished frame to the terminal.
func (s *Screen) Commit() {
	s.tc.Show()
}

// PollEvent blocks until the next terminal event. It returns nil once the
// screen has been finalized.
func (s *Screen) PollEvent() tcell.Event {
	return s.tc.PollEvent()
}

// Close restores the terminal and unblocks any pending PollEvent.
func (s *Screen) Close() {
	s.tc.Fini()
}
