// Package input is a thin wrapper over ebiten's keyboard/mouse query
// surface, standing in for the "collaborator" that spec.md's camera and
// main loop expect: queryable keyboard state, relative mouse motion with
// per-button queries, and edge-triggered key events.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// State tracks the cursor position across frames so MouseDelta can report
// a relative motion rather than ebiten's absolute CursorPosition.
type State struct {
	lastX, lastY int
	dx, dy       float32
	have         bool
}

// Poll must be called once per frame before reading MouseDelta.
func (s *State) Poll() {
	x, y := ebiten.CursorPosition()
	if !s.have {
		s.lastX, s.lastY = x, y
		s.have = true
	}
	s.dx = float32(x - s.lastX)
	s.dy = float32(y - s.lastY)
	s.lastX, s.lastY = x, y
}

// MouseDelta returns the cursor motion since the last Poll.
func (s *State) MouseDelta() (dx, dy float32) {
	return s.dx, s.dy
}

func IsKeyDown(k ebiten.Key) bool {
	return ebiten.IsKeyPressed(k)
}

func IsLeftMouseDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func IsRightMouseDown() bool {
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
}

// KeyJustReleased reports an edge (key-up) event, matching the SDL_KEYUP
// dispatch in original_source/project/src/main.cpp.
func KeyJustReleased(k ebiten.Key) bool {
	return inpututil.IsKeyJustReleased(k)
}
