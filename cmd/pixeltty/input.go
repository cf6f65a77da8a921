package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/pixel/obj"
)

// Terminals report presses and auto-repeat but never releases, so a key
// counts as held for a short window after its last event.
const holdFrames = 8

type heldKey int

const (
	keyLeft heldKey = iota
	keyRight
	keyUp
	keyDown
	keyJump
	heldKeys
)

// Input turns terminal key events into per-frame input state.
type Input struct {
	frame int
	last  [heldKeys]int
	seen  [heldKeys]bool
	edges obj.InputState
}

func (in *Input) hold(k heldKey) {
	in.last[k] = in.frame
	in.seen[k] = true
	// opposite directions release each other at once
	switch k {
	case keyLeft:
		in.seen[keyRight] = false
	case keyRight:
		in.seen[keyLeft] = false
	case keyUp:
		in.seen[keyDown] = false
	case keyDown:
		in.seen[keyUp] = false
	}
}

// HandleKey records one key event. It returns false when the user asked to quit.
func (in *Input) HandleKey(ev *tcell.EventKey) bool {
	return in.press(ev.Key(), ev.Rune())
}

func (in *Input) press(k tcell.Key, r rune) bool {
	switch k {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		in.hold(keyLeft)
	case tcell.KeyRight:
		in.hold(keyRight)
	case tcell.KeyUp:
		in.hold(keyUp)
	case tcell.KeyDown:
		in.hold(keyDown)
	case tcell.KeyEnter:
		in.edges.ConfirmPressed = true
	case tcell.KeyEscape:
		in.edges.BackPressed = true
	case tcell.KeyRune:
		switch r {
		case 'q':
			return false
		case 'a', 'A':
			in.hold(keyLeft)
		case 'd', 'D':
			in.hold(keyRight)
		case 'w', 'W':
			in.hold(keyUp)
		case 's', 'S':
			in.hold(keyDown)
		case ' ':
			in.hold(keyJump)
		case 'p', 'P':
			in.edges.PausePressed = true
		case 'r', 'R':
			in.edges.RestartPressed = true
		}
	}
	return true
}

func (in *Input) held(k heldKey) bool {
	return in.seen[k] && in.frame-in.last[k] < holdFrames
}

// Next returns the state for the coming frame and clears the edges.
func (in *Input) Next() obj.InputState {
	s := in.edges
	s.Left = in.held(keyLeft)
	s.Right = in.held(keyRight)
	s.Up = in.held(keyUp)
	s.Down = in.held(keyDown)
	s.Jump = in.held(keyJump)
	in.edges = obj.InputState{}
	in.frame++
	return s
}
