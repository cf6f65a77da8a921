package main

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHoldWindow(t *testing.T) {
	var in Input
	in.press(tcell.KeyRight, 0)
	for i := 0; i < holdFrames; i++ {
		if !in.Next().Right {
			t.Fatalf("frame %d: right should still be held", i)
		}
	}
	if in.Next().Right {
		t.Fatalf("right should be released after the hold window")
	}
}

func TestOppositeReleases(t *testing.T) {
	var in Input
	in.press(tcell.KeyRune, 'a')
	in.press(tcell.KeyRune, 'd')
	s := in.Next()
	if s.Left || !s.Right {
		t.Fatalf("expected only right, got %+v", s)
	}
}

func TestEdgesLastOneFrame(t *testing.T) {
	var in Input
	in.press(tcell.KeyRune, 'p')
	in.press(tcell.KeyEnter, 0)
	s := in.Next()
	if !s.PausePressed || !s.ConfirmPressed {
		t.Fatalf("expected edges, got %+v", s)
	}
	if s = in.Next(); s.PausePressed || s.ConfirmPressed {
		t.Fatalf("edges should clear, got %+v", s)
	}
	if in.press(tcell.KeyRune, 'q') {
		t.Fatalf("q should quit")
	}
}
