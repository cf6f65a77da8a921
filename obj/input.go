package obj

// InputState is the snapshot of player controls for one frame. Backends fill
// it once per frame; objects never poll devices themselves.
type InputState struct {
	Left  bool
	Right bool
	// Up doubles as jump.
	Up   bool
	Down bool
	Jump bool

	// Edge-triggered scene controls.
	PausePressed   bool
	RestartPressed bool
	ConfirmPressed bool
	BackPressed    bool
}

// Horizontal returns -1, 0 or 1. Opposite keys cancel out.
func (in InputState) Horizontal() int {
	switch {
	case in.Left && !in.Right:
		return -1
	case in.Right && !in.Left:
		return 1
	}
	return 0
}

// WantsUp reports a jump or climb request.
func (in InputState) WantsUp() bool {
	return in.Up || in.Jump
}
