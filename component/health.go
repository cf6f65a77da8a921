package component

// Health tracks hit points, a one-hit shield and the post-hit god mode window
// during which further hits are ignored.
type Health struct {
	Max     int
	Current int
	Shield  bool

	godMode *TimeCounter

	OnDamage func(h *Health)
	OnDeath  func(h *Health)
}

// NewHealth creates a Health at max with a god mode lasting godModeSeconds.
func NewHealth(max int, godModeSeconds float64, fps int) *Health {
	if max <= 0 {
		max = 1
	}
	return &Health{Max: max, Current: max, godMode: NewTimeCounter(godModeSeconds, fps)}
}

// IsAlive reports whether any hit points remain.
func (h *Health) IsAlive() bool {
	return h != nil && h.Current > 0
}

// InGodMode reports whether hits are currently ignored.
func (h *Health) InGodMode() bool {
	return h != nil && h.godMode.IsWorking()
}

// GodModeElapsed is the number of frames since the last accepted hit.
func (h *Health) GodModeElapsed() int {
	if h == nil {
		return 0
	}
	return h.godMode.Delta()
}

// Hit consumes the shield or one hit point unless god mode is active.
// Returns true when the hit was accepted.
func (h *Health) Hit() bool {
	if h == nil || h.InGodMode() || h.Current <= 0 {
		return false
	}
	h.godMode.Restart()
	if h.Shield {
		h.Shield = false
	} else {
		h.Current--
	}
	if h.OnDamage != nil {
		h.OnDamage(h)
	}
	if h.Current <= 0 {
		h.Current = 0
		if h.OnDeath != nil {
			h.OnDeath(h)
		}
	}
	return true
}

// Kill drops hit points to zero bypassing shield and god mode.
func (h *Health) Kill() {
	if h == nil || h.Current <= 0 {
		return
	}
	h.Current = 0
	if h.OnDeath != nil {
		h.OnDeath(h)
	}
}

// Heal restores hit points up to Max.
func (h *Health) Heal(amount int) {
	if h == nil || h.Current <= 0 || amount <= 0 {
		return
	}
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Tick advances the god mode timer by one frame.
func (h *Health) Tick() {
	if h == nil {
		return
	}
	h.godMode.Next()
}
