package component

import "math"

// FramesFromSeconds converts a duration to a whole number of frames at fps.
func FramesFromSeconds(seconds float64, fps int) int {
	if seconds <= 0 || fps <= 0 {
		return 0
	}
	return int(math.Round(seconds * float64(fps)))
}

// TimeCounter is a frame-based countdown. Owners call Next exactly once per
// frame regardless of state.
//
//	cooldown := NewTimeCounter(1.2, 60)
//	if hit && !cooldown.IsWorking() {
//		cooldown.Restart()
//	}
//	cooldown.Next()
type TimeCounter struct {
	max     int
	current int
}

// NewTimeCounter creates a stopped counter lasting seconds at fps.
func NewTimeCounter(seconds float64, fps int) *TimeCounter {
	return &TimeCounter{max: FramesFromSeconds(seconds, fps)}
}

// Restart sets the remaining frames to the maximum.
func (t *TimeCounter) Restart() {
	if t == nil {
		return
	}
	t.current = t.max
}

// Stop zeroes the remaining frames.
func (t *TimeCounter) Stop() {
	if t == nil {
		return
	}
	t.current = 0
}

// Next decrements the remaining frames while positive.
func (t *TimeCounter) Next() {
	if t == nil {
		return
	}
	if t.current > 0 {
		t.current--
	}
}

// IsWorking reports whether frames remain.
func (t *TimeCounter) IsWorking() bool {
	return t != nil && t.current > 0
}

// Delta is the number of frames elapsed since the last Restart.
func (t *TimeCounter) Delta() int {
	if t == nil {
		return 0
	}
	return t.max - t.current
}

// FrameCounter cycles an index through 0..frames-1, advancing whenever its
// inner TimeCounter elapses. IsLastFrame and IsEnd are edge signals, valid
// only until the next call to Next.
//
// IsEnd starts true. Enemies use it as a binary state: true means idle, false
// means a one-shot animation is playing. Start enters the playing state and
// the wrap back to index 0 leaves it.
type FrameCounter struct {
	frames    int
	timer     *TimeCounter
	index     int
	end       bool
	lastFrame bool
}

// NewFrameCounter creates a counter over frames indices switching every
// delaySeconds at fps.
func NewFrameCounter(frames int, delaySeconds float64, fps int) *FrameCounter {
	if frames < 1 {
		frames = 1
	}
	fc := &FrameCounter{
		frames: frames,
		timer:  NewTimeCounter(delaySeconds, fps),
		end:    true,
	}
	fc.timer.Restart()
	return fc
}

func (f *FrameCounter) Index() int        { return f.index }
func (f *FrameCounter) Frames() int       { return f.frames }
func (f *FrameCounter) IsEnd() bool       { return f.end }
func (f *FrameCounter) IsLastFrame() bool { return f.lastFrame }

// Next ticks the inner timer and advances the index when it elapses.
func (f *FrameCounter) Next() {
	f.end = false
	f.lastFrame = false
	f.timer.Next()
	if f.timer.IsWorking() {
		return
	}
	f.timer.Restart()
	f.index++
	if f.index >= f.frames-1 {
		f.lastFrame = true
	}
	if f.index > f.frames-1 {
		f.index = 0
		f.end = true
	}
}

// Start forces IsEnd to false, beginning a new cycle.
func (f *FrameCounter) Start() {
	f.end = false
}

// Reset returns to index 0 in the idle state.
func (f *FrameCounter) Reset() {
	f.index = 0
	f.end = true
	f.lastFrame = false
	f.timer.Restart()
}
