package component

import "testing"

func TestFramesFromSeconds(t *testing.T) {
	cases := []struct {
		seconds float64
		fps     int
		want    int
	}{
		{1.2, 60, 72},
		{0.1, 60, 6},
		{0.013, 60, 1},
		{0, 60, 0},
		{-1, 60, 0},
	}
	for _, c := range cases {
		if got := FramesFromSeconds(c.seconds, c.fps); got != c.want {
			t.Fatalf("FramesFromSeconds(%v, %d) = %d, want %d", c.seconds, c.fps, got, c.want)
		}
	}
}

func TestTimeCounterRunsDown(t *testing.T) {
	tc := NewTimeCounter(0.05, 60) // 3 frames
	if tc.IsWorking() {
		t.Fatalf("new counter should be stopped")
	}
	tc.Restart()
	for i := 0; i < 3; i++ {
		if !tc.IsWorking() {
			t.Fatalf("expected working before frame %d", i)
		}
		tc.Next()
	}
	if tc.IsWorking() {
		t.Fatalf("expected stopped after max frames")
	}
	if tc.Delta() != 3 {
		t.Fatalf("expected delta 3, got %d", tc.Delta())
	}
	tc.Next()
	if tc.Delta() != 3 {
		t.Fatalf("Next on a stopped counter must not underflow")
	}
}

func TestFrameCounterCycle(t *testing.T) {
	// 3 frames switching every frame at 60 fps.
	fc := NewFrameCounter(3, 1.0/60, 60)
	if !fc.IsEnd() {
		t.Fatalf("new frame counter should be idle")
	}

	var indices []int
	var ends, lasts int
	for i := 0; i < 6; i++ {
		fc.Next()
		indices = append(indices, fc.Index())
		if fc.IsEnd() {
			ends++
		}
		if fc.IsLastFrame() {
			lasts++
		}
	}
	want := []int{1, 2, 0, 1, 2, 0}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", indices, want)
		}
	}
	if ends != 2 {
		t.Fatalf("expected 2 wraps, got %d", ends)
	}
	if lasts != 4 {
		t.Fatalf("expected last-frame signal on 4 ticks, got %d", lasts)
	}
}

func TestFrameCounterStartPlaysOnce(t *testing.T) {
	fc := NewFrameCounter(2, 1.0/60, 60)
	fc.Start()
	if fc.IsEnd() {
		t.Fatalf("Start should leave the idle state")
	}
	fc.Next()
	if fc.IsEnd() {
		t.Fatalf("still playing at index %d", fc.Index())
	}
	fc.Next()
	if !fc.IsEnd() || fc.Index() != 0 {
		t.Fatalf("expected wrap to idle, got end=%v index=%d", fc.IsEnd(), fc.Index())
	}
}

func TestFrameCounterSlowDelay(t *testing.T) {
	fc := NewFrameCounter(4, 0.1, 60) // advance every 6 frames
	for i := 0; i < 5; i++ {
		fc.Next()
	}
	if fc.Index() != 0 {
		t.Fatalf("expected index 0 before the delay elapses, got %d", fc.Index())
	}
	fc.Next()
	if fc.Index() != 1 {
		t.Fatalf("expected index 1, got %d", fc.Index())
	}
}
