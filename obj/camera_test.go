package obj

import (
	"math"
	"testing"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/levels"
)

func TestCameraClampStaysInsideLevel(t *testing.T) {
	cam := NewCamera(400, 200, 0.3, 0.2)
	cam.Reset(1000, 600, nil)

	targets := []common.Rect{
		{X: -500, Y: -500, W: 10, H: 10},
		{X: 5000, Y: 5000, W: 10, H: 10},
		{X: 500, Y: 300, W: 30, H: 58},
		{X: 0, Y: 590, W: 10, H: 10},
	}
	for _, target := range targets {
		for i := 0; i < 200; i++ {
			cam.Update(target)
			r := cam.Rect()
			if r.X < 0 || r.Right() > 1000 {
				t.Fatalf("target %+v: x span [%d,%d] leaves the level", target, r.X, r.Right())
			}
			if r.Y < 0 || r.Bottom() > 600 {
				t.Fatalf("target %+v: y span [%d,%d] leaves the level", target, r.Y, r.Bottom())
			}
		}
	}
}

func TestCameraSmallLevelPinsToOrigin(t *testing.T) {
	cam := NewCamera(400, 200, 1, 1)
	cam.Reset(300, 100, nil)
	cam.MoveQuick(common.Rect{X: 250, Y: 80, W: 10, H: 10})
	if x, y := cam.Position(); x != 0 || y != 0 {
		t.Fatalf("expected (0,0), got (%v,%v)", x, y)
	}
}

func TestCameraSmoothingConverges(t *testing.T) {
	cam := NewCamera(400, 200, 0.05, 0.03)
	cam.Reset(4000, 2000, nil)
	target := common.Rect{X: 2000, Y: 1000, W: 30, H: 58}

	cam.Update(target)
	tx, ty := cam.Target()
	prevX, prevY := math.Inf(1), math.Inf(1)
	for i := 0; i < 2000; i++ {
		x, y := cam.Position()
		dx, dy := math.Abs(tx-x), math.Abs(ty-y)
		if dx > 1e-9 && dx >= prevX {
			t.Fatalf("frame %d: x distance %v did not shrink from %v", i, dx, prevX)
		}
		if dy > 1e-9 && dy >= prevY {
			t.Fatalf("frame %d: y distance %v did not shrink from %v", i, dy, prevY)
		}
		if x > tx || y > ty {
			t.Fatalf("frame %d: overshoot to (%v,%v) past (%v,%v)", i, x, y, tx, ty)
		}
		prevX, prevY = dx, dy
		cam.Update(target)
	}
	if x, y := cam.Position(); math.Abs(tx-x) > 1e-6 || math.Abs(ty-y) > 1e-6 {
		t.Fatalf("camera did not converge: (%v,%v) vs (%v,%v)", x, y, tx, ty)
	}
}

func TestCameraBoundingLineCeiling(t *testing.T) {
	cam := NewCamera(400, 200, 1, 1)
	cam.Reset(2000, 1000, []levels.BoundingLine{{XStart: 0, XEnd: 400, Y: 300}})

	cam.MoveQuick(common.Rect{X: 100, Y: 900, W: 30, H: 58})
	if cam.Ceiling() != 100 {
		t.Fatalf("expected ceiling 100, got %d", cam.Ceiling())
	}
	if r := cam.Rect(); r.Y != 100 || r.Bottom() > 300 {
		t.Fatalf("expected camera clamped above the line, got y=%d", r.Y)
	}

	// Outside the line's span the level bottom applies again.
	cam.MoveQuick(common.Rect{X: 1500, Y: 900, W: 30, H: 58})
	if cam.Ceiling() != 800 {
		t.Fatalf("expected ceiling 800, got %d", cam.Ceiling())
	}
	if r := cam.Rect(); r.Y != 800 {
		t.Fatalf("expected camera at the level bottom, got y=%d", r.Y)
	}
}

func TestCameraJumpAcrossLineEnds(t *testing.T) {
	lines := []levels.BoundingLine{{XStart: 0, XEnd: 400, Y: 300}}
	cases := []struct {
		name         string
		from, to     common.Rect
		wantX, wantY int
		onScreen     bool
	}{
		{"out of the line", common.Rect{X: 100, Y: 100, W: 30, H: 58}, common.Rect{X: 1500, Y: 900, W: 30, H: 58}, 1315, 800, true},
		// the line caps the view even though the target sits below it
		{"back under the line", common.Rect{X: 1500, Y: 900, W: 30, H: 58}, common.Rect{X: 100, Y: 900, W: 30, H: 58}, 0, 100, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(400, 200, 0.1, 0.1)
			cam.Reset(2000, 1000, lines)
			cam.MoveQuick(c.from)
			cam.MoveQuick(c.to)
			if r := cam.Rect(); r.X != c.wantX || r.Y != c.wantY {
				t.Fatalf("got (%d,%d), want (%d,%d)", r.X, r.Y, c.wantX, c.wantY)
			}
			if c.onScreen && !cam.Rect().Intersects(c.to) {
				t.Fatalf("target %+v is off screen %+v", c.to, cam.Rect())
			}
		})
	}

	// Smoothed updates aim at the destination's ceiling from the first frame.
	cam := NewCamera(400, 200, 0.1, 0.1)
	cam.Reset(2000, 1000, lines)
	cam.Update(common.Rect{X: 1500, Y: 900, W: 30, H: 58})
	if _, ty := cam.Target(); ty != 800 {
		t.Fatalf("expected target y 800, got %v", ty)
	}
}

func TestCameraTransforms(t *testing.T) {
	cam := NewCamera(100, 100, 1, 1)
	cam.Reset(1000, 1000, nil)
	cam.MoveQuick(common.Rect{X: 300, Y: 400, W: 0, H: 0})

	x, y := cam.ApplyXY(300, 400)
	if x != 50 || y != 50 {
		t.Fatalf("expected (50,50), got (%d,%d)", x, y)
	}
	wx, wy := cam.ScreenToWorld(x, y)
	if wx != 300 || wy != 400 {
		t.Fatalf("expected round trip to (300,400), got (%d,%d)", wx, wy)
	}
}
