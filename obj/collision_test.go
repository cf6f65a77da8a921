package obj

import (
	"testing"

	"github.com/milk9111/pixel/common"
)

func TestMoverStopsAtBlockEdge(t *testing.T) {
	block := common.Rect{X: 100, Y: 100, W: 40, H: 40}
	cases := []struct {
		name   string
		x, y   int
		vx, vy float64
		check  func(r *common.FloatRect) bool
		ground bool
	}{
		{"right", 60, 110, 7.5, 0, func(r *common.FloatRect) bool { return r.Right() == block.X }, false},
		{"left", 145, 110, -9, 0, func(r *common.FloatRect) bool { return r.Left() == block.Right() }, false},
		{"down", 110, 60, 0, 11, func(r *common.FloatRect) bool { return r.Bottom() == block.Y }, true},
		{"up", 110, 145, 0, -8.25, func(r *common.FloatRect) bool { return r.Top() == block.Bottom() }, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mv := Mover{Rect: common.NewFloatRect(c.x, c.y, 30, 30), VX: c.vx, VY: c.vy}
			for i := 0; i < 10; i++ {
				mv.MoveAndCollide([]common.Rect{block})
				if mv.VX == 0 && mv.VY == 0 {
					break
				}
			}
			if !c.check(mv.Rect) {
				t.Fatalf("edge not snapped: %+v", mv.Rect.Rect())
			}
			if mv.Rect.Intersects(block) {
				t.Fatalf("mover penetrates block")
			}
			if mv.VX != 0 || mv.VY != 0 {
				t.Fatalf("velocity not zeroed: %v,%v", mv.VX, mv.VY)
			}
			if mv.OnGround != c.ground {
				t.Fatalf("OnGround = %v, want %v", mv.OnGround, c.ground)
			}
			if mv.Rect.X() != int(mv.Rect.FloatX()) || mv.Rect.Y() != int(mv.Rect.FloatY()) {
				t.Fatalf("float position not resynced")
			}
		})
	}
}

func TestMoverSlidesAlongFloor(t *testing.T) {
	floor := []common.Rect{
		{X: 0, Y: 100, W: 40, H: 40},
		{X: 40, Y: 100, W: 40, H: 40},
	}
	mv := Mover{Rect: common.NewFloatRect(10, 70, 30, 30), VX: 5, VY: 2}
	mv.MoveAndCollide(floor)
	if mv.Rect.X() != 15 {
		t.Fatalf("expected x 15, got %d", mv.Rect.X())
	}
	if mv.Rect.Bottom() != 100 || !mv.OnGround {
		t.Fatalf("expected to rest on the floor, got bottom %d ground %v", mv.Rect.Bottom(), mv.OnGround)
	}
}
