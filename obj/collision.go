package obj

import "github.com/milk9111/pixel/common"

// Mover is an axis-separated mover resolved against block rects. X moves and
// resolves fully before Y. Each resolution snaps an edge, so overlapping
// blocks that share edges give the same result in any order.
type Mover struct {
	Rect     *common.FloatRect
	VX       float64
	VY       float64
	OnGround bool
}

// MoveX advances along X and resolves against blocks.
func (mv *Mover) MoveX(blocks []common.Rect) {
	if mv.VX == 0 {
		return
	}
	mv.Rect.SetFloatX(mv.Rect.FloatX() + mv.VX)
	mv.resolve(blocks, mv.VX, 0)
}

// MoveY advances along Y and resolves against blocks. Landing on a block
// sets OnGround.
func (mv *Mover) MoveY(blocks []common.Rect) {
	if mv.VY == 0 {
		return
	}
	mv.Rect.SetFloatY(mv.Rect.FloatY() + mv.VY)
	mv.resolve(blocks, 0, mv.VY)
}

// MoveAndCollide runs MoveX then MoveY.
func (mv *Mover) MoveAndCollide(blocks []common.Rect) {
	mv.MoveX(blocks)
	mv.MoveY(blocks)
}

func (mv *Mover) resolve(blocks []common.Rect, vx, vy float64) {
	for _, b := range blocks {
		if !mv.Rect.Intersects(b) {
			continue
		}
		switch {
		case vx > 0:
			mv.Rect.SetRight(b.X)
			mv.VX = 0
		case vx < 0:
			mv.Rect.SetLeft(b.Right())
			mv.VX = 0
		case vy > 0:
			mv.Rect.SetBottom(b.Y)
			mv.VY = 0
			mv.OnGround = true
		case vy < 0:
			mv.Rect.SetTop(b.Bottom())
			mv.VY = 0
		}
	}
}

// BlockRects collects the rects of the visible blocks.
func BlockRects(g *Grid) []common.Rect {
	blocks := g.VisibleByAttrs(AttrBlock)
	out := make([]common.Rect, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Base().Rect.Rect())
	}
	return out
}
