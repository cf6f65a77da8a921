package obj

import (
	"math"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/levels"
)

// Camera follows a target rect across the level. Its visible rect keeps a
// fractional top-left that eases toward the clamped target offset.
type Camera struct {
	rect *common.FloatRect

	// smoothing factors (0..1). higher -> faster follow.
	xSmooth float64
	ySmooth float64

	levelW int
	levelH int
	lines  []levels.BoundingLine

	targetX float64
	targetY float64
}

// NewCamera creates a camera with the given screen size and smoothing.
func NewCamera(screenW, screenH int, xSmooth, ySmooth float64) *Camera {
	c := &Camera{rect: common.NewFloatRect(0, 0, screenW, screenH)}
	c.SetSmooth(xSmooth, ySmooth)
	return c
}

func (c *Camera) SetSmooth(x, y float64) {
	c.xSmooth = common.Clamp(x, 0, 1)
	c.ySmooth = common.Clamp(y, 0, 1)
}

// Reset records the level extent and its optional bounding lines.
func (c *Camera) Reset(levelW, levelH int, lines []levels.BoundingLine) {
	c.levelW = levelW
	c.levelH = levelH
	c.lines = append(c.lines[:0], lines...)
}

// Rect returns a copy of the visible rect in world space.
func (c *Camera) Rect() common.Rect { return c.rect.Rect() }

// Position returns the fractional top-left of the visible rect.
func (c *Camera) Position() (float64, float64) { return c.rect.FloatX(), c.rect.FloatY() }

// Target returns the clamped offset computed by the last Update or MoveQuick.
func (c *Camera) Target() (float64, float64) { return c.targetX, c.targetY }

// Ceiling is the largest allowed top y for the current horizontal span.
func (c *Camera) Ceiling() int {
	return c.ceilingAt(c.rect.Left())
}

// ceilingAt is the largest allowed top y for a view starting at left: the
// first bounding line fully containing the span caps it, otherwise the
// level bottom does.
func (c *Camera) ceilingAt(left int) int {
	right := left + c.rect.W()
	for _, l := range c.lines {
		if l.XStart <= left && right <= l.XEnd {
			return min(l.Y, c.levelH) - c.rect.H()
		}
	}
	return c.levelH - c.rect.H()
}

func (c *Camera) computeTarget(target common.Rect) {
	x := float64(target.CenterX() - c.rect.W()/2)
	y := float64(target.CenterY() - c.rect.H()/2)
	// Levels narrower or shorter than the screen pin to the origin.
	c.targetX = common.Clamp(x, 0, float64(c.levelW-c.rect.W()))
	// The ceiling follows the span the view is heading to, not the one it
	// leaves, so a jump across a line end lands on the right side of it.
	c.targetY = common.Clamp(y, 0, float64(c.ceilingAt(int(math.Floor(c.targetX)))))
}

// Update moves a fraction of the remaining distance toward target.
func (c *Camera) Update(target common.Rect) {
	c.computeTarget(target)
	fx, fy := c.rect.FloatX(), c.rect.FloatY()
	c.rect.SetFloatX(fx + (c.targetX-fx)*c.xSmooth)
	c.rect.SetFloatY(fy + (c.targetY-fy)*c.ySmooth)
}

// MoveQuick jumps straight to the clamped target. Use after a level load so
// the view doesn't pan in from the origin.
func (c *Camera) MoveQuick(target common.Rect) {
	c.computeTarget(target)
	c.rect.SetFloatX(c.targetX)
	c.rect.SetFloatY(c.targetY)
}

// ApplyXY converts world coordinates to screen coordinates.
func (c *Camera) ApplyXY(x, y int) (int, int) {
	return x - c.rect.X(), y - c.rect.Y()
}

// ApplyRect converts a world rect to screen space.
func (c *Camera) ApplyRect(r common.Rect) common.Rect {
	return r.Moved(-c.rect.X(), -c.rect.Y())
}

// ScreenToWorld is the inverse of ApplyXY.
func (c *Camera) ScreenToWorld(x, y int) (int, int) {
	return x + c.rect.X(), y + c.rect.Y()
}
