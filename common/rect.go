package common

import "math"

// Rect is an integer axis-aligned rectangle used for draw and collision calls.
type Rect struct {
	X, Y int
	W, H int
}

func (r Rect) Right() int   { return r.X + r.W }
func (r Rect) Bottom() int  { return r.Y + r.H }
func (r Rect) CenterX() int { return r.X + r.W/2 }
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Intersects reports whether r and other overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Moved returns r translated by dx, dy.
func (r Rect) Moved(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// FloatRect is a Rect that also keeps a fractional top-left so slow motion
// accumulates. X == floor(FloatX) and Y == floor(FloatY) hold after every
// mutation; integer setters resync the fractional fields.
type FloatRect struct {
	x, y   int
	w, h   int
	fx, fy float64
}

// NewFloatRect builds a FloatRect at an integer position.
func NewFloatRect(x, y, w, h int) *FloatRect {
	return &FloatRect{x: x, y: y, w: w, h: h, fx: float64(x), fy: float64(y)}
}

// FloatRectFrom copies an integer rect.
func FloatRectFrom(r Rect) *FloatRect {
	return NewFloatRect(r.X, r.Y, r.W, r.H)
}

func (r *FloatRect) X() int           { return r.x }
func (r *FloatRect) Y() int           { return r.y }
func (r *FloatRect) W() int           { return r.w }
func (r *FloatRect) H() int           { return r.h }
func (r *FloatRect) FloatX() float64  { return r.fx }
func (r *FloatRect) FloatY() float64  { return r.fy }
func (r *FloatRect) Left() int        { return r.x }
func (r *FloatRect) Top() int         { return r.y }
func (r *FloatRect) Right() int       { return r.x + r.w }
func (r *FloatRect) Bottom() int      { return r.y + r.h }
func (r *FloatRect) CenterX() int     { return r.x + r.w/2 }
func (r *FloatRect) CenterY() int     { return r.y + r.h/2 }
func (r *FloatRect) Rect() Rect       { return Rect{X: r.x, Y: r.y, W: r.w, H: r.h} }
func (r *FloatRect) Copy() *FloatRect { c := *r; return &c }

// SetFloatX sets the fractional x and floors it into the integer x.
func (r *FloatRect) SetFloatX(v float64) {
	r.fx = v
	r.x = int(math.Floor(v))
}

// SetFloatY sets the fractional y and floors it into the integer y.
func (r *FloatRect) SetFloatY(v float64) {
	r.fy = v
	r.y = int(math.Floor(v))
}

// AddFloat moves the rect by a fractional delta.
func (r *FloatRect) AddFloat(dx, dy float64) {
	if dx != 0 {
		r.SetFloatX(r.fx + dx)
	}
	if dy != 0 {
		r.SetFloatY(r.fy + dy)
	}
}

func (r *FloatRect) SetX(v int) {
	r.x = v
	r.fx = float64(v)
}

func (r *FloatRect) SetY(v int) {
	r.y = v
	r.fy = float64(v)
}

func (r *FloatRect) SetLeft(v int)    { r.SetX(v) }
func (r *FloatRect) SetTop(v int)     { r.SetY(v) }
func (r *FloatRect) SetRight(v int)   { r.SetX(v - r.w) }
func (r *FloatRect) SetBottom(v int)  { r.SetY(v - r.h) }
func (r *FloatRect) SetCenterX(v int) { r.SetX(v - r.w/2) }
func (r *FloatRect) SetCenterY(v int) { r.SetY(v - r.h/2) }

// SetSize changes the size keeping the top-left.
func (r *FloatRect) SetSize(w, h int) {
	r.w = w
	r.h = h
}

// Intersects reports whether the integer rect overlaps other.
func (r *FloatRect) Intersects(other Rect) bool {
	return r.Rect().Intersects(other)
}
