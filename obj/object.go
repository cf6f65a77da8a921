package obj

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/milk9111/pixel/common"
)

// Attr tags an object for filtered grid queries.
type Attr int

const (
	AttrBlock Attr = iota
	AttrPlayer
	AttrSlug
)

// Draw layers. Higher values draw on top.
const (
	ZTree       = -100
	ZBackground = -10
	ZItem       = 0
	ZWater      = 1
	ZMoving     = 5
	ZOverlay    = 9
	ZBlock      = 10
	ZFinish     = 99
	ZHint       = 100
	ZTakenCoin  = 999
)

// Kind names what an object looks like. Renderers pick sprites or colors by it.
type Kind string

const (
	KindPlayer           Kind = "Player"
	KindDirt             Kind = "Dirt"
	KindBackgroundDirt   Kind = "BackgroundDirt"
	KindBricks           Kind = "Bricks"
	KindBackgroundBricks Kind = "BackgroundBricks"
	KindBarrier          Kind = "InvisibleBarrier"
	KindTree             Kind = "Tree"
	KindWeb              Kind = "Web"
	KindOverlay          Kind = "Overlay"
	KindCoin             Kind = "Coin"
	KindChest            Kind = "Chest"
	KindHeart            Kind = "Heart"
	KindShield           Kind = "Shield"
	KindSpike            Kind = "Spike"
	KindLadder           Kind = "Ladder"
	KindWater            Kind = "Water"
	KindFinish           Kind = "Finish"
	KindHint             Kind = "Hint"
	KindSlug             Kind = "Slug"
	KindBat              Kind = "Bat"
	KindSkeleton         Kind = "Skeleton"
	KindSpider           Kind = "Spider"
	KindSpiderThread     Kind = "SpiderThread"
	KindGhost            Kind = "Ghost"
	KindCannon           Kind = "Cannon"
	KindCannonball       Kind = "Cannonball"
)

// Object is anything the grid can hold.
type Object interface {
	Base() *ObjectBase
	// Update runs once per frame while the object is visible, after Step
	// and the player collision check.
	Update(m *Map)
}

// Drawable objects draw themselves instead of the default sprite.
type Drawable interface {
	Draw(m *Map, r Renderer)
}

// PlayerInteractive objects are told every frame they overlap the player.
type PlayerInteractive interface {
	OnPlayerCollision(m *Map)
}

// SelfMoving objects integrate their own motion before Update.
type SelfMoving interface {
	Step(m *Map)
}

// ObjectBase carries the state every object shares.
type ObjectBase struct {
	Rect     *common.FloatRect
	Z        int
	Attrs    mapset.Set[Attr]
	ToDelete bool
	Kind     Kind
}

// NewBase builds an ObjectBase at x, y.
func NewBase(kind Kind, x, y, w, h, z int, attrs ...Attr) ObjectBase {
	return ObjectBase{
		Rect:  common.NewFloatRect(x, y, w, h),
		Z:     z,
		Attrs: mapset.Of(attrs...),
		Kind:  kind,
	}
}

func (b *ObjectBase) Base() *ObjectBase { return b }

// Update is the no-op default.
func (b *ObjectBase) Update(*Map) {}

// HasAttrs reports whether every attr is set.
func (b *ObjectBase) HasAttrs(attrs ...Attr) bool {
	for _, a := range attrs {
		if !b.Attrs.Has(a) {
			return false
		}
	}
	return true
}

// Tick runs one frame of o: Step, then the player overlap check, then
// Update. The player never collides with itself, and objects marked for
// deletion stop interacting.
func Tick(o Object, m *Map) {
	if mv, ok := o.(SelfMoving); ok {
		mv.Step(m)
	}
	if pi, ok := o.(PlayerInteractive); ok && overlapsPlayer(o, m) {
		pi.OnPlayerCollision(m)
	}
	o.Update(m)
}

func overlapsPlayer(o Object, m *Map) bool {
	p := m.Player()
	if p == nil || Object(p) == o || o.Base().ToDelete {
		return false
	}
	return o.Base().Rect.Intersects(p.Rect.Rect())
}

// drawDefault draws the object's kind at its camera-space rect.
func drawDefault(o Object, m *Map, r Renderer, opts DrawOpts) {
	b := o.Base()
	r.DrawSprite(b.Kind, m.Camera.ApplyRect(b.Rect.Rect()), opts)
}
