package obj

import (
	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/component"
	"github.com/milk9111/pixel/levels"
	"github.com/milk9111/pixel/prefabs"
)

// Patrol walks back and forth between StartX and EndX and knocks the player
// back on contact.
type Patrol struct {
	StartX   int
	EndX     int
	VX       float64
	XPushing float64
	YPushing float64
}

func readPatrol(args levels.Args, spec prefabs.PatrolSpec) (Patrol, error) {
	start, err := args.Int("start_x")
	if err != nil {
		return Patrol{}, err
	}
	end, err := args.Int("end_x")
	if err != nil {
		return Patrol{}, err
	}
	if end < start {
		start, end = end, start
	}
	return Patrol{
		StartX:   start,
		EndX:     end,
		VX:       spec.Speed,
		XPushing: spec.XPushing,
		YPushing: spec.YPushing,
	}, nil
}

// Move turns around at a bound and advances by VX without leaving
// [StartX, EndX].
func (pt *Patrol) Move(r *common.FloatRect) {
	switch {
	case r.Left() <= pt.StartX && pt.VX < 0:
		pt.VX = -pt.VX
	case r.Right() >= pt.EndX && pt.VX > 0:
		pt.VX = -pt.VX
	}
	r.SetFloatX(r.FloatX() + pt.VX)
	if r.FloatX() < float64(pt.StartX) {
		r.SetLeft(pt.StartX)
	} else if r.Right() > pt.EndX {
		r.SetRight(pt.EndX)
	}
}

// Knock hits the player pushing it away from r.
func (pt *Patrol) Knock(m *Map, r *common.FloatRect) {
	if p := m.Player(); p != nil {
		p.Knock(m, pt.XPushing, pt.YPushing, r.CenterX())
	}
}

// PatrolEnemy is a plain patrolling enemy such as the bat.
type PatrolEnemy struct {
	ObjectBase
	Patrol
	anim *component.FrameCounter
}

func (e *PatrolEnemy) Step(*Map) { e.Patrol.Move(e.Rect) }

func (e *PatrolEnemy) Update(*Map) { e.anim.Next() }

func (e *PatrolEnemy) OnPlayerCollision(m *Map) { e.Knock(m, e.Rect) }

func (e *PatrolEnemy) Draw(m *Map, r Renderer) {
	drawDefault(e, m, r, DrawOpts{Frame: e.anim.Index(), FlipX: e.VX < 0})
}

func newPatrolEnemy(m *Map, kind Kind, spec prefabs.PatrolSpec, args levels.Args) (*PatrolEnemy, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	pt, err := readPatrol(args, spec)
	if err != nil {
		return nil, err
	}
	return &PatrolEnemy{
		ObjectBase: NewBase(kind, x, y, spec.Width, spec.Height, ZMoving),
		Patrol:     pt,
		anim:       component.NewFrameCounter(spec.Animation.Frames, spec.Animation.Delay, m.FPS()),
	}, nil
}

func newBat(m *Map, args levels.Args) (Object, error) {
	return newPatrolEnemy(m, KindBat, m.specs.Enemies.Bat, args)
}

// Slug patrols until the player lands on it hard enough, then plays its
// death animation and disappears.
type Slug struct {
	PatrolEnemy
	death *component.FrameCounter
	spec  prefabs.SlugSpec
}

func newSlug(m *Map, args levels.Args) (Object, error) {
	spec := m.specs.Enemies.Slug
	e, err := newPatrolEnemy(m, KindSlug, spec.PatrolSpec, args)
	if err != nil {
		return nil, err
	}
	e.Attrs.Put(AttrSlug)
	return &Slug{
		PatrolEnemy: *e,
		death:       component.NewFrameCounter(spec.DeathAnimation.Frames, spec.DeathAnimation.Delay, m.FPS()),
		spec:        spec,
	}, nil
}

// Dying reports whether the death animation is playing.
func (s *Slug) Dying() bool { return !s.death.IsEnd() }

func (s *Slug) Step(m *Map) {
	if !s.Dying() {
		s.PatrolEnemy.Step(m)
	}
}

func (s *Slug) OnPlayerCollision(m *Map) {
	p := m.Player()
	if p.VY() >= s.spec.PlayerYVelForDeath {
		if !p.InGodMode() && !s.Dying() {
			p.JumpFrom(-s.spec.YPushingAfterDeath)
			s.death.Start()
			m.Play(SoundSlug)
		}
		return
	}
	if !s.Dying() {
		s.Knock(m, s.Rect)
	}
}

func (s *Slug) Update(*Map) {
	if !s.Dying() {
		s.anim.Next()
		return
	}
	s.death.Next()
	if s.death.IsEnd() {
		s.ToDelete = true
	}
}

func (s *Slug) Draw(m *Map, r Renderer) {
	if !s.Dying() {
		s.PatrolEnemy.Draw(m, r)
		return
	}
	// 100 + frame selects the death strip.
	drawDefault(s, m, r, DrawOpts{Frame: 100 + s.death.Index(), FlipX: s.VX < 0})
}

// Skeleton stops and swings when the player touches it. Only the swing's
// attack frame hurts.
type Skeleton struct {
	PatrolEnemy
	attack    *component.FrameCounter
	attackIdx int
	attackDir int
}

func newSkeleton(m *Map, args levels.Args) (Object, error) {
	spec := m.specs.Enemies.Skeleton
	e, err := newPatrolEnemy(m, KindSkeleton, spec.PatrolSpec, args)
	if err != nil {
		return nil, err
	}
	return &Skeleton{
		PatrolEnemy: *e,
		attack:      component.NewFrameCounter(spec.AttackAnimation.Frames, spec.AttackAnimation.Delay, m.FPS()),
		attackIdx:   spec.AttackFrameIndex,
		attackDir:   1,
	}, nil
}

// Attacking reports whether the swing animation is playing.
func (s *Skeleton) Attacking() bool { return !s.attack.IsEnd() }

func (s *Skeleton) Step(m *Map) {
	if !s.Attacking() {
		s.PatrolEnemy.Step(m)
	}
}

func (s *Skeleton) OnPlayerCollision(m *Map) {
	if s.attack.Index() == s.attackIdx {
		s.Knock(m, s.Rect)
	}
	if !s.Attacking() {
		s.attack.Start()
		s.attackDir = 1
		if m.Player().Rect.CenterX() < s.Rect.CenterX() {
			s.attackDir = -1
		}
	}
}

func (s *Skeleton) Update(*Map) {
	if s.Attacking() {
		s.attack.Next()
		return
	}
	s.anim.Next()
}

func (s *Skeleton) Draw(m *Map, r Renderer) {
	if !s.Attacking() {
		s.PatrolEnemy.Draw(m, r)
		return
	}
	drawDefault(s, m, r, DrawOpts{Frame: 100 + s.attack.Index(), FlipX: s.attackDir < 0})
}

// Spider hangs from a thread and drops while the player is below it inside
// its reaction area, climbing back up otherwise.
type Spider struct {
	ObjectBase
	startY   int
	endY     int
	vy       float64
	speed    float64
	reaction common.Rect
	anim     *component.FrameCounter
}

func newSpider(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	endY, err := args.Int("end_y")
	if err != nil {
		return nil, err
	}
	spec := m.specs.Enemies.Spider
	return &Spider{
		ObjectBase: NewBase(KindSpider, x, y, spec.Width, spec.Height, ZMoving),
		startY:     y,
		endY:       endY,
		speed:      spec.Speed,
		reaction:   common.Rect{X: x, Y: y, W: spec.Width, H: endY - y},
		anim:       component.NewFrameCounter(spec.Animation.Frames, spec.Animation.Delay, m.FPS()),
	}, nil
}

func (s *Spider) Step(m *Map) {
	s.vy = 0
	p := m.Player()
	if p != nil && s.reaction.Intersects(p.Rect.Rect()) {
		if s.Rect.Bottom() <= p.Rect.Y() {
			s.vy = s.speed
		}
	} else if s.Rect.Y() > s.startY {
		s.vy = -s.speed
	}
	if s.vy == 0 {
		return
	}
	s.Rect.SetFloatY(s.Rect.FloatY() + s.vy)
	if s.Rect.Y() < s.startY {
		s.Rect.SetY(s.startY)
	}
}

func (s *Spider) Update(*Map) {
	if s.vy != 0 {
		s.anim.Next()
	}
}

func (s *Spider) OnPlayerCollision(m *Map) {
	m.Player().Hit(m)
}

// threadW is the width of the spider's thread.
const threadW = 2

func (s *Spider) Draw(m *Map, r Renderer) {
	thread := common.Rect{
		X: s.Rect.X() + s.Rect.W()/2 - threadW/2,
		Y: s.startY,
		W: threadW,
		H: s.Rect.Y() - s.startY + s.Rect.H()/2,
	}
	r.DrawSprite(KindSpiderThread, m.Camera.ApplyRect(thread), DrawOpts{})
	frame := 0
	if s.vy != 0 {
		frame = 1 + s.anim.Index()
	}
	drawDefault(s, m, r, DrawOpts{Frame: frame})
}
