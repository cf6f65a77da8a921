package obj

import (
	"math"

	"github.com/milk9111/pixel/component"
	"github.com/milk9111/pixel/levels"
	"github.com/milk9111/pixel/prefabs"
)

// Player is the controllable character. Environment objects set OnLadder
// and InWater each frame; they are cleared after the player's own update.
type Player struct {
	ObjectBase
	Body   Mover
	Health *component.Health

	spec prefabs.PlayerSpec

	OnLadder bool
	InWater  bool

	xPushing float64
	facing   int

	beWhiteFrames int
	flashing      *component.TimeCounter
	flashOn       bool
	goAnim        *component.FrameCounter
	standAnim     *component.FrameCounter
	climbAnim     *component.FrameCounter
}

func newPlayer(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	p := NewPlayer(m.specs.Player, m.FPS(), x, y)
	p.Health.OnDamage = func(*component.Health) { m.Play(SoundHit) }
	p.Health.OnDeath = func(*component.Health) {
		m.log.WithField("frame", m.frame).Info("player died")
	}
	m.setPlayer(p)
	return p, nil
}

// NewPlayer builds a player at x, y.
func NewPlayer(spec prefabs.PlayerSpec, fps, x, y int) *Player {
	p := &Player{
		ObjectBase:    NewBase(KindPlayer, x, y, spec.Width, spec.Height, ZMoving, AttrPlayer),
		Health:        component.NewHealth(spec.MaxHP, spec.GodModeSeconds, fps),
		spec:          spec,
		facing:        1,
		beWhiteFrames: component.FramesFromSeconds(spec.BeWhiteSeconds, fps),
		flashing:      component.NewTimeCounter(spec.FlashingSeconds, fps),
		goAnim:        component.NewFrameCounter(spec.GoAnimation.Frames, spec.GoAnimation.Delay, fps),
		standAnim:     component.NewFrameCounter(spec.StandAnimation.Frames, spec.StandAnimation.Delay, fps),
		climbAnim:     component.NewFrameCounter(spec.GoAnimation.Frames, spec.GoAnimation.Delay, fps),
	}
	p.Body.Rect = p.Rect
	return p
}

func (p *Player) VX() float64 { return p.Body.VX }
func (p *Player) VY() float64 { return p.Body.VY }

// HasShield reports whether the next hit is absorbed.
func (p *Player) HasShield() bool { return p.Health.Shield }

// AddShield gives the player a shield.
func (p *Player) AddShield() { p.Health.Shield = true }

// InGodMode reports whether hits are ignored.
func (p *Player) InGodMode() bool { return p.Health.InGodMode() }

// Pushing returns the remaining knockback velocity.
func (p *Player) Pushing() float64 { return p.xPushing }

// Step reads input and moves the player against the visible blocks.
func (p *Player) Step(m *Map) {
	in := m.Input()
	if math.Abs(p.Body.VY) >= p.spec.FallingDetectionVel {
		p.Body.OnGround = false
	}
	p.updateVX(m, in)
	p.updateVY(in)

	blocks := BlockRects(m.Grid)
	p.Body.MoveX(blocks)
	p.clampToLevel(m)
	p.Body.MoveY(blocks)

	if p.Rect.Y() > m.levelH() {
		p.Health.Kill()
	}
}

func (p *Player) updateVX(m *Map, in InputState) {
	if p.xPushing != 0 {
		p.decreasePushing(m)
		p.Body.VX = p.xPushing
		return
	}
	p.Body.VX = 0
	if dir := in.Horizontal(); dir != 0 {
		p.Body.VX = float64(dir) * p.spec.Speed
		p.facing = dir
	}
	if p.OnLadder || p.InWater {
		p.Body.VX /= p.spec.WaterOrLadderFactor
	}
}

// decreasePushing decays knockback and cancels it at the level edges.
func (p *Player) decreasePushing(m *Map) {
	dec := p.spec.XPushingDeceleration
	if p.xPushing > 0 {
		p.xPushing -= dec
		if p.xPushing < 0 || p.Rect.Right() >= m.levelW() {
			p.xPushing = 0
		}
	} else {
		p.xPushing += dec
		if p.xPushing > 0 || p.Rect.Left() <= 0 {
			p.xPushing = 0
		}
	}
}

func (p *Player) updateVY(in InputState) {
	if p.OnLadder || p.InWater {
		p.Body.VY = 0
		switch {
		case in.WantsUp():
			p.Body.VY = -p.spec.Speed
		case p.OnLadder && in.Down:
			p.Body.VY = p.spec.Speed
		case p.InWater:
			p.Body.VY = p.spec.Speed / p.spec.WaterOrLadderFactor
		}
		return
	}
	if in.WantsUp() && p.Body.OnGround {
		p.Body.VY = -p.spec.JumpPower
	}
	p.Body.VY += p.spec.Gravity
}

func (p *Player) clampToLevel(m *Map) {
	if p.Rect.Left() <= 0 {
		p.Rect.SetLeft(0)
	}
	if w := m.levelW(); p.Rect.Right() >= w {
		p.Rect.SetRight(w)
	}
}

// Update advances animation and timers, then clears the environment flags
// set during the previous frame.
func (p *Player) Update(m *Map) {
	switch {
	case p.xPushing != 0:
		p.goAnim.Next()
	case p.OnLadder || (p.InWater && p.Body.VY < 0):
		if p.Body.VY != 0 {
			p.climbAnim.Next()
		}
	default:
		p.goAnim.Next()
		p.standAnim.Next()
	}

	p.Health.Tick()
	if p.Health.InGodMode() {
		p.flashing.Next()
		if !p.flashing.IsWorking() {
			p.flashOn = !p.flashOn
			p.flashing.Restart()
		}
	}
	p.OnLadder = false
	p.InWater = false
}

// Hit takes a shield or a hit point unless god mode is active.
func (p *Player) Hit(m *Map) {
	p.Health.Hit()
}

// Knock hits the player and pushes it away from enemyCenterX. The push
// applies even during god mode.
func (p *Player) Knock(m *Map, xPushing, yPushing float64, enemyCenterX int) {
	p.Hit(m)
	p.Body.VY = -yPushing
	switch cx := p.Rect.CenterX(); {
	case cx < enemyCenterX:
		p.xPushing = -xPushing
	case cx > enemyCenterX:
		p.xPushing = xPushing
	}
}

// JumpFrom bounces the player off a stomped enemy.
func (p *Player) JumpFrom(vy float64) {
	p.Body.VY = vy
}

// Heal restores one hit point.
func (p *Player) Heal() {
	p.Health.Heal(1)
}

// Draw flashes while in god mode.
func (p *Player) Draw(m *Map, r Renderer) {
	if p.Health.InGodMode() && !p.flashOn {
		return
	}
	opts := DrawOpts{
		FlipX: p.facing < 0,
		White: p.Health.InGodMode() && p.Health.GodModeElapsed() <= p.beWhiteFrames,
	}
	switch {
	case p.Body.VX != 0 || p.xPushing != 0:
		opts.Frame = p.goAnim.Index()
	case p.Body.OnGround:
		opts.Frame = p.standAnim.Index()
	}
	drawDefault(p, m, r, opts)
}
