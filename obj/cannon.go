package obj

import (
	"github.com/milk9111/pixel/component"
	"github.com/milk9111/pixel/levels"
	"github.com/milk9111/pixel/prefabs"
)

// Cannon fires a cannonball toward EndX once per shoot cycle.
type Cannon struct {
	ObjectBase
	endX   int
	dir    int
	spawnX int
	spec   prefabs.CannonSpec
	shoot  *component.FrameCounter
	fired  bool
}

func newCannon(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	endX, err := args.Int("end_x")
	if err != nil {
		return nil, err
	}
	spec := m.specs.Enemies.Cannon
	c := &Cannon{
		ObjectBase: NewBase(KindCannon, x, y, spec.Width, spec.Height, ZBlock, AttrBlock),
		endX:       endX,
		dir:        1,
		spec:       spec,
		shoot:      component.NewFrameCounter(spec.ShootAnimation.Frames, spec.ShootAnimation.Delay, m.FPS()),
	}
	c.spawnX = c.Rect.Right() - spec.Ball.Width
	if endX < c.Rect.CenterX() {
		c.dir = -1
		c.spawnX = c.Rect.Left()
	}
	return c, nil
}

// Update advances the shoot cycle and fires on its shoot frame, once.
func (c *Cannon) Update(m *Map) {
	c.shoot.Next()
	if c.shoot.Index() != c.spec.ShootFrameIndex {
		c.fired = false
		return
	}
	if c.fired {
		return
	}
	c.fired = true
	m.Play(SoundCannon)
	m.Spawn(NewCannonball(m, c.spawnX, c.Rect.Y()+c.spec.BallSpawnYIndent, c.endX, c.dir))
}

func (c *Cannon) Draw(m *Map, r Renderer) {
	drawDefault(c, m, r, DrawOpts{Frame: c.shoot.Index(), FlipX: c.dir < 0})
}

// Cannonball flies toward endX, slowing from its start speed to its end
// speed, and bursts on reaching endX or hitting the player.
type Cannonball struct {
	ObjectBase
	endX  int
	dir   int
	speed float64
	spec  prefabs.CannonballSpec
	death *component.FrameCounter
}

// NewCannonball builds a ball at x, y heading in dir.
func NewCannonball(m *Map, x, y, endX, dir int) *Cannonball {
	spec := m.specs.Enemies.Cannon.Ball
	return &Cannonball{
		ObjectBase: NewBase(KindCannonball, x, y, spec.Width, spec.Height, ZMoving),
		endX:       endX,
		dir:        dir,
		speed:      spec.StartSpeed,
		spec:       spec,
		death:      component.NewFrameCounter(spec.DeathAnimation.Frames, spec.DeathAnimation.Delay, m.FPS()),
	}
}

// Bursting reports whether the burst animation is playing.
func (b *Cannonball) Bursting() bool { return !b.death.IsEnd() }

func (b *Cannonball) Speed() float64 { return b.speed }

func (b *Cannonball) Step(*Map) {
	if b.Bursting() {
		return
	}
	b.Rect.SetFloatX(b.Rect.FloatX() + b.speed*float64(b.dir))
	if b.speed > b.spec.EndSpeed {
		b.speed = max(b.speed-b.spec.SpeedDecrease, b.spec.EndSpeed)
	}
}

func (b *Cannonball) OnPlayerCollision(m *Map) {
	if b.Bursting() {
		return
	}
	m.Player().Hit(m)
	b.death.Start()
}

func (b *Cannonball) Update(*Map) {
	if !b.Bursting() {
		if (b.dir > 0 && b.Rect.Right() >= b.endX) || (b.dir < 0 && b.Rect.Left() <= b.endX) {
			b.death.Start()
		}
		return
	}
	b.death.Next()
	if b.death.IsEnd() {
		b.ToDelete = true
	}
}

func (b *Cannonball) Draw(m *Map, r Renderer) {
	frame := 0
	if b.Bursting() {
		frame = 1 + b.death.Index()
	}
	drawDefault(b, m, r, DrawOpts{Frame: frame})
}
