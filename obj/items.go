package obj

import (
	"fmt"
	"math"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/component"
	"github.com/milk9111/pixel/levels"
)

// collectible is the persistent id of a one-shot item. Items whose id was
// saved by an earlier completion are refused at construction.
type collectible struct {
	id    int
	hasID bool
}

func readCollectible(m *Map, args levels.Args) (collectible, error) {
	key := "id_"
	if _, ok := args[key]; !ok {
		key = "id"
	}
	id, ok, err := args.OptInt(key)
	if err != nil {
		return collectible{}, err
	}
	if ok && m.ctx.IsRefused(id) {
		return collectible{}, fmt.Errorf("%w: item %d already collected", ErrCannotCreate, id)
	}
	return collectible{id: id, hasID: ok}, nil
}

func (c collectible) take(m *Map) {
	if c.hasID {
		m.ctx.Collect(c.id)
	}
}

// Coin flies to the HUD corner once taken and counts toward the save.
type Coin struct {
	ObjectBase
	collectible

	anim   *component.FrameCounter
	taken  bool
	flying *common.FloatRect
	speed  float64
}

func newCoin(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	c, err := readCollectible(m, args)
	if err != nil {
		return nil, err
	}
	coin := NewCoin(m, x, y)
	coin.collectible = c
	return coin, nil
}

// NewCoin builds an untaken coin without an id.
func NewCoin(m *Map, x, y int) *Coin {
	spec := m.specs.Items.Coin
	return &Coin{
		ObjectBase: NewBase(KindCoin, x, y, spec.Width, spec.Height, ZItem),
		anim:       component.NewFrameCounter(spec.Animation.Frames, spec.Animation.Delay, m.FPS()),
		speed:      spec.FlyingSpeed,
	}
}

func (c *Coin) IsTaken() bool { return c.taken }

// Take collects the coin and starts its flight from where it is on screen.
func (c *Coin) Take(m *Map) {
	if c.taken {
		return
	}
	c.take(m)
	c.taken = true
	c.Z = ZTakenCoin
	c.flying = common.FloatRectFrom(m.Camera.ApplyRect(c.Rect.Rect()))
	m.ctx.TakenCoins++
}

func (c *Coin) OnPlayerCollision(m *Map) {
	c.Take(m)
}

func (c *Coin) Update(m *Map) {
	if c.taken {
		c.fly(m)
	}
	c.anim.Next()
}

// fly moves toward the top-right screen corner at a constant speed.
func (c *Coin) fly(m *Map) {
	endX := float64(m.Camera.Rect().W)
	endY := 0.0
	dx := math.Abs(endX - c.flying.FloatX())
	dy := math.Abs(endY - c.flying.FloatY())
	hyp := math.Hypot(dx, dy)
	if hyp == 0 {
		hyp = 1
	}
	c.flying.AddFloat(c.speed*dx/hyp, -c.speed*dy/hyp)
	if float64(c.flying.X()) >= endX && float64(c.flying.Y()) <= endY {
		c.ToDelete = true
		m.ctx.VisualCoins++
		m.Play(SoundCoin)
	}
}

func (c *Coin) Draw(m *Map, r Renderer) {
	opts := DrawOpts{Frame: c.anim.Index()}
	if !c.taken {
		drawDefault(c, m, r, opts)
		return
	}
	r.DrawSprite(c.Kind, c.flying.Rect(), opts)
}

// Chest opens on touch and releases its coins one by one.
type Chest struct {
	ObjectBase
	collectible

	count   int
	spawned int
	delay   *component.TimeCounter
	opened  bool
}

func newChest(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	c, err := readCollectible(m, args)
	if err != nil {
		return nil, err
	}
	spec := m.specs.Items.Chest
	count, err := args.IntOr("count", spec.DefaultCount)
	if err != nil {
		return nil, err
	}
	return &Chest{
		ObjectBase:  NewBase(KindChest, x, y, spec.Width, spec.Height, ZItem),
		collectible: c,
		count:       count,
		delay:       component.NewTimeCounter(spec.SpawnDelay, m.FPS()),
	}, nil
}

func (c *Chest) IsOpened() bool { return c.opened }
func (c *Chest) Spawned() int   { return c.spawned }

func (c *Chest) OnPlayerCollision(m *Map) {
	if c.opened {
		return
	}
	c.opened = true
	c.take(m)
}

func (c *Chest) Update(m *Map) {
	if !c.opened || c.spawned >= c.count {
		return
	}
	if !c.delay.IsWorking() {
		c.delay.Restart()
		coin := NewCoin(m, c.Rect.X(), c.Rect.Y())
		coin.Take(m)
		m.Spawn(coin)
		c.spawned++
	}
	c.delay.Next()
}

func (c *Chest) Draw(m *Map, r Renderer) {
	frame := 0
	if c.opened {
		frame = 1
	}
	drawDefault(c, m, r, DrawOpts{Frame: frame})
}

// Pickup is an animated item consumed on touch when accept allows it.
type Pickup struct {
	ObjectBase
	anim   *component.FrameCounter
	accept func(p *Player) bool
	apply  func(m *Map, p *Player)
}

func (pk *Pickup) Update(*Map) { pk.anim.Next() }

func (pk *Pickup) OnPlayerCollision(m *Map) {
	p := m.Player()
	if !pk.accept(p) {
		return
	}
	pk.ToDelete = true
	pk.apply(m, p)
}

func (pk *Pickup) Draw(m *Map, r Renderer) {
	drawDefault(pk, m, r, DrawOpts{Frame: pk.anim.Index()})
}

func newHeart(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	spec := m.specs.Items.Heart
	return &Pickup{
		ObjectBase: NewBase(KindHeart, x, y, spec.Width, spec.Height, ZItem),
		anim:       component.NewFrameCounter(spec.Animation.Frames, spec.Animation.Delay, m.FPS()),
		accept:     func(p *Player) bool { return p.Health.Current < p.Health.Max },
		apply: func(m *Map, p *Player) {
			p.Heal()
			m.Play(SoundHeart)
		},
	}, nil
}

func newShield(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	spec := m.specs.Items.Shield
	return &Pickup{
		ObjectBase: NewBase(KindShield, x, y, spec.Width, spec.Height, ZItem),
		anim:       component.NewFrameCounter(spec.Animation.Frames, spec.Animation.Delay, m.FPS()),
		accept:     func(p *Player) bool { return !p.HasShield() },
		apply: func(m *Map, p *Player) {
			p.AddShield()
			m.Play(SoundShield)
		},
	}, nil
}
