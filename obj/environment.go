package obj

import (
	"strings"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/component"
	"github.com/milk9111/pixel/levels"
)

// Trigger is a static object that reacts every frame the player overlaps it.
type Trigger struct {
	ObjectBase
	Variant int
	onTouch func(m *Map, p *Player)
}

func (t *Trigger) OnPlayerCollision(m *Map) {
	t.onTouch(m, m.Player())
}

func (t *Trigger) Draw(m *Map, r Renderer) {
	drawDefault(t, m, r, DrawOpts{Variant: t.Variant})
}

func newSpike(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	spec := m.specs.Items.Spike
	return &Trigger{
		ObjectBase: NewBase(KindSpike, x, y, spec.Width, spec.Height, ZItem),
		onTouch: func(m *Map, p *Player) {
			// Only a fall onto the spikes hurts.
			if p.VY() >= spec.PlayerYVelForHit {
				p.Hit(m)
			}
		},
	}, nil
}

func newLadder(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	return &Trigger{
		ObjectBase: NewBase(KindLadder, x, y, common.TileSize, common.TileSize, ZItem),
		onTouch:    func(_ *Map, p *Player) { p.OnLadder = true },
	}, nil
}

func newWater(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	top, err := args.Bool("is_top", false)
	if err != nil {
		return nil, err
	}
	t := &Trigger{
		ObjectBase: NewBase(KindWater, x, y, common.TileSize, common.TileSize, ZWater),
		onTouch:    func(_ *Map, p *Player) { p.InWater = true },
	}
	if top {
		t.Variant = 1
	}
	return t, nil
}

func newFinish(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	spec := m.specs.Items.Finish
	return &Trigger{
		ObjectBase: NewBase(KindFinish, x, y, spec.Width, spec.Height, ZFinish),
		onTouch:    func(m *Map, _ *Player) { m.Finish() },
	}, nil
}

// Hint shows its text while the player stands on it, revealing a few more
// characters each step.
type Hint struct {
	ObjectBase
	pages   []string
	anim    *component.FrameCounter
	reveal  *component.FrameCounter
	touched bool
	showing bool
}

func newHint(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	text, err := args.String("text", "")
	if err != nil {
		return nil, err
	}
	spec := m.specs.Items.Hint
	pages := revealPages(strings.ReplaceAll(text, `\n`, "\n"), spec.TextStep)
	return &Hint{
		ObjectBase: NewBase(KindHint, x, y, spec.Width, spec.Height, ZHint),
		pages:      pages,
		anim:       component.NewFrameCounter(spec.Animation.Frames, spec.Animation.Delay, m.FPS()),
		reveal:     component.NewFrameCounter(len(pages), spec.TextDelay, m.FPS()),
	}, nil
}

// revealPages returns the growing prefixes of text, step runes at a time.
func revealPages(text string, step int) []string {
	if step <= 0 {
		step = 1
	}
	runes := []rune(text)
	if len(runes) == 0 {
		return []string{""}
	}
	var pages []string
	for i := step; ; i += step {
		if i >= len(runes) {
			pages = append(pages, text)
			return pages
		}
		pages = append(pages, string(runes[:i]))
	}
}

// Text returns the part of the hint currently revealed, or "" when hidden.
func (h *Hint) Text() string {
	if !h.showing {
		return ""
	}
	return h.pages[h.reveal.Index()]
}

func (h *Hint) Update(*Map) {
	if h.showing && !h.touched {
		// Coming back starts the reveal over.
		h.reveal.Reset()
	}
	h.showing = h.touched
	h.touched = false
	h.anim.Next()
}

// OnPlayerCollision fires on every overlapping frame and keeps revealing.
func (h *Hint) OnPlayerCollision(*Map) {
	h.touched = true
	if h.reveal.Index() < h.reveal.Frames()-1 {
		h.reveal.Next()
	}
}

func (h *Hint) Draw(m *Map, r Renderer) {
	drawDefault(h, m, r, DrawOpts{Frame: h.anim.Index()})
	if !h.showing {
		return
	}
	// Text box sits above the hint's top-right corner, kept on screen.
	x, y := m.Camera.ApplyXY(h.Rect.Right(), h.Rect.Top())
	screenW := m.Camera.Rect().W
	lines := strings.Split(h.Text(), "\n")
	longest := 0
	for _, l := range lines {
		longest = max(longest, len([]rune(l)))
	}
	const charW, lineH = 7, 16
	if x+longest*charW > screenW {
		x = screenW - longest*charW
	}
	r.DrawText(h.Text(), x, y-len(lines)*lineH)
}
