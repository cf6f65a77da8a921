package obj

import (
	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/levels"
	"github.com/milk9111/pixel/logger"
	"github.com/milk9111/pixel/prefabs"
)

var ghostVars = []string{
	"fx", "fy", "w", "cx", "player_cx", "attacking",
	"speed", "attack_speed", "start_x", "end_x",
	"y_top", "y_bottom", "vx", "vy",
}

// Ghost hovers along its patrol and charges the player inside its patrol
// span. Its motion comes from a tengo script so it can be tuned live.
type Ghost struct {
	ObjectBase
	Patrol

	spec     prefabs.GhostSpec
	reaction common.Rect
	yTop     int
	yBottom  int
	vy       float64

	attacking bool
	backupDir float64
	failed    bool
}

func newGhost(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	spec := m.specs.Enemies.Ghost
	pt, err := readPatrol(args, spec.PatrolSpec)
	if err != nil {
		return nil, err
	}
	if _, err := m.script(spec.Script, ghostVars...); err != nil {
		return nil, err
	}
	dev := int(spec.YDeviation)
	return &Ghost{
		ObjectBase: NewBase(KindGhost, x, y, spec.Width, spec.Height, ZMoving),
		Patrol:     pt,
		spec:       spec,
		reaction:   common.Rect{X: pt.StartX, Y: y, W: pt.EndX - pt.StartX, H: spec.Height},
		yTop:       y - dev,
		yBottom:    y + dev,
		vy:         spec.YDeviationSpeed,
		backupDir:  1,
	}, nil
}

func (g *Ghost) Attacking() bool { return g.attacking }

// watchPlayer enters attack mode while the player is inside the patrol span
// and resumes the previous patrol direction on leaving it.
func (g *Ghost) watchPlayer(p *Player) {
	if p != nil && g.reaction.Intersects(p.Rect.Rect()) {
		if !g.attacking {
			g.backupDir = 1
			if g.VX < 0 {
				g.backupDir = -1
			}
		}
		g.attacking = true
		return
	}
	if g.attacking {
		g.VX = g.spec.Speed * g.backupDir
	}
	g.attacking = false
}

func (g *Ghost) Step(m *Map) {
	p := m.Player()
	g.watchPlayer(p)
	if g.failed {
		return
	}

	s, err := m.script(g.spec.Script, ghostVars...)
	if err != nil {
		g.fail(err)
		return
	}
	playerCX := float64(g.Rect.CenterX())
	if p != nil {
		playerCX = float64(p.Rect.CenterX())
	}
	out, err := s.Run(map[string]any{
		"fx":           g.Rect.FloatX(),
		"fy":           g.Rect.FloatY(),
		"w":            float64(g.Rect.W()),
		"cx":           float64(g.Rect.CenterX()),
		"player_cx":    playerCX,
		"attacking":    g.attacking,
		"speed":        g.spec.Speed,
		"attack_speed": g.spec.AttackSpeed,
		"start_x":      float64(g.StartX),
		"end_x":        float64(g.EndX),
		"y_top":        float64(g.yTop),
		"y_bottom":     float64(g.yBottom),
		"vx":           g.VX,
		"vy":           g.vy,
	}, "fx", "fy", "vx", "vy")
	if err != nil {
		g.fail(err)
		return
	}
	g.Rect.SetFloatX(out["fx"])
	g.Rect.SetFloatY(out["fy"])
	g.VX = out["vx"]
	g.vy = out["vy"]
}

// fail freezes the ghost after a script error instead of logging every frame.
func (g *Ghost) fail(err error) {
	g.failed = true
	logger.For("ghost").WithError(err).Warn("ghost script failed, ghost frozen")
}

func (g *Ghost) OnPlayerCollision(m *Map) { g.Knock(m, g.Rect) }

func (g *Ghost) Draw(m *Map, r Renderer) {
	frame := 0
	if g.attacking {
		frame = 1
	}
	drawDefault(g, m, r, DrawOpts{Frame: frame, FlipX: g.VX < 0})
}
