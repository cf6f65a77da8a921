package obj

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"github.com/milk9111/pixel/levels"
	"github.com/milk9111/pixel/logger"
	"github.com/milk9111/pixel/prefabs"
	"github.com/milk9111/pixel/save"
)

// Map runs one level: it owns the grid, the camera and the objects loaded
// from the level, and drives them once per frame.
type Map struct {
	Grid   *Grid
	Camera *Camera
	Sound  Sound

	specs    *prefabs.Specs
	registry *Registry
	scripts  map[string]*MotionScript
	log      *logrus.Entry

	level  *levels.Level
	ctx    *Context
	player *Player
	input  InputState
	frame  int

	completed bool
	committed bool
}

// NewMap creates a map using specs for tuning and reg to build objects. A
// nil reg uses DefaultRegistry.
func NewMap(specs *prefabs.Specs, reg *Registry) *Map {
	if reg == nil {
		reg = DefaultRegistry()
	}
	g := specs.Game
	return &Map{
		Grid:     NewGrid(g.ScreenW),
		Camera:   NewCamera(g.ScreenW, g.ScreenH, g.Camera.XSmooth, g.Camera.YSmooth),
		Sound:    nopSound{},
		specs:    specs,
		registry: reg,
		scripts:  map[string]*MotionScript{},
		log:      logger.For("map"),
		ctx:      NewContext(nil),
	}
}

func (m *Map) Specs() *prefabs.Specs { return m.specs }
func (m *Map) FPS() int              { return m.specs.Game.MaxFPS }
func (m *Map) Level() *levels.Level  { return m.level }
func (m *Map) Context() *Context     { return m.ctx }
func (m *Map) Player() *Player       { return m.player }
func (m *Map) Input() InputState     { return m.input }
func (m *Map) Frame() int            { return m.frame }
func (m *Map) IsCompleted() bool     { return m.completed }

// IsLost reports whether the player has run out of hit points.
func (m *Map) IsLost() bool {
	return m.player != nil && !m.player.Health.IsAlive()
}

// SetSpecs swaps tuning specs. New values apply from the next Reset.
func (m *Map) SetSpecs(specs *prefabs.Specs) {
	m.specs = specs
	g := specs.Game
	m.Camera.SetSmooth(g.Camera.XSmooth, g.Camera.YSmooth)
}

func (m *Map) setPlayer(p *Player) {
	if m.player != nil {
		m.log.Warn("level has more than one player, using the last")
	}
	m.player = p
}

// Reset loads level from scratch. Objects that cannot be built are skipped
// and returned as warnings; a level without a player fails with
// ErrPlayerMissing.
func (m *Map) Reset(level *levels.Level) (warnings []error, err error) {
	m.level = level
	m.ctx = NewContext(level.CollectedIDs())
	m.player = nil
	m.completed = false
	m.committed = false
	m.frame = 0
	m.input = InputState{}
	clear(m.scripts)

	m.Grid = NewGrid(m.specs.Game.ScreenW)
	m.Grid.Reset(level.W(), level.H())
	for i, d := range level.Objects() {
		o, err := m.registry.Build(m, d)
		if err != nil {
			if errors.Is(err, ErrCannotCreate) {
				m.log.WithField("type", d.Type).Debug("object refused")
				continue
			}
			w := fmt.Errorf("object %d (%s): %w", i, d.Type, err)
			m.log.WithError(w).Warn("skipping object")
			warnings = append(warnings, w)
			continue
		}
		m.Grid.Add(o)
	}

	if m.player == nil {
		return warnings, fmt.Errorf("obj: level %d: %w", level.Index(), ErrPlayerMissing)
	}

	m.Camera.Reset(level.W(), level.H(), level.BoundingLines())
	m.Camera.MoveQuick(m.player.Rect.Rect())
	m.log.WithFields(logrus.Fields{
		"level":   level.Index(),
		"objects": m.Grid.Len(),
	}).Info("level loaded")
	return warnings, nil
}

// Update runs one frame: camera, then grid, then every visible object in
// draw order.
func (m *Map) Update(in InputState) {
	if m.player == nil {
		return
	}
	m.input = in
	m.Camera.Update(m.player.Rect.Rect())
	m.Grid.Update(m.Camera)
	for _, o := range m.sortedVisible() {
		if o.Base().ToDelete {
			continue
		}
		Tick(o, m)
	}
	m.frame++
}

func (m *Map) sortedVisible() []Object {
	objs := append([]Object(nil), m.Grid.Visible()...)
	sort.SliceStable(objs, func(i, j int) bool {
		return objs[i].Base().Z < objs[j].Base().Z
	})
	return objs
}

// Draw draws the visible objects in Z order, then the HUD.
func (m *Map) Draw(r Renderer) {
	for _, o := range m.sortedVisible() {
		if o.Base().ToDelete {
			continue
		}
		if d, ok := o.(Drawable); ok {
			d.Draw(m, r)
			continue
		}
		drawDefault(o, m, r, DrawOpts{})
	}
	r.DrawHUD(m.HUD())
}

// HUD returns the overlay state.
func (m *Map) HUD() HUD {
	h := HUD{Coins: m.ctx.VisualCoins}
	if m.player != nil {
		h.HP = m.player.Health.Current
		h.MaxHP = m.player.Health.Max
		h.Shield = m.player.Health.Shield
	}
	return h
}

// Spawn adds an object created during play.
func (m *Map) Spawn(o Object) {
	m.Grid.Add(o)
}

// Play plays a sound effect.
func (m *Map) Play(name SoundName) {
	if m.Sound != nil {
		m.Sound.Play(name)
	}
}

// Finish marks the level completed. Only the first call counts.
func (m *Map) Finish() {
	if m.completed {
		return
	}
	m.completed = true
	m.Play(SoundWin)
	m.log.WithField("level", m.level.Index()).Info("level completed")
}

// Commit persists a completed run: collected ids are merged into the
// level's extra data, the level is completed and the next one opened, and
// taken coins are added to the save. Commit runs once per completion.
func (m *Map) Commit(mgr *levels.Manager, sv *save.Save) error {
	if !m.completed || m.committed {
		return nil
	}
	m.committed = true

	ids := append(m.level.CollectedIDs(), m.ctx.CollectedIDs()...)
	if err := m.level.UpdateExtra(map[string]any{levels.ExtraCollectedItemsIDs: dedupe(ids)}); err != nil {
		return fmt.Errorf("obj: commit level %d: %w", m.level.Index(), err)
	}

	if mgr != nil && mgr.Current() == m.level {
		if err := mgr.SetCurrentCompleted(); err != nil {
			return fmt.Errorf("obj: commit level %d: %w", m.level.Index(), err)
		}
	} else if err := m.level.Complete(); err != nil {
		return fmt.Errorf("obj: commit level %d: %w", m.level.Index(), err)
	}

	if sv != nil {
		if err := sv.AddCoins(m.ctx.TakenCoins); err != nil {
			return fmt.Errorf("obj: commit coins: %w", err)
		}
	}
	return nil
}

func dedupe(ids []int) []int {
	set := mapset.Of(ids...)
	out := make([]int, 0, set.Size())
	set.Each(func(id int) {
		out = append(out, id)
	})
	sort.Ints(out)
	return out
}

// levelW and levelH fall back to the grid extent when no level is loaded.
func (m *Map) levelW() int {
	if m.level == nil {
		return m.Grid.W() * m.Grid.CellSize()
	}
	return m.level.W()
}

func (m *Map) levelH() int {
	if m.level == nil {
		return m.Grid.H() * m.Grid.CellSize()
	}
	return m.level.H()
}
