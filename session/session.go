package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/pixel/levels"
	"github.com/milk9111/pixel/logger"
	"github.com/milk9111/pixel/obj"
	"github.com/milk9111/pixel/prefabs"
	"github.com/milk9111/pixel/save"
)

// Scene is the screen the session is showing.
type Scene int

const (
	SceneMenu Scene = iota
	SceneLevel
	ScenePause
	SceneCompleted
	SceneLost
)

func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneLevel:
		return "level"
	case ScenePause:
		return "pause"
	case SceneCompleted:
		return "completed"
	case SceneLost:
		return "lost"
	default:
		return "unknown"
	}
}

// ErrLevelLocked is returned when starting a level that is not available yet.
var ErrLevelLocked = errors.New("level is locked")

// Config selects where levels and the save live.
type Config struct {
	// LevelsDir holds <index>.json files. Embedded levels are installed
	// there when it is empty.
	LevelsDir string
	// SavePath is the save file; empty keeps progress in memory.
	SavePath string
	// Watch enables hot reload of prefabs, scripts and levels.
	Watch bool
	// FPS overrides max_fps from game.yaml when positive.
	FPS int
}

// Session owns everything one player's run needs: the level list, the save,
// and the map with its grid and camera.
type Session struct {
	Levels *levels.Manager
	Save   *save.Save
	Map    *obj.Map

	specs   *prefabs.Specs
	fps     int
	watcher *prefabs.Watcher
	sound   obj.Sound
	log     *logrus.Entry

	scene     Scene
	selected  int
	lastErr   error
	warnings  []error
	restarted int
	// held directions from the previous frame, for menu navigation edges
	prevUp, prevDown bool
}

// New loads specs, levels and the save described by cfg.
func New(cfg Config) (*Session, error) {
	specs, err := prefabs.LoadAll()
	if err != nil {
		return nil, err
	}
	if cfg.FPS > 0 {
		specs.Game.MaxFPS = cfg.FPS
	}

	if _, err := levels.Install(cfg.LevelsDir); err != nil {
		return nil, err
	}
	mgr, err := levels.NewManager(cfg.LevelsDir)
	if err != nil {
		return nil, err
	}
	sv, err := save.Load(cfg.SavePath)
	if err != nil {
		return nil, err
	}

	s := NewWithManager(specs, mgr, sv)
	s.fps = cfg.FPS
	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, cfg.LevelsDir)
		if err != nil {
			s.log.WithError(err).Warn("hot reload disabled")
		} else {
			s.watcher = w
		}
	}
	return s, nil
}

// NewWithManager builds a session over already-loaded parts.
func NewWithManager(specs *prefabs.Specs, mgr *levels.Manager, sv *save.Save) *Session {
	s := &Session{
		Levels: mgr,
		Save:   sv,
		Map:    obj.NewMap(specs, nil),
		specs:  specs,
		log:    logger.For("session"),
		scene:  SceneMenu,
	}
	if l := mgr.Resume(); l != nil {
		s.selected = l.Index()
	}
	return s
}

// Close stops hot reload.
func (s *Session) Close() error {
	return s.watcher.Close()
}

// SetSound routes effects to snd.
func (s *Session) SetSound(snd obj.Sound) {
	s.sound = snd
	s.Map.Sound = snd
}

func (s *Session) Scene() Scene          { return s.scene }
func (s *Session) Specs() *prefabs.Specs { return s.specs }
func (s *Session) Selected() int         { return s.selected }
func (s *Session) Warnings() []error     { return s.warnings }
func (s *Session) Restarts() int         { return s.restarted }

// Err returns the last error that sent the session back to the menu.
func (s *Session) Err() error { return s.lastErr }

// Select moves the menu cursor by delta, wrapping around.
func (s *Session) Select(delta int) {
	n := len(s.Levels.Levels())
	if n == 0 {
		return
	}
	s.selected = ((s.selected+delta)%n + n) % n
}

// StartLevel switches to level index and loads it. A level without a player
// sends the session back to the menu with the error recorded.
func (s *Session) StartLevel(index int) error {
	lvl, err := s.Levels.SwitchTo(index)
	if err != nil {
		return s.fail(err)
	}
	if !lvl.IsAvailable() {
		return s.fail(fmt.Errorf("session: level %d: %w", index, ErrLevelLocked))
	}
	return s.load(lvl)
}

func (s *Session) load(lvl *levels.Level) error {
	warnings, err := s.Map.Reset(lvl)
	s.warnings = warnings
	if err != nil {
		return s.fail(err)
	}
	s.selected = lvl.Index()
	s.lastErr = nil
	s.scene = SceneLevel
	return nil
}

func (s *Session) fail(err error) error {
	s.log.WithError(err).Error("back to menu")
	s.lastErr = err
	s.scene = SceneMenu
	return err
}

// Restart reloads the current level from its persisted state.
func (s *Session) Restart() error {
	s.restarted++
	if lvl := s.Levels.Current(); lvl != nil {
		return s.load(lvl)
	}
	return s.fail(levels.ErrNoCurrentLevel)
}

// Update advances the session by one frame.
func (s *Session) Update(in obj.InputState) error {
	if err := s.applyChanges(); err != nil {
		s.log.WithError(err).Warn("hot reload failed")
	}

	up, down := in.Up && !s.prevUp, in.Down && !s.prevDown
	s.prevUp, s.prevDown = in.Up, in.Down

	switch s.scene {
	case SceneMenu:
		switch {
		case in.ConfirmPressed:
			return s.StartLevel(s.selected)
		case up:
			s.Select(-1)
		case down:
			s.Select(1)
		}
	case SceneLevel:
		return s.updateLevel(in)
	case ScenePause:
		switch {
		case in.PausePressed, in.ConfirmPressed:
			s.scene = SceneLevel
		case in.RestartPressed:
			return s.Restart()
		case in.BackPressed:
			s.scene = SceneMenu
		}
	case SceneCompleted:
		switch {
		case in.ConfirmPressed:
			return s.load(s.Levels.GoNext())
		case in.BackPressed:
			s.selected = s.Levels.Resume().Index()
			s.scene = SceneMenu
		}
	case SceneLost:
		switch {
		case in.ConfirmPressed, in.RestartPressed:
			return s.Restart()
		case in.BackPressed:
			s.scene = SceneMenu
		}
	}
	return nil
}

func (s *Session) updateLevel(in obj.InputState) error {
	switch {
	case in.PausePressed:
		s.scene = ScenePause
		return nil
	case in.RestartPressed:
		return s.Restart()
	}

	s.Map.Update(in)

	switch {
	case s.Map.IsCompleted():
		s.scene = SceneCompleted
		if err := s.Map.Commit(s.Levels, s.Save); err != nil {
			s.log.WithError(err).Error("saving progress failed")
			return err
		}
	case s.Map.IsLost():
		s.scene = SceneLost
		if s.sound != nil {
			s.sound.Play(obj.SoundLose)
		}
	}
	return nil
}

// applyChanges handles hot reload at the frame boundary. Spec edits take
// effect on the restarted level; script and level edits restart it too.
func (s *Session) applyChanges() error {
	changes := s.watcher.Pending()
	if len(changes) == 0 {
		return nil
	}
	restart := false
	for _, c := range changes {
		switch c.Kind {
		case prefabs.ChangeSpec:
			specs, err := prefabs.LoadAll()
			if err != nil {
				return err
			}
			if s.fps > 0 {
				specs.Game.MaxFPS = s.fps
			}
			s.specs = specs
			s.Map.SetSpecs(specs)
		case prefabs.ChangeLevel:
			if err := s.reloadLevels(); err != nil {
				return err
			}
		}
		restart = true
		s.log.WithFields(logrus.Fields{"file": c.Path, "kind": c.Kind}).Info("reloaded")
	}
	if restart && (s.scene == SceneLevel || s.scene == ScenePause) {
		return s.Restart()
	}
	return nil
}

func (s *Session) reloadLevels() error {
	current := 0
	if l := s.Levels.Current(); l != nil {
		current = l.Index()
	}
	mgr, err := levels.NewManager(s.Levels.Dir())
	if err != nil {
		return err
	}
	if _, err := mgr.SwitchTo(current); err != nil {
		return err
	}
	s.Levels = mgr
	return nil
}

// MenuLines returns one label per level for text frontends.
func (s *Session) MenuLines() []string {
	var out []string
	for _, l := range s.Levels.Levels() {
		mark := " "
		if l.Index() == s.selected {
			mark = ">"
		}
		state := "locked"
		switch {
		case l.IsCompleted():
			state = "done"
		case l.IsAvailable():
			state = "open"
		}
		out = append(out, fmt.Sprintf("%s level %d  [%s]", mark, l.Index()+1, state))
	}
	return out
}

// Banner is the overlay text for the current scene, empty while playing.
func (s *Session) Banner() string {
	switch s.scene {
	case SceneMenu:
		lines := append([]string{"PIXEL", fmt.Sprintf("coins: %d", s.Save.CoinsCount), ""}, s.MenuLines()...)
		if s.lastErr != nil {
			lines = append(lines, "", "error: "+s.lastErr.Error())
		}
		return strings.Join(lines, "\n")
	case ScenePause:
		return "PAUSED\nenter: resume  r: restart  esc: menu"
	case SceneCompleted:
		return fmt.Sprintf("LEVEL COMPLETE\ncoins: %d\nenter: next  esc: menu", s.Map.Context().TakenCoins)
	case SceneLost:
		return "YOU DIED\nenter: retry  esc: menu"
	}
	return ""
}

// Draw draws the map under any scene overlay.
func (s *Session) Draw(r obj.Renderer) {
	if s.scene != SceneMenu {
		s.Map.Draw(r)
	}
	if b := s.Banner(); b != "" {
		r.DrawText(b, 40, 40)
	}
}

// DefaultDir is where levels and the save live when no flags say otherwise.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pixel-data"
	}
	return filepath.Join(dir, "pixel")
}
