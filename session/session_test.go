package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/milk9111/pixel/levels"
	"github.com/milk9111/pixel/obj"
	"github.com/milk9111/pixel/prefabs"
	"github.com/milk9111/pixel/save"
)

func args(x, y float64) levels.Args { return levels.Args{"x": x, "y": y} }

func groundLevel(extra ...levels.ObjectData) []levels.ObjectData {
	var out []levels.ObjectData
	for x := 0; x < 800; x += 40 {
		out = append(out, levels.ObjectData{Type: "Dirt", Args: args(float64(x), 160)})
	}
	return append(out, extra...)
}

func newTestSession(t *testing.T, lvls ...*levels.Level) *Session {
	t.Helper()
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	specs.Game.ScreenW, specs.Game.ScreenH = 400, 200
	mgr, err := levels.NewMemoryManager(lvls...)
	if err != nil {
		t.Fatalf("NewMemoryManager: %v", err)
	}
	sv, err := save.Load("")
	if err != nil {
		t.Fatalf("save.Load: %v", err)
	}
	return NewWithManager(specs, mgr, sv)
}

func TestStartLevelWithoutPlayerFallsBackToMenu(t *testing.T) {
	s := newTestSession(t, levels.New(0, levels.Data{W: 800, H: 200, IsAvailable: true, Objects: groundLevel()}))
	err := s.StartLevel(0)
	if !errors.Is(err, obj.ErrPlayerMissing) {
		t.Fatalf("expected ErrPlayerMissing, got %v", err)
	}
	if s.Scene() != SceneMenu || !errors.Is(s.Err(), obj.ErrPlayerMissing) {
		t.Fatalf("expected menu with the error recorded, got %s / %v", s.Scene(), s.Err())
	}
}

func TestLockedLevelRefused(t *testing.T) {
	s := newTestSession(t,
		levels.New(0, levels.Data{W: 800, H: 200, IsAvailable: true}),
		levels.New(1, levels.Data{W: 800, H: 200}),
	)
	if err := s.StartLevel(1); !errors.Is(err, ErrLevelLocked) {
		t.Fatalf("expected ErrLevelLocked, got %v", err)
	}
}

func TestPlayThroughCompletesAndOpensNext(t *testing.T) {
	first := levels.New(0, levels.Data{W: 800, H: 200, IsAvailable: true, Objects: groundLevel(
		levels.ObjectData{Type: "Player", Args: args(100, 102)},
		levels.ObjectData{Type: "Coin", Args: levels.Args{"x": 150.0, "y": 120.0, "id_": 3.0}},
		levels.ObjectData{Type: "Finish", Args: args(300, 80)},
	)})
	second := levels.New(1, levels.Data{W: 800, H: 200, Objects: groundLevel(
		levels.ObjectData{Type: "Player", Args: args(100, 102)},
	)})
	s := newTestSession(t, first, second)

	if err := s.Update(obj.InputState{ConfirmPressed: true}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.Scene() != SceneLevel {
		t.Fatalf("expected level scene, got %s", s.Scene())
	}

	for i := 0; i < 200 && s.Scene() == SceneLevel; i++ {
		if err := s.Update(obj.InputState{Right: true}); err != nil {
			t.Fatalf("update: %v", err)
		}
	}
	if s.Scene() != SceneCompleted {
		t.Fatalf("expected completed scene, got %s", s.Scene())
	}
	if !first.IsCompleted() || !second.IsAvailable() {
		t.Fatalf("expected level 0 completed and level 1 open")
	}
	if s.Save.CoinsCount != 1 {
		t.Fatalf("expected 1 coin saved, got %d", s.Save.CoinsCount)
	}
	if ids := first.CollectedIDs(); len(ids) != 1 || ids[0] != 3 {
		t.Fatalf("expected collected ids [3], got %v", ids)
	}

	if err := s.Update(obj.InputState{ConfirmPressed: true}); err != nil {
		t.Fatalf("next: %v", err)
	}
	if s.Scene() != SceneLevel || s.Levels.Current() != second {
		t.Fatalf("expected to play level 1")
	}
}

func TestPauseFreezesTheMap(t *testing.T) {
	s := newTestSession(t, levels.New(0, levels.Data{W: 800, H: 200, IsAvailable: true, Objects: groundLevel(
		levels.ObjectData{Type: "Player", Args: args(100, 102)},
	)}))
	if err := s.StartLevel(0); err != nil {
		t.Fatalf("StartLevel: %v", err)
	}
	s.Update(obj.InputState{PausePressed: true})
	if s.Scene() != ScenePause {
		t.Fatalf("expected pause, got %s", s.Scene())
	}
	frame := s.Map.Frame()
	for i := 0; i < 10; i++ {
		s.Update(obj.InputState{Right: true})
	}
	if s.Map.Frame() != frame {
		t.Fatalf("map advanced while paused")
	}
	s.Update(obj.InputState{PausePressed: true})
	if s.Scene() != SceneLevel {
		t.Fatalf("expected to resume, got %s", s.Scene())
	}
}

func TestLosingAndRetrying(t *testing.T) {
	s := newTestSession(t, levels.New(0, levels.Data{W: 800, H: 200, IsAvailable: true, Objects: []levels.ObjectData{
		{Type: "Player", Args: args(100, 100)},
	}}))
	snd := &countingSound{}
	s.SetSound(snd)
	if err := s.StartLevel(0); err != nil {
		t.Fatalf("StartLevel: %v", err)
	}
	for i := 0; i < 120 && s.Scene() == SceneLevel; i++ {
		s.Update(obj.InputState{})
	}
	if s.Scene() != SceneLost {
		t.Fatalf("expected lost scene, got %s", s.Scene())
	}
	if snd.n[obj.SoundLose] != 1 {
		t.Fatalf("expected the lose sound once")
	}
	s.Update(obj.InputState{RestartPressed: true})
	if s.Scene() != SceneLevel || s.Restarts() != 1 {
		t.Fatalf("expected a restarted level")
	}
	if !s.Map.Player().Health.IsAlive() {
		t.Fatalf("restart should revive the player")
	}
}

func TestSelectWraps(t *testing.T) {
	s := newTestSession(t,
		levels.New(0, levels.Data{W: 1, H: 1, IsAvailable: true}),
		levels.New(1, levels.Data{W: 1, H: 1}),
	)
	s.Select(-1)
	if s.Selected() != 1 {
		t.Fatalf("expected wrap to 1, got %d", s.Selected())
	}
	if len(s.MenuLines()) != 2 {
		t.Fatalf("expected 2 menu lines")
	}
}

func TestNewInstallsEmbeddedLevels(t *testing.T) {
	dir := t.TempDir()
	s, err := New(Config{
		LevelsDir: filepath.Join(dir, "levels"),
		SavePath:  filepath.Join(dir, "save.json"),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()
	if len(s.Levels.Levels()) == 0 {
		t.Fatalf("expected embedded levels")
	}
	if err := s.StartLevel(0); err != nil {
		t.Fatalf("StartLevel: %v", err)
	}
}

type countingSound struct {
	n map[obj.SoundName]int
}

func (c *countingSound) Play(name obj.SoundName) {
	if c.n == nil {
		c.n = map[obj.SoundName]int{}
	}
	c.n[name]++
}

func TestMenuNavigationUsesEdges(t *testing.T) {
	s := newTestSession(t,
		levels.New(0, levels.Data{W: 1, H: 1, IsAvailable: true}),
		levels.New(1, levels.Data{W: 1, H: 1}),
		levels.New(2, levels.Data{W: 1, H: 1}),
	)
	for i := 0; i < 5; i++ {
		s.Update(obj.InputState{Down: true})
	}
	if s.Selected() != 1 {
		t.Fatalf("holding down should move once, got %d", s.Selected())
	}
	s.Update(obj.InputState{})
	s.Update(obj.InputState{Up: true})
	if s.Selected() != 0 {
		t.Fatalf("expected 0, got %d", s.Selected())
	}
}
