package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadAllEmbedded(t *testing.T) {
	specs, err := LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if specs.Game.MaxFPS != 60 || specs.Game.ScreenW != 1280 || specs.Game.ScreenH != 720 {
		t.Fatalf("unexpected game spec %+v", specs.Game)
	}
	if specs.Player.Width != 30 || specs.Player.Height != 58 {
		t.Fatalf("unexpected player size %dx%d", specs.Player.Width, specs.Player.Height)
	}
	if specs.Enemies.Cannon.Ball.StartSpeed <= specs.Enemies.Cannon.Ball.EndSpeed {
		t.Fatalf("cannonball should slow down")
	}
	if specs.Enemies.Ghost.Script == "" {
		t.Fatalf("ghost needs a script")
	}
	if _, err := LoadScript(specs.Enemies.Ghost.Script); err != nil {
		t.Fatalf("LoadScript: %v", err)
	}
}

func TestDiskOverrideWins(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	defer func() { Dir = old }()

	body := "name: test\nscreen_w: 320\nscreen_h: 240\nmax_fps: 30\n"
	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	game, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		t.Fatalf("LoadSpec: %v", err)
	}
	if game.ScreenW != 320 || game.MaxFPS != 30 {
		t.Fatalf("expected on-disk values, got %+v", game)
	}

	if err := os.WriteFile(filepath.Join(dir, "game.yaml"), []byte("max_fps: 0\nscreen_w: 1\nscreen_h: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadAll(); err == nil {
		t.Fatalf("expected LoadAll to reject max_fps 0")
	}
}

func TestLoadAllRejectsZeroWaterFactor(t *testing.T) {
	dir := t.TempDir()
	old := Dir
	Dir = dir
	defer func() { Dir = old }()

	if err := os.WriteFile(filepath.Join(dir, "player.yaml"), []byte("width: 30\nheight: 58\nwater_or_ladder_factor: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadAll(); err == nil {
		t.Fatalf("expected LoadAll to reject water_or_ladder_factor 0")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"prefabs/player.yaml", ChangeSpec, true},
		{"prefabs/scripts/ghost.tengo", ChangeScript, true},
		{"levels/3.JSON", ChangeLevel, true},
		{"README.md", 0, false},
	}
	for _, c := range cases {
		kind, ok := classify(c.path)
		if ok != c.ok || (ok && kind != c.kind) {
			t.Fatalf("classify(%q) = %v,%v want %v,%v", c.path, kind, ok, c.kind, c.ok)
		}
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "items.yaml")
	if err := os.WriteFile(path, []byte("coin: {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, c := range w.Pending() {
			if filepath.Base(c.Path) == "items.yaml" && c.Kind == ChangeSpec {
				return
			}
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("no change reported for %s", path)
}
