package obj

import (
	"fmt"
	"testing"

	"github.com/milk9111/pixel/levels"
)

func ghostInput(fx, vx float64, attacking bool, playerCX float64) map[string]any {
	return map[string]any{
		"fx": fx, "fy": 100.0, "w": 40.0, "cx": fx + 20,
		"player_cx": playerCX, "attacking": attacking,
		"speed": 0.5, "attack_speed": 3.0,
		"start_x": 100.0, "end_x": 300.0,
		"y_top": 95.0, "y_bottom": 105.0,
		"vx": vx, "vy": 0.1,
	}
}

func TestGhostScript(t *testing.T) {
	s, err := CompileMotionScript("ghost.tengo", ghostVars...)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		name      string
		fx, vx    float64
		attacking bool
		playerCX  float64
		wantVX    float64
		wantFX    float64
	}{
		{"patrol", 150, 0.5, false, 0, 0.5, 150.5},
		{"bounce_at_end", 260, 0.5, false, 0, -0.5, 259.5},
		{"attack_left", 200, 0.5, true, 120, -3, 197},
		{"attack_clamped", 101, 0.5, true, 0, -3, 100},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out, err := s.Run(ghostInput(c.fx, c.vx, c.attacking, c.playerCX), "fx", "fy", "vx", "vy")
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if out["vx"] != c.wantVX || out["fx"] != c.wantFX {
				t.Fatalf("got fx=%v vx=%v, want fx=%v vx=%v", out["fx"], out["vx"], c.wantFX, c.wantVX)
			}
		})
	}
}

func TestMotionScriptCompileError(t *testing.T) {
	if _, err := compileMotionSource("broken", []byte("fx = ("), "fx"); err == nil {
		t.Fatalf("expected a compile error")
	}
}

func TestGhostStaysInPatrol(t *testing.T) {
	specs := testSpecs(t, 400, 200)
	m, _ := loadMap(t, specs, levels.Data{
		W: 800, H: 400,
		Objects: append(floorRow(800, 360),
			od("Player", levels.Args{"x": 20.0, "y": 302.0}),
			od("Ghost", levels.Args{"x": 150.0, "y": 200.0, "start_x": 100.0, "end_x": 300.0}),
		),
	})
	var ghost *Ghost
	m.Grid.Each(func(o Object) {
		if g, ok := o.(*Ghost); ok {
			ghost = g
		}
	})
	if ghost == nil {
		t.Fatalf("ghost not built")
	}
	for i := 0; i < 1000; i++ {
		m.Update(InputState{})
		r := ghost.Rect
		if r.Left() < 100 || r.Right() > 300 {
			t.Fatalf("frame %d: ghost at [%d,%d]", i, r.Left(), r.Right())
		}
		if r.Y() < 200-6 || r.Y() > 200+6 {
			t.Fatalf("frame %d: ghost drifted to y=%d", i, r.Y())
		}
	}
	if ghost.failed {
		t.Fatalf("ghost script failed")
	}
	if ghost.Attacking() {
		t.Fatalf("player is outside the patrol span")
	}
}

func TestRegistryCoversLevelTypes(t *testing.T) {
	reg := DefaultRegistry()
	known := map[string]bool{}
	for _, name := range reg.Types() {
		known[name] = true
	}
	for i := 0; i < 3; i++ {
		b, err := levels.LevelsFS.ReadFile(fmt.Sprintf("data/%d.json", i))
		if err != nil {
			t.Fatalf("read level %d: %v", i, err)
		}
		lvl, err := levels.Parse(i, b)
		if err != nil {
			t.Fatalf("parse level %d: %v", i, err)
		}
		for _, d := range lvl.Objects() {
			if !known[d.Type] {
				t.Fatalf("level %d uses unregistered type %q", i, d.Type)
			}
		}
	}
}

func TestEmbeddedLevelsLoad(t *testing.T) {
	specs := testSpecs(t, 1280, 720)
	for i := 0; i < 3; i++ {
		b, err := levels.LevelsFS.ReadFile(fmt.Sprintf("data/%d.json", i))
		if err != nil {
			t.Fatalf("read level %d: %v", i, err)
		}
		lvl, err := levels.Parse(i, b)
		if err != nil {
			t.Fatalf("parse level %d: %v", i, err)
		}
		m := NewMap(specs, nil)
		warnings, err := m.Reset(lvl)
		if err != nil {
			t.Fatalf("level %d: %v", i, err)
		}
		if len(warnings) != 0 {
			t.Fatalf("level %d: %v", i, warnings)
		}
		for f := 0; f < 120; f++ {
			m.Update(InputState{Right: f%2 == 0})
		}
	}
}
