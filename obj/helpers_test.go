package obj

import (
	"testing"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/levels"
	"github.com/milk9111/pixel/prefabs"
)

// testSpecs loads the embedded prefabs and shrinks the screen to w x h.
func testSpecs(t *testing.T, w, h int) *prefabs.Specs {
	t.Helper()
	specs, err := prefabs.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	specs.Game.ScreenW = w
	specs.Game.ScreenH = h
	return specs
}

type recordingSound struct {
	played []SoundName
}

func (s *recordingSound) Play(name SoundName) { s.played = append(s.played, name) }

func (s *recordingSound) count(name SoundName) int {
	n := 0
	for _, p := range s.played {
		if p == name {
			n++
		}
	}
	return n
}

type sprite struct {
	kind Kind
	dst  common.Rect
	opts DrawOpts
}

type recordingRenderer struct {
	sprites []sprite
	texts   []string
	huds    []HUD
}

func (r *recordingRenderer) DrawSprite(kind Kind, dst common.Rect, opts DrawOpts) {
	r.sprites = append(r.sprites, sprite{kind, dst, opts})
}

func (r *recordingRenderer) DrawText(text string, x, y int) { r.texts = append(r.texts, text) }

func (r *recordingRenderer) DrawHUD(h HUD) { r.huds = append(r.huds, h) }

// marker is a bare object used to exercise the grid.
type marker struct {
	ObjectBase
	steps int
}

func newMarker(x, y int, attrs ...Attr) *marker {
	return &marker{ObjectBase: NewBase("Marker", x, y, 10, 10, ZItem, attrs...)}
}

func (p *marker) Update(*Map) { p.steps++ }

func od(typ string, args levels.Args) levels.ObjectData {
	return levels.ObjectData{Type: typ, Args: args}
}

// loadMap builds a map over an in-memory level.
func loadMap(t *testing.T, specs *prefabs.Specs, data levels.Data) (*Map, *recordingSound) {
	t.Helper()
	m := NewMap(specs, nil)
	snd := &recordingSound{}
	m.Sound = snd
	if _, err := m.Reset(levels.New(0, data)); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	return m, snd
}

// floorRow returns a row of dirt blocks across [0, w) at y.
func floorRow(w, y int) []levels.ObjectData {
	var out []levels.ObjectData
	for x := 0; x < w; x += common.TileSize {
		out = append(out, od("Dirt", levels.Args{"x": float64(x), "y": float64(y)}))
	}
	return out
}
