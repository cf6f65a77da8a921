package obj

import (
	"testing"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/levels"
)

func cellOf(g *Grid, o Object) (int, int, int) {
	found := 0
	row, col := -1, -1
	for r := range g.cells {
		for c := range g.cells[r] {
			for _, x := range g.cells[r][c] {
				if x == o {
					found++
					row, col = r, c
				}
			}
		}
	}
	return row, col, found
}

func TestGridMembershipAfterUpdate(t *testing.T) {
	g := NewGrid(100)
	g.Reset(450, 250) // 5 cols, 3 rows
	if g.W() != 5 || g.H() != 3 {
		t.Fatalf("expected 5x3 grid, got %dx%d", g.W(), g.H())
	}

	cam := NewCamera(100, 100, 1, 1)
	cam.Reset(450, 250, nil)
	cam.MoveQuick(common.Rect{X: 150, Y: 100, W: 10, H: 10})

	objs := []*marker{
		newMarker(120, 110),
		newMarker(-30, 5),   // clamps into the first cell
		newMarker(440, 240), // last cell
		newMarker(199, 0),
	}
	for _, o := range objs {
		g.Add(o)
	}

	// Move objects across cell borders, including forward into cells the
	// pass has not drained yet.
	objs[0].Rect.SetX(210)
	objs[3].Rect.SetY(120)
	g.Update(cam)

	for i, o := range objs {
		row, col, found := cellOf(g, o)
		if found != 1 {
			t.Fatalf("object %d found %d times", i, found)
		}
		wantRow := common.ClampInt(common.FloorDiv(o.Rect.Y(), 100), 0, g.H()-1)
		wantCol := common.ClampInt(common.FloorDiv(o.Rect.X(), 100), 0, g.W()-1)
		if row != wantRow || col != wantCol {
			t.Fatalf("object %d in (%d,%d), want (%d,%d)", i, row, col, wantRow, wantCol)
		}
	}

	seen := map[Object]int{}
	for _, o := range g.Visible() {
		seen[o]++
	}
	for o, n := range seen {
		if n != 1 {
			t.Fatalf("object %p visible %d times", o, n)
		}
	}
}

func TestGridDropsDeletedObjects(t *testing.T) {
	g := NewGrid(100)
	g.Reset(300, 300)
	cam := NewCamera(100, 100, 1, 1)
	cam.Reset(300, 300, nil)

	keep, drop := newMarker(10, 10), newMarker(20, 20)
	g.Add(keep)
	g.Add(drop)
	drop.ToDelete = true
	g.Update(cam)

	if g.Len() != 1 {
		t.Fatalf("expected 1 object left, got %d", g.Len())
	}
	if len(g.Visible()) != 1 || g.Visible()[0] != keep {
		t.Fatalf("expected only the kept object visible")
	}
}

func TestGridVisibleByAttrs(t *testing.T) {
	g := NewGrid(100)
	g.Reset(300, 300)
	cam := NewCamera(100, 100, 1, 1)
	cam.Reset(300, 300, nil)

	block := newMarker(0, 0, AttrBlock)
	g.Add(block)
	g.Add(newMarker(50, 50))
	g.Update(cam)

	got := g.VisibleByAttrs(AttrBlock)
	if len(got) != 1 || got[0] != block {
		t.Fatalf("expected just the block, got %d objects", len(got))
	}
}

func TestGridFreezesFarObjects(t *testing.T) {
	specs := testSpecs(t, 200, 100)
	reg := DefaultRegistry()
	var near, far *marker
	reg.Register("Marker", func(m *Map, args levels.Args) (Object, error) {
		x, y, err := args.XY()
		if err != nil {
			return nil, err
		}
		p := newMarker(x, y, AttrBlock)
		if x > 1000 {
			far = p
		} else {
			near = p
		}
		return p, nil
	})

	m := NewMap(specs, reg)
	lvl := levels.New(0, levels.Data{
		W: 4000, H: 200,
		Objects: []levels.ObjectData{
			od("Player", levels.Args{"x": 10.0, "y": 20.0}),
			od("Marker", levels.Args{"x": 150.0, "y": 150.0}),
			od("Marker", levels.Args{"x": 3000.0, "y": 150.0}),
		},
	})
	if _, err := m.Reset(lvl); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	for i := 0; i < 5; i++ {
		m.Update(InputState{})
	}
	if near.steps != 5 {
		t.Fatalf("near object should update every frame, got %d", near.steps)
	}
	if far.steps != 0 {
		t.Fatalf("far object should be frozen, got %d updates", far.steps)
	}
	for _, o := range m.Grid.VisibleByAttrs(AttrBlock) {
		if o == Object(far) {
			t.Fatalf("far object must not be visible")
		}
	}
	if far.Rect.X() != 3000 {
		t.Fatalf("far object moved to %d", far.Rect.X())
	}
}
