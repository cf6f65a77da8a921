package obj

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/milk9111/pixel/common"
)

// Grid buckets objects into square cells so that only the cells around the
// camera are updated each frame. An object lives in the cell holding its
// top-left corner, clamped to the grid edges, and changes cell only during
// Update.
type Grid struct {
	cellSize int
	cells    [][][]Object
	visible  []Object
}

// NewGrid creates an empty grid with the given cell side length.
func NewGrid(cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = common.BaseWidth
	}
	return &Grid{cellSize: cellSize}
}

func (g *Grid) CellSize() int { return g.cellSize }

// W is the number of columns.
func (g *Grid) W() int {
	if len(g.cells) == 0 {
		return 0
	}
	return len(g.cells[0])
}

// H is the number of rows.
func (g *Grid) H() int { return len(g.cells) }

// Reset drops every object and rebuilds empty cells covering the level.
func (g *Grid) Reset(levelW, levelH int) {
	w := max(common.CeilDiv(levelW, g.cellSize), 1)
	h := max(common.CeilDiv(levelH, g.cellSize), 1)
	g.cells = make([][][]Object, h)
	for row := range g.cells {
		g.cells[row] = make([][]Object, w)
	}
	g.visible = g.visible[:0]
}

// CellOf returns the row and column an object at its current position
// belongs to.
func (g *Grid) CellOf(o Object) (row, col int) {
	r := o.Base().Rect
	row = common.ClampInt(common.FloorDiv(r.Y(), g.cellSize), 0, g.H()-1)
	col = common.ClampInt(common.FloorDiv(r.X(), g.cellSize), 0, g.W()-1)
	return row, col
}

// Add places o into the cell matching its position.
func (g *Grid) Add(o Object) {
	if len(g.cells) == 0 {
		return
	}
	row, col := g.CellOf(o)
	g.cells[row][col] = append(g.cells[row][col], o)
}

// Len counts the objects held in all cells.
func (g *Grid) Len() int {
	n := 0
	for _, row := range g.cells {
		for _, cell := range row {
			n += len(cell)
		}
	}
	return n
}

// Window returns the inclusive cell ranges around the camera center.
func (g *Grid) Window(cam *Camera) (rowFrom, rowTo, colFrom, colTo int) {
	r := cam.Rect()
	row := common.ClampInt(common.FloorDiv(r.CenterY(), g.cellSize), 0, g.H()-1)
	col := common.ClampInt(common.FloorDiv(r.CenterX(), g.cellSize), 0, g.W()-1)
	return max(row-1, 0), min(row+1, g.H()-1), max(col-1, 0), min(col+1, g.W()-1)
}

// Update rebuilds the visible set from the cells around the camera. Every
// object in those cells is taken out, dropped if marked for deletion, and
// otherwise re-added so it lands in the cell it has moved to. Objects in
// other cells stay frozen.
func (g *Grid) Update(cam *Camera) {
	g.visible = g.visible[:0]
	if len(g.cells) == 0 {
		return
	}
	rowFrom, rowTo, colFrom, colTo := g.Window(cam)

	seen := mapset.New[Object]()
	for row := rowFrom; row <= rowTo; row++ {
		for col := colFrom; col <= colTo; col++ {
			objects := g.cells[row][col]
			g.cells[row][col] = nil
			for _, o := range objects {
				if o.Base().ToDelete {
					continue
				}
				if seen.Has(o) {
					// Relocated forward into a cell we have not drained yet.
					g.Add(o)
					continue
				}
				seen.Put(o)
				g.Add(o)
				g.visible = append(g.visible, o)
			}
		}
	}
}

// Visible returns the objects found by the last Update.
func (g *Grid) Visible() []Object {
	return g.visible
}

// VisibleByAttrs returns the visible objects carrying every attr.
func (g *Grid) VisibleByAttrs(attrs ...Attr) []Object {
	var out []Object
	for _, o := range g.visible {
		if o.Base().HasAttrs(attrs...) {
			out = append(out, o)
		}
	}
	return out
}

// Each calls fn for every object in every cell.
func (g *Grid) Each(fn func(o Object)) {
	for _, row := range g.cells {
		for _, cell := range row {
			for _, o := range cell {
				fn(o)
			}
		}
	}
}
