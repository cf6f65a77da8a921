package obj

import (
	"fmt"
	"strings"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/levels"
)

// Static is a non-moving object. With AttrBlock it stops movers; without it
// it is scenery.
type Static struct {
	ObjectBase
	Variant int
	FlipX   bool
	Alpha   float64
	Hidden  bool
}

func (s *Static) Draw(m *Map, r Renderer) {
	if s.Hidden {
		return
	}
	drawDefault(s, m, r, DrawOpts{Variant: s.Variant, FlipX: s.FlipX, Alpha: s.Alpha})
}

// NewBlock builds a tile-sized collidable block.
func NewBlock(kind Kind, x, y int) *Static {
	return &Static{ObjectBase: NewBase(kind, x, y, common.TileSize, common.TileSize, ZBlock, AttrBlock)}
}

func newBlock(kind Kind) Factory {
	return func(m *Map, args levels.Args) (Object, error) {
		x, y, err := args.XY()
		if err != nil {
			return nil, err
		}
		b := NewBlock(kind, x, y)
		b.Hidden = kind == KindBarrier
		return b, nil
	}
}

func newStatic(kind Kind, z int) Factory {
	return func(m *Map, args levels.Args) (Object, error) {
		x, y, err := args.XY()
		if err != nil {
			return nil, err
		}
		return &Static{ObjectBase: NewBase(kind, x, y, common.TileSize, common.TileSize, z)}, nil
	}
}

// grassVariants is the number of grass tiles Dirt cycles through.
const grassVariants = 4

// Dirt variants: 0 plain, 1 left edge, 2 right edge. Grass adds
// 10 + the grass index.
func newDirt(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	b := NewBlock(KindDirt, x, y)

	dir, err := direction(args, "direction")
	if err != nil {
		return nil, err
	}
	switch dir {
	case -1:
		b.Variant = 1
	case 1:
		b.Variant = 2
	}

	grass, err := args.Bool("grass_enabled", false)
	if err != nil {
		return nil, err
	}
	if grass {
		b.Variant += 10 * (m.ctx.NextGrass(grassVariants) + 1)
	}
	return b, nil
}

func newTree(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	idx, err := args.IntOr("image_index", 0)
	if err != nil {
		return nil, err
	}
	t := &Static{
		ObjectBase: NewBase(KindTree, x, y, 3*common.TileSize, 5*common.TileSize, ZTree),
		Variant:    idx,
	}
	return t, nil
}

func newWeb(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	dir, err := direction(args, "direction")
	if err != nil {
		return nil, err
	}
	return &Static{
		ObjectBase: NewBase(KindWeb, x, y, common.TileSize, common.TileSize, ZBackground),
		FlipX:      dir > 0,
	}, nil
}

// overlayAlpha matches a 100/255 surface alpha.
const overlayAlpha = 100.0 / 255.0

func newOverlay(m *Map, args levels.Args) (Object, error) {
	x, y, err := args.XY()
	if err != nil {
		return nil, err
	}
	w, err := args.Int("w")
	if err != nil {
		return nil, err
	}
	h, err := args.Int("h")
	if err != nil {
		return nil, err
	}
	alpha, err := args.Float("alpha", overlayAlpha)
	if err != nil {
		return nil, err
	}
	return &Static{
		ObjectBase: NewBase(KindOverlay, x, y, w, h, ZOverlay),
		Alpha:      common.Clamp(alpha, 0, 1),
	}, nil
}

// direction reads -1 (left), 1 (right) or 0 (absent). Level files store it
// as a number; names are accepted too.
func direction(args levels.Args, key string) (int, error) {
	if s, err := args.String(key, ""); err == nil {
		switch strings.ToLower(s) {
		case "":
			return 0, nil
		case "left":
			return -1, nil
		case "right":
			return 1, nil
		}
		return 0, fmt.Errorf("unknown direction %q", s)
	}
	n, _, err := args.OptInt(key)
	if err != nil {
		return 0, err
	}
	switch {
	case n < 0:
		return -1, nil
	case n > 0:
		return 1, nil
	}
	return 0, nil
}
