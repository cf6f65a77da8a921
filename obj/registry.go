package obj

import (
	"errors"
	"fmt"
	"sort"

	"github.com/milk9111/pixel/common"
	"github.com/milk9111/pixel/levels"
)

var (
	// ErrCannotCreate is returned by a factory that refuses to build an
	// object, e.g. an item collected in an earlier run.
	ErrCannotCreate = errors.New("object cannot be created")
	// ErrUnknownType means no factory is registered for a level object.
	ErrUnknownType = errors.New("unknown object type")
	// ErrPlayerMissing means a level has no player spawn.
	ErrPlayerMissing = errors.New("level has no player")
)

// Factory builds an object from level arguments.
type Factory func(m *Map, args levels.Args) (Object, error)

// DefaultMethod is the factory method used when level data names none.
const DefaultMethod = "new"

// SnapMethod builds the object and snaps its top-left to the tile grid.
const SnapMethod = "new_with_coords_fix"

// Registry maps type names and factory method names to factories.
type Registry struct {
	types map[string]map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{types: map[string]map[string]Factory{}}
}

// Register adds the default factory for typeName.
func (r *Registry) Register(typeName string, f Factory) {
	r.RegisterMethod(typeName, DefaultMethod, f)
}

// RegisterMethod adds a named factory method for typeName.
func (r *Registry) RegisterMethod(typeName, method string, f Factory) {
	methods, ok := r.types[typeName]
	if !ok {
		methods = map[string]Factory{}
		r.types[typeName] = methods
	}
	methods[method] = f
}

// Types lists the registered type names.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.types))
	for t := range r.types {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Build constructs one level object.
func (r *Registry) Build(m *Map, d levels.ObjectData) (Object, error) {
	methods, ok := r.types[d.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, d.Type)
	}

	method := d.FactoryMethod
	switch method {
	case "", "__call__":
		method = DefaultMethod
	}

	args := d.Args
	if args == nil {
		args = levels.Args{}
	}

	if f, ok := methods[method]; ok {
		return f(m, args)
	}
	if f, ok := methods[DefaultMethod]; ok && method == SnapMethod {
		o, err := f(m, args)
		if err != nil {
			return nil, err
		}
		snapToTile(o.Base())
		return o, nil
	}
	return nil, fmt.Errorf("%w: %q has no factory method %q", ErrUnknownType, d.Type, d.FactoryMethod)
}

func snapToTile(b *ObjectBase) {
	b.Rect.SetX(b.Rect.X() - mod(b.Rect.X(), common.TileSize))
	b.Rect.SetY(b.Rect.Y() - mod(b.Rect.Y(), common.TileSize))
}

func mod(a, b int) int {
	return ((a % b) + b) % b
}

// DefaultRegistry returns a registry with every built-in object type.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(string(KindPlayer), newPlayer)

	r.Register(string(KindDirt), newDirt)
	r.Register(string(KindBackgroundDirt), newStatic(KindBackgroundDirt, ZBackground))
	r.Register(string(KindBricks), newBlock(KindBricks))
	r.Register(string(KindBackgroundBricks), newStatic(KindBackgroundBricks, ZBackground))
	r.Register(string(KindBarrier), newBlock(KindBarrier))
	r.Register(string(KindTree), newTree)
	r.Register(string(KindWeb), newWeb)
	r.Register(string(KindOverlay), newOverlay)

	r.Register(string(KindCoin), newCoin)
	r.Register(string(KindChest), newChest)
	r.Register(string(KindHeart), newHeart)
	r.Register(string(KindShield), newShield)

	r.Register(string(KindSpike), newSpike)
	r.Register(string(KindLadder), newLadder)
	r.Register(string(KindWater), newWater)
	r.Register(string(KindFinish), newFinish)
	r.Register(string(KindHint), newHint)

	r.Register(string(KindSlug), newSlug)
	r.Register(string(KindBat), newBat)
	r.Register(string(KindSkeleton), newSkeleton)
	r.Register(string(KindSpider), newSpider)
	r.Register(string(KindGhost), newGhost)
	r.Register(string(KindCannon), newCannon)
	return r
}
