package obj

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Context is the per-attempt state shared between objects of one level
// load. Map.Reset replaces it.
type Context struct {
	collected mapset.Set[int]
	// refused holds ids persisted by earlier completions.
	refused mapset.Set[int]

	TakenCoins  int
	VisualCoins int

	grassIndex int
}

// NewContext creates a context refusing the given persisted ids.
func NewContext(persisted []int) *Context {
	return &Context{
		collected: mapset.New[int](),
		refused:   mapset.Of(persisted...),
	}
}

// IsRefused reports whether an item with id was collected in an earlier run.
func (c *Context) IsRefused(id int) bool {
	return c.refused.Has(id)
}

// Collect records id as collected during this attempt.
func (c *Context) Collect(id int) {
	c.collected.Put(id)
}

// CollectedIDs returns the ids collected this attempt in ascending order.
func (c *Context) CollectedIDs() []int {
	ids := make([]int, 0, c.collected.Size())
	c.collected.Each(func(id int) {
		ids = append(ids, id)
	})
	sort.Ints(ids)
	return ids
}

// NextGrass cycles through n grass variants.
func (c *Context) NextGrass(n int) int {
	if n <= 0 {
		return 0
	}
	i := c.grassIndex % n
	c.grassIndex = (c.grassIndex + 1) % n
	return i
}
