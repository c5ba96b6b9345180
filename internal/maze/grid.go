package maze

import (
	"fmt"
	"sort"
)

// Grid is a read-only view over a board: its size and wall ledger.
// Derived grids are produced with With and WithKind; a Grid is never
// mutated once built, so it can be shared between goroutines.
type Grid struct {
	size int
	// edges holds the wall kind per edge slot, 0 when the edge is open.
	// Slots [0, size*size) are horizontal keys, the rest vertical ones.
	edges []WallKind
	keys  []WallKey
}

// MaxSize bounds the board side. Planning cost grows with the fourth
// power of the size.
const MaxSize = 64

func NewGrid(size int, walls []Wall) (*Grid, error) {
	if size < 2 || size > MaxSize {
		return nil, fmt.Errorf("%w: got %d, want 2..%d", ErrInvalidSize, size, MaxSize)
	}
	g := &Grid{
		size:  size,
		edges: make([]WallKind, 2*size*size),
		keys:  make([]WallKey, 0, len(walls)),
	}
	for _, w := range walls {
		if err := g.checkWall(w); err != nil {
			return nil, err
		}
		slot := g.slot(w.Key())
		if g.edges[slot] != 0 {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateWall, w.Key())
		}
		g.edges[slot] = w.Kind
		g.keys = append(g.keys, w.Key())
	}
	sort.Slice(g.keys, func(i, j int) bool { return g.keys[i].less(g.keys[j]) })
	return g, nil
}

func (g *Grid) Size() int { return g.size }

func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// Fits reports whether a wall with this key lies on the grid.
func (g *Grid) Fits(k WallKey) bool {
	switch k.Orientation {
	case Horizontal:
		return k.Row >= 0 && k.Row < g.size && k.Col >= 0 && k.Col < g.size-1
	case Vertical:
		return k.Row >= 0 && k.Row < g.size-1 && k.Col >= 0 && k.Col < g.size
	}
	return false
}

func (g *Grid) checkWall(w Wall) error {
	if !w.Orientation.Valid() || !w.Kind.Valid() {
		return fmt.Errorf("%w: %+v", ErrInvalidWall, w)
	}
	if !g.Fits(w.Key()) {
		return fmt.Errorf("%w: %s does not fit a %dx%d grid", ErrInvalidWall, w.Key(), g.size, g.size)
	}
	return nil
}

func (g *Grid) slot(k WallKey) int {
	i := k.Row*g.size + k.Col
	if k.Orientation == Vertical {
		i += g.size * g.size
	}
	return i
}

// Wall returns the wall stored under k.
func (g *Grid) Wall(k WallKey) (Wall, bool) {
	if !g.Fits(k) {
		return Wall{}, false
	}
	kind := g.edges[g.slot(k)]
	if kind == 0 {
		return Wall{}, false
	}
	return Wall{Row: k.Row, Col: k.Col, Orientation: k.Orientation, Kind: kind}, true
}

// Walls lists the ledger in key order.
func (g *Grid) Walls() []Wall {
	out := make([]Wall, 0, len(g.keys))
	for _, k := range g.keys {
		w, _ := g.Wall(k)
		out = append(out, w)
	}
	return out
}

func (g *Grid) Len() int { return len(g.keys) }

// edgeKey returns the key of the edge between two 4-adjacent cells.
func edgeKey(a, b Pos) (WallKey, bool) {
	switch {
	case a.Row == b.Row && abs(a.Col-b.Col) == 1:
		return WallKey{Row: a.Row, Col: min(a.Col, b.Col), Orientation: Horizontal}, true
	case a.Col == b.Col && abs(a.Row-b.Row) == 1:
		return WallKey{Row: min(a.Row, b.Row), Col: a.Col, Orientation: Vertical}, true
	}
	return WallKey{}, false
}

// WallBetween returns the wall on the edge separating a and b. It reports
// false when there is none or when a and b are not adjacent.
func (g *Grid) WallBetween(a, b Pos) (Wall, bool) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return Wall{}, false
	}
	k, ok := edgeKey(a, b)
	if !ok {
		return Wall{}, false
	}
	return g.Wall(k)
}

func (g *Grid) IsStepBlocked(a, b Pos) bool {
	w, ok := g.WallBetween(a, b)
	return ok && w.Kind.Blocks()
}

// blockedFast is IsStepBlocked for cells the caller already knows are
// adjacent and in bounds.
func (g *Grid) blockedFast(a, b Pos) bool {
	k, _ := edgeKey(a, b)
	kind := g.edges[g.slot(k)]
	return kind != 0 && kind.Blocks()
}

func (g *Grid) clone() *Grid {
	c := &Grid{
		size:  g.size,
		edges: make([]WallKind, len(g.edges)),
		keys:  make([]WallKey, len(g.keys), len(g.keys)+1),
	}
	copy(c.edges, g.edges)
	copy(c.keys, g.keys)
	return c
}

// With returns a copy of g with w added.
func (g *Grid) With(w Wall) (*Grid, error) {
	if err := g.checkWall(w); err != nil {
		return nil, err
	}
	slot := g.slot(w.Key())
	if g.edges[slot] != 0 {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateWall, w.Key())
	}
	c := g.clone()
	c.edges[slot] = w.Kind
	i := sort.Search(len(c.keys), func(i int) bool { return !c.keys[i].less(w.Key()) })
	c.keys = append(c.keys, WallKey{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = w.Key()
	return c, nil
}

// WithKind returns a copy of g where the wall at k has the given kind.
func (g *Grid) WithKind(k WallKey, kind WallKind) (*Grid, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidWall, int(kind))
	}
	if _, ok := g.Wall(k); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWall, k)
	}
	c := g.clone()
	c.edges[c.slot(k)] = kind
	return c, nil
}

// Without returns a copy of g with the wall at k removed.
func (g *Grid) Without(k WallKey) (*Grid, error) {
	if _, ok := g.Wall(k); !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWall, k)
	}
	c := g.clone()
	c.edges[c.slot(k)] = 0
	for i, key := range c.keys {
		if key == k {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
	return c, nil
}

// Apply returns the grid that results from performing a.
func (g *Grid) Apply(a Action) (*Grid, error) {
	switch a.Type {
	case ActionPlace:
		if a.Wall == nil {
			return nil, fmt.Errorf("%w: place action without wall", ErrInvalidWall)
		}
		return g.With(*a.Wall)
	case ActionMutate:
		if a.Key == nil {
			return nil, fmt.Errorf("%w: mutate action without key", ErrInvalidWall)
		}
		return g.WithKind(*a.Key, a.NewKind)
	}
	return g, nil
}
