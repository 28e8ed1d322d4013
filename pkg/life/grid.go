package life

// Cell values stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Source is the random source used to seed a board. *core.RNG and
// *rand.Rand both satisfy it.
type Source interface {
	Float64() float64
}

// Grid stores a toroidal board of binary cells in row-major order.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}
}

// Seed allocates a w*h grid and seeds it, see (*Grid).Seed.
func Seed(w, h int, fraction float64, src Source) *Grid {
	g := NewGrid(w, h)
	g.Seed(fraction, src)
	return g
}

// Seed sets every cell independently to Alive with probability fraction.
// Cells are visited in row-major order, one draw per cell, so a given source
// state always yields the same board.
func (g *Grid) Seed(fraction float64, src Source) {
	for i := range g.data {
		if src.Float64() < fraction {
			g.data[i] = Alive
			continue
		}
		g.data[i] = Dead
	}
}

// Cells exposes the backing slice. Callers must treat it as read-only unless
// they own the grid.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At returns the cell at (x, y) after wrapping.
func (g *Grid) At(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Alive reports whether the cell at (x, y) is alive.
func (g *Grid) Alive(x, y int) bool { return g.At(x, y) == Alive }

// Set stores v at (x, y) after wrapping.
func (g *Grid) Set(x, y int, v uint8) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.data {
		if c == Alive {
			n++
		}
	}
	return n
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Swap exchanges two grid handles without copying cells.
func Swap(cur, next **Grid) {
	*cur, *next = *next, *cur
}
