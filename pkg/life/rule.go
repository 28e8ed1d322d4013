package life

// Rule computes the next generation of a board.
//
// Advance must write every cell of next using only cur. The two grids have
// equal dimensions and are never the same grid.
type Rule interface {
	Name() string
	Advance(cur, next *Grid)
}

// Conway is the standard B3/S23 rule.
type Conway struct{}

// Name returns the rule notation.
func (Conway) Name() string { return "B3/S23" }

// Advance applies B3/S23 to every cell of cur, writing into next.
func (Conway) Advance(cur, next *Grid) {
	w, h := cur.W, cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			n := CountLiveNeighbors(cur, x, y)
			state := cur.data[idx]
			switch {
			case state == Dead && n == 3:
				state = Alive
			case state == Alive && (n < 2 || n > 3):
				state = Dead
			}
			next.data[idx] = state
		}
	}
}
