package life

// CountLiveNeighbors returns the number of live cells among the eight
// neighbours of (x, y). Coordinates wrap around the board edges, so the result
// is always in [0, 8] and the cell itself is never counted.
func CountLiveNeighbors(g *Grid, x, y int) int {
	w, h := g.W, g.H
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w + w) % w
			ny := ((y+dy)%h + h) % h
			if g.data[ny*w+nx] == Alive {
				n++
			}
		}
	}
	return n
}
