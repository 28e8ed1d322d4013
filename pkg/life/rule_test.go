package life

import (
	"testing"

	"github.com/Watrick117/Tribute-To-Conway/pkg/core"
)

func gridWith(w, h int, cells ...[2]int) *Grid {
	g := NewGrid(w, h)
	for _, c := range cells {
		g.Set(c[0], c[1], Alive)
	}
	return g
}

func assertCells(t *testing.T, g *Grid, want ...[2]int) {
	t.Helper()
	expects := make(map[[2]int]bool, len(want))
	for _, c := range want {
		expects[c] = true
	}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if alive := g.Alive(x, y); alive != expects[[2]int{x, y}] {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, expects[[2]int{x, y}])
			}
		}
	}
}

func TestBlockStillLife(t *testing.T) {
	block := [][2]int{{4, 4}, {5, 4}, {4, 5}, {5, 5}}
	cur := gridWith(10, 10, block...)
	next := NewGrid(10, 10)
	Conway{}.Advance(cur, next)
	assertCells(t, next, block...)
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := [][2]int{{5, 4}, {5, 5}, {5, 6}}
	horizontal := [][2]int{{4, 5}, {5, 5}, {6, 5}}

	cur := gridWith(10, 10, vertical...)
	next := NewGrid(10, 10)

	for i := 0; i < 6; i++ {
		Conway{}.Advance(cur, next)
		Swap(&cur, &next)
		if i%2 == 0 {
			assertCells(t, cur, horizontal...)
		} else {
			assertCells(t, cur, vertical...)
		}
	}
}

func TestBlinkerAcrossEdge(t *testing.T) {
	cur := gridWith(10, 10, [2]int{0, 9}, [2]int{0, 0}, [2]int{0, 1})
	next := NewGrid(10, 10)
	Conway{}.Advance(cur, next)
	assertCells(t, next, [2]int{9, 0}, [2]int{0, 0}, [2]int{1, 0})
}

func TestRuleTransitions(t *testing.T) {
	cases := []struct {
		name  string
		alive bool
		n     int
		want  bool
	}{
		{"dead with 2 stays dead", false, 2, false},
		{"dead with 3 is born", false, 3, true},
		{"dead with 4 stays dead", false, 4, false},
		{"alive with 1 dies", true, 1, false},
		{"alive with 2 survives", true, 2, true},
		{"alive with 3 survives", true, 3, true},
		{"alive with 4 dies", true, 4, false},
	}
	ring := [][2]int{{4, 4}, {5, 4}, {6, 4}, {6, 5}, {6, 6}, {5, 6}, {4, 6}, {4, 5}}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cur := gridWith(10, 10, ring[:tc.n]...)
			if tc.alive {
				cur.Set(5, 5, Alive)
			}
			if got := CountLiveNeighbors(cur, 5, 5); got != tc.n {
				t.Fatalf("setup has %d neighbours, want %d", got, tc.n)
			}
			next := NewGrid(10, 10)
			Conway{}.Advance(cur, next)
			if got := next.Alive(5, 5); got != tc.want {
				t.Fatalf("centre alive=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestAdvanceDoesNotMutateCurrent(t *testing.T) {
	cur := Seed(20, 20, 0.4, core.NewRNG(11))
	before := cur.Clone()
	next := Seed(20, 20, 0.9, core.NewRNG(12))
	Conway{}.Advance(cur, next)
	if !cur.Equal(before) {
		t.Fatal("Advance mutated the current generation")
	}

	// Stale contents of next must not leak into the result.
	clean := NewGrid(20, 20)
	Conway{}.Advance(cur, clean)
	if !clean.Equal(next) {
		t.Fatal("Advance result depends on previous contents of next")
	}
}

func BenchmarkAdvance(b *testing.B) {
	cur := Seed(200, 200, 0.2, core.NewRNG(1))
	next := NewGrid(200, 200)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Conway{}.Advance(cur, next)
		Swap(&cur, &next)
	}
}
