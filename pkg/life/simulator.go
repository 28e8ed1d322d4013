package life

import (
	"context"
	"sync/atomic"
)

// State is the lifecycle stage of a Simulator.
type State int32

const (
	// StateSeeded means generation 0 is ready and no tick has run yet.
	StateSeeded State = iota
	// StateRunning means at least one tick has been computed.
	StateRunning
	// StateHalted is terminal: the last generation was reached or a stop was
	// requested.
	StateHalted
)

func (s State) String() string {
	switch s {
	case StateSeeded:
		return "seeded"
	case StateRunning:
		return "running"
	case StateHalted:
		return "halted"
	}
	return "unknown"
}

// Generation is a board snapshot tagged with its index. The grid is owned by
// the Simulator and only valid until the next Tick; use Clone to keep it.
type Generation struct {
	Index int
	Grid  *Grid
}

// Clone returns a Generation backed by a private copy of the grid.
func (g Generation) Clone() Generation {
	if g.Grid == nil {
		return g
	}
	return Generation{Index: g.Index, Grid: g.Grid.Clone()}
}

// Simulator owns the two board buffers and advances them one generation per
// Tick. Apart from RequestStop and State, methods must be called from a
// single goroutine.
type Simulator struct {
	cfg  Config
	rule Rule

	cur *Grid
	nxt *Grid
	gen int

	state atomic.Int32
}

// New validates cfg and seeds generation 0 from src using the B3/S23 rule.
func New(cfg Config, src Source) (*Simulator, error) {
	return NewWithRule(cfg, src, Conway{})
}

// NewWithRule is New with an explicit rule.
func NewWithRule(cfg Config, src Source, rule Rule) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rule == nil {
		rule = Conway{}
	}
	s := &Simulator{
		cfg:  cfg,
		rule: rule,
		cur:  Seed(cfg.Width, cfg.Height, cfg.Population, src),
		nxt:  NewGrid(cfg.Width, cfg.Height),
	}
	s.state.Store(int32(StateSeeded))
	return s, nil
}

// Config returns the configuration the simulator was built with.
func (s *Simulator) Config() Config { return s.cfg }

// Rule returns the rule used by Tick.
func (s *Simulator) Rule() Rule { return s.rule }

// State returns the current lifecycle stage. Safe for concurrent use.
func (s *Simulator) State() State { return State(s.state.Load()) }

// Current returns the active generation.
func (s *Simulator) Current() Generation {
	return Generation{Index: s.gen, Grid: s.cur}
}

// Tick computes the next generation and makes it current. It reports false,
// leaving the current generation untouched, when the simulator is halted or
// when the next index would exceed MaxGeneration, in which case the simulator
// halts.
func (s *Simulator) Tick() (Generation, bool) {
	if s.State() == StateHalted {
		return s.Current(), false
	}
	if s.gen >= s.cfg.MaxGeneration {
		s.state.Store(int32(StateHalted))
		return s.Current(), false
	}
	s.state.CompareAndSwap(int32(StateSeeded), int32(StateRunning))

	s.rule.Advance(s.cur, s.nxt)
	Swap(&s.cur, &s.nxt)
	s.gen++
	return s.Current(), true
}

// RequestStop halts the simulator. A tick already in progress completes; no
// further tick is computed. Safe for concurrent use.
func (s *Simulator) RequestStop() {
	s.state.Store(int32(StateHalted))
}

// Run hands each generation to emit and ticks until the simulator halts.
// Generation 0 is emitted only if no tick has run yet. Cancelling ctx acts as
// RequestStop. Run returns the last generation computed.
func (s *Simulator) Run(ctx context.Context, emit func(Generation)) Generation {
	if s.State() == StateSeeded {
		emit(s.Current())
	}
	for {
		if ctx.Err() != nil {
			s.RequestStop()
		}
		g, ok := s.Tick()
		if !ok {
			return g
		}
		emit(g)
	}
}
