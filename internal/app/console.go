package app

import (
	"fmt"
	"io"
	"time"

	"github.com/Watrick117/Tribute-To-Conway/pkg/life"

	"github.com/logrusorgru/aurora"
)

// Console prints run progress for a human.
type Console struct {
	out   io.Writer
	au    aurora.Aurora
	every int
	start time.Time
}

// NewConsole writes to out, with ANSI colours when colors is set.
func NewConsole(out io.Writer, colors bool) *Console {
	return &Console{out: out, au: aurora.NewAurora(colors), every: 10}
}

// Writer returns the underlying output, for child process logs.
func (c *Console) Writer() io.Writer { return c.out }

// Start prints the running configuration and starts the clock.
func (c *Console) Start(cfg *Config, rule string) {
	c.start = time.Now()
	fmt.Fprintln(c.out, c.au.Bold("Running configuration:"))
	fmt.Fprintf(c.out, "  Board: %v x %v\n", cfg.Width, cfg.Height)
	fmt.Fprintf(c.out, "  Rule: %v\n", rule)
	fmt.Fprintf(c.out, "  Max generation: %v\n", cfg.MaxGeneration)
	fmt.Fprintf(c.out, "  Population: %v%%\n", cfg.Population)
	if !cfg.NoFrames {
		fmt.Fprintf(c.out, "  Frames: %v (%v)\n", cfg.FramesDir, cfg.Format)
	}
	if cfg.Video() {
		fmt.Fprintf(c.out, "  Video: %v at %v fps\n", cfg.Output, cfg.Rate)
	}
	fmt.Fprintln(c.out, c.au.Cyan("Simulation started..."))
}

// Generation reports progress every few generations.
func (c *Console) Generation(g life.Generation) {
	if c.every <= 0 || g.Index%c.every != 0 {
		return
	}
	fmt.Fprintf(c.out, "  Generation %v, live cells: %v\n", g.Index, g.Grid.Population())
}

// Finish prints the run summary.
func (c *Console) Finish(last life.Generation) {
	elapsed := time.Since(c.start).Round(time.Millisecond)
	fmt.Fprintln(c.out, c.au.Green("Finished:"))
	fmt.Fprintf(c.out, "  Last generation: %v\n", last.Index)
	fmt.Fprintf(c.out, "  Live cells: %v\n", last.Grid.Population())
	fmt.Fprintf(c.out, "  Total time: %v\n", elapsed)
}

// Info prints a status line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.out, c.au.Cyan(fmt.Sprintf(format, args...)))
}

// Warn prints a non-fatal problem.
func (c *Console) Warn(err error) {
	fmt.Fprintln(c.out, c.au.Yellow("warning: "+err.Error()))
}
