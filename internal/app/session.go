package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Watrick117/Tribute-To-Conway/internal/export"
	"github.com/Watrick117/Tribute-To-Conway/internal/render"
	"github.com/Watrick117/Tribute-To-Conway/pkg/life"
)

// Session wires a Simulator to its consumers: the console and, unless
// disabled, the frame writer. Close finishes the exports.
type Session struct {
	cfg     *Config
	sim     *life.Simulator
	frames  *export.FrameWriter
	console *Console
}

// NewSession seeds a simulator from cfg and prepares the frame directory.
// ctx bounds the frame writers; it should outlive the simulation.
func NewSession(ctx context.Context, cfg *Config, console *Console) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	sim, err := life.New(cfg.Life(), cfg.Source())
	if err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg, sim: sim, console: console}
	if !cfg.NoFrames {
		format, err := export.ParseFormat(cfg.Format)
		if err != nil {
			return nil, err
		}
		s.frames, err = export.NewFrameWriter(ctx, cfg.FramesDir, format, render.NewFrameRenderer(cfg.Text), cfg.Workers)
		if err != nil {
			return nil, err
		}
	}
	console.Start(cfg, sim.Rule().Name())
	return s, nil
}

// Simulator returns the session's simulator.
func (s *Session) Simulator() *life.Simulator { return s.sim }

// Emit hands a generation to every consumer.
func (s *Session) Emit(g life.Generation) {
	s.console.Generation(g)
	if s.frames != nil {
		s.frames.Emit(g)
	}
}

// Run drives the simulator until it halts or ctx is cancelled.
func (s *Session) Run(ctx context.Context) life.Generation {
	return s.sim.Run(ctx, s.Emit)
}

// Close halts the simulator, waits for pending frames, encodes the video and
// removes the frames when requested. Frames are kept if encoding fails.
func (s *Session) Close(ctx context.Context) error {
	s.sim.RequestStop()
	s.console.Finish(s.sim.Current())
	if s.frames == nil {
		return nil
	}
	if err := s.frames.Wait(); err != nil {
		return err
	}
	if s.cfg.Video() && len(s.frames.Written()) > 0 {
		enc := export.NewEncoder(s.cfg.FFmpeg, s.frames.Pattern(), s.cfg.Output, s.cfg.Rate, s.cfg.Width, s.cfg.Height)
		enc.Stdout = io.Discard
		enc.Stderr = s.console.Writer()
		s.console.Info("Encoding %s", s.cfg.Output)
		if err := enc.Run(ctx); err != nil {
			s.console.Warn(fmt.Errorf("frames kept in %s", s.frames.Dir()))
			return err
		}
	}
	if s.cfg.Delete {
		if err := s.frames.Remove(); err != nil {
			return fmt.Errorf("delete frames: %w", err)
		}
	}
	return nil
}

// Run executes a whole headless run: simulate, export frames, encode.
// Cancelling ctx stops the simulation at the next generation; frames already
// computed are still written and encoded.
func Run(ctx context.Context, cfg *Config, out io.Writer) error {
	console := NewConsole(out, !cfg.NoColor)
	s, err := NewSession(context.WithoutCancel(ctx), cfg, console)
	if err != nil {
		return err
	}
	s.Run(ctx)
	return s.Close(context.WithoutCancel(ctx))
}
