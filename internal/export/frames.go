package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/Watrick117/Tribute-To-Conway/internal/render"
	"github.com/Watrick117/Tribute-To-Conway/pkg/life"

	"golang.org/x/sync/errgroup"
)

// FramePrefix is the file name prefix of every frame; the generation index
// follows it.
const FramePrefix = "Generation"

// FrameWriter renders generations to numbered image files in a directory.
// Frames are encoded on up to workers goroutines from private copies of the
// generation, so Emit returns once the copy is taken or a worker is free.
//
// After the first write failure the remaining frames are skipped; the error is
// returned by Wait.
type FrameWriter struct {
	dir      string
	format   Format
	renderer *render.FrameRenderer

	g   *errgroup.Group
	ctx context.Context

	mu      sync.Mutex
	written []int
}

// NewFrameWriter creates dir if needed and returns a writer for it.
func NewFrameWriter(ctx context.Context, dir string, format Format, renderer *render.FrameRenderer, workers int) (*FrameWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create frame directory: %w", err)
	}
	if workers <= 0 {
		workers = 1
	}
	if renderer == nil {
		renderer = render.NewFrameRenderer(false)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	return &FrameWriter{dir: dir, format: format, renderer: renderer, g: g, ctx: gctx}, nil
}

// Dir returns the frame directory.
func (fw *FrameWriter) Dir() string { return fw.dir }

// Format returns the frame encoding.
func (fw *FrameWriter) Format() Format { return fw.format }

// Path returns the file name used for generation index.
func (fw *FrameWriter) Path(index int) string {
	return filepath.Join(fw.dir, fmt.Sprintf("%s%d.%s", FramePrefix, index, fw.format.Ext()))
}

// Pattern returns the printf-style input pattern understood by image2
// demuxers.
func (fw *FrameWriter) Pattern() string {
	return filepath.Join(fw.dir, FramePrefix+"%d."+fw.format.Ext())
}

// Emit schedules gen to be written.
func (fw *FrameWriter) Emit(gen life.Generation) {
	if fw.ctx.Err() != nil {
		return
	}
	owned := gen.Clone()
	fw.g.Go(func() error {
		if err := fw.ctx.Err(); err != nil {
			return nil
		}
		if err := fw.write(owned); err != nil {
			return fmt.Errorf("write frame %d: %w", owned.Index, err)
		}
		fw.mu.Lock()
		fw.written = append(fw.written, owned.Index)
		fw.mu.Unlock()
		return nil
	})
}

func (fw *FrameWriter) write(gen life.Generation) (err error) {
	img := fw.renderer.Render(gen)
	f, err := os.Create(fw.Path(gen.Index))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fw.format.Encode(f, img)
}

// Wait blocks until all scheduled frames are written and returns the first
// failure.
func (fw *FrameWriter) Wait() error {
	return fw.g.Wait()
}

// Written returns the indices of the frames on disk in ascending order.
func (fw *FrameWriter) Written() []int {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	out := slices.Clone(fw.written)
	slices.Sort(out)
	return out
}

// Remove deletes every frame written so far, and the directory if it is left
// empty. Call it after Wait.
func (fw *FrameWriter) Remove() error {
	var errs []error
	for _, idx := range fw.Written() {
		if err := os.Remove(fw.Path(idx)); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	fw.mu.Lock()
	fw.written = nil
	fw.mu.Unlock()

	if entries, err := os.ReadDir(fw.dir); err == nil && len(entries) == 0 {
		if err := os.Remove(fw.dir); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
