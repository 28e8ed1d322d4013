package export

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/Watrick117/Tribute-To-Conway/internal/render"
	"github.com/Watrick117/Tribute-To-Conway/pkg/core"
	"github.com/Watrick117/Tribute-To-Conway/pkg/life"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"jpg":  FormatJPEG,
		"JPEG": FormatJPEG,
		".png": FormatPNG,
		"bmp":  FormatBMP,
	}
	for in, want := range cases {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Fatalf("ParseFormat(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("gif"); err == nil {
		t.Fatal("expected an error for gif")
	}
}

func writeRun(t *testing.T, dir string, format Format, gens int) *FrameWriter {
	t.Helper()
	fw, err := NewFrameWriter(context.Background(), dir, format, render.NewFrameRenderer(true), 3)
	if err != nil {
		t.Fatalf("NewFrameWriter: %v", err)
	}
	cfg := life.DefaultConfig()
	cfg.Width, cfg.Height = 24, 16
	cfg.MaxGeneration = gens - 1
	sim, err := life.New(cfg, core.NewRNG(8))
	if err != nil {
		t.Fatalf("life.New: %v", err)
	}
	sim.Run(context.Background(), fw.Emit)
	if err := fw.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	return fw
}

func TestFrameWriterWritesEveryGeneration(t *testing.T) {
	for _, format := range []Format{FormatJPEG, FormatPNG, FormatBMP} {
		t.Run(string(format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "frames")
			fw := writeRun(t, dir, format, 5)

			want := []int{0, 1, 2, 3, 4}
			if got := fw.Written(); !slices.Equal(got, want) {
				t.Fatalf("written = %v, want %v", got, want)
			}
			for _, idx := range want {
				name := filepath.Join(dir, "Generation"+strconv.Itoa(idx)+"."+format.Ext())
				if fw.Path(idx) != name {
					t.Fatalf("Path(%d) = %q, want %q", idx, fw.Path(idx), name)
				}
				if _, err := os.Stat(name); err != nil {
					t.Fatalf("frame %d missing: %v", idx, err)
				}
			}
		})
	}
}

func TestFrameContentsMatchGeneration(t *testing.T) {
	dir := t.TempDir()
	fw, err := NewFrameWriter(context.Background(), dir, FormatPNG, render.NewFrameRenderer(false), 1)
	if err != nil {
		t.Fatalf("NewFrameWriter: %v", err)
	}
	g := life.NewGrid(10, 10)
	g.Set(2, 3, life.Alive)
	fw.Emit(life.Generation{Index: 7, Grid: g})
	// The writer holds its own copy.
	g.Clear()
	if err := fw.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	f, err := os.Open(fw.Path(7))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r, _, _, _ := img.At(2, 3).RGBA(); r>>8 != 255 {
		t.Fatal("live cell not rendered white")
	}
	if r, _, _, _ := img.At(3, 3).RGBA(); r>>8 != 0 {
		t.Fatal("dead cell not rendered black")
	}
}

func TestPattern(t *testing.T) {
	fw, err := NewFrameWriter(context.Background(), t.TempDir(), FormatJPEG, nil, 1)
	if err != nil {
		t.Fatalf("NewFrameWriter: %v", err)
	}
	if !strings.HasSuffix(fw.Pattern(), "Generation%d.jpg") {
		t.Fatalf("pattern = %q", fw.Pattern())
	}
}

func TestFrameWriterReportsFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	fw, err := NewFrameWriter(context.Background(), dir, FormatPNG, nil, 2)
	if err != nil {
		t.Fatalf("NewFrameWriter: %v", err)
	}
	// Replace the directory with a file so every create fails.
	if err := os.Remove(dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(dir, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	g := life.NewGrid(10, 10)
	for i := 0; i < 4; i++ {
		fw.Emit(life.Generation{Index: i, Grid: g})
	}
	err = fw.Wait()
	if err == nil || !strings.Contains(err.Error(), "write frame") {
		t.Fatalf("Wait = %v, want a write frame error", err)
	}
	if len(fw.Written()) != 0 {
		t.Fatalf("written = %v, want none", fw.Written())
	}
}

func TestNewFrameWriterRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewFrameWriter(context.Background(), path, FormatPNG, nil, 1); err == nil {
		t.Fatal("expected an error when the frame directory is a file")
	}
}

func TestRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	fw := writeRun(t, dir, FormatPNG, 3)
	if err := fw.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(dir); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("frame directory still present: %v", err)
	}
}

func TestRemoveKeepsForeignFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	fw := writeRun(t, dir, FormatPNG, 2)
	keep := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(keep, []byte("keep"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := fw.Remove(); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Fatalf("foreign file removed: %v", err)
	}
	if _, err := os.Stat(fw.Path(0)); !errors.Is(err, os.ErrNotExist) {
		t.Fatal("frame 0 not removed")
	}
}

func TestEncoderArgs(t *testing.T) {
	e := NewEncoder("", "temp/Generation%d.jpg", "output.mp4", 2, 200, 150)
	want := []string{
		"-y", "-r", "2", "-f", "image2", "-s", "200x150",
		"-i", "temp/Generation%d.jpg",
		"-vcodec", "libx264", "-crf", "25", "-pix_fmt", "yuv420p",
		"output.mp4",
	}
	if got := e.Args(); !slices.Equal(got, want) {
		t.Fatalf("Args = %v\nwant %v", got, want)
	}
	if e.Binary != "ffmpeg" {
		t.Fatalf("default binary = %q", e.Binary)
	}
}

func TestEncoderMissingBinary(t *testing.T) {
	e := NewEncoder(filepath.Join(t.TempDir(), "no-such-ffmpeg"), "in%d.png", "out.mp4", 2, 10, 10)
	err := e.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "find encoder") {
		t.Fatalf("Run = %v, want a lookup error", err)
	}
}
