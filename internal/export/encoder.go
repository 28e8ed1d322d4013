package export

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
)

// Encoder assembles numbered frame images into a video with an external
// ffmpeg-compatible binary.
type Encoder struct {
	Binary string
	Input  string // printf-style frame pattern, see FrameWriter.Pattern
	Output string

	Rate   int
	Width  int
	Height int

	Codec  string
	CRF    int
	PixFmt string

	Stdout io.Writer
	Stderr io.Writer
}

// NewEncoder returns an H.264 encoder for w*h frames at rate frames per
// second.
func NewEncoder(binary, input, output string, rate, w, h int) *Encoder {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Encoder{
		Binary: binary,
		Input:  input,
		Output: output,
		Rate:   rate,
		Width:  w,
		Height: h,
		Codec:  "libx264",
		CRF:    25,
		PixFmt: "yuv420p",
	}
}

// Args returns the encoder command line, excluding the binary.
func (e *Encoder) Args() []string {
	return []string{
		"-y",
		"-r", strconv.Itoa(e.Rate),
		"-f", "image2",
		"-s", fmt.Sprintf("%dx%d", e.Width, e.Height),
		"-i", e.Input,
		"-vcodec", e.Codec,
		"-crf", strconv.Itoa(e.CRF),
		"-pix_fmt", e.PixFmt,
		e.Output,
	}
}

// Run executes the encoder and waits for it to exit.
func (e *Encoder) Run(ctx context.Context) error {
	bin, err := exec.LookPath(e.Binary)
	if err != nil {
		return fmt.Errorf("find encoder: %w", err)
	}
	cmd := exec.CommandContext(ctx, bin, e.Args()...)
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", e.Binary, err)
	}
	return nil
}
