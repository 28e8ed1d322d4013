package app

import (
	"fmt"
	"strings"

	"github.com/Watrick117/Tribute-To-Conway/internal/export"
	"github.com/Watrick117/Tribute-To-Conway/pkg/core"
	"github.com/Watrick117/Tribute-To-Conway/pkg/life"

	"github.com/integrii/flaggy"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Width         int
	Height        int
	MaxGeneration int
	Population    int // percent of cells alive in generation 0
	Seed          int64

	Rate   int
	Text   bool
	Scale  int
	Delete bool

	FramesDir string
	Format    string
	Workers   int
	NoFrames  bool

	Output  string
	FFmpeg  string
	NoVideo bool

	NoColor bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:         life.DefaultWidth,
		Height:        life.DefaultHeight,
		MaxGeneration: life.DefaultMaxGeneration,
		Population:    int(life.DefaultPopulation * 100),
		Rate:          2,
		Scale:         1,
		FramesDir:     "temp",
		Format:        string(export.FormatJPEG),
		Workers:       4,
		Output:        "output.mp4",
		FFmpeg:        "ffmpeg",
	}
}

// Bind attaches the configuration to the provided parser.
func (c *Config) Bind(p *flaggy.Parser) {
	p.Int(&c.Width, "x", "width", "Width of the board in cells (minimum 10)")
	p.Int(&c.Height, "y", "height", "Height of the board in cells (minimum 10)")
	p.Int(&c.MaxGeneration, "g", "generation", "Last generation to simulate")
	p.Int(&c.Population, "p", "population", "Percentage of cells alive in generation 0")
	p.Int64(&c.Seed, "", "seed", "Random seed, 0 seeds from the clock")
	p.Int(&c.Rate, "r", "rate", "Frames per second for the window and the video")
	p.Bool(&c.Text, "t", "text", "Draw the generation number on screen and in frames")
	p.Int(&c.Scale, "", "scale", "Window pixels per cell")
	p.Bool(&c.Delete, "d", "delete", "Delete frame images once the run is finished")
	p.String(&c.FramesDir, "", "frames", "Directory for frame images")
	p.String(&c.Format, "", "format", "Frame image format [jpg|png|bmp]")
	p.Int(&c.Workers, "", "workers", "Frames encoded concurrently")
	p.Bool(&c.NoFrames, "", "no-frames", "Do not write frame images (implies --no-video)")
	p.String(&c.Output, "o", "output", "Video file to produce")
	p.String(&c.FFmpeg, "", "ffmpeg", "Video encoder binary")
	p.Bool(&c.NoVideo, "", "no-video", "Keep the frames but do not encode a video")
	p.Bool(&c.NoColor, "", "no-color", "Disable coloured console output")
}

// Parse reads args (without the program name) into a validated Config.
func Parse(args []string) (*Config, error) {
	c := NewConfig()
	p := flaggy.NewParser("conway")
	p.Description = "Tribute to John Horton Conway's Game of Life"
	p.ShowHelpOnUnexpected = false
	c.Bind(p)
	if err := p.ParseArgs(args); err != nil {
		return nil, err
	}
	if err := checkArgs(p, args); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the options that the simulation itself does not cover.
func (c *Config) Validate() error {
	if err := c.Life().Validate(); err != nil {
		return err
	}
	if c.Rate < 1 {
		return fmt.Errorf("rate must be at least 1, got %d", c.Rate)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if _, err := export.ParseFormat(c.Format); err != nil {
		return err
	}
	return nil
}

// Life returns the simulation parameters.
func (c *Config) Life() life.Config {
	return life.Config{
		Width:         c.Width,
		Height:        c.Height,
		MaxGeneration: c.MaxGeneration,
		Population:    float64(c.Population) / 100,
	}
}

// Source returns the random source for generation 0.
func (c *Config) Source() *core.RNG {
	if c.Seed == 0 {
		return core.NewTimeSeededRNG()
	}
	return core.NewRNG(c.Seed)
}

// Video reports whether a video should be encoded.
func (c *Config) Video() bool { return !c.NoFrames && !c.NoVideo }

// checkArgs rejects arguments the parser would otherwise skip silently:
// unknown flags, stray positional values and anything after "--".
func checkArgs(p *flaggy.Parser, args []string) error {
	if len(p.TrailingArguments) > 0 {
		return fmt.Errorf("unexpected arguments: %s", strings.Join(p.TrailingArguments, " "))
	}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return nil
		}
		if len(arg) < 2 || arg[0] != '-' {
			return fmt.Errorf("unexpected argument %q", arg)
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		switch name {
		case "h", "help", "version":
			continue
		}
		var f *flaggy.Flag
		if name != "" {
			f = lookupFlag(p, name)
		}
		if f == nil {
			return fmt.Errorf("unknown flag %q", arg)
		}
		if _, isBool := f.AssignmentVar.(*bool); !isBool && !hasValue {
			i++
		}
	}
	return nil
}

func lookupFlag(p *flaggy.Parser, name string) *flaggy.Flag {
	for _, f := range p.Flags {
		if f.HasName(name) {
			return f
		}
	}
	return nil
}
