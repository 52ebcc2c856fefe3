package generate

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"ribbons/output"
	"ribbons/palette"
	"ribbons/parallel"
	"ribbons/ribbon"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Count      int           `arg:"" name:"nr_of_ribbons" help:"Number of ribbons to generate"`
	Dir        string        `help:"Destination folder for generated ribbons" default:"."`
	Prefix     string        `help:"File name prefix, ribbons are named <prefix>_<n>" default:"ribbon"`
	Format     string        `help:"Output image format" enum:"png,bmp,tiff" default:"png"`
	Palette    string        `help:"Candidate colors: 'classic' or a PAL file in RIFF format" default:"classic"`
	Seed       uint64        `help:"Random seed, 0 picks a random one"`
	Candidates color.Palette `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Count < 0 {
		return fmt.Errorf("invalid number of ribbons: %d", c.Count)
	}

	if c.Prefix == "" {
		return fmt.Errorf("file name prefix must not be empty")
	}

	dir, err := filepath.Abs(c.Dir)
	if err != nil {
		return fmt.Errorf("invalid destination path %q: %w", c.Dir, err)
	}
	c.Dir = dir

	if c.Candidates, err = palette.LoadPalette(c.Palette); err != nil {
		return err
	}

	return nil
}

func (c *CLICmd) Run(logger *slog.Logger, stdout io.Writer, worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dir, err)
	}

	seed := c.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("generating", "count", c.Count, "dir", c.Dir, "format", c.Format, "seed", seed, "colors", len(c.Candidates))

	gen := ribbon.New(rand.New(rand.NewPCG(seed, seed)), c.Candidates)

	var (
		mu                       sync.Mutex
		generatedCount, errCount atomic.Uint64
	)
	for i := 1; i <= c.Count; i++ {
		name := fmt.Sprintf("%s_%d", c.Prefix, i)
		r := gen.Generate()

		worker(func() {
			fileLog := logger.With("file", filepath.Join(c.Dir, name+"."+c.Format))
			if err := output.Save(r.Image, c.Format, c.Dir, name); err != nil {
				errCount.Add(1)
				fileLog.Error("could not save ribbon", "error", err)
				return
			}
			generatedCount.Add(1)
			fileLog.Debug("saved ribbon", "colors", len(r.Colors), "stripes", len(r.Stripes), "density", r.Density)

			mu.Lock()
			defer mu.Unlock()
			fmt.Fprintf(stdout, "Generated ribbon %s\n", name)
		})
	}

	wait(true)

	generated := generatedCount.Load()
	errors := errCount.Load()
	logger.Info("stats", "generated", generated, "errors", errors, "total", generated+errors)

	if errors > 0 {
		return fmt.Errorf("error saving %d ribbons", errors)
	}
	return nil
}
