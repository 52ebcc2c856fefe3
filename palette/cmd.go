package palette

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

type CLICmd struct {
	Out string `arg:"" optional:"" help:"Write the built-in palette to this RIFF PAL file instead of listing it" type:"path"`
}

func (c *CLICmd) Run(logger *slog.Logger, stdout io.Writer) error {
	if c.Out == "" {
		for _, e := range Classic {
			if _, err := fmt.Fprintf(stdout, "#%02x%02x%02x %s\n", e.Color.R, e.Color.G, e.Color.B, e.Name); err != nil {
				return fmt.Errorf("could not list palette: %w", err)
			}
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(c.Out), 0o755); err != nil {
		return fmt.Errorf("unable to create palette folder for %q: %w", c.Out, err)
	}

	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", c.Out, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("could not close palette file", "file", c.Out, "error", closeErr)
		}
	}()

	n, err := WriteTo(f, []color.Palette{Colors(Classic)})
	if err != nil {
		return fmt.Errorf("could not save palette %q: %w", c.Out, err)
	}

	logger.Info("palette written", "file", c.Out, "colors", n)
	return f.Sync()
}
