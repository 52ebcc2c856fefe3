// Package output writes finished ribbon images to disk.
package output

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Formats lists the supported output formats, all of them lossless.
var Formats = []string{"png", "bmp", "tiff"}

// fileMode is the permission of saved images.
const fileMode os.FileMode = 0o644

// Save encodes img into dir/name.format. The image is first written to a
// temporary file in dir, which is renamed into place once encoding succeeded.
func Save(img image.Image, format, dir, name string) (err error) {
	destName := fmt.Sprintf("%s.%s", name, format)

	outFile, err := os.CreateTemp(dir, destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), filepath.Join(dir, destName)); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			_ = os.Remove(outFile.Name())
		}
	}()

	switch format {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err = enc.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", destName, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode BMP destination %q: %w", destName, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, &tiff.Options{Compression: tiff.Deflate}); err != nil {
			return fmt.Errorf("could not encode TIFF destination %q: %w", destName, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	// CreateTemp opens with 0600
	if err = outFile.Chmod(fileMode); err != nil {
		return fmt.Errorf("could not set mode of destination %q: %w", destName, err)
	}

	canRename = true
	return nil
}

// pngBuffers recycles encoder buffers between Save calls. A nil buffer from
// an empty pool makes png.Encoder allocate a fresh one.
type pngBuffers struct{ sync.Pool }

func (p *pngBuffers) Get() *png.EncoderBuffer {
	buf, _ := p.Pool.Get().(*png.EncoderBuffer)
	return buf
}

func (p *pngBuffers) Put(buf *png.EncoderBuffer) {
	p.Pool.Put(buf)
}

var pngPool = &pngBuffers{}
